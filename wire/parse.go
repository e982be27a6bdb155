package wire

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ParseDirection maps an upper-case letter to its Direction.
// Returns ErrBadDirection for anything else.
func ParseDirection(r rune) (Direction, error) {
	switch d := Direction(r); d {
	case Up, Down, Left, Right:
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, r)
}

// ParseMove parses a single token such as "R8".
// The count must be a non-negative decimal integer; "R0" is a valid no-op.
func ParseMove(tok string) (Move, error) {
	if tok == "" {
		return Move{}, fmt.Errorf("%w: empty token", ErrBadMove)
	}
	r := rune(tok[0])
	dir, err := ParseDirection(r)
	if err != nil {
		return Move{}, err
	}
	rest := tok[1:]
	if rest == "" {
		return Move{}, fmt.Errorf("%w: %q has no step count", ErrBadMove, tok)
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %v", ErrBadMove, tok, err)
	}
	if n < 0 {
		return Move{}, fmt.Errorf("%w: %q has negative step count", ErrBadMove, tok)
	}

	return Move{Dir: dir, Count: n}, nil
}

// isSeparator reports whether r splits two move tokens.
func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// ParsePath parses one wire description. Tokens may be separated by
// commas, whitespace, or both, so "R8,U5" and "R8 U5" are equivalent.
// Errors carry the 1-based index of the offending token.
func ParsePath(line string) (Path, error) {
	toks := strings.FieldsFunc(line, isSeparator)
	if len(toks) == 0 {
		return nil, ErrEmptyPath
	}
	p := make(Path, 0, len(toks))
	for i, tok := range toks {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		p = append(p, m)
	}

	return p, nil
}

// ReadPaths reads one path per non-blank line from r.
// Errors carry the 1-based line number.
func ReadPaths(r io.Reader) ([]Path, error) {
	var paths []Path
	sc := bufio.NewScanner(r)
	// Real puzzle lines run to a few kilobytes; allow well beyond that.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		p, err := ParsePath(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		paths = append(paths, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wire: reading paths: %w", err)
	}

	return paths, nil
}
