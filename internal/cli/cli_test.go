package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/SondreSL/AdventOfCode/internal/cli"
	"github.com/SondreSL/AdventOfCode/internal/config"
	"github.com/stretchr/testify/require"
)

func TestParse_Positional(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := cli.Parse([]string{"input.txt"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "input.txt", cfg.InputPath)
	require.Equal(t, config.Default().LogLevel, cfg.LogLevel)
	require.False(t, cfg.Draw)
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()

	args := []string{"-i", "short.txt", "-log-level", "DEBUG", "-log-format", "json", "-draw", "-max-draw-cells", "64"}
	cfg, shouldExit, err := cli.Parse(args, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "short.txt", cfg.InputPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.True(t, cfg.Draw)
	require.Equal(t, 64, cfg.MaxDrawCells)
}

func TestParse_LongInputWinsOverShorthand(t *testing.T) {
	t.Parallel()

	cfg, _, err := cli.Parse([]string{"-input", "long.txt", "-i", "short.txt"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "long.txt", cfg.InputPath)
}

func TestParse_ConfigFileThenFlags(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "day03.hcl")
	body := "input = \"from-file.txt\"\nlog_format = \"json\"\ndraw = true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0600), "failed to set up test file")

	// --- Act ---
	cfg, _, err := cli.Parse([]string{"-config", path, "-draw=false"}, &bytes.Buffer{})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "from-file.txt", cfg.InputPath)
	require.Equal(t, "json", cfg.LogFormat)
	require.False(t, cfg.Draw, "an explicit flag overrides the config file")
}

func TestParse_NoInputPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := cli.Parse(nil, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"unknown flag": {"--no-such-flag"},
		"bad level":    {"-log-level", "loud", "input.txt"},
		"bad format":   {"-log-format", "xml", "input.txt"},
		"bad cells":    {"-max-draw-cells", "0", "input.txt"},
		"bad config":   {"-config", filepath.Join(t.TempDir(), "missing.hcl")},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := cli.Parse(args, &bytes.Buffer{})
			require.Error(t, err)
			exitErr, ok := err.(*cli.ExitError)
			require.True(t, ok, "expected *cli.ExitError, got %T", err)
			require.Equal(t, 2, exitErr.Code)
		})
	}
}
