// Package adventofcode holds Go solutions to Advent of Code puzzles.
//
// 2019, day 3 ("Crossed Wires") is split into:
//
//	wire/     — parse wire paths, trace them, intersect, answer both parts
//	wiregrid/ — rasterize two traced wires and draw them as ASCII
//	cmd/day03 — command-line entrypoint
//
// Quick ASCII example (wire 1: R8,U5,L5,D3; wire 2: U7,R6,D4,L4):
//
//	2222222..
//	2.....2..
//	2..111X11
//	2..1..2.1
//	2.2X222.1
//	2..1....1
//	2.......1
//	o11111111
//
// The nearest crossing is 6 cells from the origin; the earliest one is
// reached after 15+15 = 30 steps.
//
//	go run ./cmd/day03 data/input-2019-3.txt
package adventofcode
