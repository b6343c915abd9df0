// Package solve holds quick & dirty helpers shared by the
// puzzle solutions: input parsing, grids, points, and small
// containers. Helpers panic on malformed input; the runner
// recovers panics into part errors.
package solve

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines splits the input into lines.
func Lines(s string) []string {
	return strings.Split(s, "\n")
}

// Blocks splits the input into blank-line separated blocks.
func Blocks(s string) []string {
	return strings.Split(s, "\n\n")
}

// Int returns the int value of the string.
func Int(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		panic(fmt.Sprintf("not a number: %q", s))
	}
	return v
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	out := make([]int, 0, len(s))
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// IntLines parses every line of the input as an int.
func IntLines(s string) []int {
	return Ints(Lines(s)...)
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		panic(fmt.Sprintf("not a digit: %q", r))
	}
	return int(r - '0')
}

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	out := make([]int, 0, len(line))
	for _, c := range line {
		out = append(out, Digit(c))
	}
	return out
}

// Cut splits s around the first instance of sep, panicking
// when sep is absent.
func Cut(s, sep string) (before, after string) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		panic(fmt.Sprintf("missing %q in %q", sep, s))
	}
	return before, after
}
