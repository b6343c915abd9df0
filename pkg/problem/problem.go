// Package problem defines the data model for daily puzzles: the
// problem itself (two part solutions plus expected test answers)
// and the structured report produced by a run.
package problem

import "fmt"

// Solution computes the answer for one part of a problem. The
// input is the raw puzzle text with trailing whitespace removed.
// The returned answer may be a string or any numeric type; it is
// compared against expected values via its fmt.Sprint form.
type Solution func(input string) (any, error)

// Problem describes a single day's puzzle: its identity, the two
// part solutions, and the expected answers for the checked-in
// test data.
type Problem struct {
	// Year is the puzzle year, e.g. 2022.
	Year int

	// Day is the puzzle day within the year, 1-25.
	Day int

	// Name is the puzzle title, e.g. "Calorie Counting".
	Name string

	// PartOne solves the first part. Required.
	PartOne Solution

	// PartTwo solves the second part. The final day of each
	// year has a single part, so PartTwo may be nil.
	PartTwo Solution

	// ExpectedPartOne is the expected part-one answer for the
	// test input. Empty means the test answer is reported
	// unjudged.
	ExpectedPartOne string

	// ExpectedPartTwo is the expected part-two answer for the
	// test input. Empty means the test answer is reported
	// unjudged.
	ExpectedPartTwo string
}

// ID returns the canonical identifier for the problem, e.g.
// "2022/day-05".
func (p *Problem) ID() string {
	return fmt.Sprintf("%d/day-%02d", p.Year, p.Day)
}

// Parts returns the number of parts this problem defines.
func (p *Problem) Parts() int {
	if p.PartTwo == nil {
		return 1
	}
	return 2
}

// Part returns the solution for the given part number (1 or 2),
// or nil if the problem does not define it.
func (p *Problem) Part(n int) Solution {
	switch n {
	case 1:
		return p.PartOne
	case 2:
		return p.PartTwo
	}
	return nil
}

// Expected returns the expected test answer for the given part
// number. An empty string means no expectation is recorded.
func (p *Problem) Expected(n int) string {
	switch n {
	case 1:
		return p.ExpectedPartOne
	case 2:
		return p.ExpectedPartTwo
	}
	return ""
}

// Validate checks that the problem is well-formed enough to run.
func (p *Problem) Validate() error {
	if p.Year <= 0 {
		return fmt.Errorf("problem %s: invalid year", p.ID())
	}
	if p.Day < 1 || p.Day > 25 {
		return fmt.Errorf("problem %s: invalid day", p.ID())
	}
	if p.PartOne == nil {
		return fmt.Errorf("problem %s: part one is required", p.ID())
	}
	return nil
}
