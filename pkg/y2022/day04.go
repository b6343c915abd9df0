package y2022

import (
	"advent/pkg/problem"
	"advent/pkg/solve"
)

func init() {
	register(problem.Problem{
		Year:            2022,
		Day:             4,
		Name:            "Camp Cleanup",
		PartOne:         day04PartOne,
		PartTwo:         day04PartTwo,
		ExpectedPartOne: "2",
		ExpectedPartTwo: "4",
	})
}

// day04Range is an inclusive section assignment.
type day04Range struct {
	start, end int
}

func (r day04Range) contains(other day04Range) bool {
	return r.start <= other.start && other.end <= r.end
}

func (r day04Range) overlaps(other day04Range) bool {
	return r.start <= other.end && other.start <= r.end
}

func day04Parse(input string) [][2]day04Range {
	lines := solve.Lines(input)
	pairs := make([][2]day04Range, 0, len(lines))
	for _, line := range lines {
		first, second := solve.Cut(line, ",")
		pairs = append(pairs, [2]day04Range{
			day04ParseRange(first),
			day04ParseRange(second),
		})
	}
	return pairs
}

func day04ParseRange(s string) day04Range {
	start, end := solve.Cut(s, "-")
	return day04Range{solve.Int(start), solve.Int(end)}
}

func day04PartOne(input string) (any, error) {
	count := 0
	for _, pair := range day04Parse(input) {
		a, b := pair[0], pair[1]
		if a.contains(b) || b.contains(a) {
			count++
		}
	}
	return count, nil
}

func day04PartTwo(input string) (any, error) {
	count := 0
	for _, pair := range day04Parse(input) {
		if pair[0].overlaps(pair[1]) {
			count++
		}
	}
	return count, nil
}
