package y2022

import (
	"fmt"

	"advent/pkg/problem"
	"advent/pkg/solve"
)

func init() {
	register(problem.Problem{
		Year:            2022,
		Day:             3,
		Name:            "Rucksack Reorganization",
		PartOne:         day03PartOne,
		PartTwo:         day03PartTwo,
		ExpectedPartOne: "157",
		ExpectedPartTwo: "70",
	})
}

// day03Priority scores items a-z as 1-26 and A-Z as 27-52.
func day03Priority(item rune) int {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27
	}
	panic(fmt.Sprintf("invalid item %q", item))
}

func day03Items(s string) map[rune]bool {
	items := make(map[rune]bool, len(s))
	for _, r := range s {
		items[r] = true
	}
	return items
}

// day03Common returns the single item present in every set.
func day03Common(sets ...map[rune]bool) rune {
	for item := range sets[0] {
		inAll := true
		for _, set := range sets[1:] {
			if !set[item] {
				inAll = false
				break
			}
		}
		if inAll {
			return item
		}
	}
	panic("no common item")
}

func day03PartOne(input string) (any, error) {
	total := 0
	for _, line := range solve.Lines(input) {
		middle := len(line) / 2
		common := day03Common(
			day03Items(line[:middle]),
			day03Items(line[middle:]),
		)
		total += day03Priority(common)
	}
	return total, nil
}

func day03PartTwo(input string) (any, error) {
	lines := solve.Lines(input)

	total := 0
	for i := 0; i+2 < len(lines); i += 3 {
		badge := day03Common(
			day03Items(lines[i]),
			day03Items(lines[i+1]),
			day03Items(lines[i+2]),
		)
		total += day03Priority(badge)
	}
	return total, nil
}
