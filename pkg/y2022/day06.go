package y2022

import (
	"fmt"

	"advent/pkg/problem"
)

func init() {
	register(problem.Problem{
		Year:            2022,
		Day:             6,
		Name:            "Tuning Trouble",
		PartOne:         day06PartOne,
		PartTwo:         day06PartTwo,
		ExpectedPartOne: "7",
		ExpectedPartTwo: "19",
	})
}

// day06FindMarker returns the position just past the first run
// of length distinct characters in the datastream.
func day06FindMarker(data string, length int) (int, error) {
	for i := 0; i+length <= len(data); i++ {
		seen := make(map[byte]bool, length)
		unique := true
		for j := i; j < i+length; j++ {
			if seen[data[j]] {
				unique = false
				break
			}
			seen[data[j]] = true
		}
		if unique {
			return i + length, nil
		}
	}
	return 0, fmt.Errorf(
		"no marker of length %d found", length,
	)
}

func day06PartOne(input string) (any, error) {
	return day06FindMarker(input, 4)
}

func day06PartTwo(input string) (any, error) {
	return day06FindMarker(input, 14)
}
