package y2022

import (
	"sort"

	"advent/pkg/problem"
	"advent/pkg/solve"
)

func init() {
	register(problem.Problem{
		Year:            2022,
		Day:             1,
		Name:            "Calorie Counting",
		PartOne:         day01PartOne,
		PartTwo:         day01PartTwo,
		ExpectedPartOne: "24000",
		ExpectedPartTwo: "45000",
	})
}

// day01Totals returns the total calories carried by each elf,
// sorted descending. Packs are separated by blank lines.
func day01Totals(input string) []int {
	blocks := solve.Blocks(input)
	totals := make([]int, 0, len(blocks))
	for _, block := range blocks {
		totals = append(
			totals, solve.Sum(solve.IntLines(block)...),
		)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(totals)))
	return totals
}

func day01PartOne(input string) (any, error) {
	return day01Totals(input)[0], nil
}

func day01PartTwo(input string) (any, error) {
	totals := day01Totals(input)
	return solve.Sum(totals[:3]...), nil
}
