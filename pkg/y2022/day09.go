package y2022

import (
	"fmt"

	"advent/pkg/problem"
	"advent/pkg/solve"
)

func init() {
	register(problem.Problem{
		Year:            2022,
		Day:             9,
		Name:            "Rope Bridge",
		PartOne:         day09PartOne,
		PartTwo:         day09PartTwo,
		ExpectedPartOne: "13",
		ExpectedPartTwo: "1",
	})
}

func day09Delta(dir string) solve.Pt {
	switch dir {
	case "U":
		return solve.Pt{X: 0, Y: 1}
	case "D":
		return solve.Pt{X: 0, Y: -1}
	case "L":
		return solve.Pt{X: -1, Y: 0}
	case "R":
		return solve.Pt{X: 1, Y: 0}
	}
	panic(fmt.Sprintf("invalid direction %q", dir))
}

// day09Simulate moves a rope of the given length and returns
// the number of unique positions visited by the tail. Each
// knot trails the one ahead of it, stepping only when the gap
// exceeds one square.
func day09Simulate(input string, knots int) int {
	rope := make([]solve.Pt, knots)
	visited := map[solve.Pt]bool{rope[knots-1]: true}

	for _, line := range solve.Lines(input) {
		dir, countStr := solve.Cut(line, " ")
		delta := day09Delta(dir)

		for step := 0; step < solve.Int(countStr); step++ {
			rope[0] = rope[0].Add(delta)
			for i := 1; i < knots; i++ {
				if rope[i].Touching(rope[i-1]) {
					break
				}
				rope[i] = rope[i].Toward(rope[i-1])
			}
			visited[rope[knots-1]] = true
		}
	}

	return len(visited)
}

func day09PartOne(input string) (any, error) {
	return day09Simulate(input, 2), nil
}

func day09PartTwo(input string) (any, error) {
	return day09Simulate(input, 10), nil
}
