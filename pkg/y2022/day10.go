package y2022

import (
	"strings"

	"advent/pkg/problem"
	"advent/pkg/solve"
)

func init() {
	register(problem.Problem{
		Year:            2022,
		Day:             10,
		Name:            "Cathode-Ray Tube",
		PartOne:         day10PartOne,
		PartTwo:         day10PartTwo,
		ExpectedPartOne: "13140",
		// The rendered screen is checked by eye, not judged.
	})
}

// day10Run executes the program and returns the register value
// at the start of every cycle. An addx takes two cycles, so it
// expands to a no-op followed by the add.
func day10Run(input string) []int {
	register := 1
	var states []int

	for _, line := range solve.Lines(input) {
		states = append(states, register)
		if line == "noop" {
			continue
		}
		_, value := solve.Cut(line, " ")
		states = append(states, register)
		register += solve.Int(value)
	}

	return states
}

func day10PartOne(input string) (any, error) {
	states := day10Run(input)

	total := 0
	for _, cycle := range []int{20, 60, 100, 140, 180, 220} {
		total += states[cycle-1] * cycle
	}
	return total, nil
}

func day10PartTwo(input string) (any, error) {
	const width, height = 40, 6

	states := day10Run(input)

	var screen strings.Builder
	screen.WriteByte('\n')
	for i := 0; i < width*height; i++ {
		pixel := i % width
		// The sprite is three pixels wide, centred on the
		// register value.
		if solve.AbsDiff(states[i], pixel) <= 1 {
			screen.WriteByte('#')
		} else {
			screen.WriteByte(' ')
		}
		if pixel == width-1 {
			screen.WriteByte('\n')
		}
	}
	return screen.String(), nil
}
