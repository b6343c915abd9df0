package y2022

import (
	"regexp"
	"strings"

	"advent/pkg/problem"
	"advent/pkg/solve"
)

func init() {
	register(problem.Problem{
		Year:            2022,
		Day:             5,
		Name:            "Supply Stacks",
		PartOne:         day05PartOne,
		PartTwo:         day05PartTwo,
		ExpectedPartOne: "CMZ",
		ExpectedPartTwo: "MCD",
	})
}

// day05Move relocates count crates from one stack to another.
// Stack numbers are 1-based, as in the instructions.
type day05Move struct {
	count, from, to int
}

var day05MoveRx = regexp.MustCompile(
	`move (\d+) from (\d+) to (\d+)`,
)

// day05Parse reads the crate diagram and the move list. The
// diagram looks like:
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
// Crate letters sit in column 4*i+1 for stack i.
func day05Parse(input string) ([][]byte, []day05Move) {
	diagram, moveList := solve.Cut(input, "\n\n")

	lines := solve.Lines(diagram)
	labels := strings.Fields(lines[len(lines)-1])
	stacks := make([][]byte, len(labels))

	for i := len(lines) - 2; i >= 0; i-- {
		line := lines[i]
		for s := range stacks {
			pos := 4*s + 1
			if pos >= len(line) || line[pos] == ' ' {
				continue
			}
			stacks[s] = append(stacks[s], line[pos])
		}
	}

	var moves []day05Move
	for _, line := range solve.Lines(strings.TrimSpace(moveList)) {
		m := day05MoveRx.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		moves = append(moves, day05Move{
			count: solve.Int(m[1]),
			from:  solve.Int(m[2]),
			to:    solve.Int(m[3]),
		})
	}

	return stacks, moves
}

// day05Rearrange applies the moves and returns the top crate
// of every stack. When oneAtATime is set, crates land in
// reverse order, as the CrateMover 9000 would leave them.
func day05Rearrange(input string, oneAtATime bool) string {
	stacks, moves := day05Parse(input)

	for _, m := range moves {
		src := stacks[m.from-1]
		crates := append(
			[]byte(nil), src[len(src)-m.count:]...,
		)
		if oneAtATime {
			for i, j := 0, len(crates)-1; i < j; i, j = i+1, j-1 {
				crates[i], crates[j] = crates[j], crates[i]
			}
		}
		stacks[m.from-1] = src[:len(src)-m.count]
		stacks[m.to-1] = append(stacks[m.to-1], crates...)
	}

	var tops []byte
	for _, stack := range stacks {
		if len(stack) > 0 {
			tops = append(tops, stack[len(stack)-1])
		}
	}
	return string(tops)
}

func day05PartOne(input string) (any, error) {
	return day05Rearrange(input, true), nil
}

func day05PartTwo(input string) (any, error) {
	return day05Rearrange(input, false), nil
}
