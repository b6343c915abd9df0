package y2022

import (
	"fmt"

	"advent/pkg/problem"
	"advent/pkg/solve"
)

func init() {
	register(problem.Problem{
		Year:            2022,
		Day:             2,
		Name:            "Rock Paper Scissors",
		PartOne:         day02PartOne,
		PartTwo:         day02PartTwo,
		ExpectedPartOne: "15",
		ExpectedPartTwo: "12",
	})
}

// Shape scores: rock 1, paper 2, scissors 3. Outcome scores:
// loss 0, draw 3, win 6.
const (
	rock     = 1
	paper    = 2
	scissors = 3

	loss = 0
	draw = 3
	win  = 6
)

func day02Shape(col string) int {
	switch col {
	case "A", "X":
		return rock
	case "B", "Y":
		return paper
	case "C", "Z":
		return scissors
	}
	panic(fmt.Sprintf("invalid shape %q", col))
}

func day02Outcome(col string) int {
	switch col {
	case "X":
		return loss
	case "Y":
		return draw
	case "Z":
		return win
	}
	panic(fmt.Sprintf("invalid outcome %q", col))
}

// day02Beats maps each shape to the shape it defeats.
var day02Beats = map[int]int{
	rock:     scissors,
	paper:    rock,
	scissors: paper,
}

func day02Play(opponent, player int) int {
	switch {
	case opponent == player:
		return draw
	case day02Beats[player] == opponent:
		return win
	}
	return loss
}

func day02PartOne(input string) (any, error) {
	total := 0
	for _, line := range solve.Lines(input) {
		first, second := solve.Cut(line, " ")
		opponent := day02Shape(first)
		player := day02Shape(second)
		total += player + day02Play(opponent, player)
	}
	return total, nil
}

func day02PartTwo(input string) (any, error) {
	total := 0
	for _, line := range solve.Lines(input) {
		first, second := solve.Cut(line, " ")
		opponent := day02Shape(first)
		result := day02Outcome(second)

		var player int
		switch result {
		case draw:
			player = opponent
		case loss:
			player = day02Beats[opponent]
		default:
			// The winning shape is whichever one the
			// opponent's shape does not beat.
			for shape, beaten := range day02Beats {
				if beaten == opponent {
					player = shape
				}
			}
		}
		total += player + result
	}
	return total, nil
}
