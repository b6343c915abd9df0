package y2022

import (
	"advent/pkg/problem"
	"advent/pkg/solve"
)

func init() {
	register(problem.Problem{
		Year:            2022,
		Day:             8,
		Name:            "Treetop Tree House",
		PartOne:         day08PartOne,
		PartTwo:         day08PartTwo,
		ExpectedPartOne: "21",
		ExpectedPartTwo: "8",
	})
}

var day08Directions = []solve.Direction{
	solve.Up, solve.Right, solve.Down, solve.Left,
}

// day08Sightline walks from p in direction d and returns the
// number of trees in view and whether the edge was reached
// without meeting a tree of equal or greater height.
func day08Sightline(
	trees solve.Grid[int],
	p solve.Pt,
	d solve.Direction,
) (distance int, clear bool) {
	height := trees.At(p)
	delta := d.Delta()

	for cur := p.Add(delta); ; cur = cur.Add(delta) {
		v, ok := trees.AtOk(cur)
		if !ok {
			return distance, true
		}
		distance++
		if v >= height {
			return distance, false
		}
	}
}

func day08PartOne(input string) (any, error) {
	trees := solve.DigitGrid(input)

	visible := 0
	trees.ForEach(func(p solve.Pt, _ int) {
		for _, d := range day08Directions {
			if _, clear := day08Sightline(trees, p, d); clear {
				visible++
				return
			}
		}
	})
	return visible, nil
}

func day08PartTwo(input string) (any, error) {
	trees := solve.DigitGrid(input)

	best := 0
	trees.ForEach(func(p solve.Pt, _ int) {
		score := 1
		for _, d := range day08Directions {
			distance, _ := day08Sightline(trees, p, d)
			score *= distance
		}
		if score > best {
			best = score
		}
	})
	return best, nil
}
