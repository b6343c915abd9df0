package y2022

import (
	"sort"
	"strings"

	"advent/pkg/problem"
	"advent/pkg/solve"
)

func init() {
	register(problem.Problem{
		Year:            2022,
		Day:             11,
		Name:            "Monkey in the Middle",
		PartOne:         day11PartOne,
		PartTwo:         day11PartTwo,
		ExpectedPartOne: "10605",
		ExpectedPartTwo: "2713310158",
	})
}

type day11Monkey struct {
	items   []int
	op      func(int) int
	divisor int
	ifTrue  int
	ifFalse int
	count   int
}

// day11Parse reads one monkey per block:
//
//	Monkey 0:
//	  Starting items: 79, 98
//	  Operation: new = old * 19
//	  Test: divisible by 23
//	    If true: throw to monkey 2
//	    If false: throw to monkey 3
func day11Parse(input string) []*day11Monkey {
	blocks := solve.Blocks(input)
	monkeys := make([]*day11Monkey, 0, len(blocks))

	for _, block := range blocks {
		lines := solve.Lines(block)
		m := &day11Monkey{}

		_, itemList := solve.Cut(lines[1], "items: ")
		for _, item := range strings.Split(itemList, ", ") {
			m.items = append(m.items, solve.Int(item))
		}

		_, opStr := solve.Cut(lines[2], "new = old ")
		operator, operand := solve.Cut(opStr, " ")
		switch {
		case operand == "old":
			m.op = func(old int) int { return old * old }
		case operator == "*":
			value := solve.Int(operand)
			m.op = func(old int) int { return old * value }
		default:
			value := solve.Int(operand)
			m.op = func(old int) int { return old + value }
		}

		_, divStr := solve.Cut(lines[3], "divisible by ")
		m.divisor = solve.Int(divStr)

		_, trueStr := solve.Cut(lines[4], "throw to monkey ")
		m.ifTrue = solve.Int(trueStr)

		_, falseStr := solve.Cut(lines[5], "throw to monkey ")
		m.ifFalse = solve.Int(falseStr)

		monkeys = append(monkeys, m)
	}

	return monkeys
}

// day11Play runs the given number of rounds and returns the
// product of the two highest inspection counts. The manage
// function bounds worry levels after each inspection.
func day11Play(
	monkeys []*day11Monkey,
	rounds int,
	manage func(int) int,
) int {
	for round := 0; round < rounds; round++ {
		for _, m := range monkeys {
			for _, item := range m.items {
				m.count++
				item = manage(m.op(item))

				target := m.ifFalse
				if item%m.divisor == 0 {
					target = m.ifTrue
				}
				monkeys[target].items = append(
					monkeys[target].items, item,
				)
			}
			m.items = m.items[:0]
		}
	}

	counts := make([]int, 0, len(monkeys))
	for _, m := range monkeys {
		counts = append(counts, m.count)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	return counts[0] * counts[1]
}

func day11PartOne(input string) (any, error) {
	monkeys := day11Parse(input)
	return day11Play(monkeys, 20, func(worry int) int {
		return worry / 3
	}), nil
}

func day11PartTwo(input string) (any, error) {
	monkeys := day11Parse(input)

	// Worry levels stay manageable modulo the product of the
	// divisibility tests.
	factor := 1
	for _, m := range monkeys {
		factor *= m.divisor
	}

	return day11Play(monkeys, 10_000, func(worry int) int {
		return worry % factor
	}), nil
}
