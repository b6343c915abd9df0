package y2022

import (
	"fmt"
	"strings"

	"advent/pkg/problem"
	"advent/pkg/solve"
)

func init() {
	register(problem.Problem{
		Year:            2022,
		Day:             25,
		Name:            "Full of Hot Air",
		PartOne:         day25PartOne,
		ExpectedPartOne: "2=-1=0",
		// The puzzle has no part two.
	})
}

// SNAFU is balanced base 5: digits 2, 1, 0, - (-1), = (-2).

func day25FromSnafu(value string) int {
	total := 0
	for _, digit := range value {
		total *= 5
		switch digit {
		case '=':
			total -= 2
		case '-':
			total--
		default:
			total += solve.Digit(digit)
		}
	}
	return total
}

func day25ToSnafu(value int) string {
	var digits []byte
	for value > 0 {
		switch value % 5 {
		case 0, 1, 2:
			digits = append(digits, byte('0'+value%5))
		case 3:
			digits = append(digits, '=')
			value += 2
		case 4:
			digits = append(digits, '-')
			value++
		}
		value /= 5
	}
	if len(digits) == 0 {
		return "0"
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

func day25PartOne(input string) (any, error) {
	total := 0
	for _, line := range solve.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total += day25FromSnafu(line)
	}
	if total < 0 {
		return nil, fmt.Errorf(
			"negative fuel total %d", total,
		)
	}
	return day25ToSnafu(total), nil
}
