package solve

import "golang.org/x/exp/constraints"

// Number is a type that can be used in math helpers.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Min returns the smallest of the numbers.
func Min[T Number](nums ...T) T {
	out := nums[0]
	for _, v := range nums[1:] {
		if v < out {
			out = v
		}
	}
	return out
}

// Max returns the largest of the numbers.
func Max[T Number](nums ...T) T {
	out := nums[0]
	for _, v := range nums[1:] {
		if v > out {
			out = v
		}
	}
	return out
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T constraints.Signed](x, y T) T {
	return Abs(x - y)
}

// Sign returns -1, 0 or 1 depending on the sign of v.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}

	result := integers[0]
	for _, v := range integers[1:] {
		result = result * v / GCD(result, v)
	}
	return result
}
