package solve

import "golang.org/x/exp/constraints"

// Pt is the common integer point.
type Pt = Pt2[int]

// Pt2 is a point on a 2D grid.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Add returns p translated by d.
func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + d.X, p.Y + d.Y}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

// Touching reports whether b is within one step of a in any
// direction, diagonals included.
func (a Pt2[T]) Touching(b Pt2[T]) bool {
	return AbsDiff(a.X, b.X) <= 1 && AbsDiff(a.Y, b.Y) <= 1
}

// Toward returns a point moving from p to b in max 1 step in
// the X and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p.X += Sign(b.X - p.X)
	p.Y += Sign(b.Y - p.Y)
	return p
}

// ForImmediateNeighbors calls f for each of the four
// orthogonal neighbors of p until f returns false.
func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

// ForNeighbors calls f for each of the eight neighbors of p
// until f returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// Direction is one of the four grid directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad direction")
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}
	return ""
}
