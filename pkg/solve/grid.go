package solve

// Grid is a dense 2D grid indexed by Pt, row major.
type Grid[T any] [][]T

// MakeGrid allocates an x by y grid of zero values.
func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// DigitGrid parses the input into a grid of single digits.
func DigitGrid(input string) Grid[int] {
	lines := Lines(input)
	out := make(Grid[int], 0, len(lines))
	for _, line := range lines {
		out = append(out, Digits(line))
	}
	return out
}

// At returns the value at p.
func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

// Set stores v at p.
func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// AtOk returns the value at p and whether p is in bounds.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= len(g[0]) || p.Y >= len(g) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// Size returns the grid dimensions as a point.
func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Transpose returns a new grid with rows and columns swapped.
func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	for y, row := range g {
		for x, v := range row {
			out[x][y] = v
		}
	}
	return out
}

// ForEach calls f for every point of the grid in row order.
func (g Grid[T]) ForEach(f func(p Pt, v T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}
