package y2022

import (
	"strings"

	"advent/pkg/problem"
	"advent/pkg/solve"
)

func init() {
	register(problem.Problem{
		Year:            2022,
		Day:             7,
		Name:            "No Space Left On Device",
		PartOne:         day07PartOne,
		PartTwo:         day07PartTwo,
		ExpectedPartOne: "95437",
		ExpectedPartTwo: "24933642",
	})
}

// day07DirSizes replays the terminal session and returns the
// total size of every directory, subdirectories included. A
// stack of partial sizes tracks the current path; popping a
// directory folds its total into the parent.
func day07DirSizes(input string) []int {
	var (
		stack solve.Stack[int]
		sizes []int
	)

	pop := func() {
		size, _ := stack.Pop()
		sizes = append(sizes, size)
		if parent, ok := stack.Pop(); ok {
			stack.Push(parent + size)
		}
	}

	for _, line := range solve.Lines(input) {
		switch {
		case line == "$ cd ..":
			pop()
		case strings.HasPrefix(line, "$ cd "):
			stack.Push(0)
		case line == "$ ls", strings.HasPrefix(line, "dir "):
			// Directory listings contribute nothing until
			// the directory itself is entered.
		default:
			sizeStr, _ := solve.Cut(line, " ")
			size, _ := stack.Pop()
			stack.Push(size + solve.Int(sizeStr))
		}
	}

	// Unwind back to the root so every directory on the final
	// path gets counted.
	for stack.Len() > 0 {
		pop()
	}

	return sizes
}

func day07PartOne(input string) (any, error) {
	total := 0
	for _, size := range day07DirSizes(input) {
		if size <= 100_000 {
			total += size
		}
	}
	return total, nil
}

func day07PartTwo(input string) (any, error) {
	sizes := day07DirSizes(input)

	// The root is the last directory popped.
	used := sizes[len(sizes)-1]
	const (
		disk     = 70_000_000
		required = 30_000_000
	)
	needed := required - (disk - used)

	best := used
	for _, size := range sizes {
		if size >= needed && size < best {
			best = size
		}
	}
	return best, nil
}
