package runner_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent/pkg/input"
	"advent/pkg/logging"
	"advent/pkg/problem"
	"advent/pkg/registry"
	"advent/pkg/runner"
)

// sumLines is a minimal real solution used across tests: it
// sums the integer lines of the input.
func sumLines(in string) (any, error) {
	total := 0
	for _, line := range strings.Split(in, "\n") {
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("bad line %q: %w", line, err)
		}
		total += v
	}
	return total, nil
}

// writeData writes an input file under root for the given
// variant.
func writeData(
	t *testing.T, root, variant string, year, day int, content string,
) {
	t.Helper()
	dir := filepath.Join(root, variant, fmt.Sprintf("%d", year))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, fmt.Sprintf("day-%02d.txt", day))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newRunner(t *testing.T, root string) (*runner.DefaultRunner, *registry.DefaultRegistry) {
	t.Helper()
	reg := registry.NewRegistry()
	r := runner.NewRunner(
		runner.WithRegistry(reg),
		runner.WithInputs(input.NewStore(root)),
		runner.WithLogger(logging.NullLogger{}),
	)
	return r, reg
}

func TestRun_TestPassAndFail(t *testing.T) {
	root := t.TempDir()
	writeData(t, root, "test", 2022, 1, "1\n2\n3")

	p := &problem.Problem{
		Year: 2022, Day: 1, Name: "Summing",
		PartOne:         func(in string) (any, error) { return 6, nil },
		PartTwo:         func(in string) (any, error) { return 7, nil },
		ExpectedPartOne: "6",
		ExpectedPartTwo: "8", // deliberate mismatch
	}

	r, _ := newRunner(t, root)
	report := r.Run(p)

	require.Empty(t, report.Err)
	require.Len(t, report.Test, 2)

	assert.Equal(t, problem.StatusPassed, report.Test[0].Status)
	assert.Equal(t, "6", report.Test[0].Answer)
	assert.Equal(t, "6", report.Test[0].Expected)

	assert.Equal(t, problem.StatusFailed, report.Test[1].Status)
	assert.Equal(t, "7", report.Test[1].Answer)
	assert.Equal(t, "8", report.Test[1].Expected)

	assert.True(t, report.PuzzleMissing)
	assert.Empty(t, report.Puzzle)
	assert.False(t, report.TestPassed())
}

func TestRun_PuzzlePresentIsUnjudged(t *testing.T) {
	root := t.TempDir()
	writeData(t, root, "test", 2022, 1, "1\n2")
	writeData(t, root, "puzzle", 2022, 1, "10\n20")

	p := &problem.Problem{
		Year: 2022, Day: 1,
		PartOne:         sumLines,
		PartTwo:         sumLines,
		ExpectedPartOne: "3",
		ExpectedPartTwo: "3",
	}

	r, _ := newRunner(t, root)
	report := r.Run(p)

	require.Empty(t, report.Err)
	assert.False(t, report.PuzzleMissing)
	require.Len(t, report.Puzzle, 2)

	// Puzzle answers are never judged, even though expected
	// values exist for the test variant.
	for _, pr := range report.Puzzle {
		assert.Equal(t, problem.StatusAnswered, pr.Status)
		assert.Equal(t, "30", pr.Answer)
		assert.Empty(t, pr.Expected)
	}
}

func TestRun_MissingTestDataIsFatal(t *testing.T) {
	r, _ := newRunner(t, t.TempDir())
	p := &problem.Problem{
		Year: 2022, Day: 2,
		PartOne: func(string) (any, error) { return 0, nil },
	}

	report := r.Run(p)
	assert.NotEmpty(t, report.Err)
	assert.Contains(t, report.Err, "2022/day-02")
	assert.Empty(t, report.Test)
	assert.False(t, report.TestPassed())
}

func TestRun_SolutionErrorIsLocalized(t *testing.T) {
	root := t.TempDir()
	writeData(t, root, "test", 2022, 3, "input")

	p := &problem.Problem{
		Year: 2022, Day: 3,
		PartOne: func(string) (any, error) {
			return nil, errors.New("boom")
		},
		PartTwo:         func(string) (any, error) { return 42, nil },
		ExpectedPartTwo: "42",
	}

	r, _ := newRunner(t, root)
	report := r.Run(p)

	require.Len(t, report.Test, 2)
	assert.Equal(t, problem.StatusError, report.Test[0].Status)
	assert.Contains(t, report.Test[0].Error, "2022/day-03 part 1 (test)")

	// The failing part does not mask the other part.
	assert.Equal(t, problem.StatusPassed, report.Test[1].Status)
}

func TestRun_SolutionPanicIsRecovered(t *testing.T) {
	root := t.TempDir()
	writeData(t, root, "test", 2022, 4, "input")

	p := &problem.Problem{
		Year: 2022, Day: 4,
		PartOne: func(string) (any, error) {
			panic("index out of range")
		},
	}

	r, _ := newRunner(t, root)
	report := r.Run(p)

	require.Len(t, report.Test, 1)
	assert.Equal(t, problem.StatusError, report.Test[0].Status)
	assert.Contains(t, report.Test[0].Error, "solution panicked")
	assert.Contains(t, report.Test[0].Error, "index out of range")
}

func TestRun_SinglePartProblem(t *testing.T) {
	root := t.TempDir()
	writeData(t, root, "test", 2022, 25, "1=-0-2")
	writeData(t, root, "puzzle", 2022, 25, "1=-0-2")

	p := &problem.Problem{
		Year: 2022, Day: 25,
		PartOne:         func(string) (any, error) { return "2=-1=0", nil },
		ExpectedPartOne: "2=-1=0",
	}

	r, _ := newRunner(t, root)
	report := r.Run(p)

	assert.Len(t, report.Test, 1)
	assert.Len(t, report.Puzzle, 1)
	assert.True(t, report.TestPassed())
}

func TestRun_UnjudgedTestPartWithoutExpected(t *testing.T) {
	root := t.TempDir()
	writeData(t, root, "test", 2022, 10, "noop")

	p := &problem.Problem{
		Year: 2022, Day: 10,
		PartOne:         func(string) (any, error) { return 13140, nil },
		PartTwo:         func(string) (any, error) { return "##..##..", nil },
		ExpectedPartOne: "13140",
		// No expected value for part two: a rendered image.
	}

	r, _ := newRunner(t, root)
	report := r.Run(p)

	require.Len(t, report.Test, 2)
	assert.Equal(t, problem.StatusPassed, report.Test[0].Status)
	assert.Equal(t, problem.StatusAnswered, report.Test[1].Status)
	assert.True(t, report.TestPassed())
}

func TestRun_Determinism(t *testing.T) {
	root := t.TempDir()
	writeData(t, root, "test", 2022, 1, "1\n2\n3")

	p := &problem.Problem{
		Year: 2022, Day: 1,
		PartOne:         sumLines,
		ExpectedPartOne: "6",
	}

	r, _ := newRunner(t, root)
	first := r.Run(p)
	second := r.Run(p)

	require.Len(t, first.Test, 1)
	require.Len(t, second.Test, 1)
	assert.Equal(t, first.Test[0].Status, second.Test[0].Status)
	assert.Equal(t, first.Test[0].Answer, second.Test[0].Answer)
	assert.Equal(t, first.PuzzleMissing, second.PuzzleMissing)
}

func TestRunDay_UnknownProblem(t *testing.T) {
	r, _ := newRunner(t, t.TempDir())
	_, err := r.RunDay(2022, 14)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2022/day-14")
}

func TestRunYear_SkipsOnlyMissingPuzzles(t *testing.T) {
	root := t.TempDir()
	reg := registry.NewRegistry()

	for day := 1; day <= 3; day++ {
		writeData(t, root, "test", 2022, day, "1\n2")
		require.NoError(t, reg.Register(&problem.Problem{
			Year: 2022, Day: day,
			PartOne:         sumLines,
			ExpectedPartOne: "3",
		}))
	}
	// Puzzle data exists for days 1 and 3 only.
	writeData(t, root, "puzzle", 2022, 1, "5\n5")
	writeData(t, root, "puzzle", 2022, 3, "7\n3")

	r := runner.NewRunner(
		runner.WithRegistry(reg),
		runner.WithInputs(input.NewStore(root)),
	)
	reports := r.RunYear(2022)
	require.Len(t, reports, 3)

	assert.False(t, reports[0].PuzzleMissing)
	assert.True(t, reports[1].PuzzleMissing)
	assert.False(t, reports[2].PuzzleMissing)

	// Every problem still produced test results.
	for _, report := range reports {
		assert.True(t, report.TestPassed())
	}
	assert.Equal(t, "10", reports[0].Puzzle[0].Answer)
	assert.Equal(t, "10", reports[2].Puzzle[0].Answer)
}
