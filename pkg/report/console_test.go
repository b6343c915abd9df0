package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"advent/pkg/problem"
)

func TestConsoleRenderer_RenderReport_Passed(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleRenderer(&buf)

	c.RenderReport(makePassedReport(1))

	out := buf.String()
	assert.Contains(t, out, "2022/day-01")
	assert.Contains(t, out, "Calorie Counting")
	assert.Contains(t, out, "[test 1]")
	assert.Contains(t, out, "[test 2]")
	assert.Contains(t, out, "[ok]")
	assert.Contains(t, out, "[puzzle 1]")
	assert.Contains(t, out, "69501")
}

func TestConsoleRenderer_RenderReport_Failed(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleRenderer(&buf)

	c.RenderReport(makeFailedReport(2))

	out := buf.String()
	assert.Contains(t, out, "[err]: expected 45000")
	assert.Contains(t, out, "44000")
}

func TestConsoleRenderer_RenderReport_PuzzleMissing(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleRenderer(&buf)

	c.RenderReport(makeMissingPuzzleReport(3))

	out := buf.String()
	assert.Contains(t, out, "no puzzle data")
	assert.NotContains(t, out, "[puzzle")
}

func TestConsoleRenderer_RenderReport_Error(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleRenderer(&buf)

	c.RenderReport(&problem.Report{
		Year: 2022, Day: 4,
		Err: "read test input: file does not exist",
	})

	out := buf.String()
	assert.Contains(t, out, "[err]:")
	assert.Contains(t, out, "file does not exist")
	assert.NotContains(t, out, "[test")
}

func TestConsoleRenderer_RenderReport_PartError(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleRenderer(&buf)

	r := makePassedReport(5)
	r.Test[1].Status = problem.StatusError
	r.Test[1].Answer = ""
	r.Test[1].Error = "solution panicked: index out of range"
	c.RenderReport(r)

	out := buf.String()
	assert.Contains(t, out, "solution panicked")
}

func TestConsoleRenderer_MultiLineAnswer(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleRenderer(&buf)

	r := makePassedReport(10)
	r.Puzzle[1].Answer = "###..####\n#..#.#...\n###..###."
	c.RenderReport(r)

	out := buf.String()
	assert.Contains(t, out, "    ###..####\n")
	assert.Contains(t, out, "    #..#.#...\n")
}

func TestConsoleRenderer_RenderSummary(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleRenderer(&buf)

	s := BuildYearSummary(2022, []*problem.Report{
		makePassedReport(1),
		makeMissingPuzzleReport(2),
	})
	c.RenderSummary(s)

	out := buf.String()
	assert.Contains(t, out, "advent{2022}")
	assert.Contains(t, out, "day")
	assert.Contains(t, out, "69501")
	assert.Contains(t, out, "no data")
	assert.Contains(t, out, "Total time:")
}

func TestFormatSeconds_Thresholds(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"fast", 250 * time.Millisecond, "0.2500"},
		{"slow", 1200 * time.Millisecond, "1.2000"},
		{"slower", 6 * time.Second, "6.0000"},
		{"slowest", 31 * time.Second, "31.0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(
				t, formatSeconds(tt.d), tt.want,
			)
		})
	}
}
