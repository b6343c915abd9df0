package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"advent/pkg/problem"
)

// Run time thresholds, in seconds. Solutions should finish in
// under a second; anything over thirty is flagged hard.
const (
	timeSlow    = 1.0
	timeSlower  = 5.0
	timeSlowest = 30.0
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	orangeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ConsoleRenderer writes human-readable reports to a writer.
type ConsoleRenderer struct {
	w io.Writer
}

// NewConsoleRenderer creates a renderer writing to w.
func NewConsoleRenderer(w io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{w: w}
}

// RenderReport writes the full report for a single problem:
// judged test parts, then unjudged puzzle answers. The puzzle
// section is omitted entirely when no puzzle data exists; a dim
// note keeps that case distinct from an empty result.
func (c *ConsoleRenderer) RenderReport(r *problem.Report) {
	title := fmt.Sprintf("%s  %s", r.ID(), r.Name)
	fmt.Fprintln(c.w, titleStyle.Render(strings.TrimSpace(title)))

	if r.Err != "" {
		fmt.Fprintf(
			c.w, "  %s %s\n",
			failStyle.Render("[err]:"), r.Err,
		)
		return
	}

	for _, pr := range r.Test {
		c.renderPart(pr)
	}

	if r.PuzzleMissing {
		fmt.Fprintf(
			c.w, "  %s\n", dimStyle.Render("no puzzle data"),
		)
		return
	}

	for _, pr := range r.Puzzle {
		c.renderPart(pr)
	}
}

func (c *ConsoleRenderer) renderPart(pr problem.PartResult) {
	label := fmt.Sprintf("[%s %d]:", pr.Variant, pr.Part)

	if pr.Status == problem.StatusError {
		fmt.Fprintf(
			c.w, "  %s %s %s\n",
			label,
			failStyle.Render("[err]:"),
			pr.Error,
		)
		return
	}

	var status string
	switch pr.Status {
	case problem.StatusPassed:
		status = " " + okStyle.Render("[ok]")
	case problem.StatusFailed:
		status = " " + failStyle.Render(
			fmt.Sprintf("[err]: expected %s", pr.Expected),
		)
	}

	elapsed := dimStyle.Render(
		fmt.Sprintf("(%s)", formatTime(pr.Duration)),
	)

	// Multi-line answers (screen renders) go on their own
	// block below the status line.
	if strings.Contains(pr.Answer, "\n") {
		fmt.Fprintf(c.w, "  %s%s %s\n", label, status, elapsed)
		for _, line := range strings.Split(pr.Answer, "\n") {
			fmt.Fprintf(c.w, "    %s\n", line)
		}
		return
	}

	fmt.Fprintf(
		c.w, "  %s %s%s %s\n",
		label, pr.Answer, status, elapsed,
	)
}

// RenderSummary writes the batch results table for a year:
// one row per day with the puzzle answers and per-part times.
func (c *ConsoleRenderer) RenderSummary(s *YearSummary) {
	fmt.Fprintln(
		c.w,
		titleStyle.Render(fmt.Sprintf("advent{%d}", s.Year)),
	)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("day", "status", "part 1", "time 1 (s)", "part 2", "time 2 (s)")

	for _, ps := range s.Problems {
		t.Row(
			fmt.Sprintf("%d", ps.Day),
			renderStatus(ps),
			ps.PartOneAnswer,
			formatSeconds(ps.PartOneTime),
			ps.PartTwoAnswer,
			formatSeconds(ps.PartTwoTime),
		)
	}

	fmt.Fprintln(c.w, t)
	fmt.Fprintf(
		c.w, "Total time: %s\n",
		okStyle.Render(
			fmt.Sprintf("%.3f (s)", s.TotalDuration.Seconds()),
		),
	)
}

func renderStatus(ps ProblemSummary) string {
	switch ps.Status {
	case StatusPassed:
		if ps.PuzzleMissing {
			return dimStyle.Render("no data")
		}
		return okStyle.Render("ok")
	case StatusError:
		return failStyle.Render("error")
	default:
		return failStyle.Render("failed")
	}
}

// formatSeconds renders a duration as fractional seconds,
// colored when it crosses the slowness thresholds.
func formatSeconds(d time.Duration) string {
	secs := d.Seconds()
	out := fmt.Sprintf("%.4f", secs)
	switch {
	case secs >= timeSlowest:
		return failStyle.Render(out)
	case secs >= timeSlower:
		return orangeStyle.Render(out)
	case secs >= timeSlow:
		return warnStyle.Render(out)
	default:
		return out
	}
}

// formatTime renders a duration for inline part results.
func formatTime(d time.Duration) string {
	return fmt.Sprintf("%.3f s", d.Seconds())
}
