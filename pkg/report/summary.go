// Package report renders problem run reports: a per-problem
// console view, a year summary table, JSON output, and a
// JSON-lines history log. The runner builds reports; this
// package only presents them.
package report

import (
	"strings"
	"time"

	"advent/pkg/problem"
)

// Problem-level status values used in summaries.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
	StatusError  = "error"

	// noData marks summary cells for problems without puzzle
	// input.
	noData = "-"
)

// YearSummary aggregates the reports of a batch run.
type YearSummary struct {
	Year            int              `json:"year"`
	GeneratedAt     time.Time        `json:"generated_at"`
	Problems        []ProblemSummary `json:"problems"`
	TotalProblems   int              `json:"total_problems"`
	PassedProblems  int              `json:"passed_problems"`
	FailedProblems  int              `json:"failed_problems"`
	MissingPuzzles  int              `json:"missing_puzzles"`
	TotalDuration   time.Duration    `json:"total_duration"`
	AveragePassRate float64          `json:"average_pass_rate"`
}

// ProblemSummary is one row of a year summary: the puzzle
// answers and timings for a single day.
type ProblemSummary struct {
	Day           int           `json:"day"`
	Name          string        `json:"name"`
	Status        string        `json:"status"`
	PartOneAnswer string        `json:"part_one_answer"`
	PartOneTime   time.Duration `json:"part_one_time"`
	PartTwoAnswer string        `json:"part_two_answer"`
	PartTwoTime   time.Duration `json:"part_two_time"`
	PuzzleMissing bool          `json:"puzzle_missing"`
	Duration      time.Duration `json:"duration"`
}

// BuildYearSummary creates a year summary from batch reports.
// Summary rows show puzzle answers when puzzle data exists; a
// problem whose puzzle file is absent keeps its row with "-"
// cells, distinct from a test failure.
func BuildYearSummary(
	year int,
	reports []*problem.Report,
) *YearSummary {
	summary := &YearSummary{
		Year:        year,
		GeneratedAt: time.Now(),
		Problems:    make([]ProblemSummary, 0, len(reports)),
	}

	for _, r := range reports {
		ps := ProblemSummary{
			Day:           r.Day,
			Name:          r.Name,
			Status:        reportStatus(r),
			PartOneAnswer: noData,
			PartTwoAnswer: noData,
			PuzzleMissing: r.PuzzleMissing,
			Duration:      r.Duration(),
		}

		for _, pr := range r.Puzzle {
			switch pr.Part {
			case 1:
				ps.PartOneAnswer = answerCell(pr)
				ps.PartOneTime = pr.Duration
			case 2:
				ps.PartTwoAnswer = answerCell(pr)
				ps.PartTwoTime = pr.Duration
			}
		}

		summary.Problems = append(summary.Problems, ps)
		summary.TotalProblems++
		summary.TotalDuration += r.Duration()

		switch ps.Status {
		case StatusPassed:
			summary.PassedProblems++
		default:
			summary.FailedProblems++
		}
		if r.PuzzleMissing {
			summary.MissingPuzzles++
		}
	}

	if summary.TotalProblems > 0 {
		summary.AveragePassRate =
			float64(summary.PassedProblems) /
				float64(summary.TotalProblems)
	}

	return summary
}

// reportStatus collapses a report into a problem-level status.
// A problem passes when its test parts all passed; missing
// puzzle data alone never fails it.
func reportStatus(r *problem.Report) string {
	if r.Err != "" {
		return StatusError
	}
	for _, pr := range r.Test {
		if pr.Status == problem.StatusError {
			return StatusError
		}
	}
	if !r.TestPassed() {
		return StatusFailed
	}
	return StatusPassed
}

func answerCell(pr problem.PartResult) string {
	if pr.Status == problem.StatusError {
		return "error"
	}
	// Large or multi-line answers (screen renders) would wreck
	// the table.
	answer := strings.ReplaceAll(pr.Answer, "\n", " ")
	return problem.FormatAnswer(answer)
}
