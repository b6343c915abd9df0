package problem

import (
	"fmt"
	"time"
)

// Variant names for the two input kinds.
const (
	VariantTest   = "test"
	VariantPuzzle = "puzzle"
)

// Status constants for part execution outcomes.
const (
	// StatusPassed means the computed answer matched the
	// expected value.
	StatusPassed = "passed"

	// StatusFailed means the computed answer did not match the
	// expected value.
	StatusFailed = "failed"

	// StatusAnswered means the part produced an answer that was
	// not judged (puzzle data, or no expected value recorded).
	StatusAnswered = "answered"

	// StatusError means the solution returned an error or
	// panicked.
	StatusError = "error"
)

// PartResult captures the outcome of running one part against
// one input variant.
type PartResult struct {
	// Part is the part number, 1 or 2.
	Part int `json:"part"`

	// Variant is VariantTest or VariantPuzzle.
	Variant string `json:"variant"`

	// Status is one of the Status* constants.
	Status string `json:"status"`

	// Answer is the computed answer, formatted as a string.
	Answer string `json:"answer"`

	// Expected is the expected answer, when one was recorded.
	Expected string `json:"expected,omitempty"`

	// Duration is the wall-clock time spent in the solution.
	Duration time.Duration `json:"duration"`

	// Error holds the failure detail for StatusError results.
	Error string `json:"error,omitempty"`
}

// Passed reports whether the part result counts as a success.
// Unjudged answers are successes; only mismatches and faults are
// not.
func (r PartResult) Passed() bool {
	return r.Status == StatusPassed || r.Status == StatusAnswered
}

// Report is the structured outcome of running one problem. It is
// built by the runner and rendered separately, so runs stay
// independently testable. A missing puzzle file is recorded on
// PuzzleMissing rather than inferred from an empty Puzzle slice;
// a report with PuzzleMissing unset and no puzzle results means
// the puzzle variant was never attempted.
type Report struct {
	// Year and Day identify the problem.
	Year int `json:"year"`
	Day  int `json:"day"`

	// Name is the puzzle title.
	Name string `json:"name"`

	// Test holds per-part results against the test input.
	Test []PartResult `json:"test"`

	// Puzzle holds per-part results against the real puzzle
	// input. Empty when the puzzle file is absent.
	Puzzle []PartResult `json:"puzzle,omitempty"`

	// PuzzleMissing is true when no puzzle input file exists
	// for this problem. Expected and silently skipped; real
	// puzzle inputs are not redistributed.
	PuzzleMissing bool `json:"puzzle_missing"`

	// Err holds a problem-level failure, e.g. missing test
	// data. When set, no part results were produced.
	Err string `json:"error,omitempty"`
}

// ID returns the canonical problem identifier.
func (r *Report) ID() string {
	return fmt.Sprintf("%d/day-%02d", r.Year, r.Day)
}

// TestPassed reports whether every test-variant part succeeded
// and the report carries no problem-level error.
func (r *Report) TestPassed() bool {
	if r.Err != "" {
		return false
	}
	for _, pr := range r.Test {
		if !pr.Passed() {
			return false
		}
	}
	return true
}

// Duration returns the total wall-clock time across all part
// results in the report.
func (r *Report) Duration() time.Duration {
	var total time.Duration
	for _, pr := range r.Test {
		total += pr.Duration
	}
	for _, pr := range r.Puzzle {
		total += pr.Duration
	}
	return total
}

// maxAnswerChars bounds answers rendered in reports and tables.
// Longer answers (e.g. multi-line screen renders) are truncated.
const maxAnswerChars = 32

// FormatAnswer converts a raw answer to its display form,
// truncating values longer than 32 characters.
func FormatAnswer(v any) string {
	s := fmt.Sprint(v)
	if len(s) > maxAnswerChars {
		return s[:maxAnswerChars-3] + "..."
	}
	return s
}
