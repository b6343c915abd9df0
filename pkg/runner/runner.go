// Package runner drives problem execution: it loads the test
// and optional puzzle inputs for a problem, executes the part
// solutions against each available variant, judges test answers
// against their expected values, and assembles a structured
// report. It never prints; rendering belongs to pkg/report.
package runner

import (
	"errors"
	"fmt"
	"time"

	"advent/pkg/input"
	"advent/pkg/logging"
	"advent/pkg/problem"
	"advent/pkg/registry"
)

// Runner defines the interface for problem execution.
type Runner interface {
	// Run executes a single problem.
	Run(p *problem.Problem) *problem.Report

	// RunDay executes the registered problem for a year/day.
	RunDay(year, day int) (*problem.Report, error)

	// RunYear executes all registered problems for a year in
	// day order. One problem's failure does not stop the rest.
	RunYear(year int) []*problem.Report
}

// DefaultRunner is the standard Runner implementation.
type DefaultRunner struct {
	registry registry.Registry
	inputs   *input.Store
	logger   logging.Logger
}

// NewRunner creates a DefaultRunner with the supplied options.
func NewRunner(opts ...Option) *DefaultRunner {
	r := &DefaultRunner{
		registry: registry.Default,
		inputs:   input.NewStore("data"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunDay executes the registered problem for the given year and
// day.
func (r *DefaultRunner) RunDay(
	year, day int,
) (*problem.Report, error) {
	p, err := r.registry.Get(year, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	return r.Run(p), nil
}

// RunYear executes all registered problems for a year in day
// order. Problems with missing puzzle data still contribute
// their test results; a failing problem never aborts the batch.
func (r *DefaultRunner) RunYear(year int) []*problem.Report {
	problems := r.registry.Year(year)
	reports := make([]*problem.Report, 0, len(problems))
	for _, p := range problems {
		reports = append(reports, r.Run(p))
	}
	return reports
}

// Run executes one problem: both parts against the test input,
// then both parts against the puzzle input when it exists. At
// most four part executions, all independent.
func (r *DefaultRunner) Run(p *problem.Problem) *problem.Report {
	report := &problem.Report{
		Year: p.Year,
		Day:  p.Day,
		Name: p.Name,
	}

	r.logEvent("problem_started",
		logging.Field{Key: "problem", Value: p.ID()},
	)

	// Test data is checked into the repository; its absence is
	// a packaging defect and fatal for this problem.
	testInput, err := r.inputs.Test(p.Year, p.Day)
	if err != nil {
		report.Err = err.Error()
		r.logEvent("problem_error",
			logging.Field{Key: "problem", Value: p.ID()},
			logging.Field{Key: "error", Value: report.Err},
		)
		return report
	}

	for part := 1; part <= p.Parts(); part++ {
		pr := r.executePart(
			p, part, problem.VariantTest, testInput,
		)
		report.Test = append(report.Test, pr)
	}

	puzzleInput, err := r.inputs.Puzzle(p.Year, p.Day)
	switch {
	case errors.Is(err, input.ErrNoPuzzleData):
		// Expected: puzzle inputs are not redistributed.
		report.PuzzleMissing = true
		r.logEvent("puzzle_data_missing",
			logging.Field{Key: "problem", Value: p.ID()},
		)
	case err != nil:
		// The file exists but could not be read. Unlike a
		// missing file this is a real failure.
		report.Err = err.Error()
		r.logEvent("problem_error",
			logging.Field{Key: "problem", Value: p.ID()},
			logging.Field{Key: "error", Value: report.Err},
		)
	default:
		for part := 1; part <= p.Parts(); part++ {
			pr := r.executePart(
				p, part, problem.VariantPuzzle, puzzleInput,
			)
			report.Puzzle = append(report.Puzzle, pr)
		}
	}

	r.logEvent("problem_completed",
		logging.Field{Key: "problem", Value: p.ID()},
		logging.Field{Key: "passed", Value: report.TestPassed()},
		logging.Field{
			Key:   "duration",
			Value: report.Duration().Round(time.Microsecond),
		},
	)

	return report
}

// executePart runs a single part against a single input variant
// and judges the answer. Expected values apply only to the test
// variant; puzzle answers are always reported unjudged.
func (r *DefaultRunner) executePart(
	p *problem.Problem,
	part int,
	variant, in string,
) problem.PartResult {
	result := problem.PartResult{
		Part:    part,
		Variant: variant,
	}

	start := time.Now()
	answer, err := r.executeSolution(p.Part(part), in)
	result.Duration = time.Since(start)

	if err != nil {
		result.Status = problem.StatusError
		result.Error = fmt.Sprintf(
			"%s part %d (%s): %v", p.ID(), part, variant, err,
		)
		r.logEvent("part_error",
			logging.Field{Key: "problem", Value: p.ID()},
			logging.Field{Key: "part", Value: part},
			logging.Field{Key: "variant", Value: variant},
			logging.Field{Key: "error", Value: err.Error()},
		)
		return result
	}

	result.Answer = fmt.Sprint(answer)

	expected := p.Expected(part)
	if variant != problem.VariantTest || expected == "" {
		result.Status = problem.StatusAnswered
		return result
	}

	result.Expected = expected
	if fmt.Sprint(answer) == expected {
		result.Status = problem.StatusPassed
	} else {
		result.Status = problem.StatusFailed
	}
	return result
}

// executeSolution invokes a solution, converting a panic into
// an error so one faulting part cannot take down the run or
// mask the other part's results.
func (r *DefaultRunner) executeSolution(
	sol problem.Solution,
	in string,
) (answer any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("solution panicked: %v", rec)
		}
	}()
	return sol(in)
}

// logEvent emits a structured log entry if a logger is
// configured.
func (r *DefaultRunner) logEvent(
	event string,
	fields ...logging.Field,
) {
	if r.logger == nil {
		return
	}
	r.logger.Info(event, fields...)
}
