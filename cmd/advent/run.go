package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"advent/pkg/input"
	"advent/pkg/logging"
	"advent/pkg/problem"
	"advent/pkg/report"
	"advent/pkg/runner"
)

var (
	flagYear int
	flagDay  int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run solutions and judge them against sample answers",
	Long: `Run executes the solutions for a year, or a single day when
--day is given. Sample answers are judged; puzzle answers are
printed unjudged. The command exits non-zero when any sample
part fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		year := flagYear
		if year == 0 {
			year = cfg.DefaultYear
		}

		r := runner.NewRunner(
			runner.WithInputs(input.NewStore(cfg.DataDir)),
			runner.WithLogger(logger),
		)

		var reports []*problem.Report
		if flagDay > 0 {
			rep, err := r.RunDay(year, flagDay)
			if err != nil {
				return err
			}
			reports = append(reports, rep)
		} else {
			reports = r.RunYear(year)
			if len(reports) == 0 {
				return fmt.Errorf(
					"no problems registered for %d", year,
				)
			}
		}

		if err := render(year, reports); err != nil {
			return err
		}

		if cfg.HistoryPath != "" {
			for _, rep := range reports {
				if err := report.AppendToHistory(
					cfg.HistoryPath, rep,
				); err != nil {
					logger.Warn("failed to append history",
						logging.Field{
							Key: "error", Value: err.Error(),
						})
					break
				}
			}
		}

		if failed := countFailed(reports); failed > 0 {
			return fmt.Errorf(
				"%d of %d problems failed", failed, len(reports),
			)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(
		&flagYear, "year", 0,
		"event year to run (defaults to the configured year)",
	)
	runCmd.Flags().IntVar(
		&flagDay, "day", 0,
		"run a single day instead of the whole year",
	)
}

func render(year int, reports []*problem.Report) error {
	if flagJSON {
		jr := report.NewJSONReporter(true)
		if len(reports) == 1 {
			if err := jr.WriteReport(
				os.Stdout, reports[0],
			); err != nil {
				return err
			}
		} else {
			summary := report.BuildYearSummary(year, reports)
			if err := jr.WriteYearSummary(
				os.Stdout, summary,
			); err != nil {
				return err
			}
		}
		fmt.Println()
		return nil
	}

	console := report.NewConsoleRenderer(os.Stdout)
	for _, rep := range reports {
		console.RenderReport(rep)
		fmt.Println()
	}

	// Batch runs also get the summary table and a saved copy
	// under the results directory.
	if len(reports) > 1 {
		summary := report.BuildYearSummary(year, reports)
		console.RenderSummary(summary)

		if cfg.ResultsDir != "" {
			if err := report.SaveYearSummary(
				summary, cfg.ResultsDir,
			); err != nil {
				return err
			}
		}
	}
	return nil
}

func countFailed(reports []*problem.Report) int {
	failed := 0
	for _, rep := range reports {
		if rep.Err != "" || !rep.TestPassed() {
			failed++
		}
	}
	return failed
}
