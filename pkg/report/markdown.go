package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SaveYearSummary saves the year summary to both JSON and
// Markdown files in the given output directory.
func SaveYearSummary(
	summary *YearSummary,
	outputDir string,
) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	ts := summary.GeneratedAt.Format("20060102_150405")

	jsonPath := filepath.Join(
		outputDir,
		fmt.Sprintf("summary_%d_%s.json", summary.Year, ts),
	)
	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf(
			"failed to marshal summary: %w", err,
		)
	}
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf(
			"failed to write JSON summary: %w", err,
		)
	}

	mdPath := filepath.Join(
		outputDir,
		fmt.Sprintf("summary_%d_%s.md", summary.Year, ts),
	)
	mdContent := generateSummaryMarkdown(summary)
	if err := os.WriteFile(
		mdPath, []byte(mdContent), 0644,
	); err != nil {
		return fmt.Errorf(
			"failed to write Markdown summary: %w", err,
		)
	}

	latestJSON := filepath.Join(outputDir, "latest_summary.json")
	latestMD := filepath.Join(outputDir, "latest_summary.md")

	_ = os.Remove(latestJSON)
	_ = os.Remove(latestMD)
	_ = os.Symlink(filepath.Base(jsonPath), latestJSON)
	_ = os.Symlink(filepath.Base(mdPath), latestMD)

	return nil
}

// generateSummaryMarkdown creates markdown from a year summary.
func generateSummaryMarkdown(summary *YearSummary) string {
	var sb strings.Builder

	sb.WriteString(
		fmt.Sprintf(
			"# Advent of Code %d - Summary\n\n",
			summary.Year,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"**Generated:** %s\n\n",
			summary.GeneratedAt.Format(time.RFC3339),
		),
	)

	sb.WriteString("## Results\n\n")
	sb.WriteString(
		"| Day | Status | Part 1 | Part 2 | Duration |\n",
	)
	sb.WriteString(
		"|-----|--------|--------|--------|----------|\n",
	)

	for _, p := range summary.Problems {
		status := strings.ToUpper(p.Status)
		if p.PuzzleMissing && p.Status == StatusPassed {
			status = "NO DATA"
		}
		sb.WriteString(
			fmt.Sprintf(
				"| %d | %s | %s | %s | %v |\n",
				p.Day, status,
				p.PartOneAnswer, p.PartTwoAnswer,
				p.Duration,
			),
		)
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(
		fmt.Sprintf(
			"| Total Problems | %d |\n",
			summary.TotalProblems,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Passed | %d |\n", summary.PassedProblems,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Failed | %d |\n", summary.FailedProblems,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Missing Puzzles | %d |\n",
			summary.MissingPuzzles,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Pass Rate | %.0f%% |\n",
			summary.AveragePassRate*100,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Total Duration | %v |\n",
			summary.TotalDuration,
		),
	)

	return sb.String()
}
