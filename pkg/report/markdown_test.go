package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent/pkg/problem"
)

func TestSaveYearSummary_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	s := BuildYearSummary(2022, []*problem.Report{
		makePassedReport(1),
		makeFailedReport(2),
	})

	require.NoError(t, SaveYearSummary(s, dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var jsonFound, mdFound bool
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".json":
			jsonFound = true
		case ".md":
			mdFound = true
		}
	}
	assert.True(t, jsonFound)
	assert.True(t, mdFound)

	latest, err := os.ReadFile(
		filepath.Join(dir, "latest_summary.md"),
	)
	require.NoError(t, err)
	assert.Contains(
		t, string(latest), "# Advent of Code 2022",
	)
}

func TestSaveYearSummary_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results", "nested")
	s := BuildYearSummary(2022, nil)

	require.NoError(t, SaveYearSummary(s, dir))

	_, err := os.Stat(dir)
	assert.NoError(t, err)
}

func TestGenerateSummaryMarkdown(t *testing.T) {
	s := BuildYearSummary(2022, []*problem.Report{
		makePassedReport(1),
		makeFailedReport(2),
		makeMissingPuzzleReport(3),
	})

	md := generateSummaryMarkdown(s)

	assert.Contains(t, md, "# Advent of Code 2022 - Summary")
	assert.Contains(t, md, "| 1 | PASSED |")
	assert.Contains(t, md, "| 2 | FAILED |")
	assert.Contains(t, md, "| 3 | NO DATA |")
	assert.Contains(t, md, "| Missing Puzzles | 1 |")
	assert.Contains(t, md, "| Pass Rate | 67% |")
}
