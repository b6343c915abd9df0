package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"advent/pkg/problem"
)

// HistoricalEntry represents a single problem run in the
// historical log.
type HistoricalEntry struct {
	Timestamp     time.Time `json:"timestamp"`
	ProblemID     string    `json:"problem_id"`
	Status        string    `json:"status"`
	Duration      string    `json:"duration"`
	PartsPassed   int       `json:"parts_passed"`
	PartsTotal    int       `json:"parts_total"`
	PuzzleMissing bool      `json:"puzzle_missing"`
}

// AppendToHistory adds an entry to the historical log stored
// at historyPath. Each entry is a single JSON line.
func AppendToHistory(
	historyPath string,
	report *problem.Report,
) error {
	partsPassed := 0
	for _, pr := range report.Test {
		if pr.Passed() {
			partsPassed++
		}
	}

	entry := HistoricalEntry{
		Timestamp:     time.Now(),
		ProblemID:     report.ID(),
		Status:        reportStatus(report),
		Duration:      report.Duration().String(),
		PartsPassed:   partsPassed,
		PartsTotal:    len(report.Test),
		PuzzleMissing: report.PuzzleMissing,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf(
			"failed to marshal history entry: %w", err,
		)
	}

	file, err := os.OpenFile(
		historyPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to open history file: %w", err,
		)
	}
	defer func() { _ = file.Close() }()

	_, err = fmt.Fprintln(file, string(data))
	return err
}
