package report

import (
	"encoding/json"
	"io"

	"advent/pkg/problem"
)

// JSONReporter generates JSON output from problem reports.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// GenerateReport creates a JSON document for a single problem
// report.
func (r *JSONReporter) GenerateReport(
	report *problem.Report,
) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// GenerateYearSummary creates a JSON document for a year
// summary.
func (r *JSONReporter) GenerateYearSummary(
	summary *YearSummary,
) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(summary, "", "  ")
	}
	return json.Marshal(summary)
}

// WriteReport writes a JSON report to the specified writer.
func (r *JSONReporter) WriteReport(
	w io.Writer,
	report *problem.Report,
) error {
	data, err := r.GenerateReport(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteYearSummary writes a JSON year summary to the specified
// writer.
func (r *JSONReporter) WriteYearSummary(
	w io.Writer,
	summary *YearSummary,
) error {
	data, err := r.GenerateYearSummary(summary)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
