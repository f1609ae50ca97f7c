package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/mvdwaeter/filetriage/pkg/models"
)

// JSONFormatter formats the run report as JSON for automation and scripting
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Begin does nothing; JSON output is emitted in one piece at the end
func (f *JSONFormatter) Begin(totalFiles int) {}

// FileDone does nothing
func (f *JSONFormatter) FileDone() {}

// jsonReport is the wire shape of the run report
type jsonReport struct {
	OperationID string            `json:"operation_id"`
	Directory   string            `json:"directory"`
	DryRun      bool              `json:"dry_run"`
	Status      string            `json:"status"`
	StartTime   time.Time         `json:"start_time"`
	Duration    string            `json:"duration"`
	DurationMs  int64             `json:"duration_ms"`
	Stats       models.Statistics `json:"stats"`
	Decisions   []models.Decision `json:"decisions"`
}

// Report writes the report as indented JSON
func (f *JSONFormatter) Report(w io.Writer, report *models.TriageReport) error {
	out := jsonReport{
		OperationID: report.OperationID,
		Directory:   report.Directory,
		DryRun:      report.DryRun,
		Status:      string(report.Status),
		StartTime:   report.StartTime,
		Duration:    report.Duration.String(),
		DurationMs:  report.Duration.Milliseconds(),
		Stats:       report.Stats,
		Decisions:   report.Decisions,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
