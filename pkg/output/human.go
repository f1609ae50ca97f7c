package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"

	"github.com/mvdwaeter/filetriage/pkg/models"
)

// HumanFormatter formats output in human-readable format, optionally with
// a progress bar over the scan. The bar renders to stderr so stdout stays
// clean for the report.
type HumanFormatter struct {
	progress    bool
	quiet       bool
	progressOut io.Writer
	bar         *pb.ProgressBar
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter(progress, quiet bool) *HumanFormatter {
	return &HumanFormatter{progress: progress, quiet: quiet, progressOut: os.Stderr}
}

// Begin starts the progress bar when enabled
func (f *HumanFormatter) Begin(totalFiles int) {
	if f.progress && !f.quiet && totalFiles > 0 {
		f.bar = pb.New(totalFiles).SetWriter(f.progressOut).Start()
	}
}

// FileDone advances the progress bar
func (f *HumanFormatter) FileDone() {
	if f.bar != nil {
		f.bar.Increment()
	}
}

// Report writes a summary of the run. In quiet mode only nothing is
// written; errors are reported through the CLI layer, not here.
func (f *HumanFormatter) Report(w io.Writer, report *models.TriageReport) error {
	if f.bar != nil {
		f.bar.Finish()
		f.bar = nil
	}
	if f.quiet {
		return nil
	}

	fmt.Fprintf(w, "Triage of %s completed in %s\n", report.Directory, report.Duration.Round(time.Millisecond))
	if report.DryRun {
		fmt.Fprintf(w, "(dry run: no files were moved)\n")
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Files scanned:    %d\n", report.Stats.FilesScanned)
	fmt.Fprintf(w, "  Files archived:   %d\n", report.Stats.FilesArchived)
	fmt.Fprintf(w, "  Files duplicated: %d\n", report.Stats.FilesDuplicated)
	fmt.Fprintf(w, "  Files kept:       %d\n", report.Stats.FilesKept)
	fmt.Fprintf(w, "  Content reads:    %d\n", report.Stats.ContentReads)
	fmt.Fprintf(w, "  Data moved:       %s\n", formatBytes(report.Stats.BytesMoved))

	moved := filterDecisions(report.Decisions, models.OutcomeArchived, models.OutcomeDuplicate)
	if len(moved) > 0 {
		fmt.Fprintf(w, "\n")
		fmt.Fprintf(w, "Moved files:\n")
		for _, d := range moved {
			if d.MatchedWith != "" {
				fmt.Fprintf(w, "  %-10s %s -> %s (matched %s)\n", d.Outcome, d.Ref.Name, d.MovedTo, d.MatchedWith)
			} else {
				fmt.Fprintf(w, "  %-10s %s -> %s\n", d.Outcome, d.Ref.Name, d.MovedTo)
			}
		}
	}

	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

func filterDecisions(decisions []models.Decision, outcomes ...models.Outcome) []models.Decision {
	var filtered []models.Decision
	for _, d := range decisions {
		for _, o := range outcomes {
			if d.Outcome == o {
				filtered = append(filtered, d)
				break
			}
		}
	}
	return filtered
}

// formatBytes formats a byte count with a binary unit suffix
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
