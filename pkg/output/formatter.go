package output

import (
	"io"

	"github.com/mvdwaeter/filetriage/pkg/models"
)

// Formatter defines the interface for presenting a triage run.
// Implementations include human-readable and JSON formatters.
type Formatter interface {
	// Begin is called once the working set size is known
	Begin(totalFiles int)

	// FileDone is called each time a file's outcome becomes final
	FileDone()

	// Report writes the final run report
	Report(w io.Writer, report *models.TriageReport) error

	// Name returns the formatter name
	Name() string
}
