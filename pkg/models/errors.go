package models

import (
	"fmt"
)

// ErrorKind classifies fatal triage errors
type ErrorKind string

const (
	// KindDirectorySetup indicates the destination subfolders could not be
	// created; the run aborts before any scan
	KindDirectorySetup ErrorKind = "directory_setup"
	// KindEnumeration indicates the target directory could not be listed
	// or a listed file could not be read back
	KindEnumeration ErrorKind = "enumeration"
	// KindRelocation indicates a file move failed; already-moved files
	// are not rolled back
	KindRelocation ErrorKind = "relocation"
)

// TriageError is the domain error wrapping all fatal run failures.
// The underlying cause is preserved for diagnostics.
type TriageError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *TriageError) Error() string {
	return fmt.Sprintf("triage %s error: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *TriageError) Unwrap() error {
	return e.Err
}

// NewTriageError wraps err as a fatal triage error of the given kind
func NewTriageError(kind ErrorKind, op string, err error) *TriageError {
	return &TriageError{Kind: kind, Op: op, Err: err}
}
