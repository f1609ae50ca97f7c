package models

import (
	"time"
)

// Default threshold values, matching the tool's historical behavior
const (
	DefaultSizeDifference  = 0.5
	DefaultSimilarityRatio = 0.85
	DefaultSimilaritySkip  = 0.3
	DefaultNameDuplicate   = 0.7
	DefaultNameSkip        = 0.3
)

// Thresholds holds the tunable cutoffs of the triage algorithm.
// All values are ratios in [0,1]; immutable after construction.
type Thresholds struct {
	// SizeDifference is the maximum relative size gap between two files
	// before content comparison is skipped entirely
	SizeDifference float64

	// SimilarityRatio is the token-overlap score above which two files
	// are declared duplicates
	SimilarityRatio float64

	// SimilaritySkip is the token-overlap score below which comparison
	// against the current anchor is abandoned
	SimilaritySkip float64

	// NameDuplicate is the filename-similarity score at or above which
	// a file is treated as a duplicate without reading content
	NameDuplicate float64

	// NameSkip is the filename-similarity score at or below which the
	// candidate is promoted to be the new anchor
	NameSkip float64
}

// DefaultThresholds returns the default threshold set
func DefaultThresholds() Thresholds {
	return Thresholds{
		SizeDifference:  DefaultSizeDifference,
		SimilarityRatio: DefaultSimilarityRatio,
		SimilaritySkip:  DefaultSimilaritySkip,
		NameDuplicate:   DefaultNameDuplicate,
		NameSkip:        DefaultNameSkip,
	}
}

// Validate checks that the thresholds are internally consistent
func (t Thresholds) Validate() error {
	ratios := map[string]float64{
		"size_difference":  t.SizeDifference,
		"similarity_ratio": t.SimilarityRatio,
		"similarity_skip":  t.SimilaritySkip,
		"name_duplicate":   t.NameDuplicate,
		"name_skip":        t.NameSkip,
	}
	for field, v := range ratios {
		if v < 0 || v > 1 {
			return &ValidationError{Field: field, Message: "must be between 0 and 1"}
		}
	}
	if t.SimilaritySkip >= t.SimilarityRatio {
		return &ValidationError{Field: "similarity_skip", Message: "must be below similarity_ratio"}
	}
	if t.NameSkip >= t.NameDuplicate {
		return &ValidationError{Field: "name_skip", Message: "must be below name_duplicate"}
	}
	return nil
}

// TriageOperation represents a single triage run configuration
type TriageOperation struct {
	ID                string
	Directory         string
	ArchiveFolder     string
	DuplicateFolder   string
	ArchiveExtensions []string
	Thresholds        Thresholds
	DryRun            bool
	CreatedAt         time.Time
}

// Validate checks if the operation configuration is valid
func (op *TriageOperation) Validate() error {
	if op.Directory == "" {
		return &ValidationError{Field: "Directory", Message: "target directory is required"}
	}
	if op.ArchiveFolder == "" {
		return &ValidationError{Field: "ArchiveFolder", Message: "archive folder name is required"}
	}
	if op.DuplicateFolder == "" {
		return &ValidationError{Field: "DuplicateFolder", Message: "duplicate folder name is required"}
	}
	if op.ArchiveFolder == op.DuplicateFolder {
		return &ValidationError{Field: "ArchiveFolder", Message: "archive and duplicate folders must differ"}
	}
	return op.Thresholds.Validate()
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
