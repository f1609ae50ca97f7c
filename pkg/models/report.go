package models

import (
	"time"
)

// TriageReport represents the results of a triage run
type TriageReport struct {
	// Operation details
	OperationID string `json:"operation_id"`
	Directory   string `json:"directory"`
	DryRun      bool   `json:"dry_run"`

	// Timing
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration_ns"`

	// Per-file decisions in the order they were taken
	Decisions []Decision `json:"decisions"`

	// Statistics
	Stats Statistics `json:"stats"`

	// Overall status
	Status TriageStatus `json:"status"`
}

// Statistics holds triage run metrics
type Statistics struct {
	// FilesScanned is the number of files in the initial listing
	FilesScanned int `json:"files_scanned"`

	FilesArchived   int `json:"files_archived"`
	FilesDuplicated int `json:"files_duplicated"`
	FilesKept       int `json:"files_kept"`

	// ContentReads counts how many times a file's content was read for
	// token comparison; cheap-signal pruning keeps this low
	ContentReads int `json:"content_reads"`

	// BytesMoved is the total size of relocated files
	BytesMoved int64 `json:"bytes_moved"`
}

// TriageStatus represents the overall result
type TriageStatus string

const (
	// StatusSuccess indicates the run completed
	StatusSuccess TriageStatus = "success"
	// StatusFailed indicates the run aborted on a fatal error
	StatusFailed TriageStatus = "failed"
)

// ExitCode returns the process exit code for a status
func (s TriageStatus) ExitCode() int {
	if s == StatusSuccess {
		return 0
	}
	return 1
}

// Record appends a decision and updates the statistics
func (r *TriageReport) Record(d Decision) {
	r.Decisions = append(r.Decisions, d)
	switch d.Outcome {
	case OutcomeArchived:
		r.Stats.FilesArchived++
		r.Stats.BytesMoved += d.Ref.Size
	case OutcomeDuplicate:
		r.Stats.FilesDuplicated++
		r.Stats.BytesMoved += d.Ref.Size
	case OutcomeKept:
		r.Stats.FilesKept++
	}
}
