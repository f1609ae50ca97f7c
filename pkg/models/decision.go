package models

// Outcome represents what the triage pass decided for a file
type Outcome string

const (
	// OutcomeArchived indicates the file was routed to the archive folder
	OutcomeArchived Outcome = "archived"
	// OutcomeDuplicate indicates the file was routed to the duplicates folder
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeKept indicates the file was left in place
	OutcomeKept Outcome = "kept"
)

// Decision records the outcome for a single file, with the reason it was taken
type Decision struct {
	Ref     FileRef `json:"file"`
	Outcome Outcome `json:"outcome"`
	Reason  string  `json:"reason"`

	// MovedTo is the destination directory for archived/duplicate outcomes.
	// In dry-run mode it names the directory the file would have moved to.
	MovedTo string `json:"moved_to,omitempty"`

	// MatchedWith names the file this one was judged a duplicate of
	MatchedWith string `json:"matched_with,omitempty"`
}
