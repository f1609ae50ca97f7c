package triage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mvdwaeter/filetriage/pkg/classify"
	"github.com/mvdwaeter/filetriage/pkg/logging"
	"github.com/mvdwaeter/filetriage/pkg/models"
	"github.com/mvdwaeter/filetriage/pkg/output"
	"github.com/mvdwaeter/filetriage/pkg/storage"
)

// Engine runs the anchor-and-scan triage pass over a single directory.
// It is single-threaded; one run either completes or aborts on the first
// fatal error, with no rollback of files already moved.
type Engine struct {
	accessor   storage.Accessor
	classifier classify.Classifier
	formatter  output.Formatter
	logger     logging.Logger
	op         *models.TriageOperation

	archiveDir   string
	duplicateDir string
}

// NewEngine creates a new triage engine
func NewEngine(
	accessor storage.Accessor,
	classifier classify.Classifier,
	formatter output.Formatter,
	logger logging.Logger,
	op *models.TriageOperation,
) *Engine {
	return &Engine{
		accessor:     accessor,
		classifier:   classifier,
		formatter:    formatter,
		logger:       logger,
		op:           op,
		archiveDir:   filepath.Join(op.Directory, op.ArchiveFolder),
		duplicateDir: filepath.Join(op.Directory, op.DuplicateFolder),
	}
}

// scanOutcome is the result of one inner scan against an anchor
type scanOutcome int

const (
	// scanExhausted means the inner scan ran to the end of the working set;
	// the outer loop advances to the next slot
	scanExhausted scanOutcome = iota

	// scanPromote means a candidate was dissimilar enough that it becomes
	// the new anchor and the scan restarts from its position
	scanPromote

	// scanAnchorConsumed means the anchor itself was relocated as the
	// smaller duplicate; the rest of the inner scan is abandoned
	scanAnchorConsumed
)

// anchorState bundles the current anchor with its cached token set.
// The token set is computed once per anchor and reused across the scan.
type anchorState struct {
	index  int
	ref    *models.FileRef
	tokens classify.TokenSet
}

// Run executes the triage pass and returns the run report.
// The returned error, when non-nil, is always a *models.TriageError.
func (e *Engine) Run(ctx context.Context) (*models.TriageReport, error) {
	report := &models.TriageReport{
		OperationID: e.op.ID,
		Directory:   e.op.Directory,
		DryRun:      e.op.DryRun,
		StartTime:   time.Now(),
		Status:      models.StatusFailed,
	}

	finish := func() {
		report.EndTime = time.Now()
		report.Duration = report.EndTime.Sub(report.StartTime)
	}

	if !e.op.DryRun {
		if err := e.accessor.EnsureDir(ctx, e.archiveDir); err != nil {
			finish()
			return report, models.NewTriageError(models.KindDirectorySetup, "create "+e.archiveDir, err)
		}
		if err := e.accessor.EnsureDir(ctx, e.duplicateDir); err != nil {
			finish()
			return report, models.NewTriageError(models.KindDirectorySetup, "create "+e.duplicateDir, err)
		}
		e.logger.Info(ctx, "ensured destination folders", logging.Fields{
			"archive":    e.archiveDir,
			"duplicates": e.duplicateDir,
		})
	}

	refs, err := e.accessor.List(ctx)
	if err != nil {
		finish()
		return report, models.NewTriageError(models.KindEnumeration, "list "+e.op.Directory, err)
	}

	report.Stats.FilesScanned = len(refs)
	e.logger.Info(ctx, "files to compare", logging.Fields{"count": len(refs)})
	e.formatter.Begin(len(refs))

	// Working set: enumeration-order slots, nil marks a relocated file.
	// A nil slot is never revisited or reset.
	slots := make([]*models.FileRef, len(refs))
	for idx := range refs {
		slots[idx] = &refs[idx]
	}

	if err := e.triage(ctx, slots, report); err != nil {
		finish()
		return report, err
	}

	// Whatever still occupies a slot stays in place
	for _, ref := range slots {
		if ref == nil {
			continue
		}
		report.Record(models.Decision{
			Ref:     *ref,
			Outcome: models.OutcomeKept,
			Reason:  "no match found",
		})
		e.formatter.FileDone()
	}

	finish()
	report.Status = models.StatusSuccess
	return report, nil
}

// triage drives the outer loop of the anchor-and-scan state machine
func (e *Engine) triage(ctx context.Context, slots []*models.FileRef, report *models.TriageReport) error {
	i := 0
	for i < len(slots) {
		if slots[i] == nil {
			i++
			continue
		}
		ref := slots[i]

		if e.classifier.IsArchive(ref.Name) {
			if err := e.relocate(ctx, ref, e.archiveDir, report, models.Decision{
				Ref:     *ref,
				Outcome: models.OutcomeArchived,
				Reason:  "archive extension",
				MovedTo: e.archiveDir,
			}); err != nil {
				return err
			}
			slots[i] = nil
			e.formatter.FileDone()
			i++
			continue
		}

		e.logger.Debug(ctx, "reading anchor content", logging.Fields{"file": ref.Name})
		content, err := e.accessor.ReadText(ctx, *ref)
		if err != nil {
			return models.NewTriageError(models.KindEnumeration, "read "+ref.Name, err)
		}
		report.Stats.ContentReads++

		anchor := anchorState{index: i, ref: ref, tokens: e.classifier.TokenSet(content)}
		outcome, next, err := e.scan(ctx, slots, anchor, report)
		if err != nil {
			return err
		}

		switch outcome {
		case scanPromote:
			i = next
		default:
			// scanExhausted or scanAnchorConsumed
			i++
		}
	}
	return nil
}

// scan runs the inner comparison of the anchor against all later slots.
// On scanPromote the returned index is the position of the new anchor.
func (e *Engine) scan(ctx context.Context, slots []*models.FileRef, anchor anchorState, report *models.TriageReport) (scanOutcome, int, error) {
	for j := anchor.index + 1; j < len(slots); j++ {
		if slots[j] == nil {
			continue
		}
		cand := slots[j]

		// Archives are routed out immediately and do not consume the anchor
		if e.classifier.IsArchive(cand.Name) {
			if err := e.relocate(ctx, cand, e.archiveDir, report, models.Decision{
				Ref:     *cand,
				Outcome: models.OutcomeArchived,
				Reason:  "archive extension",
				MovedTo: e.archiveDir,
			}); err != nil {
				return scanExhausted, 0, err
			}
			slots[j] = nil
			e.formatter.FileDone()
			continue
		}

		nameSim := e.classifier.NameSimilarity(anchor.ref.Name, cand.Name)
		e.logger.Debug(ctx, "filename similarity", logging.Fields{
			"anchor":     anchor.ref.Name,
			"candidate":  cand.Name,
			"similarity": fmt.Sprintf("%.2f", nameSim),
		})

		if nameSim >= e.op.Thresholds.NameDuplicate {
			if err := e.relocate(ctx, cand, e.duplicateDir, report, models.Decision{
				Ref:         *cand,
				Outcome:     models.OutcomeDuplicate,
				Reason:      "filename near-duplicate",
				MovedTo:     e.duplicateDir,
				MatchedWith: anchor.ref.Name,
			}); err != nil {
				return scanExhausted, 0, err
			}
			slots[j] = nil
			e.formatter.FileDone()
			continue
		}

		if nameSim <= e.op.Thresholds.NameSkip {
			e.logger.Debug(ctx, "promoting candidate, filenames dissimilar", logging.Fields{
				"anchor":    anchor.ref.Name,
				"candidate": cand.Name,
			})
			return scanPromote, j, nil
		}

		// Filenames are moderately similar; sizes are re-checked at
		// comparison time so the gap reflects the files as they are now
		anchorSize, err := e.accessor.Size(ctx, *anchor.ref)
		if err != nil {
			return scanExhausted, 0, models.NewTriageError(models.KindEnumeration, "stat "+anchor.ref.Name, err)
		}
		candSize, err := e.accessor.Size(ctx, *cand)
		if err != nil {
			return scanExhausted, 0, models.NewTriageError(models.KindEnumeration, "stat "+cand.Name, err)
		}

		// Prune on size before paying for content I/O
		if relativeSizeGap(anchorSize, candSize) > e.op.Thresholds.SizeDifference {
			e.logger.Debug(ctx, "promoting candidate, size gap too large", logging.Fields{
				"anchor":    anchor.ref.Name,
				"candidate": cand.Name,
			})
			return scanPromote, j, nil
		}

		e.logger.Debug(ctx, "reading candidate content", logging.Fields{"file": cand.Name})
		content, err := e.accessor.ReadText(ctx, *cand)
		if err != nil {
			return scanExhausted, 0, models.NewTriageError(models.KindEnumeration, "read "+cand.Name, err)
		}
		report.Stats.ContentReads++

		score := e.classifier.Overlap(anchor.tokens, e.classifier.TokenSet(content))
		e.logger.Debug(ctx, "token overlap", logging.Fields{
			"anchor":    anchor.ref.Name,
			"candidate": cand.Name,
			"score":     fmt.Sprintf("%.2f", score),
		})

		if score < e.op.Thresholds.SimilaritySkip {
			e.logger.Debug(ctx, "promoting candidate, content dissimilar", logging.Fields{
				"anchor":    anchor.ref.Name,
				"candidate": cand.Name,
			})
			return scanPromote, j, nil
		}

		if score > e.op.Thresholds.SimilarityRatio {
			// Keep the larger file; a tie keeps the anchor
			if anchorSize < candSize {
				if err := e.relocate(ctx, anchor.ref, e.duplicateDir, report, models.Decision{
					Ref:         *anchor.ref,
					Outcome:     models.OutcomeDuplicate,
					Reason:      "content duplicate, smaller than match",
					MovedTo:     e.duplicateDir,
					MatchedWith: cand.Name,
				}); err != nil {
					return scanExhausted, 0, err
				}
				slots[anchor.index] = nil
				e.formatter.FileDone()
				return scanAnchorConsumed, 0, nil
			}

			if err := e.relocate(ctx, cand, e.duplicateDir, report, models.Decision{
				Ref:         *cand,
				Outcome:     models.OutcomeDuplicate,
				Reason:      "content duplicate",
				MovedTo:     e.duplicateDir,
				MatchedWith: anchor.ref.Name,
			}); err != nil {
				return scanExhausted, 0, err
			}
			slots[j] = nil
			e.formatter.FileDone()
			continue
		}

		// Middle band: neither duplicate nor skip-worthy, same anchor
	}
	return scanExhausted, 0, nil
}

// relocate moves a file (unless dry-run) and records the decision
func (e *Engine) relocate(ctx context.Context, ref *models.FileRef, destDir string, report *models.TriageReport, decision models.Decision) error {
	if !e.op.DryRun {
		if err := e.accessor.Relocate(ctx, *ref, destDir); err != nil {
			return models.NewTriageError(models.KindRelocation, fmt.Sprintf("move %s to %s", ref.Path, destDir), err)
		}
	}
	e.logger.Info(ctx, "moved file", logging.Fields{
		"file":    ref.Name,
		"dest":    destDir,
		"outcome": string(decision.Outcome),
		"dry_run": e.op.DryRun,
	})
	report.Record(decision)
	return nil
}

// relativeSizeGap returns |a-b| / max(a,b); zero when both files are empty
func relativeSizeGap(a, b int64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	larger := a
	if b > larger {
		larger = b
	}
	return float64(diff) / float64(larger)
}
