package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/mvdwaeter/filetriage/pkg/config"
	"github.com/mvdwaeter/filetriage/pkg/models"
)

// validateTargetDirectory checks that the triage target exists and is a directory
func validateTargetDirectory(directory string) error {
	info, err := os.Stat(directory)
	if os.IsNotExist(err) {
		return fmt.Errorf("target directory does not exist: %s", directory)
	}
	if err != nil {
		return fmt.Errorf("failed to access target directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("target path is not a directory: %s", directory)
	}
	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags.
// Threshold flags default to -1 so an explicit 0 is distinguishable
// from "not set".
func applyFlagsToConfig(cfg *config.Config) {
	if triageFlags.SizeThreshold >= 0 {
		cfg.Triage.Thresholds.SizeDifference = triageFlags.SizeThreshold
	}
	if triageFlags.SimilarityThreshold >= 0 {
		cfg.Triage.Thresholds.SimilarityRatio = triageFlags.SimilarityThreshold
	}
	if triageFlags.SkipThreshold >= 0 {
		cfg.Triage.Thresholds.SimilaritySkip = triageFlags.SkipThreshold
	}
	if triageFlags.NameDuplicateThreshold >= 0 {
		cfg.Triage.Thresholds.NameDuplicate = triageFlags.NameDuplicateThreshold
	}
	if triageFlags.NameSkipThreshold >= 0 {
		cfg.Triage.Thresholds.NameSkip = triageFlags.NameSkipThreshold
	}

	if triageFlags.ArchiveFolder != "" {
		cfg.Triage.ArchiveFolder = triageFlags.ArchiveFolder
	}
	if triageFlags.DuplicateFolder != "" {
		cfg.Triage.DuplicateFolder = triageFlags.DuplicateFolder
	}
	if len(triageFlags.ArchiveExtensions) > 0 {
		cfg.Triage.ArchiveExtensions = triageFlags.ArchiveExtensions
	}

	if triageFlags.Output != "" {
		cfg.Output.Format = triageFlags.Output
	}
	if triageFlags.NoProgress {
		cfg.Output.Progress = false
	}
	if triageFlags.LogFile != "" {
		cfg.Logging.File = triageFlags.LogFile
		cfg.Logging.Format = triageFlags.LogFormat
	}
	if triageFlags.LogLevel != "" {
		cfg.Logging.Level = triageFlags.LogLevel
	}

	// Disable progress and summaries in quiet mode
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}
}

// createTriageOperation creates a triage operation from configuration
func createTriageOperation(cfg *config.Config, directory string) (*models.TriageOperation, error) {
	op := &models.TriageOperation{
		ID:                uuid.New().String(),
		Directory:         directory,
		ArchiveFolder:     cfg.Triage.ArchiveFolder,
		DuplicateFolder:   cfg.Triage.DuplicateFolder,
		ArchiveExtensions: cfg.Triage.ArchiveExtensions,
		Thresholds:        cfg.Thresholds(),
		DryRun:            triageFlags.DryRun,
		CreatedAt:         time.Now(),
	}

	if err := op.Validate(); err != nil {
		return nil, err
	}

	return op, nil
}
