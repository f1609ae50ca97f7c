package config

import (
	"strings"

	"github.com/mvdwaeter/filetriage/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Triage  TriageConfig  `yaml:"triage"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TriageConfig holds triage-related settings
type TriageConfig struct {
	// DefaultDirectory is the directory scanned when none is given on
	// the command line, resolved relative to the working directory
	DefaultDirectory string `yaml:"default_directory"`

	// ArchiveFolder is the subfolder archive files are routed to
	ArchiveFolder string `yaml:"archive_folder"`

	// DuplicateFolder is the subfolder near-duplicates are routed to
	DuplicateFolder string `yaml:"duplicate_folder"`

	// ArchiveExtensions are the name suffixes treated as archives
	ArchiveExtensions []string `yaml:"archive_extensions"`

	Thresholds ThresholdsConfig `yaml:"thresholds"`
}

// ThresholdsConfig holds the comparison cutoffs, all ratios in [0,1]
type ThresholdsConfig struct {
	SizeDifference  float64 `yaml:"size_difference"`
	SimilarityRatio float64 `yaml:"similarity_ratio"`
	SimilaritySkip  float64 `yaml:"similarity_skip"`
	NameDuplicate   float64 `yaml:"name_duplicate"`
	NameSkip        float64 `yaml:"name_skip"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show a progress bar during the scan
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
	File  string `yaml:"file"`  // Optional log file path
	// Format applies to the log file (console output is always text)
	Format string `yaml:"format"` // "json" or "text"
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Triage: TriageConfig{
			DefaultDirectory:  "Documents",
			ArchiveFolder:     "Zip",
			DuplicateFolder:   "Duplicated",
			ArchiveExtensions: []string{".zip"},
			Thresholds: ThresholdsConfig{
				SizeDifference:  models.DefaultSizeDifference,
				SimilarityRatio: models.DefaultSimilarityRatio,
				SimilaritySkip:  models.DefaultSimilaritySkip,
				NameDuplicate:   models.DefaultNameDuplicate,
				NameSkip:        models.DefaultNameSkip,
			},
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			File:   "",
			Format: "text",
		},
	}
}

// Thresholds converts the configured cutoffs to the model type
func (c *Config) Thresholds() models.Thresholds {
	return models.Thresholds{
		SizeDifference:  c.Triage.Thresholds.SizeDifference,
		SimilarityRatio: c.Triage.Thresholds.SimilarityRatio,
		SimilaritySkip:  c.Triage.Thresholds.SimilaritySkip,
		NameDuplicate:   c.Triage.Thresholds.NameDuplicate,
		NameSkip:        c.Triage.Thresholds.NameSkip,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Triage.ArchiveFolder == "" {
		return &models.ValidationError{
			Field:   "triage.archive_folder",
			Message: "must not be empty",
		}
	}

	if c.Triage.DuplicateFolder == "" {
		return &models.ValidationError{
			Field:   "triage.duplicate_folder",
			Message: "must not be empty",
		}
	}

	if c.Triage.ArchiveFolder == c.Triage.DuplicateFolder {
		return &models.ValidationError{
			Field:   "triage.archive_folder",
			Message: "archive and duplicate folders must differ",
		}
	}

	for _, ext := range c.Triage.ArchiveExtensions {
		if !strings.HasPrefix(ext, ".") {
			return &models.ValidationError{
				Field:   "triage.archive_extensions",
				Message: "extensions must start with a dot: " + ext,
			}
		}
	}

	if err := c.Thresholds().Validate(); err != nil {
		return err
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
