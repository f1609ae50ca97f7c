package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mvdwaeter/filetriage/pkg/models"
)

// TestDefault tests that the default configuration is valid
func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() configuration is invalid: %v", err)
	}
	if cfg.Triage.ArchiveFolder != "Zip" {
		t.Errorf("ArchiveFolder = %s, want Zip", cfg.Triage.ArchiveFolder)
	}
	if cfg.Triage.DuplicateFolder != "Duplicated" {
		t.Errorf("DuplicateFolder = %s, want Duplicated", cfg.Triage.DuplicateFolder)
	}
	if cfg.Triage.Thresholds.SimilarityRatio != models.DefaultSimilarityRatio {
		t.Errorf("SimilarityRatio = %v, want %v", cfg.Triage.Thresholds.SimilarityRatio, models.DefaultSimilarityRatio)
	}
}

// TestValidate tests configuration validation rules
func TestValidate(t *testing.T) {
	t.Run("EmptyArchiveFolder", func(t *testing.T) {
		cfg := Default()
		cfg.Triage.ArchiveFolder = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject empty archive folder")
		}
	})

	t.Run("SameFolders", func(t *testing.T) {
		cfg := Default()
		cfg.Triage.DuplicateFolder = cfg.Triage.ArchiveFolder
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject identical folders")
		}
	})

	t.Run("ExtensionWithoutDot", func(t *testing.T) {
		cfg := Default()
		cfg.Triage.ArchiveExtensions = []string{"zip"}
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject extensions without leading dot")
		}
	})

	t.Run("ThresholdOutOfRange", func(t *testing.T) {
		cfg := Default()
		cfg.Triage.Thresholds.SimilarityRatio = 1.5
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject thresholds above 1")
		}
	})

	t.Run("SkipAboveRatio", func(t *testing.T) {
		cfg := Default()
		cfg.Triage.Thresholds.SimilaritySkip = 0.9
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject skip threshold above ratio threshold")
		}
	})

	t.Run("BadOutputFormat", func(t *testing.T) {
		cfg := Default()
		cfg.Output.Format = "xml"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject unknown output format")
		}
	})

	t.Run("BadLogLevel", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Level = "trace"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject unknown log level")
		}
	})
}

// TestSaveAndLoad tests YAML round-tripping through a file
func TestSaveAndLoad(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "filetriage-config-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "conf", "config.yaml")

	cfg := Default()
	cfg.Triage.Thresholds.SizeDifference = 0.25
	cfg.Triage.ArchiveExtensions = []string{".zip", ".tar.gz"}
	cfg.Logging.Level = "debug"

	if err := SaveToFile(cfg, path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if loaded.Triage.Thresholds.SizeDifference != 0.25 {
		t.Errorf("SizeDifference = %v, want 0.25", loaded.Triage.Thresholds.SizeDifference)
	}
	if len(loaded.Triage.ArchiveExtensions) != 2 {
		t.Errorf("ArchiveExtensions = %v, want two entries", loaded.Triage.ArchiveExtensions)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s, want debug", loaded.Logging.Level)
	}
}

// TestLoadFromFileInvalid tests that invalid files are rejected
func TestLoadFromFileInvalid(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		if _, err := LoadFromFile("/nonexistent/config.yaml"); err == nil {
			t.Error("LoadFromFile() should fail for missing file")
		}
	})

	t.Run("BadYAML", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "filetriage-config-test-*")
		if err != nil {
			t.Fatalf("failed to create temp dir: %v", err)
		}
		defer os.RemoveAll(tempDir)

		path := filepath.Join(tempDir, "config.yaml")
		if err := os.WriteFile(path, []byte("triage: ["), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		if _, err := LoadFromFile(path); err == nil {
			t.Error("LoadFromFile() should fail for malformed YAML")
		}
	})

	t.Run("InvalidValues", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "filetriage-config-test-*")
		if err != nil {
			t.Fatalf("failed to create temp dir: %v", err)
		}
		defer os.RemoveAll(tempDir)

		path := filepath.Join(tempDir, "config.yaml")
		content := "triage:\n  thresholds:\n    similarity_ratio: 2.0\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		if _, err := LoadFromFile(path); err == nil {
			t.Error("LoadFromFile() should fail validation for out-of-range threshold")
		}
	})
}

// TestThresholdsConversion tests the config to model conversion
func TestThresholdsConversion(t *testing.T) {
	cfg := Default()
	th := cfg.Thresholds()

	if th.SizeDifference != cfg.Triage.Thresholds.SizeDifference {
		t.Error("Thresholds() did not carry SizeDifference over")
	}
	if err := th.Validate(); err != nil {
		t.Errorf("default thresholds invalid: %v", err)
	}
}
