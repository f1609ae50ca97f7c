package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvdwaeter/filetriage/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or modify filetriage configuration.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fmt.Printf("Default Directory: %s\n", cfg.Triage.DefaultDirectory)
			fmt.Printf("Archive Folder: %s\n", cfg.Triage.ArchiveFolder)
			fmt.Printf("Duplicate Folder: %s\n", cfg.Triage.DuplicateFolder)
			fmt.Printf("Archive Extensions: %s\n", strings.Join(cfg.Triage.ArchiveExtensions, ", "))
			fmt.Printf("Size Difference Threshold: %.2f\n", cfg.Triage.Thresholds.SizeDifference)
			fmt.Printf("Similarity Ratio Threshold: %.2f\n", cfg.Triage.Thresholds.SimilarityRatio)
			fmt.Printf("Similarity Skip Threshold: %.2f\n", cfg.Triage.Thresholds.SimilaritySkip)
			fmt.Printf("Name Duplicate Threshold: %.2f\n", cfg.Triage.Thresholds.NameDuplicate)
			fmt.Printf("Name Skip Threshold: %.2f\n", cfg.Triage.Thresholds.NameSkip)
			fmt.Printf("Output Format: %s\n", cfg.Output.Format)
			fmt.Printf("Log Level: %s\n", cfg.Logging.Level)

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			cfg := config.Default()
			if err := config.SaveToFile(cfg, path); err != nil {
				return err
			}

			fmt.Printf("Configuration file created at: %s\n", path)
			return nil
		},
	}
}
