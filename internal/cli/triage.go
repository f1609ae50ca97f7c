package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvdwaeter/filetriage/pkg/classify"
	"github.com/mvdwaeter/filetriage/pkg/config"
	"github.com/mvdwaeter/filetriage/pkg/logging"
	"github.com/mvdwaeter/filetriage/pkg/output"
	"github.com/mvdwaeter/filetriage/pkg/storage"
	"github.com/mvdwaeter/filetriage/pkg/triage"
)

// TriageFlags holds triage command flags
type TriageFlags struct {
	SizeThreshold          float64
	SimilarityThreshold    float64
	SkipThreshold          float64
	NameDuplicateThreshold float64
	NameSkipThreshold      float64
	ArchiveFolder          string
	DuplicateFolder        string
	ArchiveExtensions      []string
	DryRun                 bool
	Output                 string
	NoProgress             bool
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var triageFlags TriageFlags

// NewTriageCommand creates the triage command
func NewTriageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triage [directory]",
		Short: "Sort a directory's files into archives, duplicates and keepers",
		Long: `Scan a flat directory and route every file to one of three outcomes:
archive files move to the archive folder, files judged near-identical to an
earlier file move to the duplicates folder, and unique files stay in place.
With no argument the configured default directory is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTriage,
	}

	cmd.Flags().Float64Var(&triageFlags.SizeThreshold, "size-threshold", -1, "max relative size gap before content comparison is skipped (0-1)")
	cmd.Flags().Float64Var(&triageFlags.SimilarityThreshold, "similarity-threshold", -1, "token-overlap score above which files are duplicates (0-1)")
	cmd.Flags().Float64Var(&triageFlags.SkipThreshold, "skip-threshold", -1, "token-overlap score below which comparison is abandoned (0-1)")
	cmd.Flags().Float64Var(&triageFlags.NameDuplicateThreshold, "name-duplicate-threshold", -1, "filename similarity at or above which files are duplicates (0-1)")
	cmd.Flags().Float64Var(&triageFlags.NameSkipThreshold, "name-skip-threshold", -1, "filename similarity at or below which the scan re-anchors (0-1)")
	cmd.Flags().StringVar(&triageFlags.ArchiveFolder, "archive-folder", "", "subfolder for archive files (default from config)")
	cmd.Flags().StringVar(&triageFlags.DuplicateFolder, "duplicate-folder", "", "subfolder for duplicate files (default from config)")
	cmd.Flags().StringSliceVar(&triageFlags.ArchiveExtensions, "archive-ext", []string{}, "extensions treated as archives (e.g. .zip,.tar.gz)")
	cmd.Flags().BoolVar(&triageFlags.DryRun, "dry-run", false, "report decisions without moving any file")
	cmd.Flags().StringVarP(&triageFlags.Output, "output", "o", "", "output format: human, json")
	cmd.Flags().BoolVar(&triageFlags.NoProgress, "no-progress", false, "disable the progress bar")

	// Logging flags
	cmd.Flags().StringVar(&triageFlags.LogFile, "log-file", "", "also write logs to file")
	cmd.Flags().StringVar(&triageFlags.LogFormat, "log-format", "text", "log file format: text, json")
	cmd.Flags().StringVar(&triageFlags.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}

func runTriage(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	applyFlagsToConfig(cfg)

	// Resolve and validate the target directory
	directory := cfg.Triage.DefaultDirectory
	if len(args) == 1 {
		directory = args[0]
	}
	if err := validateTargetDirectory(directory); err != nil {
		return err
	}

	// Create triage operation
	op, err := createTriageOperation(cfg, directory)
	if err != nil {
		return fmt.Errorf("failed to create triage operation: %w", err)
	}

	// Create storage accessor
	accessor, err := storage.NewLocal(directory)
	if err != nil {
		return fmt.Errorf("failed to open target directory: %w", err)
	}
	defer accessor.Close()

	// Create output formatter
	var formatter output.Formatter
	switch cfg.Output.Format {
	case "json":
		formatter = output.NewJSONFormatter()
	default:
		formatter = output.NewHumanFormatter(cfg.Output.Progress, cfg.Output.Quiet)
	}

	// Create logger
	logger, err := createLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	// Run the triage pass
	classifier := classify.NewStandard(cfg.Triage.ArchiveExtensions)
	engine := triage.NewEngine(accessor, classifier, formatter, logger, op)
	report, err := engine.Run(ctx)
	if err != nil {
		return fmt.Errorf("triage failed: %w", err)
	}

	if err := formatter.Report(os.Stdout, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// createLogger assembles the console logger plus an optional log file
func createLogger(cfg *config.Config) (logging.Logger, error) {
	level := logging.ParseLevel(cfg.Logging.Level)
	if globalFlags.Verbose {
		level = logging.DebugLevel
	}
	if globalFlags.Quiet {
		level = logging.ErrorLevel
	}

	console := logging.NewConsoleLogger(level)
	if cfg.Logging.File == "" {
		return console, nil
	}

	var format logging.Format
	switch cfg.Logging.Format {
	case "json":
		format = logging.FormatJSON
	default:
		format = logging.FormatText
	}

	file, err := logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       cfg.Logging.File,
		Format:     format,
		Level:      level,
		MaxSize:    10 * 1024 * 1024, // 10 MB
		MaxBackups: 5,
	})
	if err != nil {
		return nil, err
	}

	return logging.NewMultiLogger(console, file), nil
}
