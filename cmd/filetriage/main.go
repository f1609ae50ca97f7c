package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/mvdwaeter/filetriage/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "filetriage",
		Short: "Directory triage utility for archives and near-duplicate files",
		Long: `filetriage scans a flat directory and sorts its files into three outcomes:
archive files are routed to a holding folder, near-duplicate files are routed
to a duplicates folder, and unique files are left in place. Duplicate detection
combines filename similarity, file size and token-set content overlap.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage: true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewTriageCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())

	return rootCmd.Execute()
}
