// Package cli provides the Cobra command structure for textkit.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textkit/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root textkit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "textkit",
		Short: "A syntax-aware text editing toolkit",
		Long: `textkit is a syntax-aware text editing toolkit written in Go.

It tokenizes source text incrementally, computes fold regions for code
blocks and multi-line comments, and drives smart editing actions such as
auto-indent, comment toggling, and bracket matching. Recorded macros can
be replayed against files, and documents can be paginated for printing.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newFoldsCommand())
	rootCmd.AddCommand(newPrintCommand())
	rootCmd.AddCommand(newPlayCommand())
	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
