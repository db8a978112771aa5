// Package cli provides the Cobra command structure for tabular.
package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bjaus/tabular/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root tabular command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var (
		debug    bool
		logLevel string
	)

	rootCmd := &cobra.Command{
		Use:   "tabular",
		Short: "Render rows of cells as text, Markdown, HTML, CSV or JSON",
		Long: `tabular reads a table from stdin and renders it in one of several
textual representations.

Input is a JSON or YAML sequence of rows, each row a sequence of strings and
numbers. Every row must have the same length as the first.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := logging.ParseLevel(logLevel)
			if debug {
				level = log.DebugLevel
			}
			logging.FromContext(cmd.Context()).SetLevel(level)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newKindsCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
