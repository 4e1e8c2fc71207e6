// Package commands wires the dramarec CLI: a long-running API server
// (serve) and one-shot catalog commands (query, stats).
package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hallyulab/dramarec/internal/version"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "dramarec",
	Short: "K-drama recommendation engine",
	Long: `dramarec recommends K-drama titles from a CSV catalog using TF-IDF
similarity over synopsis, genre and cast. It answers free-text queries,
finds shows similar to a given title, and lists shows by year or genre.`,
	Version:      fmt.Sprintf("%s (commit %s, built %s)", version.Version, version.Commit, version.Date),
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
