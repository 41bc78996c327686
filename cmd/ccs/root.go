package main

import (
	"ccs/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ccs",
	Short: "ccs - Complex Code Spotter",
	Long: `ccs (Complex Code Spotter) finds overly complex code and extracts it as
reviewable snippets. It scores every function, method, and closure with
cyclomatic and cognitive complexity, flags the units above the configured
thresholds, and renders the flagged source as markdown, HTML, or JSON
reports.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("ccs version {{.Version}}\n")
}
