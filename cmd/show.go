package cmd

import (
	"github.com/calebwei/githeat/core"
	"github.com/calebwei/githeat/internal/contract"
	"github.com/spf13/cobra"
)

// showCmd renders one year's heatmap in a single shot.
var showCmd = &cobra.Command{
	Use:   "show [repo-path]",
	Short: "Render a commit calendar heatmap for selected authors.",
	Long: `Render a GitHub-style calendar heatmap of daily commit counts.

The grid has one row per weekday (Sunday first) and one column per week
of the chosen year. Cell intensity scales with the number of commits on
that day, capped so sparse histories still show contrast.

Examples:
  # Heatmap for one author, earliest year with commits
  githeat show --authors alice@example.com

  # Pick the year and write an HTML version alongside
  githeat show --authors alice@example.com --year 2023 --html heatmap.html

  # Save a PNG under ./heatmaps/
  githeat show --authors alice@example.com,bob@example.com --png`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteShow(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot render heatmap", err)
		}
	},
}
