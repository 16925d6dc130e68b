package cmd

import (
	"os"

	"github.com/calebwei/githeat/core"
	"github.com/calebwei/githeat/internal/contract"
	"github.com/spf13/cobra"
)

// viewCmd drives the interactive author-selection and year-browsing session.
var viewCmd = &cobra.Command{
	Use:   "view [repo-path]",
	Short: "Browse commit heatmaps interactively, year by year.",
	Long: `Start an interactive session: pick authors from the listed table,
then step through their commit years with single-key commands.

Commands inside the session:
  n - next year
  p - previous year
  s - save the current heatmap as PNG
  w - write the current heatmap as HTML
  q - quit

Examples:
  # Interactive browsing of the current repository
  githeat view

  # Skip the selection prompt with a preset author list
  githeat view --authors alice@example.com`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteView(rootCtx, cfg, os.Stdin, os.Stdout); err != nil {
			contract.LogFatal("Cannot run interactive view", err)
		}
	},
}
