package cmd

import (
	"github.com/calebwei/githeat/core"
	"github.com/calebwei/githeat/internal/contract"
	"github.com/spf13/cobra"
)

// authorsCmd lists repository authors with commit totals.
var authorsCmd = &cobra.Command{
	Use:   "authors [repo-path]",
	Short: "List commit authors above the commit threshold.",
	Long: `Scan the repository history and list its authors with commit totals.

Authors are sorted by commit count, descending. The listed index numbers
can be passed to other commands as a selection shorthand.

Examples:
  # List authors with at least 10 commits (the default)
  githeat authors

  # Include everyone with at least one commit
  githeat authors --min-commits 1

  # Scan a repository elsewhere on disk
  githeat authors ~/src/linux`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAuthors(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list authors", err)
		}
	},
}
