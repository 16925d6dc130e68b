package cmd

import (
	"github.com/calebwei/githeat/core"
	"github.com/calebwei/githeat/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd writes the day-count series in a machine-readable format.
var exportCmd = &cobra.Command{
	Use:   "export [repo-path]",
	Short: "Export daily commit counts as CSV, JSON or Parquet.",
	Long: `Collect the daily commit counts for the selected authors and write
them out for analytics tools.

Formats:
  csv     - date,count rows (default)
  json    - array of {date, count} objects
  parquet - columnar file for DuckDB, pandas, Spark

Examples:
  # CSV to stdout
  githeat export --authors alice@example.com

  # Parquet for notebook analysis
  githeat export --authors alice@example.com --output parquet --output-file commits.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot export commit data", err)
		}
	},
}
