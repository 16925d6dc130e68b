// Package cmd defines the command-line interface for githeat.
package cmd

import (
	"github.com/calebwei/githeat/internal/contract"
	"github.com/calebwei/githeat/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(authorsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the archive subcommands to the parent archive command
	archiveCmd.AddCommand(archiveSaveCmd)
	archiveCmd.AddCommand(archiveStatusCmd)
	archiveCmd.AddCommand(archiveClearCmd)
	archiveCmd.AddCommand(archiveMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("min-commits", "m", schema.DefaultMinCommits, "Only list authors with at least this many commits")
	rootCmd.PersistentFlags().StringP("authors", "a", "", "Comma-separated author emails to include")
	rootCmd.PersistentFlags().IntP("year", "y", 0, "Year to render (0 = earliest year with commits)")
	rootCmd.PersistentFlags().String("output", string(schema.CSVOut), "Export format: csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write export output to")
	rootCmd.PersistentFlags().String("html", "", "Optional path to write an HTML heatmap to")
	rootCmd.PersistentFlags().Bool("png", false, "Save the heatmap as a PNG under the output directory")
	rootCmd.PersistentFlags().String("out-dir", ".", "Directory for saved heatmap files")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored heatmap cells in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("archive-backend", string(schema.SQLiteBackend), "Archive backend: sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("archive-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of archiveMigrateCmd to Viper
	archiveMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(archiveMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding archive migrate flags", err)
	}
}
