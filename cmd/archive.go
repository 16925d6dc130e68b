package cmd

import (
	"fmt"

	"github.com/calebwei/githeat/core"
	"github.com/calebwei/githeat/internal/archive"
	"github.com/calebwei/githeat/internal/contract"
	"github.com/calebwei/githeat/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// archiveSetup loads minimal configuration needed for archive operations.
// This is used by commands that need archive access without full shared setup.
func archiveSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.ArchiveBackend(viper.GetString("archive-backend"))
	connStr := viper.GetString("archive-db-connect")

	if _, ok := schema.ValidArchiveBackends[backend]; !ok {
		return fmt.Errorf("invalid archive backend: %s. Must be sqlite, mysql, or postgresql", backend)
	}
	if backend != schema.SQLiteBackend && connStr == "" {
		return fmt.Errorf("archive backend %s requires --archive-db-connect", backend)
	}

	cfg.ArchiveBackend = backend
	cfg.ArchiveDBConnect = connStr

	return nil
}

// archiveSetupWrapper wraps archiveSetup to provide PreRunE for archive commands.
func archiveSetupWrapper(_ *cobra.Command, _ []string) error {
	return archiveSetup()
}

// openArchiveStore opens the configured backend and brings its schema up to
// the latest version.
func openArchiveStore() (*archive.Store, error) {
	store, err := archive.Open(cfg.ArchiveBackend, cfg.ArchiveDBConnect)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(-1); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// archiveCmd focused on snapshot data management.
//
// Note: Most archive subcommands use minimal initialization (archiveSetup)
// instead of the full sharedSetup. This avoids Git repo validation for
// operations that only touch the database.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage stored commit-calendar snapshots",
	Long: `Manage durable snapshots of collected commit data.

Each snapshot stores the selected authors and their per-day commit counts,
so past collections can be compared or re-rendered without re-reading Git
history.

Supported backends: SQLite (default), MySQL, PostgreSQL

Subcommands:
  save    - Collect and store a snapshot for selected authors
  status  - List stored snapshots
  clear   - Remove all stored snapshots
  migrate - Run database schema migrations

Examples:
  # Snapshot one author's history into the default SQLite archive
  githeat archive save --authors alice@example.com

  # Inspect what has been stored
  githeat archive status`,
}

// archiveSaveCmd collects a series and stores it as a snapshot.
var archiveSaveCmd = &cobra.Command{
	Use:   "save [repo-path]",
	Short: "Collect commit data for selected authors and store a snapshot",
	Long: `Collect the daily commit counts for the selected authors and write
them to the archive in a single transaction.

Requires: --authors parameter

Examples:
  # Default SQLite archive
  githeat archive save --authors alice@example.com

  # Shared PostgreSQL archive
  githeat archive save --authors alice@example.com \
    --archive-backend postgresql \
    --archive-db-connect "host=db port=5432 user=githeat dbname=archive"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if len(cfg.Authors) == 0 {
			contract.LogFatal("Cannot save snapshot", schema.ErrEmptySelection)
		}
		client := contract.NewLocalGitClient()
		series, err := core.CollectDayCounts(rootCtx, client, cfg.RepoPath, cfg.Authors)
		if err != nil {
			contract.LogFatal("Cannot collect commit data", err)
		}
		if len(series) == 0 {
			contract.LogFatal("Cannot save snapshot", schema.ErrNoMatchingCommits)
		}

		store, err := openArchiveStore()
		if err != nil {
			contract.LogFatal("Cannot open archive", err)
		}
		defer func() { _ = store.Close() }()

		id, err := store.SaveSnapshot(rootCtx, cfg.RepoPath, cfg.Authors, series)
		if err != nil {
			contract.LogFatal("Cannot save snapshot", err)
		}
		fmt.Printf("💾 Saved snapshot %d (%d commits across %d days)\n", id, series.Total(), len(series))
	},
}

// archiveStatusCmd lists stored snapshots.
var archiveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List stored snapshots with author and commit totals",
	Long: `Show every stored snapshot, newest first.

Displays:
- Snapshot ID and creation time
- Repository path and selected authors
- Total commits and distinct days covered

Examples:
  # List snapshots in the default SQLite archive
  githeat archive status`,
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openArchiveStore()
		if err != nil {
			contract.LogFatal("Cannot open archive", err)
		}
		defer func() { _ = store.Close() }()

		infos, err := store.Status(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot read archive status", err)
		}
		if len(infos) == 0 {
			fmt.Println("No snapshots stored.")
			return
		}
		for _, info := range infos {
			fmt.Printf("%d  %s  %s  authors=%s  commits=%d  days=%d\n",
				info.ID, info.CreatedAt.Format("2006-01-02 15:04:05"),
				info.RepoPath, info.Authors, info.TotalCommits, info.TotalDays)
		}
	},
}

// archiveClearCmd clears the stored snapshots.
var archiveClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored snapshots",
	Long: `Delete every stored snapshot and its day rows.

WARNING: This action cannot be undone.

Examples:
  githeat archive clear`,
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openArchiveStore()
		if err != nil {
			contract.LogFatal("Cannot open archive", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.Clear(rootCtx); err != nil {
			contract.LogFatal("Cannot clear archive", err)
		}
		fmt.Println("Archive cleared successfully.")
	},
}

// archiveMigrateCmd runs schema migrations without touching snapshot data.
var archiveMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run archive database schema migrations",
	Long: `Apply schema migrations to the archive database.

The target version controls direction:
  -1  migrate up to the latest version (default)
   0  roll everything back
   N  migrate to exactly version N

Examples:
  # Bring the schema up to date
  githeat archive migrate

  # Tear the schema down
  githeat archive migrate --target-version 0`,
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := archive.Open(cfg.ArchiveBackend, cfg.ArchiveDBConnect)
		if err != nil {
			contract.LogFatal("Cannot open archive", err)
		}
		defer func() { _ = store.Close() }()

		targetVersion := viper.GetInt("target-version")
		if err := store.Migrate(targetVersion); err != nil {
			contract.LogFatal("Cannot run archive migration", err)
		}
		if targetVersion < 0 {
			fmt.Println("Archive schema migrated to latest version.")
		} else {
			fmt.Printf("Archive schema migrated to version %d.\n", targetVersion)
		}
	},
}
