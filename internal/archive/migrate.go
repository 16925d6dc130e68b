package archive

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/calebwei/githeat/schema"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies schema migrations for the archive tables.
// targetVersion < 0 migrates to the latest version, 0 tears the schema
// down, and a positive value migrates to that exact version.
func (s *Store) Migrate(targetVersion int) error {
	subFS, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to access embedded migrations: %w", err)
	}
	sourceDriver, err := iofs.New(subFS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	var dbDriver database.Driver
	switch s.backend {
	case schema.SQLiteBackend:
		dbDriver, err = migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	case schema.MySQLBackend:
		dbDriver, err = migratemysql.WithInstance(s.db, &migratemysql.Config{})
	case schema.PostgreSQLBackend:
		dbDriver, err = migratepostgres.WithInstance(s.db, &migratepostgres.Config{})
	default:
		return fmt.Errorf("unsupported archive backend: %s", s.backend)
	}
	if err != nil {
		return fmt.Errorf("failed to create %s migration driver: %w", s.backend, err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, string(s.backend), dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	switch {
	case targetVersion < 0:
		err = m.Up()
	case targetVersion == 0:
		err = m.Down()
	default:
		err = m.Migrate(uint(targetVersion))
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
