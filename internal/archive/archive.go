// Package archive snapshots collected day-count series into a SQL database
// on explicit user request.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"  // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib"  // PostgreSQL driver
	_ "modernc.org/sqlite"              // SQLite driver (pure Go)

	"github.com/calebwei/githeat/schema"
)

// Table names for series archiving.
const (
	snapshotsTable = "githeat_snapshots"
	dayCountsTable = "githeat_day_counts"
)

// Store handles durable snapshot storage against one of the supported
// database backends.
type Store struct {
	db      *sql.DB
	backend schema.ArchiveBackend
}

// SnapshotInfo summarizes one stored snapshot for status listings.
type SnapshotInfo struct {
	ID           int64
	CreatedAt    time.Time
	RepoPath     string
	Authors      string
	TotalCommits int
	TotalDays    int
}

// Open connects to the configured backend and verifies the connection.
// The schema itself is managed by Migrate; callers run it before first use.
func Open(backend schema.ArchiveBackend, connStr string) (*Store, error) {
	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s archive. Check that the server is running and connection parameters are valid: %w", backend, err)
	}
	return &Store{db: db, backend: backend}, nil
}

// openDB maps a backend to its driver and connection string defaults.
func openDB(backend schema.ArchiveBackend, connStr string) (*sql.DB, error) {
	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			var err error
			dbPath, err = DefaultSQLitePath()
			if err != nil {
				return nil, err
			}
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite archive at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// A single open connection avoids "database is locked" errors.
		db.SetMaxOpenConns(1)
		return db, nil

	case schema.MySQLBackend:
		// connStr: user:password@tcp(host:port)/dbname
		db, err := sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL archive: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}
		return db, nil

	case schema.PostgreSQLBackend:
		// connStr: host=localhost port=5432 user=postgres dbname=mydb
		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL archive: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported archive backend: %s. Must be sqlite, mysql, or postgresql", backend)
	}
}

// DefaultSQLitePath returns the per-user default location of the sqlite
// archive file, creating its parent directory on demand.
func DefaultSQLitePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve user cache directory: %w", err)
	}
	dir := filepath.Join(cacheDir, "githeat")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create archive directory %q: %w", dir, err)
	}
	return filepath.Join(dir, "archive.db"), nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSnapshot stores the series with its selection metadata as one
// snapshot. The whole write is transactional: either the snapshot row and
// every day row land, or nothing does.
func (s *Store) SaveSnapshot(ctx context.Context, repoPath string, emails []string, series schema.DaySeries) (int64, error) {
	// IDs are assigned by the application so the DDL stays portable across
	// all three backends.
	id := time.Now().UnixMilli()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin archive transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertSnapshot := s.rebind(fmt.Sprintf(
		"INSERT INTO %s (snapshot_id, created_at, repo_path, authors, total_commits) VALUES (?, ?, ?, ?, ?)",
		snapshotsTable))
	if _, err := tx.ExecContext(ctx, insertSnapshot,
		id, time.Now().Unix(), repoPath, strings.Join(emails, ","), series.Total()); err != nil {
		return 0, fmt.Errorf("failed to insert snapshot row: %w", err)
	}

	insertDay := s.rebind(fmt.Sprintf(
		"INSERT INTO %s (snapshot_id, day, commit_count) VALUES (?, ?, ?)",
		dayCountsTable))
	days := make([]time.Time, 0, len(series))
	for d := range series {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	for _, day := range days {
		if _, err := tx.ExecContext(ctx, insertDay, id, day.Format(schema.DayFormat), series[day]); err != nil {
			return 0, fmt.Errorf("failed to insert day row %s: %w", day.Format(schema.DayFormat), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit archive transaction: %w", err)
	}
	return id, nil
}

// LoadSnapshot reads one snapshot's day rows back into a series.
func (s *Store) LoadSnapshot(ctx context.Context, id int64) (schema.DaySeries, error) {
	query := s.rebind(fmt.Sprintf(
		"SELECT day, commit_count FROM %s WHERE snapshot_id = ?", dayCountsTable))
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot %d: %w", id, err)
	}
	defer func() { _ = rows.Close() }()

	series := make(schema.DaySeries)
	for rows.Next() {
		var dayStr string
		var count int
		if err := rows.Scan(&dayStr, &count); err != nil {
			return nil, fmt.Errorf("failed to scan day row: %w", err)
		}
		day, err := time.Parse(schema.DayFormat, dayStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt day value %q in snapshot %d: %w", dayStr, id, err)
		}
		series[schema.NormalizeDay(day)] = count
	}
	return series, rows.Err()
}

// Status lists the stored snapshots, newest first.
func (s *Store) Status(ctx context.Context) ([]SnapshotInfo, error) {
	query := fmt.Sprintf(`
		SELECT sn.snapshot_id, sn.created_at, sn.repo_path, sn.authors, sn.total_commits, COUNT(dc.day)
		FROM %s sn LEFT JOIN %s dc ON dc.snapshot_id = sn.snapshot_id
		GROUP BY sn.snapshot_id, sn.created_at, sn.repo_path, sn.authors, sn.total_commits
		ORDER BY sn.created_at DESC`, snapshotsTable, dayCountsTable)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive status: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var infos []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		var createdAt int64
		if err := rows.Scan(&info.ID, &createdAt, &info.RepoPath, &info.Authors, &info.TotalCommits, &info.TotalDays); err != nil {
			return nil, fmt.Errorf("failed to scan status row: %w", err)
		}
		info.CreatedAt = time.Unix(createdAt, 0)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Clear removes every stored snapshot.
func (s *Store) Clear(ctx context.Context) error {
	for _, table := range []string{dayCountsTable, snapshotsTable} {
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// rebind rewrites ? placeholders to $N for the PostgreSQL driver.
func (s *Store) rebind(query string) string {
	if s.backend != schema.PostgreSQLBackend {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
