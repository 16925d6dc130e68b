package archive

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebwei/githeat/schema"
)

// openTestStore opens a fresh SQLite archive under a temp dir with the
// schema migrated up.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(schema.SQLiteBackend, filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(-1))
	return store
}

func testSeries() schema.DaySeries {
	return schema.DaySeries{
		schema.NormalizeDay(time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)): 4,
		schema.NormalizeDay(time.Date(2023, 3, 16, 0, 0, 0, 0, time.UTC)): 1,
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	id, err := store.SaveSnapshot(ctx, "/repo", []string{"alice@example.com"}, testSeries())
	require.NoError(t, err)
	require.NotZero(t, id)

	loaded, err := store.LoadSnapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, testSeries(), loaded)
}

func TestStatus(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	infos, err := store.Status(ctx)
	require.NoError(t, err)
	assert.Empty(t, infos)

	_, err = store.SaveSnapshot(ctx, "/repo", []string{"alice@example.com", "bob@example.com"}, testSeries())
	require.NoError(t, err)

	infos, err = store.Status(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "/repo", infos[0].RepoPath)
	assert.Equal(t, "alice@example.com,bob@example.com", infos[0].Authors)
	assert.Equal(t, 5, infos[0].TotalCommits)
	assert.Equal(t, 2, infos[0].TotalDays)
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.SaveSnapshot(ctx, "/repo", []string{"alice@example.com"}, testSeries())
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx))

	infos, err := store.Status(ctx)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestMigrateDownAndUp(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Migrate(0), "roll the schema back down")

	_, err := store.Status(ctx)
	assert.Error(t, err, "tables are gone after rollback")

	require.NoError(t, store.Migrate(-1), "bring it back up")
	infos, err := store.Status(ctx)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestLoadSnapshotMissing(t *testing.T) {
	store := openTestStore(t)

	loaded, err := store.LoadSnapshot(context.Background(), 424242)
	require.NoError(t, err)
	assert.Empty(t, loaded, "unknown IDs read as an empty series")
}

func TestRebind(t *testing.T) {
	sqliteStore := &Store{backend: schema.SQLiteBackend}
	assert.Equal(t, "INSERT INTO t (a, b) VALUES (?, ?)",
		sqliteStore.rebind("INSERT INTO t (a, b) VALUES (?, ?)"))

	pgStore := &Store{backend: schema.PostgreSQLBackend}
	assert.Equal(t, "INSERT INTO t (a, b) VALUES ($1, $2)",
		pgStore.rebind("INSERT INTO t (a, b) VALUES (?, ?)"))
}
