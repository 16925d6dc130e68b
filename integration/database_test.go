//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestGitheatArchiveWithMySQL tests the githeat archive against a MySQL backend.
func TestGitheatArchiveWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "githeat",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/githeat?parseTime=true&multiStatements=true", host, port.Port())

	_ = os.Setenv("GITHEAT_ARCHIVE_BACKEND", "mysql")
	_ = os.Setenv("GITHEAT_ARCHIVE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("GITHEAT_ARCHIVE_BACKEND") }()
	defer func() { _ = os.Unsetenv("GITHEAT_ARCHIVE_DB_CONNECT") }()

	require.NoError(t, runGitheatCommand(t, "archive", "migrate"))
	require.NoError(t, runGitheatCommand(t, "archive", "status"))
	require.NoError(t, runGitheatCommand(t, "archive", "clear"))
}

// TestGitheatArchiveWithPostgres tests the githeat archive against a PostgreSQL backend.
func TestGitheatArchiveWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	_ = os.Setenv("GITHEAT_ARCHIVE_BACKEND", "postgresql")
	_ = os.Setenv("GITHEAT_ARCHIVE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("GITHEAT_ARCHIVE_BACKEND") }()
	defer func() { _ = os.Unsetenv("GITHEAT_ARCHIVE_DB_CONNECT") }()

	require.NoError(t, runGitheatCommand(t, "archive", "migrate"))
	require.NoError(t, runGitheatCommand(t, "archive", "status"))
	require.NoError(t, runGitheatCommand(t, "archive", "clear"))
}
