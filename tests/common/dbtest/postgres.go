//go:build integration || e2e

package dbtest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
	postgresErr       error
)

// NewPool starts (once per process) a Postgres container and returns a pool on
// a fresh database that is dropped when the test ends.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	postgresOnce.Do(func() {
		postgresContainer, postgresErr = startPostgres()
	})
	require.NoError(t, postgresErr, "failed to start postgres container")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)
	port, err := postgresContainer.MappedPort(ctx, nat.Port("5432/tcp"))
	require.NoError(t, err)

	adminPool, err := pgxpool.New(ctx, dsn(host, port, "postgres"))
	require.NoError(t, err)
	defer adminPool.Close()

	dbName := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	pool, err := pgxpool.New(ctx, dsn(host, port, dbName))
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		cleanupPool, err := pgxpool.New(cleanupCtx, dsn(host, port, "postgres"))
		if err != nil {
			slog.Warn("failed to connect for cleanup", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()
		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	return pool
}

func startPostgres() (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{
			"/var/lib/postgresql/data": "rw,size=256m",
		},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return dsn(host, port, "postgres")
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "integration-tests"},
	}

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func dsn(host string, port nat.Port, db string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", testUser, testPassword, host, port.Port(), db)
}
