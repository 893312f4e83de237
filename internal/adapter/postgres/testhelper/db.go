// Package testhelper runs repository tests against a real PostgreSQL.
package testhelper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/wordflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordflow-backend/internal/config"
)

const (
	pgImage    = "postgres:17-alpine"
	pgDatabase = "wordflow_it"
	pgRole     = "wordflow_it"
	pgSecret   = "wordflow_it"
)

// One container serves the whole test binary.
var shared struct {
	once sync.Once
	dsn  string
	err  error
}

// SetupTestDB returns a pool on a migrated database. The first call starts
// the container and applies the schema through the same path the server
// uses on startup. Skipped under -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("postgres integration test; needs docker")
	}

	shared.once.Do(func() {
		shared.dsn, shared.err = provision()
	})
	if shared.err != nil {
		t.Fatalf("provision postgres: %v", shared.err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dbConfig(shared.dsn))
	if err != nil {
		t.Fatalf("connect to %s: %v", pgDatabase, err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func dbConfig(dsn string) config.DatabaseConfig {
	return config.DatabaseConfig{
		DSN:             dsn,
		MaxConns:        8,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
	}
}

func provision() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn, err := startPostgres(ctx)
	if err != nil {
		return "", err
	}

	pool, err := postgres.NewPool(ctx, dbConfig(dsn))
	if err != nil {
		return "", err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		return "", fmt.Errorf("migrate %s: %w", pgDatabase, err)
	}
	return dsn, nil
}

// startPostgres launches the container and returns its DSN. The container
// is reaped by testcontainers when the process exits.
func startPostgres(ctx context.Context) (string, error) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_DB":       pgDatabase,
				"POSTGRES_USER":     pgRole,
				"POSTGRES_PASSWORD": pgSecret,
			},
			// The server logs readiness once for the init run and once for real.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("run %s: %w", pgImage, err)
	}

	endpoint, err := c.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("resolve %s endpoint: %w", pgImage, err)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pgRole, pgSecret),
		Host:     endpoint,
		Path:     "/" + pgDatabase,
		RawQuery: "sslmode=disable",
	}
	return u.String(), nil
}
