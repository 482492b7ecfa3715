// Package pgsqltest starts a throwaway PostgreSQL container with the
// application schema applied.
package pgsqltest

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/gofood/internal/pkg/pgsql"
	"github.com/shandysiswandi/gofood/migrations"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// New skips t unless GOFOOD_INTEGRATION=true, otherwise it returns a migrated
// pool that is closed on cleanup.
func New(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if os.Getenv("GOFOOD_INTEGRATION") != "true" {
		t.Skip("set GOFOOD_INTEGRATION=true to run postgres integration tests")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("gofood"),
		tcpostgres.WithUsername("gofood"),
		tcpostgres.WithPassword("gofood"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgsql.Connect(ctx, pgsql.Config{URL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pgsql.Migrate(ctx, pool, migrations.FS))

	return pool
}
