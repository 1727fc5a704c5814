package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/database"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// newTestDatabase connects to TEST_DATABASE_URL and applies the schema. Tests
// are skipped when the variable is unset.
func newTestDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))
	return db
}

// txContext returns a context whose repository calls run in a transaction
// that is rolled back when the test ends.
func txContext(t *testing.T, db *database.DB) context.Context {
	t.Helper()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback(ctx) })

	return postgresql.ContextWithTx(ctx, tx)
}
