package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to TEST_DATABASE_URL, migrates it and empties every
// table. Tests are skipped when the variable is not set.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository integration tests")
	}

	ctx := context.Background()
	require.NoError(t, database.Migrate(ctx, dsn, "up"))

	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4})
	require.NoError(t, err)

	truncate := func() {
		_, err := db.Exec(ctx, "TRUNCATE TABLE permissions, attendances, users RESTART IDENTITY CASCADE")
		require.NoError(t, err)
	}
	truncate()
	t.Cleanup(func() {
		truncate()
		db.Close()
	})

	return db
}
