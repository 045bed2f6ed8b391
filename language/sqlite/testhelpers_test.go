package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/marcelsud/locallibrary/storage/migrations"
	"github.com/marcelsud/locallibrary/storage/sqlite"
	"github.com/stretchr/testify/require"
)

// setupDB opens a private in-memory database with the catalog schema applied
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, sqlite.Memory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = migrations.Up(ctx, db, migrations.SQLite)
	require.NoError(t, err)
	return db
}
