package metrics

import (
	"context"
	"testing"

	"github.com/marcelsud/locallibrary/storage/migrations"
	"github.com/marcelsud/locallibrary/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLCollector_Collect(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, sqlite.Memory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = migrations.Up(ctx, db, migrations.SQLite)
	require.NoError(t, err)

	t.Run("empty catalog", func(t *testing.T) {
		m, err := NewSQLCollector(db).Collect(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"language": 0, "genre": 0, "author": 0}, m.RecordCounts)
		assert.False(t, m.Timestamp.IsZero())
	})

	t.Run("counts rows per entity", func(t *testing.T) {
		_, err := db.ExecContext(ctx, "INSERT INTO catalog_genre (name) VALUES ('Fantasy'), ('Horror')")
		require.NoError(t, err)
		_, err = db.ExecContext(ctx, "INSERT INTO catalog_author (first_name, last_name) VALUES ('Jane', 'Austen')")
		require.NoError(t, err)

		counts, err := NewSQLCollector(db).GetRecordCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"language": 0, "genre": 2, "author": 1}, counts)
	})

	t.Run("fails without schema", func(t *testing.T) {
		bare, err := sqlite.Open(ctx, sqlite.Memory)
		require.NoError(t, err)
		defer bare.Close()

		_, err = NewSQLCollector(bare).Collect(ctx)
		assert.Error(t, err)
	})
}
