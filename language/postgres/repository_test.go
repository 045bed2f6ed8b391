//go:build !integration

package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/marcelsud/locallibrary/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
Unit tests for the PostgreSQL language repository.
sqlmock stands in for the database: these tests check the SQL we send and how
results are mapped, not real PostgreSQL behaviour (see author/postgres for integration tests).
*/

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Insert_Unit(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO catalog_language (name)`)).
		WithArgs("English").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	id, err := repo.Insert(context.Background(), language.Language{Name: "English"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Select_Unit(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT id, name FROM catalog_language WHERE id = $1`)

	t.Run("existing language", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(query).WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "English"))

		l, err := repo.Select(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, language.Language{ID: 1, Name: "English"}, l)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing language", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(query).WithArgs(999).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		_, err := repo.Select(context.Background(), 999)

		assert.Equal(t, language.ErrNotFound, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error is wrapped", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("connection reset"))

		_, err := repo.Select(context.Background(), 1)

		require.Error(t, err)
		assert.NotErrorIs(t, err, language.ErrNotFound)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestRepository_SelectAll_Unit(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT id, name FROM catalog_language ORDER BY id`)

	t.Run("all languages", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(query).WillReturnRows(
			sqlmock.NewRows([]string{"id", "name"}).
				AddRow(1, "English").
				AddRow(2, "French"),
		)

		all, err := repo.SelectAll(context.Background())

		require.NoError(t, err)
		assert.Len(t, all, 2)
		assert.Equal(t, "French", all[1].Name)
	})

	t.Run("empty table", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		all, err := repo.SelectAll(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})
}

func TestRepository_Update_Unit(t *testing.T) {
	query := regexp.QuoteMeta(`UPDATE catalog_language`)

	t.Run("existing language", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec(query).WithArgs("Spanish", 3).WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), language.Language{ID: 3, Name: "Spanish"})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing language", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec(query).WithArgs("Spanish", 3).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), language.Language{ID: 3, Name: "Spanish"})

		assert.Equal(t, language.ErrNotFound, err)
	})
}

func TestRepository_Delete_Unit(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM catalog_language WHERE id = $1`)

	t.Run("existing language", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec(query).WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), 1))
	})

	t.Run("missing language", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec(query).WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.Equal(t, language.ErrNotFound, repo.Delete(context.Background(), 1))
	})
}
