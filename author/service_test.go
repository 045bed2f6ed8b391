package author_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/marcelsud/locallibrary/author"
	"github.com/marcelsud/locallibrary/author/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	a := author.Author{
		FirstName:   "Jane",
		LastName:    "Austen",
		DateOfBirth: date(t, "1775-12-16"),
		DateOfDeath: date(t, "1817-07-18"),
	}
	t.Run("success", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Insert", ctx, a).Return(int64(1), nil)
		saved, err := author.NewService(repo).Create(ctx, a)
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.ID)
		assert.Equal(t, a.FirstName, saved.FirstName)
		assert.Equal(t, a.DateOfBirth, saved.DateOfBirth)
	})
	t.Run("ignores a caller supplied id", func(t *testing.T) {
		withID := a
		withID.ID = 42
		repo := mocks.NewRepository(t)
		repo.On("Insert", ctx, a).Return(int64(3), nil)
		saved, err := author.NewService(repo).Create(ctx, withID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), saved.ID)
	})
	t.Run("fail", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Insert", ctx, a).Return(int64(0), fmt.Errorf("some error"))
		saved, err := author.NewService(repo).Create(ctx, a)
		assert.NotNil(t, err)
		assert.Empty(t, saved)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	stored := author.Author{
		ID:          1,
		FirstName:   "Jane",
		LastName:    "Austen",
		DateOfBirth: date(t, "1775-12-16"),
		DateOfDeath: date(t, "1817-07-18"),
	}

	t.Run("delegates the patch to the repository", func(t *testing.T) {
		patch := author.Patch{FirstName: ptr("J.")}
		repo := mocks.NewRepository(t)
		repo.On("Update", ctx, int64(1), patch).Return(patch.Apply(stored), nil)
		got, err := author.NewService(repo).Update(ctx, 1, patch)
		require.NoError(t, err)
		assert.Equal(t, "J.", got.FirstName)
		assert.Equal(t, stored.DateOfDeath, got.DateOfDeath)
	})

	t.Run("empty patch reads the stored author", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Select", ctx, int64(1)).Return(stored, nil)
		got, err := author.NewService(repo).Update(ctx, 1, author.Patch{})
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("not found", func(t *testing.T) {
		patch := author.Patch{LastName: ptr("Eyre")}
		repo := mocks.NewRepository(t)
		repo.On("Update", ctx, int64(9), patch).Return(author.Author{}, author.ErrNotFound)
		_, err := author.NewService(repo).Update(ctx, 9, patch)
		assert.ErrorIs(t, err, author.ErrNotFound)
	})
}

func TestGetListDelete(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewRepository(t)
	repo.On("SelectAll", ctx).Return([]author.Author{{ID: 1, FirstName: "Jane", LastName: "Austen"}}, nil)
	repo.On("Select", ctx, int64(2)).Return(author.Author{}, author.ErrNotFound)
	repo.On("Delete", ctx, int64(2)).Return(author.ErrNotFound)
	s := author.NewService(repo)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = s.Get(ctx, 2)
	assert.ErrorIs(t, err, author.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 2), author.ErrNotFound)
}
