package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/marcelsud/locallibrary/genre"
)

// Repository stores genres in the catalog_genre table
type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DB: db,
	}
}

// Select busca um gênero por ID
func (r *Repository) Select(ctx context.Context, id int64) (genre.Genre, error) {
	query := "SELECT id, name FROM catalog_genre WHERE id = $1"

	var g genre.Genre
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return genre.Genre{}, genre.ErrNotFound
	}
	if err != nil {
		return genre.Genre{}, fmt.Errorf("selecting genre: %w", err)
	}

	return g, nil
}

// SelectAll returns every genre ordered by id; an empty table is not an error
func (r *Repository) SelectAll(ctx context.Context) ([]genre.Genre, error) {
	query := "SELECT id, name FROM catalog_genre ORDER BY id"

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("selecting genres: %w", err)
	}
	defer rows.Close()

	genres := []genre.Genre{}
	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scanning genre: %w", err)
		}
		genres = append(genres, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating genres: %w", err)
	}

	return genres, nil
}

// Insert insere um novo gênero e retorna o ID gerado
func (r *Repository) Insert(ctx context.Context, g genre.Genre) (int64, error) {
	query := `
		INSERT INTO catalog_genre (name)
		VALUES ($1)
		RETURNING id
	`

	var id int64
	err := r.DB.QueryRowContext(ctx, query, g.Name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting genre: %w", err)
	}

	return id, nil
}

// Update replaces the stored name
func (r *Repository) Update(ctx context.Context, g genre.Genre) error {
	query := `
		UPDATE catalog_genre
		SET name = $1
		WHERE id = $2
	`

	result, err := r.DB.ExecContext(ctx, query, g.Name, g.ID)
	if err != nil {
		return fmt.Errorf("updating genre: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return genre.ErrNotFound
	}

	return nil
}

// Delete remove um gênero por ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM catalog_genre WHERE id = $1"

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting genre: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return genre.ErrNotFound
	}

	return nil
}
