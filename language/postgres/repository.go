package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/marcelsud/locallibrary/language"
)

// Repository stores languages in the catalog_language table
type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DB: db,
	}
}

// Select busca uma língua por ID
func (r *Repository) Select(ctx context.Context, id int64) (language.Language, error) {
	query := "SELECT id, name FROM catalog_language WHERE id = $1"

	var l language.Language
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return language.Language{}, language.ErrNotFound
	}
	if err != nil {
		return language.Language{}, fmt.Errorf("selecting language: %w", err)
	}

	return l, nil
}

// SelectAll returns every language ordered by id; an empty table is not an error
func (r *Repository) SelectAll(ctx context.Context) ([]language.Language, error) {
	query := "SELECT id, name FROM catalog_language ORDER BY id"

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("selecting languages: %w", err)
	}
	defer rows.Close()

	languages := []language.Language{}
	for rows.Next() {
		var l language.Language
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, fmt.Errorf("scanning language: %w", err)
		}
		languages = append(languages, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating languages: %w", err)
	}

	return languages, nil
}

// Insert insere uma nova língua e retorna o ID gerado
func (r *Repository) Insert(ctx context.Context, l language.Language) (int64, error) {
	query := `
		INSERT INTO catalog_language (name)
		VALUES ($1)
		RETURNING id
	`

	var id int64
	err := r.DB.QueryRowContext(ctx, query, l.Name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting language: %w", err)
	}

	return id, nil
}

// Update replaces the stored name
func (r *Repository) Update(ctx context.Context, l language.Language) error {
	query := `
		UPDATE catalog_language
		SET name = $1
		WHERE id = $2
	`

	result, err := r.DB.ExecContext(ctx, query, l.Name, l.ID)
	if err != nil {
		return fmt.Errorf("updating language: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return language.ErrNotFound
	}

	return nil
}

// Delete remove uma língua por ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM catalog_language WHERE id = $1"

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting language: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return language.ErrNotFound
	}

	return nil
}
