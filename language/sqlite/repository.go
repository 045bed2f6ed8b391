// Package sqlite implements language.Repository for SQLite and Turso (libSQL) databases.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/marcelsud/locallibrary/language"
)

type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Select(ctx context.Context, id int64) (language.Language, error) {
	var l language.Language
	err := r.DB.QueryRowContext(ctx, "SELECT id, name FROM catalog_language WHERE id = ?", id).Scan(&l.ID, &l.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return language.Language{}, language.ErrNotFound
	}
	if err != nil {
		return language.Language{}, fmt.Errorf("selecting language: %w", err)
	}
	return l, nil
}

func (r *Repository) SelectAll(ctx context.Context) ([]language.Language, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name FROM catalog_language ORDER BY id")
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
		return nil, fmt.Errorf("interacting with languages: %w", err)
	}
	return languages, nil
}

func (r *Repository) Insert(ctx context.Context, l language.Language) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "insert into catalog_language (name) values (?)", l.Name)
	if err != nil {
		return 0, fmt.Errorf("inserting language: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert ID: %w", err)
	}
	return id, nil
}

func (r *Repository) Update(ctx context.Context, l language.Language) error {
	result, err := r.DB.ExecContext(ctx, "update catalog_language set name = ? where id = ?", l.Name, l.ID)
	if err != nil {
		return fmt.Errorf("updating language: %w", err)
	}
	return expectOne(result, language.ErrNotFound)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM catalog_language WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting language: %w", err)
	}
	return expectOne(result, language.ErrNotFound)
}

func expectOne(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
