// Package sqlite implements genre.Repository for SQLite and Turso (libSQL) databases.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/marcelsud/locallibrary/genre"
)

type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Select(ctx context.Context, id int64) (genre.Genre, error) {
	var g genre.Genre
	err := r.DB.QueryRowContext(ctx, "SELECT id, name FROM catalog_genre WHERE id = ?", id).Scan(&g.ID, &g.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return genre.Genre{}, genre.ErrNotFound
	}
	if err != nil {
		return genre.Genre{}, fmt.Errorf("selecting genre: %w", err)
	}
	return g, nil
}

func (r *Repository) SelectAll(ctx context.Context) ([]genre.Genre, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name FROM catalog_genre ORDER BY id")
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
		return nil, fmt.Errorf("interacting with genres: %w", err)
	}
	return genres, nil
}

func (r *Repository) Insert(ctx context.Context, g genre.Genre) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "insert into catalog_genre (name) values (?)", g.Name)
	if err != nil {
		return 0, fmt.Errorf("inserting genre: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert ID: %w", err)
	}
	return id, nil
}

func (r *Repository) Update(ctx context.Context, g genre.Genre) error {
	result, err := r.DB.ExecContext(ctx, "update catalog_genre set name = ? where id = ?", g.Name, g.ID)
	if err != nil {
		return fmt.Errorf("updating genre: %w", err)
	}
	return expectOne(result, genre.ErrNotFound)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM catalog_genre WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting genre: %w", err)
	}
	return expectOne(result, genre.ErrNotFound)
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
