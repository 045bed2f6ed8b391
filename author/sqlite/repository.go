// Package sqlite implements author.Repository for SQLite and Turso (libSQL) databases.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/marcelsud/locallibrary/author"
)

const selectColumns = "SELECT id, first_name, last_name, date_of_birth, date_of_death FROM catalog_author"

type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (author.Author, error) {
	var (
		a            author.Author
		birth, death sql.NullString
	)
	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &birth, &death); err != nil {
		return author.Author{}, err
	}
	var err error
	if a.DateOfBirth, err = parseNullDate(birth); err != nil {
		return author.Author{}, fmt.Errorf("reading date_of_birth: %w", err)
	}
	if a.DateOfDeath, err = parseNullDate(death); err != nil {
		return author.Author{}, fmt.Errorf("reading date_of_death: %w", err)
	}
	return a, nil
}

func parseNullDate(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	d, err := author.ParseDate(s.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func dateArg(d *time.Time) any {
	s := author.FormatDate(d)
	if s == nil {
		return nil
	}
	return *s
}

func (r *Repository) Select(ctx context.Context, id int64) (author.Author, error) {
	a, err := scan(r.DB.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return author.Author{}, author.ErrNotFound
	}
	if err != nil {
		return author.Author{}, fmt.Errorf("selecting author: %w", err)
	}
	return a, nil
}

func (r *Repository) SelectAll(ctx context.Context) ([]author.Author, error) {
	rows, err := r.DB.QueryContext(ctx, selectColumns+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("selecting authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("interacting with authors: %w", err)
	}
	return authors, nil
}

func (r *Repository) Insert(ctx context.Context, a author.Author) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		insert into catalog_author (first_name, last_name, date_of_birth, date_of_death)
		values (?, ?, ?, ?)`,
		a.FirstName,
		a.LastName,
		dateArg(a.DateOfBirth),
		dateArg(a.DateOfDeath),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting author: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert ID: %w", err)
	}
	return id, nil
}

// Update reads, merges and writes back inside one transaction. SQLite serializes writers
func (r *Repository) Update(ctx context.Context, id int64, patch author.Patch) (author.Author, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return author.Author{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := scan(tx.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return author.Author{}, author.ErrNotFound
	}
	if err != nil {
		return author.Author{}, fmt.Errorf("selecting author: %w", err)
	}

	updated := patch.Apply(current)
	_, err = tx.ExecContext(ctx, `
		update catalog_author
		set first_name = ?, last_name = ?, date_of_birth = ?, date_of_death = ?
		where id = ?`,
		updated.FirstName,
		updated.LastName,
		dateArg(updated.DateOfBirth),
		dateArg(updated.DateOfDeath),
		id,
	)
	if err != nil {
		return author.Author{}, fmt.Errorf("updating author: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return author.Author{}, fmt.Errorf("committing transaction: %w", err)
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM catalog_author WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting author: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if n == 0 {
		return author.ErrNotFound
	}
	return nil
}
