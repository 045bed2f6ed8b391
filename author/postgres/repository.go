package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/marcelsud/locallibrary/author"
)

const selectColumns = "SELECT id, first_name, last_name, date_of_birth, date_of_death FROM catalog_author"

// Repository stores authors in the catalog_author table. Dates use the DATE column type
type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DB: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (author.Author, error) {
	var (
		a            author.Author
		birth, death sql.NullTime
	)
	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &birth, &death); err != nil {
		return author.Author{}, err
	}
	a.DateOfBirth = fromNullTime(birth)
	a.DateOfDeath = fromNullTime(death)
	return a, nil
}

func fromNullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	d := author.Date(t.Time)
	return &d
}

// dateArg sends dates as YYYY-MM-DD text so the server never applies a time zone
func dateArg(d *time.Time) any {
	s := author.FormatDate(d)
	if s == nil {
		return nil
	}
	return *s
}

// Select busca um autor por ID
func (r *Repository) Select(ctx context.Context, id int64) (author.Author, error) {
	a, err := scan(r.DB.QueryRowContext(ctx, selectColumns+" WHERE id = $1", id))
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
		return nil, fmt.Errorf("iterating authors: %w", err)
	}

	return authors, nil
}

func (r *Repository) Insert(ctx context.Context, a author.Author) (int64, error) {
	query := `
		INSERT INTO catalog_author (first_name, last_name, date_of_birth, date_of_death)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		a.FirstName,
		a.LastName,
		dateArg(a.DateOfBirth),
		dateArg(a.DateOfDeath),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting author: %w", err)
	}

	return id, nil
}

/* Update locks the row with SELECT ... FOR UPDATE, merges the patch and writes
 * every column back inside the same transaction
 */
func (r *Repository) Update(ctx context.Context, id int64, patch author.Patch) (author.Author, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return author.Author{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := scan(tx.QueryRowContext(ctx, selectColumns+" WHERE id = $1 FOR UPDATE", id))
	if errors.Is(err, sql.ErrNoRows) {
		return author.Author{}, author.ErrNotFound
	}
	if err != nil {
		return author.Author{}, fmt.Errorf("locking author: %w", err)
	}

	updated := patch.Apply(current)
	query := `
		UPDATE catalog_author
		SET first_name = $1, last_name = $2, date_of_birth = $3, date_of_death = $4
		WHERE id = $5
	`
	_, err = tx.ExecContext(ctx, query,
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

// Delete remove um autor por ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM catalog_author WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting author: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return author.ErrNotFound
	}

	return nil
}
