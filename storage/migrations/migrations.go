// Package migrations holds the catalog schema as goose SQL migrations, one directory per SQL dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Dialect selects both the migration files and the goose version table syntax
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
	// Turso speaks the SQLite dialect but needs goose's libSQL flavour
	Turso Dialect = "turso"
)

func (d Dialect) dir() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}

func (d Dialect) goose() (database.Dialect, error) {
	switch d {
	case Postgres:
		return database.DialectPostgres, nil
	case SQLite:
		return database.DialectSQLite3, nil
	case Turso:
		return database.DialectTurso, nil
	}
	return "", fmt.Errorf("unknown dialect %q", string(d))
}

func provider(db *sql.DB, d Dialect) (*goose.Provider, error) {
	gd, err := d.goose()
	if err != nil {
		return nil, err
	}
	fsys, err := fs.Sub(files, d.dir())
	if err != nil {
		return nil, fmt.Errorf("opening %s migrations: %w", d, err)
	}
	p, err := goose.NewProvider(gd, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("creating migration provider: %w", err)
	}
	return p, nil
}

// Up applies every pending migration and returns how many ran
func Up(ctx context.Context, db *sql.DB, d Dialect) (int, error) {
	p, err := provider(db, d)
	if err != nil {
		return 0, err
	}
	results, err := p.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("applying migrations: %w", err)
	}
	return len(results), nil
}

// Reset rolls back every applied migration, leaving an empty schema
func Reset(ctx context.Context, db *sql.DB, d Dialect) error {
	p, err := provider(db, d)
	if err != nil {
		return err
	}
	if _, err := p.DownTo(ctx, 0); err != nil {
		return fmt.Errorf("rolling back migrations: %w", err)
	}
	return nil
}
