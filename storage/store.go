// Package storage opens the catalog database selected by configuration and hands out its repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/marcelsud/locallibrary/author"
	authorpostgres "github.com/marcelsud/locallibrary/author/postgres"
	authorsqlite "github.com/marcelsud/locallibrary/author/sqlite"
	"github.com/marcelsud/locallibrary/config"
	"github.com/marcelsud/locallibrary/genre"
	genrepostgres "github.com/marcelsud/locallibrary/genre/postgres"
	genresqlite "github.com/marcelsud/locallibrary/genre/sqlite"
	"github.com/marcelsud/locallibrary/language"
	languagepostgres "github.com/marcelsud/locallibrary/language/postgres"
	languagesqlite "github.com/marcelsud/locallibrary/language/sqlite"
	"github.com/marcelsud/locallibrary/storage/migrations"
	"github.com/marcelsud/locallibrary/storage/postgres"
	"github.com/marcelsud/locallibrary/storage/sqlite"
	"github.com/marcelsud/locallibrary/storage/turso"
)

// Store is an open catalog database
type Store struct {
	DB      *sql.DB
	Dialect migrations.Dialect
	close   func() error
}

// Open connects to the database named by cfg.DBDriver
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err := postgres.OpenWithPoolConfig(ctx, cfg.PostgresConnectionString(),
			cfg.PostgresMaxOpenConns, cfg.PostgresMaxIdleConns, cfg.PostgresConnMaxLifeMinutes)
		if err != nil {
			return nil, err
		}
		return &Store{DB: db, Dialect: migrations.Postgres, close: db.Close}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Store{DB: db, Dialect: migrations.SQLite, close: db.Close}, nil
	case config.DriverTurso:
		db, err := turso.Open(cfg.DBName, cfg.TursoDatabaseURL, cfg.TursoAuthToken)
		if err != nil {
			return nil, err
		}
		return &Store{DB: db.DB, Dialect: migrations.Turso, close: db.Close}, nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}

// Migrate applies pending schema migrations and returns how many ran
func (s *Store) Migrate(ctx context.Context) (int, error) {
	return migrations.Up(ctx, s.DB, s.Dialect)
}

func (s *Store) Languages() language.Repository {
	if s.Dialect == migrations.Postgres {
		return languagepostgres.NewRepository(s.DB)
	}
	return languagesqlite.NewRepository(s.DB)
}

func (s *Store) Genres() genre.Repository {
	if s.Dialect == migrations.Postgres {
		return genrepostgres.NewRepository(s.DB)
	}
	return genresqlite.NewRepository(s.DB)
}

func (s *Store) Authors() author.Repository {
	if s.Dialect == migrations.Postgres {
		return authorpostgres.NewRepository(s.DB)
	}
	return authorsqlite.NewRepository(s.DB)
}

func (s *Store) Close() error {
	return s.close()
}
