// Package turso connects to a Turso database through a local libSQL embedded replica.
package turso

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tursodatabase/go-libsql"
)

const syncInterval = 30 * time.Second

// DB is an embedded replica synced with the remote primary every 30 seconds
type DB struct {
	*sql.DB
	dir       string
	connector *libsql.Connector
}

func Open(dbName, url, authToken string) (*DB, error) {
	dir, err := os.MkdirTemp("", "libsql-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbName)
	connector, err := libsql.NewEmbeddedReplicaConnector(dbPath, url,
		libsql.WithAuthToken(authToken),
		libsql.WithSyncInterval(syncInterval),
	)
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("creating connector: %w", err)
	}
	db := sql.OpenDB(connector)
	// same single-writer model as the local SQLite store
	db.SetMaxOpenConns(1)
	return &DB{
		DB:        db,
		dir:       dir,
		connector: connector,
	}, nil
}

// Close closes the pool and the connector and removes the local replica
func (d *DB) Close() error {
	if err := d.DB.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	if err := d.connector.Close(); err != nil {
		return fmt.Errorf("closing connector: %w", err)
	}
	if err := os.RemoveAll(d.dir); err != nil {
		return fmt.Errorf("removing temporary directory: %w", err)
	}
	return nil
}
