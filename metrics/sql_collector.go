package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CatalogTables maps each entity to the table holding it
var CatalogTables = map[string]string{
	"language": "catalog_language",
	"genre":    "catalog_genre",
	"author":   "catalog_author",
}

// SQLCollector implements the Collector interface by counting rows in the catalog tables
type SQLCollector struct {
	db     *sql.DB
	tables map[string]string
}

// NewSQLCollector creates a new SQL metrics collector
func NewSQLCollector(db *sql.DB) *SQLCollector {
	return &SQLCollector{
		db:     db,
		tables: CatalogTables,
	}
}

// Collect gathers all metrics from the database
func (c *SQLCollector) Collect(ctx context.Context) (Metrics, error) {
	counts, err := c.GetRecordCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting record counts: %w", err)
	}

	return Metrics{
		RecordCounts: counts,
		Timestamp:    time.Now(),
	}, nil
}

// GetRecordCounts returns the number of rows of each catalog table
func (c *SQLCollector) GetRecordCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(c.tables))
	for entity, table := range c.tables {
		var n int64
		// table names come from CatalogTables, never from input
		err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
		if err != nil {
			return nil, fmt.Errorf("counting %s: %w", entity, err)
		}
		counts[entity] = n
	}
	return counts, nil
}
