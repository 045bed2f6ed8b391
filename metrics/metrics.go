package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the catalog.
type Metrics struct {
	// RecordCounts maps entity name (language, genre, author) to its number of rows
	RecordCounts map[string]int64 `json:"record_counts"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting metrics from the catalog store.
type Collector interface {
	// Collect gathers current metrics from the store
	Collect(ctx context.Context) (Metrics, error)

	// GetRecordCounts returns the number of stored records per entity
	GetRecordCounts(ctx context.Context) (map[string]int64, error)
}
