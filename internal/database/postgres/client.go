package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

// Client wraps a pgx connection pool with observability. All scheduling-core
// queries live on this type, one file per table.
type Client struct {
	pool *pgxpool.Pool
}

// NewClient creates a client over an existing connection pool
func NewClient(pool *pgxpool.Pool) *Client {
	return &Client{pool: pool}
}

// Pool exposes the underlying pool for health checks
func (c *Client) Pool() *pgxpool.Pool {
	return c.pool
}

// recordMetrics records store operation metrics
func recordMetrics(operation, status string, duration float64) {
	metrics.StoreOperationDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.StoreOperationTotal.WithLabelValues(operation, status).Inc()
}

// nilIfEmpty returns nil if string is empty, otherwise returns pointer to string
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
