// Package store persists reports in Postgres.
//
// Saved content is opaque to the store: the JSON payload is written and read
// back verbatim (jsonb normalization aside) and never interpreted. Higher
// layers own the shape of what they save.
//
// Dependency rule: store imports database/sql and the driver helpers only.
// It never imports api, report, pdf, or ai.
package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Store attaches the report operations to a shared connection pool. All
// methods are safe for concurrent use.
type Store struct {
	pool *sql.DB
}

// New creates a Store from a live connection pool. The pool must already be
// open and verified (e.g. via PingContext) before calling New.
func New(pool *sql.DB) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the reports table and its index when they do not
// exist, so a fresh database works without a separate migration step. Safe to
// call on every startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS reports (
	id           UUID PRIMARY KEY,
	title        TEXT NOT NULL,
	company_name TEXT NOT NULL,
	content      JSONB NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS reports_created_at_idx ON reports (created_at DESC);`

	if _, err := s.pool.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("store: ensure schema: %w", err)
	}
	return nil
}
