package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

// ─── ERRORS ──────────────────────────────────────────────────────────────────

// ErrNotFound is returned by Get and Delete for an ID with no report row.
// Handlers map it to a 404.
var ErrNotFound = errors.New("store: report not found")

// ─── TYPES ───────────────────────────────────────────────────────────────────

// Report is one persisted report row. Content carries the stored JSON
// payload verbatim.
type Report struct {
	ID          uuid.UUID
	Title       string
	CompanyName string
	Content     json.RawMessage
	CreatedAt   time.Time
}

// SaveReportParams is the caller-supplied part of a new row. The store
// assigns the ID and the creation timestamp.
type SaveReportParams struct {
	Title       string
	CompanyName string
	Content     json.RawMessage
}

// ─── METHODS ─────────────────────────────────────────────────────────────────

// Save inserts a new report and returns the stored row. Content must be a
// valid JSON document; handlers validate shape before calling.
func (s *Store) Save(ctx context.Context, p SaveReportParams) (Report, error) {
	r := Report{
		ID:          uuid.New(),
		Title:       p.Title,
		CompanyName: p.CompanyName,
		Content:     p.Content,
	}

	err := s.pool.QueryRowContext(ctx,
		`INSERT INTO reports (id, title, company_name, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		r.ID, r.Title, r.CompanyName,
		pqtype.NullRawMessage{RawMessage: p.Content, Valid: len(p.Content) > 0},
	).Scan(&r.CreatedAt)
	if err != nil {
		return Report{}, fmt.Errorf("store: save report: %w", err)
	}

	return r, nil
}

// List returns all reports, newest first.
func (s *Store) List(ctx context.Context) ([]Report, error) {
	rows, err := s.pool.QueryContext(ctx,
		`SELECT id, title, company_name, content, created_at
		 FROM reports
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list reports: %w", err)
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("store: scan report: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate reports: %w", err)
	}

	return reports, nil
}

// Get returns one report by ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Report, error) {
	row := s.pool.QueryRowContext(ctx,
		`SELECT id, title, company_name, content, created_at
		 FROM reports
		 WHERE id = $1`, id)

	r, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Report{}, ErrNotFound
	}
	if err != nil {
		return Report{}, fmt.Errorf("store: get report: %w", err)
	}

	return r, nil
}

// Delete removes one report by ID, or returns ErrNotFound when no row
// matched.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.pool.ExecContext(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("store: delete report: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete report: rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// scanReport reads one row from either *sql.Row or *sql.Rows.
func scanReport(row interface{ Scan(...any) error }) (Report, error) {
	var (
		r       Report
		content pqtype.NullRawMessage
	)
	if err := row.Scan(&r.ID, &r.Title, &r.CompanyName, &content, &r.CreatedAt); err != nil {
		return Report{}, err
	}
	if content.Valid {
		r.Content = content.RawMessage
	}
	return r, nil
}
