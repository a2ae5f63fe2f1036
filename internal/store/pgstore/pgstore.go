// Package pgstore keeps import history in PostgreSQL.
package pgstore

import (
	"context"
	"fmt"
	"time"

	"github.com/regression1607/meridian-frontend-sub000/internal/core"
)

const schema = `CREATE TABLE IF NOT EXISTS import_history (
	id          TEXT PRIMARY KEY,
	template    TEXT NOT NULL,
	file_name   TEXT NOT NULL,
	status      TEXT NOT NULL,
	row_count   INTEGER NOT NULL,
	error_count INTEGER NOT NULL,
	warn_count  INTEGER NOT NULL,
	duration_ms BIGINT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS import_history_template_created_idx
	ON import_history (template, created_at DESC)`

const insertEntry = `INSERT INTO import_history
	(id, template, file_name, status, row_count, error_count, warn_count, duration_ms, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const listEntries = `SELECT id, template, file_name, status, row_count, error_count,
	warn_count, duration_ms, created_at
	FROM import_history
	WHERE ($1 = '' OR template = $1)
	ORDER BY created_at DESC
	LIMIT $2`

// ImportLog is a core.ImportLog backed by the import_history table.
type ImportLog struct {
	db core.DBTX
}

var _ core.ImportLog = (*ImportLog)(nil)

// New creates an ImportLog on db, usually a *pgxpool.Pool.
func New(db core.DBTX) *ImportLog {
	return &ImportLog{db: db}
}

// Migrate creates the history table if it does not exist.
func (s *ImportLog) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create import_history: %w", err)
	}
	return nil
}

// Record implements core.ImportLog.
func (s *ImportLog) Record(ctx context.Context, e core.ImportEntry) error {
	_, err := s.db.Exec(ctx, insertEntry,
		e.ID, e.Template, e.FileName, string(e.Status),
		e.Rows, e.Errors, e.Warnings, e.Duration.Milliseconds(), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert import %s: %w", e.ID, err)
	}
	return nil
}

// List implements core.ImportLog.
func (s *ImportLog) List(ctx context.Context, template string, limit int) ([]core.ImportEntry, error) {
	if limit <= 0 {
		limit = core.DefaultHistoryLimit
	}

	rows, err := s.db.Query(ctx, listEntries, template, limit)
	if err != nil {
		return nil, fmt.Errorf("query import history: %w", err)
	}
	defer rows.Close()

	entries := make([]core.ImportEntry, 0)
	for rows.Next() {
		var (
			e          core.ImportEntry
			status     string
			durationMS int64
		)
		err := rows.Scan(&e.ID, &e.Template, &e.FileName, &status,
			&e.Rows, &e.Errors, &e.Warnings, &durationMS, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan import history: %w", err)
		}
		e.Status = core.ImportStatus(status)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read import history: %w", err)
	}
	return entries, nil
}
