// Package audit keeps a trail of report exports. Recording is best
// effort: an unavailable trail never blocks an export.
package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Entry describes one completed export.
type Entry struct {
	Kind      string
	StartDate string
	EndDate   string
	SizeBytes int
	At        time.Time
}

// Recorder persists export entries.
type Recorder interface {
	RecordExport(ctx context.Context, entry Entry) error
}

// PGRecorder writes entries into the report_exports table.
type PGRecorder struct {
	pool *pgxpool.Pool
}

// NewPGRecorder returns a Postgres-backed recorder.
func NewPGRecorder(pool *pgxpool.Pool) *PGRecorder {
	return &PGRecorder{pool: pool}
}

// RecordExport persists the entry.
func (r *PGRecorder) RecordExport(ctx context.Context, entry Entry) error {
	if r == nil || r.pool == nil {
		return errors.New("audit: recorder not initialised")
	}
	if entry.Kind == "" {
		return errors.New("audit: entry requires kind")
	}
	var at any
	if !entry.At.IsZero() {
		at = entry.At
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO report_exports (id, kind, start_date, end_date, size_bytes, exported_at) VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, COALESCE($6, NOW()))`,
		uuid.New(), entry.Kind, entry.StartDate, entry.EndDate, entry.SizeBytes, at)
	return err
}
