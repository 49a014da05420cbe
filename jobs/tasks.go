// Package jobs schedules and processes background report exports.
package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/reports"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskScheduledExport exports a single report kind to the output directory.
	TaskScheduledExport = "report:export"
	// TaskExportDigest exports a batch of report kinds in one run.
	TaskExportDigest = "report:digest"
)

// digestConcurrency caps parallel exports inside a digest run.
const digestConcurrency = 4

// Exporter produces report PDFs for background tasks.
type Exporter interface {
	Export(ctx context.Context, req reports.Request) ([]byte, error)
}

// ScheduledExportPayload identifies the report to export.
type ScheduledExportPayload struct {
	Kind      string `json:"kind"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// DigestPayload identifies a batch of reports exported together.
type DigestPayload struct {
	Kinds     []string `json:"kinds"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
}

// NewScheduledExportTask constructs an Asynq task for a single export.
func NewScheduledExportTask(payload ScheduledExportPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskScheduledExport, data), nil
}

// NewDigestTask constructs an Asynq task for a batch export.
func NewDigestTask(payload DigestPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskExportDigest, data), nil
}

// Runner executes export tasks and writes the resulting PDFs to disk.
type Runner struct {
	exporter Exporter
	outDir   string
	logger   *slog.Logger
	now      func() time.Time
}

// NewRunner constructs a Runner writing into outDir.
func NewRunner(exporter Exporter, outDir string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{exporter: exporter, outDir: outDir, logger: logger, now: time.Now}
}

// HandleScheduledExport processes TaskScheduledExport tasks.
func (r *Runner) HandleScheduledExport(ctx context.Context, t *asynq.Task) error {
	var payload ScheduledExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	kind, err := reports.ParseKind(payload.Kind)
	if err != nil {
		r.logger.Warn("scheduled export: unknown kind", slog.String("kind", payload.Kind))
		return asynq.SkipRetry
	}
	return r.exportOne(ctx, kind, payload.StartDate, payload.EndDate)
}

// HandleExportDigest processes TaskExportDigest tasks, exporting each kind in
// parallel. A kind with no data is skipped, any other failure fails the task.
func (r *Runner) HandleExportDigest(ctx context.Context, t *asynq.Task) error {
	var payload DigestPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(digestConcurrency)
	for _, raw := range payload.Kinds {
		kind, err := reports.ParseKind(raw)
		if err != nil {
			r.logger.Warn("digest: unknown kind", slog.String("kind", raw))
			continue
		}
		g.Go(func() error {
			return r.exportOne(ctx, kind, payload.StartDate, payload.EndDate)
		})
	}
	return g.Wait()
}

func (r *Runner) exportOne(ctx context.Context, kind reports.Kind, start, end string) error {
	blob, err := r.exporter.Export(ctx, reports.Request{
		Kind:      kind,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		if errors.Is(err, reports.ErrNoData) {
			r.logger.Info("scheduled export: no data", slog.String("kind", string(kind)))
			return nil
		}
		return fmt.Errorf("jobs: export %s: %w", kind, err)
	}

	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return fmt.Errorf("jobs: create output dir: %w", err)
	}
	name := fmt.Sprintf("%s-report-%s.pdf", kind, r.now().Format("20060102"))
	path := filepath.Join(r.outDir, name)
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return fmt.Errorf("jobs: write %s: %w", path, err)
	}
	r.logger.Info("scheduled export written",
		slog.String("kind", string(kind)),
		slog.String("path", path),
		slog.Int("bytes", len(blob)))
	return nil
}
