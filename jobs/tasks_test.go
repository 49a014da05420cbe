package jobs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/hibiken/asynq"

	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/reports"
)

type fakeExporter struct {
	mu       sync.Mutex
	requests []reports.Request
	noData   map[reports.Kind]bool
	err      error
}

func (f *fakeExporter) Export(ctx context.Context, req reports.Request) ([]byte, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.noData[req.Kind] {
		return nil, fmt.Errorf("%w: nothing in range", reports.ErrNoData)
	}
	return []byte("%PDF-1.7 fake"), nil
}

func newTestRunner(t *testing.T, exporter Exporter) (*Runner, string) {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRunner(exporter, dir, logger)
	r.now = func() time.Time { return time.Date(2025, 6, 30, 1, 0, 0, 0, time.UTC) }
	return r, dir
}

func TestHandleScheduledExportWritesFile(t *testing.T) {
	exporter := &fakeExporter{}
	runner, dir := newTestRunner(t, exporter)

	task, err := NewScheduledExportTask(ScheduledExportPayload{
		Kind:      "sales",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	})
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if err := runner.HandleScheduledExport(context.Background(), task); err != nil {
		t.Fatalf("handle: %v", err)
	}

	path := filepath.Join(dir, "sales-report-20250630.pdf")
	blob, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(blob) == 0 {
		t.Fatal("empty output file")
	}
	if len(exporter.requests) != 1 || exporter.requests[0].StartDate != "2025-06-01" {
		t.Fatalf("requests %+v", exporter.requests)
	}
}

func TestHandleScheduledExportNoDataSkipsFile(t *testing.T) {
	exporter := &fakeExporter{noData: map[reports.Kind]bool{reports.KindLowStock: true}}
	runner, dir := newTestRunner(t, exporter)

	task, err := NewScheduledExportTask(ScheduledExportPayload{Kind: "low-stock"})
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if err := runner.HandleScheduledExport(context.Background(), task); err != nil {
		t.Fatalf("no data must not fail the task: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files, found %d", len(entries))
	}
}

func TestHandleScheduledExportUnknownKindSkipsRetry(t *testing.T) {
	runner, _ := newTestRunner(t, &fakeExporter{})

	task, err := NewScheduledExportTask(ScheduledExportPayload{Kind: "payroll"})
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if err := runner.HandleScheduledExport(context.Background(), task); !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}

func TestHandleScheduledExportBadPayload(t *testing.T) {
	runner, _ := newTestRunner(t, &fakeExporter{})
	task := asynq.NewTask(TaskScheduledExport, []byte("{not json"))
	if err := runner.HandleScheduledExport(context.Background(), task); !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}

func TestHandleExportDigest(t *testing.T) {
	exporter := &fakeExporter{noData: map[reports.Kind]bool{reports.KindAdjustments: true}}
	runner, dir := newTestRunner(t, exporter)

	task, err := NewDigestTask(DigestPayload{
		Kinds:     []string{"sales", "expenses", "adjustments", "payroll"},
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	})
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if err := runner.HandleExportDigest(context.Background(), task); err != nil {
		t.Fatalf("digest: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	// The no-data kind and the unknown kind produce no file.
	if len(entries) != 2 {
		t.Fatalf("expected 2 files, found %d", len(entries))
	}
}

func TestHandleExportDigestPropagatesFailures(t *testing.T) {
	exporter := &fakeExporter{err: errors.New("backend down")}
	runner, _ := newTestRunner(t, exporter)

	task, err := NewDigestTask(DigestPayload{Kinds: []string{"sales"}})
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if err := runner.HandleExportDigest(context.Background(), task); err == nil {
		t.Fatal("expected digest to fail")
	}
}
