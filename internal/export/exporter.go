// Package export orchestrates report exports: fetch the payload,
// obtain company settings, normalize, render to PDF. Each call is an
// independent one-shot operation with no shared mutable state.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/audit"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/posapi"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/reports"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/reports/pdf"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/settings"
)

// Exporter coordinates one export per call. The settings provider is
// injected once at construction; a provider failure falls back to the
// default company info instead of failing the export.
type Exporter struct {
	api      API
	defs     map[reports.Kind]Definition
	settings settings.Provider
	audit    audit.Recorder
	currency string
	logger   *slog.Logger
	now      func() time.Time
}

// NewExporter wires the registry and its collaborators. The audit
// recorder may be nil.
func NewExporter(api API, provider settings.Provider, recorder audit.Recorder, currency string, logger *slog.Logger) *Exporter {
	if currency == "" {
		currency = "TZS"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		api:      api,
		defs:     buildRegistry(api, currency),
		settings: provider,
		audit:    recorder,
		currency: currency,
		logger:   logger,
		now:      time.Now,
	}
}

// Export runs the full pipeline for one report request. A fetch-layer
// ErrNoData on a suppressed kind is returned unchanged so callers can
// distinguish nothing-to-export from a hard failure.
func (e *Exporter) Export(ctx context.Context, req reports.Request) ([]byte, error) {
	def, ok := e.defs[req.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", reports.ErrUnknownKind, req.Kind)
	}

	table, err := def.Fetch(ctx, queryFrom(req))
	if err != nil {
		if def.SuppressEmpty && errors.Is(err, reports.ErrNoData) {
			return nil, err
		}
		return nil, fmt.Errorf("export %s: %w", req.Kind, err)
	}

	header := pdf.Header{
		Company:     e.companyInfo(ctx),
		Title:       table.Title,
		RangeText:   reports.RangeText(req.StartDate, req.EndDate),
		GeneratedAt: e.now(),
	}
	blob, err := pdf.Render(header, table)
	if err != nil {
		return nil, fmt.Errorf("export %s: render: %w", req.Kind, err)
	}

	e.record(ctx, audit.Entry{
		Kind:      string(req.Kind),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		SizeBytes: len(blob),
		At:        e.now(),
	})
	return blob, nil
}

// ExportReceipt renders the receipt for one sale in the requested
// physical layout.
func (e *Exporter) ExportReceipt(ctx context.Context, saleID int64, format pdf.ReceiptFormat) ([]byte, error) {
	sale, err := e.api.Sale(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("export receipt %d: %w", saleID, err)
	}

	blob, err := pdf.RenderReceipt(sale, e.companyInfo(ctx), e.currency, format)
	if err != nil {
		return nil, fmt.Errorf("export receipt %d: render: %w", saleID, err)
	}

	e.record(ctx, audit.Entry{
		Kind:      "receipt",
		SizeBytes: len(blob),
		At:        e.now(),
	})
	return blob, nil
}

func (e *Exporter) companyInfo(ctx context.Context) reports.CompanyInfo {
	if e.settings == nil {
		return reports.CompanyInfo{}
	}
	info, err := e.settings.Get(ctx)
	if err != nil {
		e.logger.Warn("settings fetch failed, using defaults", slog.Any("error", err))
		return reports.CompanyInfo{}
	}
	return info
}

func (e *Exporter) record(ctx context.Context, entry audit.Entry) {
	if e.audit == nil {
		return
	}
	if err := e.audit.RecordExport(ctx, entry); err != nil {
		e.logger.Warn("record export", slog.Any("error", err))
	}
}

func queryFrom(req reports.Request) posapi.ReportQuery {
	return posapi.ReportQuery{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     req.Status,
		SupplierID: req.SupplierID,
		CustomerID: req.CustomerID,
		Type:       req.Type,
	}
}

// Filename returns the attachment filename for a report kind.
func Filename(kind reports.Kind) string {
	return string(kind) + "-report.pdf"
}
