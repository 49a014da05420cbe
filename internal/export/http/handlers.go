// Package exporthttp exposes the report export endpoints.
package exporthttp

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/export"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/platform/httpx"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/reports"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/reports/pdf"
)

// Handler serves report and receipt export routes.
type Handler struct {
	logger    *slog.Logger
	exporter  *export.Exporter
	validate  *validator.Validate
	rateLimit func(http.Handler) http.Handler
}

// NewHandler constructs the export handler. PDF generation is costly,
// so export routes carry their own per-IP rate limit on top of the
// global one.
func NewHandler(logger *slog.Logger, exporter *export.Exporter) *Handler {
	return &Handler{
		logger:    logger,
		exporter:  exporter,
		validate:  validator.New(),
		rateLimit: httprate.Limit(20, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)),
	}
}

// MountRoutes registers export routes on the router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Get("/reports/{kind}/export", h.exportReport)
		r.Get("/receipts/{id}/pdf", h.exportReceipt)
	})
}

func (h *Handler) exportReport(w http.ResponseWriter, r *http.Request) {
	kind, err := reports.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Unknown Report Kind", err.Error())
		return
	}

	req, err := requestFromQuery(kind, r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Parameters", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Parameters", err.Error())
		return
	}

	blob, err := h.exporter.Export(r.Context(), req)
	if err != nil {
		if errors.Is(err, reports.ErrNoData) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.logger.Error("export report", slog.String("kind", string(kind)), slog.Any("error", err))
		httpx.Problem(w, http.StatusBadGateway, "Export Failed", "")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename(kind)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob)
}

func (h *Handler) exportReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Sale ID", "")
		return
	}
	format, err := pdf.ParseReceiptFormat(r.URL.Query().Get("format"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Format", err.Error())
		return
	}

	blob, err := h.exporter.ExportReceipt(r.Context(), id, format)
	if err != nil {
		h.logger.Error("export receipt", slog.Int64("sale_id", id), slog.Any("error", err))
		httpx.Problem(w, http.StatusBadGateway, "Export Failed", "")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=receipt-%d.pdf", id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob)
}

func requestFromQuery(kind reports.Kind, r *http.Request) (reports.Request, error) {
	q := r.URL.Query()
	req := reports.Request{
		Kind:      kind,
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
		Status:    q.Get("status"),
		Type:      q.Get("type"),
	}
	var err error
	if req.SupplierID, err = optionalID(q.Get("supplierId")); err != nil {
		return reports.Request{}, fmt.Errorf("supplierId: %w", err)
	}
	if req.CustomerID, err = optionalID(q.Get("customerId")); err != nil {
		return reports.Request{}, fmt.Errorf("customerId: %w", err)
	}
	return req, nil
}

func optionalID(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("must be a positive integer")
	}
	return id, nil
}
