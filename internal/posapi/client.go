// Package posapi is the HTTP client for the bakery POS backend. It
// exposes one typed fetch method per report endpoint and performs the
// client-side derivations (low stock, out of stock) that the backend
// does not offer directly.
package posapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/reports"
)

// Client wraps interactions with the POS backend REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient constructs a new client for the given base URL. The token,
// when non-empty, is sent as a bearer credential on every request.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ReportQuery carries the optional date bounds and filters accepted by
// the backend report endpoints.
type ReportQuery struct {
	StartDate  string
	EndDate    string
	Status     string
	SupplierID int64
	CustomerID int64
	Type       string
}

func (q ReportQuery) values() url.Values {
	v := url.Values{}
	if q.StartDate != "" {
		v.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		v.Set("endDate", q.EndDate)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.SupplierID > 0 {
		v.Set("supplierId", strconv.FormatInt(q.SupplierID, 10))
	}
	if q.CustomerID > 0 {
		v.Set("customerId", strconv.FormatInt(q.CustomerID, 10))
	}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	return v
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posapi: %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("posapi: %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("posapi: %s: decode: %w", path, err)
	}
	return nil
}

// SalesReport fetches sales in the given range.
func (c *Client) SalesReport(ctx context.Context, q ReportQuery) ([]reports.Sale, error) {
	var payload struct {
		Data struct {
			Sales []reports.Sale `json:"sales"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/api/reports/sales", q.values(), &payload); err != nil {
		return nil, err
	}
	return payload.Data.Sales, nil
}

// PurchasesReport fetches purchase orders in the given range.
func (c *Client) PurchasesReport(ctx context.Context, q ReportQuery) ([]reports.PurchaseOrder, error) {
	var payload struct {
		Data struct {
			Purchases []reports.PurchaseOrder `json:"purchases"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/api/reports/purchases", q.values(), &payload); err != nil {
		return nil, err
	}
	return payload.Data.Purchases, nil
}

// InventoryReport fetches the full stock list.
func (c *Client) InventoryReport(ctx context.Context, q ReportQuery) ([]reports.InventoryItem, error) {
	var payload struct {
		Data struct {
			InventoryItem []reports.InventoryItem `json:"inventoryItem"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/api/reports/inventory", q.values(), &payload); err != nil {
		return nil, err
	}
	return payload.Data.InventoryItem, nil
}

// LowStockReport pulls the full inventory list and keeps items at or
// below their minimum level, regardless of item type. Zero matches is
// reported as reports.ErrNoData.
func (c *Client) LowStockReport(ctx context.Context, q ReportQuery) ([]reports.InventoryItem, error) {
	items, err := c.InventoryReport(ctx, q)
	if err != nil {
		return nil, err
	}
	low := make([]reports.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.LowStock() {
			low = append(low, it)
		}
	}
	if len(low) == 0 {
		return nil, fmt.Errorf("%w: no items at or below minimum level", reports.ErrNoData)
	}
	return low, nil
}

// OutOfStockReport pulls the full inventory list and keeps depleted
// items. Zero matches is reported as reports.ErrNoData.
func (c *Client) OutOfStockReport(ctx context.Context, q ReportQuery) ([]reports.InventoryItem, error) {
	items, err := c.InventoryReport(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]reports.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.OutOfStock() {
			out = append(out, it)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no out of stock items", reports.ErrNoData)
	}
	return out, nil
}

// AdjustmentsReport fetches stock adjustments in the given range. An
// empty range is reported as reports.ErrNoData.
func (c *Client) AdjustmentsReport(ctx context.Context, q ReportQuery) ([]reports.Adjustment, error) {
	var payload struct {
		Data struct {
			Adjustments []reports.Adjustment `json:"adjustments"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/api/reports/adjustments", q.values(), &payload); err != nil {
		return nil, err
	}
	if len(payload.Data.Adjustments) == 0 {
		return nil, fmt.Errorf("%w: no adjustments in range", reports.ErrNoData)
	}
	return payload.Data.Adjustments, nil
}

// ProductionReport fetches production batches in the given range.
func (c *Client) ProductionReport(ctx context.Context, q ReportQuery) ([]reports.ProductionRecord, error) {
	var payload struct {
		Data struct {
			Production []reports.ProductionRecord `json:"production"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/api/reports/production", q.values(), &payload); err != nil {
		return nil, err
	}
	return payload.Data.Production, nil
}

// FinancialReport fetches ledger entries in the given range.
func (c *Client) FinancialReport(ctx context.Context, q ReportQuery) ([]reports.FinancialEntry, error) {
	var payload struct {
		Data struct {
			Entries []reports.FinancialEntry `json:"entries"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/api/reports/financial", q.values(), &payload); err != nil {
		return nil, err
	}
	return payload.Data.Entries, nil
}

// ExpensesReport fetches operating expenses in the given range.
func (c *Client) ExpensesReport(ctx context.Context, q ReportQuery) ([]reports.Expense, error) {
	var payload struct {
		Data struct {
			Expenses []reports.Expense `json:"expenses"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/api/reports/expenses", q.values(), &payload); err != nil {
		return nil, err
	}
	return payload.Data.Expenses, nil
}

// Sale fetches one sale with its cart lines, for receipt rendering.
func (c *Client) Sale(ctx context.Context, id int64) (reports.Sale, error) {
	var payload struct {
		Data struct {
			Sale reports.Sale `json:"sale"`
		} `json:"data"`
	}
	path := "/api/sales/" + strconv.FormatInt(id, 10)
	if err := c.get(ctx, path, nil, &payload); err != nil {
		return reports.Sale{}, err
	}
	return payload.Data.Sale, nil
}

// Settings fetches the company information block. Callers treat any
// failure as recoverable and fall back to defaults.
func (c *Client) Settings(ctx context.Context) (reports.CompanyInfo, error) {
	var payload struct {
		Data struct {
			Settings reports.CompanyInfo `json:"settings"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/api/settings", nil, &payload); err != nil {
		return reports.CompanyInfo{}, err
	}
	return payload.Data.Settings, nil
}
