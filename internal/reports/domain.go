// Package reports defines the typed report payloads and the tabular
// model shared by every report generator. Each report kind carries its
// own row type; totals are always recomputed from the row slice so the
// rendered summary can never drift from the listed data.
package reports

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoData signals that a derived or filtered report produced zero rows.
// Orchestrators convert it into a soft "nothing to export" result instead
// of a hard failure.
var ErrNoData = errors.New("reports: no data")

// ErrUnknownKind indicates a report kind outside the registry.
var ErrUnknownKind = errors.New("reports: unknown report kind")

// Kind identifies one business report type.
type Kind string

// Report kinds served by the export pipeline.
const (
	KindSales       Kind = "sales"
	KindPurchases   Kind = "purchases"
	KindInventory   Kind = "inventory"
	KindLowStock    Kind = "low-stock"
	KindOutOfStock  Kind = "out-of-stock"
	KindAdjustments Kind = "adjustments"
	KindProduction  Kind = "production"
	KindFinancial   Kind = "financial"
	KindExpenses    Kind = "expenses"
)

// ParseKind validates a URL path segment into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSales, KindPurchases, KindInventory, KindLowStock, KindOutOfStock,
		KindAdjustments, KindProduction, KindFinancial, KindExpenses:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Request describes one export call. Dates are optional ISO dates
// (2006-01-02); filters apply only to the kinds that understand them.
type Request struct {
	Kind       Kind   `validate:"required"`
	StartDate  string `validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `validate:"omitempty,datetime=2006-01-02"`
	Status     string `validate:"omitempty,alphanum"`
	SupplierID int64  `validate:"omitempty,min=1"`
	CustomerID int64  `validate:"omitempty,min=1"`
	Type       string `validate:"omitempty,oneof=raw supply"`
}

// CompanyInfo is the settings block rendered in every report header.
type CompanyInfo struct {
	BakeryName string `json:"bakeryName"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Website    string `json:"website"`
}

// Default company info used field-by-field when the settings endpoint is
// unavailable or returns blanks.
var defaultCompanyInfo = CompanyInfo{
	BakeryName: "APOTEK Bakery",
	Address:    "P.O. Box 1404, Dar es Salaam",
	Phone:      "+255 744 000 000",
	Email:      "info@apotekbakery.co.tz",
	Website:    "www.apotekbakery.co.tz",
}

// WithDefaults fills every blank field from the default company info.
// Fallback is per field, never all-or-nothing.
func (c CompanyInfo) WithDefaults() CompanyInfo {
	if c.BakeryName == "" {
		c.BakeryName = defaultCompanyInfo.BakeryName
	}
	if c.Address == "" {
		c.Address = defaultCompanyInfo.Address
	}
	if c.Phone == "" {
		c.Phone = defaultCompanyInfo.Phone
	}
	if c.Email == "" {
		c.Email = defaultCompanyInfo.Email
	}
	if c.Website == "" {
		c.Website = defaultCompanyInfo.Website
	}
	return c
}

// Sale is one POS sale as returned by the backend sales report endpoint.
type Sale struct {
	ID            int64      `json:"id"`
	Date          time.Time  `json:"date"`
	CustomerName  string     `json:"customerName"`
	PaymentMethod string     `json:"paymentMethod"`
	Status        string     `json:"status"`
	Total         float64    `json:"total"`
	Paid          float64    `json:"paid"`
	Balance       float64    `json:"balance"`
	TaxAmount     float64    `json:"taxAmount"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	ServedBy      string     `json:"servedBy,omitempty"`
	Items         []SaleItem `json:"items,omitempty"`
}

// SaleItem is one cart line on a sale, used by the receipt generator.
type SaleItem struct {
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

// PurchaseOrder is one supplier purchase as returned by the backend.
type PurchaseOrder struct {
	ID           int64     `json:"id"`
	Date         time.Time `json:"date"`
	SupplierName string    `json:"supplierName"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	Paid         float64   `json:"paid"`
	Balance      float64   `json:"balance"`
}

// InventoryItem is one stock line. Type distinguishes raw materials from
// supplies; the low/out-of-stock predicates ignore the distinction.
type InventoryItem struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Unit            string  `json:"unit"`
	CurrentQuantity float64 `json:"currentQuantity"`
	MinLevel        float64 `json:"minLevel"`
	UnitCost        float64 `json:"unitCost"`
}

// Value is the stock valuation of the line at its recorded unit cost.
func (i InventoryItem) Value() float64 {
	return i.CurrentQuantity * i.UnitCost
}

// LowStock reports whether the line is at or below its minimum level.
func (i InventoryItem) LowStock() bool {
	return i.CurrentQuantity <= i.MinLevel
}

// OutOfStock reports whether the line is depleted.
func (i InventoryItem) OutOfStock() bool {
	return i.CurrentQuantity <= 0
}

// Adjustment is one manual stock correction.
type Adjustment struct {
	ID         int64     `json:"id"`
	Date       time.Time `json:"date"`
	ItemName   string    `json:"itemName"`
	Type       string    `json:"type"`
	Quantity   float64   `json:"quantity"`
	Reason     string    `json:"reason"`
	AdjustedBy string    `json:"adjustedBy"`
}

// ProductionRecord is one batch produced by the bakery.
type ProductionRecord struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	ProductName string    `json:"productName"`
	Produced    float64   `json:"quantityProduced"`
	Damaged     float64   `json:"quantityDamaged"`
	ProducedBy  string    `json:"producedBy"`
}

// FinancialEntry is one ledger line in the financial report.
type FinancialEntry struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Income      float64   `json:"income"`
	Expense     float64   `json:"expense"`
}

// Expense is one recorded operating expense.
type Expense struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
}
