package export

import (
	"context"

	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/posapi"
	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/reports"
)

// API is the slice of the POS client the exporter consumes, one typed
// fetch per report kind plus the receipt lookup.
type API interface {
	SalesReport(ctx context.Context, q posapi.ReportQuery) ([]reports.Sale, error)
	PurchasesReport(ctx context.Context, q posapi.ReportQuery) ([]reports.PurchaseOrder, error)
	InventoryReport(ctx context.Context, q posapi.ReportQuery) ([]reports.InventoryItem, error)
	LowStockReport(ctx context.Context, q posapi.ReportQuery) ([]reports.InventoryItem, error)
	OutOfStockReport(ctx context.Context, q posapi.ReportQuery) ([]reports.InventoryItem, error)
	AdjustmentsReport(ctx context.Context, q posapi.ReportQuery) ([]reports.Adjustment, error)
	ProductionReport(ctx context.Context, q posapi.ReportQuery) ([]reports.ProductionRecord, error)
	FinancialReport(ctx context.Context, q posapi.ReportQuery) ([]reports.FinancialEntry, error)
	ExpensesReport(ctx context.Context, q posapi.ReportQuery) ([]reports.Expense, error)
	Sale(ctx context.Context, id int64) (reports.Sale, error)
}

// Definition binds one report kind to its fetch-and-build step. The
// registry is an explicit mapping constructed once at startup; adding
// a kind means adding an entry here and a table builder.
type Definition struct {
	// SuppressEmpty converts a fetch-layer ErrNoData into a soft
	// nothing-to-export result instead of rendering an empty document.
	SuppressEmpty bool

	// Fetch obtains the payload and normalizes it into a table.
	Fetch func(ctx context.Context, q posapi.ReportQuery) (reports.Table, error)
}

func buildRegistry(api API, currency string) map[reports.Kind]Definition {
	return map[reports.Kind]Definition{
		reports.KindSales: {
			Fetch: func(ctx context.Context, q posapi.ReportQuery) (reports.Table, error) {
				rows, err := api.SalesReport(ctx, q)
				if err != nil {
					return reports.Table{}, err
				}
				return reports.BuildSalesTable(rows, currency), nil
			},
		},
		reports.KindPurchases: {
			Fetch: func(ctx context.Context, q posapi.ReportQuery) (reports.Table, error) {
				rows, err := api.PurchasesReport(ctx, q)
				if err != nil {
					return reports.Table{}, err
				}
				return reports.BuildPurchasesTable(rows, currency), nil
			},
		},
		reports.KindInventory: {
			Fetch: func(ctx context.Context, q posapi.ReportQuery) (reports.Table, error) {
				rows, err := api.InventoryReport(ctx, q)
				if err != nil {
					return reports.Table{}, err
				}
				return reports.BuildInventoryTable(rows, currency), nil
			},
		},
		reports.KindLowStock: {
			SuppressEmpty: true,
			Fetch: func(ctx context.Context, q posapi.ReportQuery) (reports.Table, error) {
				rows, err := api.LowStockReport(ctx, q)
				if err != nil {
					return reports.Table{}, err
				}
				return reports.BuildLowStockTable(rows), nil
			},
		},
		reports.KindOutOfStock: {
			SuppressEmpty: true,
			Fetch: func(ctx context.Context, q posapi.ReportQuery) (reports.Table, error) {
				rows, err := api.OutOfStockReport(ctx, q)
				if err != nil {
					return reports.Table{}, err
				}
				return reports.BuildOutOfStockTable(rows), nil
			},
		},
		reports.KindAdjustments: {
			SuppressEmpty: true,
			Fetch: func(ctx context.Context, q posapi.ReportQuery) (reports.Table, error) {
				rows, err := api.AdjustmentsReport(ctx, q)
				if err != nil {
					return reports.Table{}, err
				}
				return reports.BuildAdjustmentsTable(rows), nil
			},
		},
		reports.KindProduction: {
			Fetch: func(ctx context.Context, q posapi.ReportQuery) (reports.Table, error) {
				rows, err := api.ProductionReport(ctx, q)
				if err != nil {
					return reports.Table{}, err
				}
				return reports.BuildProductionTable(rows), nil
			},
		},
		reports.KindFinancial: {
			Fetch: func(ctx context.Context, q posapi.ReportQuery) (reports.Table, error) {
				rows, err := api.FinancialReport(ctx, q)
				if err != nil {
					return reports.Table{}, err
				}
				return reports.BuildFinancialTable(rows, currency), nil
			},
		},
		reports.KindExpenses: {
			Fetch: func(ctx context.Context, q posapi.ReportQuery) (reports.Table, error) {
				rows, err := api.ExpensesReport(ctx, q)
				if err != nil {
					return reports.Table{}, err
				}
				return reports.BuildExpensesTable(rows, currency), nil
			},
		},
	}
}
