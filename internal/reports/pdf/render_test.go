package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/reports"
)

func sampleHeader() Header {
	return Header{
		Company:     reports.CompanyInfo{}.WithDefaults(),
		Title:       reports.TitleSales,
		RangeText:   "All Time",
		GeneratedAt: time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestRenderProducesPDF(t *testing.T) {
	tab := reports.BuildSalesTable([]reports.Sale{
		{Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), CustomerName: "Neema", Status: "completed", Total: 1500, Paid: 1500},
	}, "TZS")

	blob, err := Render(sampleHeader(), tab)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(blob, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", blob[:min(8, len(blob))])
	}
}

func TestRenderHandlesNoDataTable(t *testing.T) {
	tab := reports.BuildExpensesTable(nil, "TZS")
	if !tab.NoData {
		t.Fatal("expected no-data table")
	}
	blob, err := Render(sampleHeader(), tab)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(blob) == 0 {
		t.Fatal("empty document")
	}
}
