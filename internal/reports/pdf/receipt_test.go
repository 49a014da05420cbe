package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/reports"
)

func sampleSale() reports.Sale {
	due := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	return reports.Sale{
		ID:            42,
		Date:          time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
		CustomerName:  "Walk-in",
		PaymentMethod: "credit",
		Total:         5400,
		Paid:          0,
		TaxAmount:     400,
		DueDate:       &due,
		ServedBy:      "amina",
		Items: []reports.SaleItem{
			{ProductName: "Bread", Quantity: 2, UnitPrice: 2500, Subtotal: 5000},
		},
	}
}

func TestParseReceiptFormat(t *testing.T) {
	format, err := ParseReceiptFormat("")
	if err != nil || format != ReceiptA5 {
		t.Fatalf("default format %q err %v", format, err)
	}
	format, err = ParseReceiptFormat("tape")
	if err != nil || format != ReceiptTape {
		t.Fatalf("tape format %q err %v", format, err)
	}
	if _, err := ParseReceiptFormat("letter"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRenderReceiptBothFormats(t *testing.T) {
	info := reports.CompanyInfo{}.WithDefaults()
	for _, format := range []ReceiptFormat{ReceiptA5, ReceiptTape} {
		blob, err := RenderReceipt(sampleSale(), info, "TZS", format)
		if err != nil {
			t.Fatalf("%s: render: %v", format, err)
		}
		if !bytes.HasPrefix(blob, []byte("%PDF")) {
			t.Fatalf("%s: output is not a PDF", format)
		}
	}
}

func TestRenderReceiptWithoutItems(t *testing.T) {
	sale := sampleSale()
	sale.Items = nil
	sale.PaymentMethod = "cash"
	sale.DueDate = nil
	blob, err := RenderReceipt(sale, reports.CompanyInfo{}.WithDefaults(), "TZS", ReceiptA5)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(blob) == 0 {
		t.Fatal("empty document")
	}
}
