package reports

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildSalesTable(t *testing.T) {
	sales := []Sale{
		{ID: 1, Date: day(1), CustomerName: "Neema", Status: "completed", Total: 100, Paid: 100, Balance: 0},
		{ID: 2, Date: day(2), CustomerName: "Juma", Status: "pending", Total: 250, Paid: 200, Balance: 50},
	}
	tab := BuildSalesTable(sales, "TZS")

	if tab.Title != TitleSales {
		t.Fatalf("title %q", tab.Title)
	}
	if len(tab.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tab.Rows))
	}
	if tab.Rows[0][0] != "1" || tab.Rows[1][0] != "2" {
		t.Fatalf("ordinals wrong: %v %v", tab.Rows[0][0], tab.Rows[1][0])
	}
	if tab.Rows[0][1] != "01-06-2025" {
		t.Fatalf("date cell %q", tab.Rows[0][1])
	}
	if len(tab.Summary) != 3 {
		t.Fatalf("expected 3 summary lines, got %d", len(tab.Summary))
	}
	if tab.Summary[0].Value != "TZS 350" {
		t.Fatalf("total %q", tab.Summary[0].Value)
	}
	if tab.Summary[1].Value != "TZS 300" {
		t.Fatalf("paid %q", tab.Summary[1].Value)
	}
	if tab.Summary[2].Value != "TZS 50" {
		t.Fatalf("balance %q", tab.Summary[2].Value)
	}
}

func TestBuildSalesTableEmpty(t *testing.T) {
	tab := BuildSalesTable(nil, "TZS")
	if !tab.NoData {
		t.Fatal("expected NoData")
	}
	if len(tab.Rows) != 0 || len(tab.Summary) != 0 {
		t.Fatalf("empty table must carry no rows or summary")
	}
	if len(tab.Columns) == 0 {
		t.Fatal("columns must survive for the empty layout")
	}
}

func TestBuildPurchasesTable(t *testing.T) {
	orders := []PurchaseOrder{
		{ID: 1, Date: day(3), SupplierName: "Unga Ltd", Status: "received", Total: 500000, Paid: 500000},
		{ID: 2, Date: day(4), SupplierName: "Azania", Status: "ordered", Total: 120000, Paid: 0, Balance: 120000},
	}
	tab := BuildPurchasesTable(orders, "TZS")
	if len(tab.Rows) != 2 || len(tab.Summary) != 3 {
		t.Fatalf("rows %d summary %d", len(tab.Rows), len(tab.Summary))
	}
	if tab.Summary[0].Value != "TZS 620,000" {
		t.Fatalf("total %q", tab.Summary[0].Value)
	}
}

func TestBuildInventoryTable(t *testing.T) {
	items := []InventoryItem{
		{Name: "Flour", Type: "raw", Unit: "kg", CurrentQuantity: 50, MinLevel: 20, UnitCost: 2000},
		{Name: "Boxes", Type: "supply", Unit: "pc", CurrentQuantity: 10, MinLevel: 5, UnitCost: 300},
	}
	tab := BuildInventoryTable(items, "TZS")
	if len(tab.Rows) != 2 {
		t.Fatalf("rows %d", len(tab.Rows))
	}
	if len(tab.Summary) != 1 {
		t.Fatalf("summary %d", len(tab.Summary))
	}
	// 50*2000 + 10*300
	if tab.Summary[0].Value != "TZS 103,000" {
		t.Fatalf("stock value %q", tab.Summary[0].Value)
	}
}

func TestBuildLowStockTable(t *testing.T) {
	items := []InventoryItem{
		{Name: "Yeast", Type: "raw", Unit: "kg", CurrentQuantity: 2, MinLevel: 5},
	}
	tab := BuildLowStockTable(items)
	if tab.Title != TitleLowStock {
		t.Fatalf("title %q", tab.Title)
	}
	if len(tab.Summary) != 1 || tab.Summary[0].Value != "1" {
		t.Fatalf("summary %v", tab.Summary)
	}
}

func TestBuildAdjustmentsTable(t *testing.T) {
	adjs := []Adjustment{
		{Date: day(5), ItemName: "Sugar", Type: "decrease", Quantity: -3, Reason: "spillage", AdjustedBy: "amina"},
		{Date: day(6), ItemName: "Sugar", Type: "increase", Quantity: 10, Reason: "recount", AdjustedBy: "amina"},
	}
	tab := BuildAdjustmentsTable(adjs)
	if len(tab.Rows) != 2 {
		t.Fatalf("rows %d", len(tab.Rows))
	}
	if tab.Summary[0].Value != "7" {
		t.Fatalf("quantity adjusted %q", tab.Summary[0].Value)
	}
}

func TestBuildProductionTable(t *testing.T) {
	records := []ProductionRecord{
		{Date: day(7), ProductName: "Bread", Produced: 120, Damaged: 4, ProducedBy: "joel"},
		{Date: day(7), ProductName: "Buns", Produced: 300, Damaged: 0, ProducedBy: "joel"},
	}
	tab := BuildProductionTable(records)
	if len(tab.Summary) != 2 {
		t.Fatalf("summary %d", len(tab.Summary))
	}
	if tab.Summary[0].Value != "420" || tab.Summary[1].Value != "4" {
		t.Fatalf("summary %v", tab.Summary)
	}
}

func TestBuildFinancialTable(t *testing.T) {
	entries := []FinancialEntry{
		{Date: day(8), Description: "Daily sales", Type: "income", Income: 800000},
		{Date: day(8), Description: "Flour purchase", Type: "expense", Expense: 300000},
	}
	tab := BuildFinancialTable(entries, "TZS")
	if len(tab.Summary) != 3 {
		t.Fatalf("summary %d", len(tab.Summary))
	}
	if tab.Summary[2].Label != "Net" || tab.Summary[2].Value != "TZS 500,000" {
		t.Fatalf("net %v", tab.Summary[2])
	}
}

func TestBuildExpensesTable(t *testing.T) {
	expenses := []Expense{
		{Date: day(9), Category: "Utilities", Description: "Electricity", Amount: 90000},
		{Date: day(10), Category: "Transport", Description: "Deliveries", Amount: 35000},
	}
	tab := BuildExpensesTable(expenses, "TZS")
	if len(tab.Summary) != 1 || tab.Summary[0].Value != "TZS 125,000" {
		t.Fatalf("summary %v", tab.Summary)
	}
}

// Every layout must span the full 12-column grid.
func TestColumnWidthsSpanGrid(t *testing.T) {
	tables := []Table{
		BuildSalesTable(nil, "TZS"),
		BuildPurchasesTable(nil, "TZS"),
		BuildInventoryTable(nil, "TZS"),
		BuildLowStockTable(nil),
		BuildOutOfStockTable(nil),
		BuildAdjustmentsTable(nil),
		BuildProductionTable(nil),
		BuildFinancialTable(nil, "TZS"),
		BuildExpensesTable(nil, "TZS"),
	}
	for _, tab := range tables {
		sum := 0
		for _, col := range tab.Columns {
			sum += col.Width
		}
		if sum != 12 {
			t.Fatalf("%s: column widths sum to %d", tab.Title, sum)
		}
	}
}

func TestInventoryItemPredicates(t *testing.T) {
	at := InventoryItem{CurrentQuantity: 5, MinLevel: 5}
	if !at.LowStock() {
		t.Fatal("quantity equal to minimum must count as low stock")
	}
	above := InventoryItem{CurrentQuantity: 6, MinLevel: 5}
	if above.LowStock() {
		t.Fatal("quantity above minimum is not low stock")
	}
	if !(InventoryItem{CurrentQuantity: 0}).OutOfStock() {
		t.Fatal("zero quantity is out of stock")
	}
	if !(InventoryItem{CurrentQuantity: -1}).OutOfStock() {
		t.Fatal("negative quantity is out of stock")
	}
	if (InventoryItem{CurrentQuantity: 0.5}).OutOfStock() {
		t.Fatal("positive quantity is not out of stock")
	}
}

func TestCompanyInfoWithDefaults(t *testing.T) {
	partial := CompanyInfo{BakeryName: "Mkate Wetu", Phone: "+255 700 111 222"}
	got := partial.WithDefaults()
	if got.BakeryName != "Mkate Wetu" {
		t.Fatalf("name overwritten: %q", got.BakeryName)
	}
	if got.Phone != "+255 700 111 222" {
		t.Fatalf("phone overwritten: %q", got.Phone)
	}
	if got.Address == "" || got.Email == "" || got.Website == "" {
		t.Fatalf("blank fields not defaulted: %+v", got)
	}
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("out-of-stock")
	if err != nil || kind != KindOutOfStock {
		t.Fatalf("kind %q err %v", kind, err)
	}
	if _, err := ParseKind("payroll"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
