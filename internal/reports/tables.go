package reports

import "strconv"

// Report titles as rendered in the company header block.
const (
	TitleSales       = "Sales Report"
	TitlePurchases   = "Purchases Report"
	TitleInventory   = "Inventory Report"
	TitleLowStock    = "Low Stock Report"
	TitleOutOfStock  = "Out of Stock Report"
	TitleAdjustments = "Inventory Adjustments Report"
	TitleProduction  = "Production Report"
	TitleFinancial   = "Financial Report"
	TitleExpenses    = "Expenses Report"
)

func ordinal(i int) string {
	return strconv.Itoa(i + 1)
}

// BuildSalesTable lays out one row per sale and a total/paid/balance
// summary triad recomputed from the rows.
func BuildSalesTable(sales []Sale, currency string) Table {
	t := Table{
		Title: TitleSales,
		Columns: []Column{
			{Header: "#", Width: 1, Align: AlignCenter},
			{Header: "Date", Width: 2, Align: AlignLeft},
			{Header: "Customer", Width: 2, Align: AlignLeft},
			{Header: "Status", Width: 1, Align: AlignLeft},
			{Header: "Total", Width: 2, Align: AlignRight},
			{Header: "Paid", Width: 2, Align: AlignRight},
			{Header: "Balance", Width: 2, Align: AlignRight},
		},
	}
	if len(sales) == 0 {
		t.NoData = true
		return t
	}
	var total, paid, balance float64
	for i, s := range sales {
		total += s.Total
		paid += s.Paid
		balance += s.Balance
		t.Rows = append(t.Rows, []string{
			ordinal(i),
			FormatDate(s.Date),
			s.CustomerName,
			s.Status,
			FormatMoney(currency, s.Total),
			FormatMoney(currency, s.Paid),
			FormatMoney(currency, s.Balance),
		})
	}
	t.Summary = []SummaryLine{
		{Label: "Total", Value: FormatMoney(currency, total)},
		{Label: "Paid", Value: FormatMoney(currency, paid)},
		{Label: "Balance", Value: FormatMoney(currency, balance)},
	}
	return t
}

// BuildPurchasesTable mirrors the sales layout for supplier purchase
// orders, including the triad summary.
func BuildPurchasesTable(orders []PurchaseOrder, currency string) Table {
	t := Table{
		Title: TitlePurchases,
		Columns: []Column{
			{Header: "#", Width: 1, Align: AlignCenter},
			{Header: "Date", Width: 2, Align: AlignLeft},
			{Header: "Supplier", Width: 2, Align: AlignLeft},
			{Header: "Status", Width: 1, Align: AlignLeft},
			{Header: "Total", Width: 2, Align: AlignRight},
			{Header: "Paid", Width: 2, Align: AlignRight},
			{Header: "Balance", Width: 2, Align: AlignRight},
		},
	}
	if len(orders) == 0 {
		t.NoData = true
		return t
	}
	var total, paid, balance float64
	for i, o := range orders {
		total += o.Total
		paid += o.Paid
		balance += o.Balance
		t.Rows = append(t.Rows, []string{
			ordinal(i),
			FormatDate(o.Date),
			o.SupplierName,
			o.Status,
			FormatMoney(currency, o.Total),
			FormatMoney(currency, o.Paid),
			FormatMoney(currency, o.Balance),
		})
	}
	t.Summary = []SummaryLine{
		{Label: "Total", Value: FormatMoney(currency, total)},
		{Label: "Paid", Value: FormatMoney(currency, paid)},
		{Label: "Balance", Value: FormatMoney(currency, balance)},
	}
	return t
}

// BuildInventoryTable values each stock line at its unit cost and sums
// the valuation.
func BuildInventoryTable(items []InventoryItem, currency string) Table {
	t := Table{
		Title: TitleInventory,
		Columns: []Column{
			{Header: "#", Width: 1, Align: AlignCenter},
			{Header: "Item", Width: 2, Align: AlignLeft},
			{Header: "Type", Width: 1, Align: AlignLeft},
			{Header: "Unit", Width: 1, Align: AlignLeft},
			{Header: "Quantity", Width: 2, Align: AlignRight},
			{Header: "Min", Width: 1, Align: AlignRight},
			{Header: "Unit Cost", Width: 2, Align: AlignRight},
			{Header: "Value", Width: 2, Align: AlignRight},
		},
	}
	if len(items) == 0 {
		t.NoData = true
		return t
	}
	var value float64
	for i, it := range items {
		value += it.Value()
		t.Rows = append(t.Rows, []string{
			ordinal(i),
			it.Name,
			it.Type,
			it.Unit,
			FormatQuantity(it.CurrentQuantity),
			FormatQuantity(it.MinLevel),
			FormatMoney(currency, it.UnitCost),
			FormatMoney(currency, it.Value()),
		})
	}
	t.Summary = []SummaryLine{
		{Label: "Total Stock Value", Value: FormatMoney(currency, value)},
	}
	return t
}

func buildStockAlertTable(title string, items []InventoryItem) Table {
	t := Table{
		Title: title,
		Columns: []Column{
			{Header: "#", Width: 1, Align: AlignCenter},
			{Header: "Item", Width: 4, Align: AlignLeft},
			{Header: "Type", Width: 2, Align: AlignLeft},
			{Header: "Unit", Width: 1, Align: AlignLeft},
			{Header: "Quantity", Width: 2, Align: AlignRight},
			{Header: "Min Level", Width: 2, Align: AlignRight},
		},
	}
	if len(items) == 0 {
		t.NoData = true
		return t
	}
	for i, it := range items {
		t.Rows = append(t.Rows, []string{
			ordinal(i),
			it.Name,
			it.Type,
			it.Unit,
			FormatQuantity(it.CurrentQuantity),
			FormatQuantity(it.MinLevel),
		})
	}
	t.Summary = []SummaryLine{
		{Label: "Items", Value: strconv.Itoa(len(items))},
	}
	return t
}

// BuildLowStockTable lists items at or below their minimum level.
func BuildLowStockTable(items []InventoryItem) Table {
	return buildStockAlertTable(TitleLowStock, items)
}

// BuildOutOfStockTable lists depleted items.
func BuildOutOfStockTable(items []InventoryItem) Table {
	return buildStockAlertTable(TitleOutOfStock, items)
}

// BuildAdjustmentsTable lists manual stock corrections with the total
// quantity moved.
func BuildAdjustmentsTable(adjs []Adjustment) Table {
	t := Table{
		Title: TitleAdjustments,
		Columns: []Column{
			{Header: "#", Width: 1, Align: AlignCenter},
			{Header: "Date", Width: 2, Align: AlignLeft},
			{Header: "Item", Width: 3, Align: AlignLeft},
			{Header: "Type", Width: 1, Align: AlignLeft},
			{Header: "Qty", Width: 1, Align: AlignRight},
			{Header: "Reason", Width: 2, Align: AlignLeft},
			{Header: "By", Width: 2, Align: AlignLeft},
		},
	}
	if len(adjs) == 0 {
		t.NoData = true
		return t
	}
	var qty float64
	for i, a := range adjs {
		qty += a.Quantity
		t.Rows = append(t.Rows, []string{
			ordinal(i),
			FormatDate(a.Date),
			a.ItemName,
			a.Type,
			FormatQuantity(a.Quantity),
			a.Reason,
			a.AdjustedBy,
		})
	}
	t.Summary = []SummaryLine{
		{Label: "Total Quantity Adjusted", Value: FormatQuantity(qty)},
	}
	return t
}

// BuildProductionTable lists batches with produced and damaged sums.
func BuildProductionTable(records []ProductionRecord) Table {
	t := Table{
		Title: TitleProduction,
		Columns: []Column{
			{Header: "#", Width: 1, Align: AlignCenter},
			{Header: "Date", Width: 2, Align: AlignLeft},
			{Header: "Product", Width: 3, Align: AlignLeft},
			{Header: "Produced", Width: 2, Align: AlignRight},
			{Header: "Damaged", Width: 2, Align: AlignRight},
			{Header: "By", Width: 2, Align: AlignLeft},
		},
	}
	if len(records) == 0 {
		t.NoData = true
		return t
	}
	var produced, damaged float64
	for i, r := range records {
		produced += r.Produced
		damaged += r.Damaged
		t.Rows = append(t.Rows, []string{
			ordinal(i),
			FormatDate(r.Date),
			r.ProductName,
			FormatQuantity(r.Produced),
			FormatQuantity(r.Damaged),
			r.ProducedBy,
		})
	}
	t.Summary = []SummaryLine{
		{Label: "Total Produced", Value: FormatQuantity(produced)},
		{Label: "Total Damaged", Value: FormatQuantity(damaged)},
	}
	return t
}

// BuildFinancialTable lists ledger entries with an income/expense/net
// summary triad.
func BuildFinancialTable(entries []FinancialEntry, currency string) Table {
	t := Table{
		Title: TitleFinancial,
		Columns: []Column{
			{Header: "#", Width: 1, Align: AlignCenter},
			{Header: "Date", Width: 2, Align: AlignLeft},
			{Header: "Description", Width: 4, Align: AlignLeft},
			{Header: "Type", Width: 1, Align: AlignLeft},
			{Header: "Income", Width: 2, Align: AlignRight},
			{Header: "Expense", Width: 2, Align: AlignRight},
		},
	}
	if len(entries) == 0 {
		t.NoData = true
		return t
	}
	var income, expense float64
	for i, e := range entries {
		income += e.Income
		expense += e.Expense
		t.Rows = append(t.Rows, []string{
			ordinal(i),
			FormatDate(e.Date),
			e.Description,
			e.Type,
			FormatMoney(currency, e.Income),
			FormatMoney(currency, e.Expense),
		})
	}
	t.Summary = []SummaryLine{
		{Label: "Total Income", Value: FormatMoney(currency, income)},
		{Label: "Total Expense", Value: FormatMoney(currency, expense)},
		{Label: "Net", Value: FormatMoney(currency, income-expense)},
	}
	return t
}

// BuildExpensesTable lists operating expenses with their total.
func BuildExpensesTable(expenses []Expense, currency string) Table {
	t := Table{
		Title: TitleExpenses,
		Columns: []Column{
			{Header: "#", Width: 1, Align: AlignCenter},
			{Header: "Date", Width: 2, Align: AlignLeft},
			{Header: "Category", Width: 2, Align: AlignLeft},
			{Header: "Description", Width: 5, Align: AlignLeft},
			{Header: "Amount", Width: 2, Align: AlignRight},
		},
	}
	if len(expenses) == 0 {
		t.NoData = true
		return t
	}
	var total float64
	for i, e := range expenses {
		total += e.Amount
		t.Rows = append(t.Rows, []string{
			ordinal(i),
			FormatDate(e.Date),
			e.Category,
			e.Description,
			FormatMoney(currency, e.Amount),
		})
	}
	t.Summary = []SummaryLine{
		{Label: "Total Expenses", Value: FormatMoney(currency, total)},
	}
	return t
}
