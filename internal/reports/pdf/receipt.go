package pdf

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/reports"
)

// ReceiptFormat selects the physical receipt layout.
type ReceiptFormat string

// Supported receipt layouts: a fixed small page and a narrow continuous
// tape for thermal printers.
const (
	ReceiptA5   ReceiptFormat = "a5"
	ReceiptTape ReceiptFormat = "tape"
)

// ParseReceiptFormat validates a format query value, defaulting to the
// small-page layout when empty.
func ParseReceiptFormat(s string) (ReceiptFormat, error) {
	switch ReceiptFormat(s) {
	case "":
		return ReceiptA5, nil
	case ReceiptA5, ReceiptTape:
		return ReceiptFormat(s), nil
	}
	return "", fmt.Errorf("pdf: unknown receipt format %q", s)
}

// tape dimensions in millimetres: 80mm thermal roll.
const (
	tapeWidth  = 80
	tapeHeight = 297
)

func newReceiptDocument(format ReceiptFormat) core.Maroto {
	builder := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithLeftMargin(5).
		WithTopMargin(8).
		WithRightMargin(5).
		WithBottomMargin(5)
	if format == ReceiptTape {
		builder = builder.WithDimensions(tapeWidth, tapeHeight)
	} else {
		builder = builder.WithPageSize(pagesize.A5)
	}
	return maroto.New(builder.Build())
}

// RenderReceipt produces the PDF receipt for one sale. Line totals are
// recomputed from the cart lines; the tax amount is taken from the sale
// and the grand total is subtotal plus tax.
func RenderReceipt(sale reports.Sale, info reports.CompanyInfo, currency string, format ReceiptFormat) ([]byte, error) {
	m := newReceiptDocument(format)
	info = info.WithDefaults()

	m.AddRow(8,
		text.NewCol(12, info.BakeryName, props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(5,
		text.NewCol(12, info.Address, props.Text{
			Size:  8,
			Align: align.Center,
		}),
	)
	if contact := contactLine(info); contact != "" {
		m.AddRow(5,
			text.NewCol(12, contact, props.Text{
				Size:  8,
				Align: align.Center,
			}),
		)
	}

	m.AddRow(3, line.NewCol(12))

	m.AddRow(7,
		text.NewCol(12, "SALES RECEIPT", props.Text{
			Size:  10,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(5,
		text.NewCol(6, fmt.Sprintf("Receipt No: %d", sale.ID), props.Text{
			Size:  8,
			Align: align.Left,
		}),
		text.NewCol(6, reports.FormatDate(sale.Date), props.Text{
			Size:  8,
			Align: align.Right,
		}),
	)

	m.AddRow(3, line.NewCol(12))

	m.AddRow(6,
		text.NewCol(5, "Item", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}),
		text.NewCol(2, "Qty", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center}),
		text.NewCol(2, "Price", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(3, "Amount", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}),
	)

	var subtotal float64
	for _, item := range sale.Items {
		subtotal += item.Subtotal
		m.AddRow(5,
			text.NewCol(5, item.ProductName, props.Text{Size: 8, Align: align.Left}),
			text.NewCol(2, reports.FormatQuantity(item.Quantity), props.Text{Size: 8, Align: align.Center}),
			text.NewCol(2, reports.FormatMoney(currency, item.UnitPrice), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(3, reports.FormatMoney(currency, item.Subtotal), props.Text{Size: 8, Align: align.Right}),
		)
	}

	m.AddRow(3, line.NewCol(12))

	addAmountRow(m, "Subtotal", reports.FormatMoney(currency, subtotal), false)
	addAmountRow(m, "Tax", reports.FormatMoney(currency, sale.TaxAmount), false)
	addAmountRow(m, "Total", reports.FormatMoney(currency, subtotal+sale.TaxAmount), true)

	m.AddRow(5,
		text.NewCol(12, "Payment: "+paymentLabel(sale.PaymentMethod), props.Text{
			Size:  8,
			Align: align.Left,
		}),
	)
	if strings.EqualFold(sale.PaymentMethod, "credit") && sale.DueDate != nil {
		m.AddRow(5,
			text.NewCol(12, "Due Date: "+reports.FormatDate(*sale.DueDate), props.Text{
				Size:  8,
				Align: align.Left,
			}),
		)
	}

	m.AddRow(3, line.NewCol(12))

	m.AddRow(6,
		text.NewCol(12, "Thank you for your business!", props.Text{
			Size:  9,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	if sale.ServedBy != "" {
		m.AddRow(5,
			text.NewCol(12, "Served by: "+sale.ServedBy, props.Text{
				Size:  8,
				Align: align.Center,
			}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func addAmountRow(m core.Maroto, label, value string, bold bool) {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	m.AddRow(5,
		text.NewCol(7, label, props.Text{Size: 9, Style: style, Align: align.Right}),
		text.NewCol(5, value, props.Text{Size: 9, Style: style, Align: align.Right}),
	)
}

func paymentLabel(method string) string {
	if method == "" {
		return "Cash"
	}
	return strings.ToUpper(method[:1]) + strings.ToLower(method[1:])
}
