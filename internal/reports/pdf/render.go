// Package pdf renders report tables and receipts into PDF documents.
// Rendering is synchronous and deterministic; every call builds a fresh
// document and returns its bytes.
package pdf

import (
	"strings"
	"time"

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

// Header is the company block rendered above every report table.
type Header struct {
	Company     reports.CompanyInfo
	Title       string
	RangeText   string
	GeneratedAt time.Time
}

const noDataText = "No records for this period"

func alignOf(a reports.Align) align.Type {
	switch a {
	case reports.AlignRight:
		return align.Right
	case reports.AlignCenter:
		return align.Center
	default:
		return align.Left
	}
}

func newReportDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		WithBottomMargin(10).
		WithPageNumber(props.PageNumber{Pattern: "Page {current} of {total}", Place: props.Bottom}).
		Build()
	return maroto.New(cfg)
}

// addCompanyHeader lays out the centered company block: name, address,
// contact line, website, report title, date range and generation date.
// Blank settings fields fall back to the defaults one field at a time.
func addCompanyHeader(m core.Maroto, h Header) {
	info := h.Company.WithDefaults()

	m.AddRow(10,
		text.NewCol(12, info.BakeryName, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(6,
		text.NewCol(12, info.Address, props.Text{
			Size:  10,
			Align: align.Center,
		}),
	)
	if contact := contactLine(info); contact != "" {
		m.AddRow(6,
			text.NewCol(12, contact, props.Text{
				Size:  10,
				Align: align.Center,
			}),
		)
	}
	if info.Website != "" {
		m.AddRow(6,
			text.NewCol(12, info.Website, props.Text{
				Size:  10,
				Align: align.Center,
			}),
		)
	}

	m.AddRow(3)

	m.AddRow(9,
		text.NewCol(12, h.Title, props.Text{
			Size:  13,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(6,
		text.NewCol(12, h.RangeText, props.Text{
			Size:  10,
			Align: align.Center,
		}),
	)
	m.AddRow(6,
		text.NewCol(12, "Generated: "+h.GeneratedAt.Format(reports.DateLayout), props.Text{
			Size:  9,
			Align: align.Center,
		}),
	)

	m.AddRow(4,
		line.NewCol(12),
	)
}

func contactLine(info reports.CompanyInfo) string {
	parts := make([]string, 0, 2)
	if info.Phone != "" {
		parts = append(parts, "Phone: "+info.Phone)
	}
	if info.Email != "" {
		parts = append(parts, "Email: "+info.Email)
	}
	return strings.Join(parts, " | ")
}

func addTable(m core.Maroto, t reports.Table) {
	headerCols := make([]core.Col, 0, len(t.Columns))
	for _, c := range t.Columns {
		headerCols = append(headerCols, text.NewCol(c.Width, c.Header, props.Text{
			Size:  10,
			Style: fontstyle.Bold,
			Align: alignOf(c.Align),
		}))
	}
	m.AddRow(8, headerCols...)
	m.AddRow(2,
		line.NewCol(12),
	)

	if t.NoData {
		m.AddRow(10,
			text.NewCol(12, noDataText, props.Text{
				Size:  10,
				Align: align.Center,
			}),
		)
		return
	}

	for _, row := range t.Rows {
		cols := make([]core.Col, 0, len(row))
		for i, cell := range row {
			cols = append(cols, text.NewCol(t.Columns[i].Width, cell, props.Text{
				Size:  9,
				Align: alignOf(t.Columns[i].Align),
			}))
		}
		m.AddRow(7, cols...)
	}

	m.AddRow(2,
		line.NewCol(12),
	)
	for _, s := range t.Summary {
		m.AddRow(8,
			text.NewCol(9, s.Label, props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
			text.NewCol(3, s.Value, props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
		)
	}
}

// Render produces the PDF document for one report table.
func Render(h Header, t reports.Table) ([]byte, error) {
	m := newReportDocument()
	addCompanyHeader(m, h)
	addTable(m, t)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}
