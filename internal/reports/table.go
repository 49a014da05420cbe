package reports

// Align controls horizontal alignment of a table column.
type Align int

// Column alignments. Textual columns are left-aligned, numeric and
// currency columns right-aligned, ordinal columns centered.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Column describes one table column. Width is expressed in twelfths of
// the page grid; the widths of a table always sum to twelve.
type Column struct {
	Header string
	Width  int
	Align  Align
}

// SummaryLine is one computed aggregate rendered bold below the data
// rows.
type SummaryLine struct {
	Label string
	Value string
}

// Table is the normalized tabular body of a report, built from a typed
// payload before any layout happens. It is the unit the generators
// render and the unit the tests assert on.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]string
	Summary []SummaryLine
	NoData  bool
}
