package reports

import (
	"math"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is the display format for all dates in report bodies.
const DateLayout = "02-01-2006"

// isoLayout is the wire format accepted on request date bounds.
const isoLayout = "2006-01-02"

var printer = message.NewPrinter(language.English)

// FormatMoney renders an amount with the currency code prefix and
// locale-grouped digits, no decimal places: FormatMoney("TZS", 1234567)
// returns "TZS 1,234,567".
func FormatMoney(code string, amount float64) string {
	return code + " " + printer.Sprintf("%d", int64(math.Round(amount)))
}

// FormatQuantity renders a quantity without trailing zeros.
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// FormatDate renders a timestamp as dd-MM-yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// RangeText renders the header date-range line. The "From ... to ..."
// form requires both bounds; anything less is reported as "All Time".
func RangeText(startDate, endDate string) string {
	if startDate == "" || endDate == "" {
		return "All Time"
	}
	return "From " + displayDate(startDate) + " to " + displayDate(endDate)
}

func displayDate(iso string) string {
	t, err := time.Parse(isoLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format(DateLayout)
}
