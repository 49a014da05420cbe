package reports

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{1234567, "TZS 1,234,567"},
		{0, "TZS 0"},
		{999, "TZS 999"},
		{1000, "TZS 1,000"},
		{1234567.6, "TZS 1,234,568"},
		{-2500, "TZS -2,500"},
	}
	for _, c := range cases {
		if got := FormatMoney("TZS", c.amount); got != c.want {
			t.Fatalf("FormatMoney(%v): got %q want %q", c.amount, got, c.want)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	if got := FormatQuantity(12.5); got != "12.5" {
		t.Fatalf("got %q", got)
	}
	if got := FormatQuantity(3); got != "3" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 3, 7, 14, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "07-03-2025" {
		t.Fatalf("got %q", got)
	}
}

func TestRangeText(t *testing.T) {
	if got := RangeText("2025-01-01", "2025-01-31"); got != "From 01-01-2025 to 31-01-2025" {
		t.Fatalf("got %q", got)
	}
	// A single bound is not a range.
	if got := RangeText("2025-01-01", ""); got != "All Time" {
		t.Fatalf("start only: got %q", got)
	}
	if got := RangeText("", "2025-01-31"); got != "All Time" {
		t.Fatalf("end only: got %q", got)
	}
	if got := RangeText("", ""); got != "All Time" {
		t.Fatalf("no bounds: got %q", got)
	}
}
