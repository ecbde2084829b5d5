package domain

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(25000, ""); got != "UGX 25,000" {
		t.Errorf("FormatCurrency default = %q, want UGX 25,000", got)
	}
	if got := FormatCurrency(1500, "USD"); got != "USD 1,500" {
		t.Errorf("FormatCurrency USD = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-01-05"); got != "Jan 5, 2024" {
		t.Errorf("FormatDate = %q, want Jan 5, 2024", got)
	}
	if got := FormatDate("2024-01-05T10:30:00Z"); got != "Jan 5, 2024" {
		t.Errorf("FormatDate(RFC3339) = %q", got)
	}
	if got := FormatDate("bogus"); got != "bogus" {
		t.Errorf("FormatDate passes through garbage, got %q", got)
	}
}
