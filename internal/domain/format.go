package domain

import (
	"fmt"
	"strings"
	"time"
)

// FormatDate renders a date string like "Jan 2, 2024" for table output.
// Unparseable input is returned verbatim rather than hidden.
func FormatDate(value string) string {
	t, err := parseAPITime(value)
	if err != nil {
		return value
	}
	return t.Format("Jan 2, 2006")
}

// FormatDateTime renders a timestamp like "Jan 2, 2024 15:04".
func FormatDateTime(value string) string {
	t, err := parseAPITime(value)
	if err != nil {
		return value
	}
	return t.Format("Jan 2, 2006 15:04")
}

func parseAPITime(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", value)
}

// FormatNumber renders an integer with thousands separators.
func FormatNumber(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return sign + s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return sign + strings.Join(parts, ",")
}

// FormatCurrency renders an amount in the given currency with no decimal
// places. The farms this dashboard serves bill in Ugandan shillings, so UGX
// is the default when currency is empty.
func FormatCurrency(amount float64, currency string) string {
	if currency == "" {
		currency = "UGX"
	}
	return fmt.Sprintf("%s %s", currency, FormatNumber(int(amount)))
}
