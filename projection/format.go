// Package projection turns stored records into display models and validates admin input.
// Every function here is pure.
package projection

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "£"

const displayTimeLayout = "2006-01-02 15:04"

// FormatCurrency renders amount with the currency symbol and two decimals.
func FormatCurrency(amount float64) string {
	return CurrencySymbol + decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatTimestamp renders an RFC 3339 timestamp as "YYYY-MM-DD HH:MM" in its own offset.
// Anything that does not parse is returned unchanged.
func FormatTimestamp(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format(displayTimeLayout)
}

// NormalizeImageURL roots a relative image reference at "/".
func NormalizeImageURL(url string) string {
	if strings.HasPrefix(url, "/") {
		return url
	}
	return "/" + url
}

func statusClass(known map[string]bool, status string) string {
	if known[status] {
		return "status-" + status
	}
	return "status-unknown"
}
