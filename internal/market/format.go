package market

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money formats an amount as $1,234.50, rounded to cents without going
// through float64.
func Money(d decimal.Decimal) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	_, cents, _ := strings.Cut(r.StringFixed(2), ".")
	return sign + "$" + humanize.BigComma(r.BigInt()) + "." + cents
}

// Signed prefixes non-negative values with a plus sign.
func Signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.StringFixed(2)
	}
	return "+" + d.StringFixed(2)
}

// Rejection explains why CanBuy refuses an order. It is empty when the order
// would go through.
func (l *Ledger) Rejection(ticker string, shares int64, price decimal.Decimal) string {
	switch {
	case shares <= 0:
		return fmt.Sprintf("Cannot buy %d %s: quantity must be at least 1", shares, ticker)
	case !l.CanBuy(shares, price):
		return fmt.Sprintf("Cannot buy %d %s: total %s exceeds available cash %s",
			shares, ticker, Money(Cost(shares, price)), Money(l.cash))
	}
	return ""
}
