package market

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultStartingCash is the paper trading capital every visitor starts with.
var DefaultStartingCash = decimal.NewFromInt(1_000_000)

// Ledger tracks cash and share counts for one visitor. Shares are only ever
// bought, never sold, so holdings grow monotonically and cash never goes negative.
type Ledger struct {
	cash     decimal.Decimal
	holdings map[string]int64
}

func NewLedger(cash decimal.Decimal) *Ledger {
	if cash.IsNegative() {
		cash = decimal.Zero
	}
	return &Ledger{cash: cash, holdings: make(map[string]int64)}
}

// Cost is the price of shares at price.
func Cost(shares int64, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(shares))
}

// CanBuy reports whether Buy would succeed.
func (l *Ledger) CanBuy(shares int64, price decimal.Decimal) bool {
	if shares <= 0 || price.IsNegative() {
		return false
	}
	return Cost(shares, price).LessThanOrEqual(l.cash)
}

// Buy debits cash and credits shares. It reports false and leaves the ledger
// untouched when the order is not affordable.
func (l *Ledger) Buy(ticker string, shares int64, price decimal.Decimal) bool {
	if !l.CanBuy(shares, price) {
		return false
	}
	l.cash = l.cash.Sub(Cost(shares, price))
	l.holdings[ticker] += shares
	return true
}

// MaxShares is the largest whole number of shares affordable at price.
func (l *Ledger) MaxShares(price decimal.Decimal) int64 {
	if !price.IsPositive() {
		return 0
	}
	return l.cash.Div(price).Floor().IntPart()
}

func (l *Ledger) Cash() decimal.Decimal { return l.cash }

func (l *Ledger) Shares(ticker string) int64 { return l.holdings[ticker] }

// Holdings returns a copy of the share counts.
func (l *Ledger) Holdings() map[string]int64 {
	out := make(map[string]int64, len(l.holdings))
	for t, n := range l.holdings {
		out[t] = n
	}
	return out
}

// Tickers lists held tickers in alphabetical order.
func (l *Ledger) Tickers() []string {
	out := make([]string, 0, len(l.holdings))
	for t := range l.holdings {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// PositionValue is the market value of all holdings. Tickers missing from
// prices count as zero.
func (l *Ledger) PositionValue(prices map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for t, n := range l.holdings {
		price, ok := prices[t]
		if !ok {
			continue
		}
		total = total.Add(Cost(n, price))
	}
	return total
}

// NetWorth is cash plus PositionValue.
func (l *Ledger) NetWorth(prices map[string]decimal.Decimal) decimal.Decimal {
	return l.cash.Add(l.PositionValue(prices))
}
