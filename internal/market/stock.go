package market

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

// Role is a work experience entry revealed by holding a stock.
type Role struct {
	Title    string
	Timeline string
	OneLiner string
	Tags     []string
	Gain     string
}

// Candle is one day of the candlestick chart.
type Candle struct {
	Open  decimal.Decimal
	High  decimal.Decimal
	Low   decimal.Decimal
	Close decimal.Decimal
	Date  string
}

// Bullish reports whether the candle closed at or above its open.
func (c Candle) Bullish() bool { return c.Close.GreaterThanOrEqual(c.Open) }

// Stock is a fictional listing whose roles unlock once a position is held.
type Stock struct {
	Ticker           string
	Name             string
	Price            decimal.Decimal
	Change24h        decimal.Decimal
	ChangePercent24h decimal.Decimal
	Volume           string
	MarketCap        string
	Open             decimal.Decimal
	High             decimal.Decimal
	Low              decimal.Decimal
	Sparkline        []decimal.Decimal
	Candles          []Candle
	Roles            []Role
}

// Rising reports whether the 24h change is non-negative.
func (s Stock) Rising() bool { return !s.ChangePercent24h.IsNegative() }

// Unlocked reports whether l holds any shares of s.
func (s Stock) Unlocked(l *Ledger) bool { return l.Shares(s.Ticker) > 0 }

// PriceBook maps ticker to price for NetWorth.
func PriceBook(stocks []Stock) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(stocks))
	for _, s := range stocks {
		out[s.Ticker] = s.Price
	}
	return out
}

// Find returns the stock with ticker.
func Find(stocks []Stock, ticker string) (Stock, bool) {
	for _, s := range stocks {
		if s.Ticker == ticker {
			return s, true
		}
	}
	return Stock{}, false
}

func round2(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

// GenerateSparkline walks a price series with a slight upward bias, kept
// within 5% of price and ending exactly on it.
func GenerateSparkline(points int, price decimal.Decimal, rng *rand.Rand) []decimal.Decimal {
	if points <= 0 {
		return nil
	}
	current := price.InexactFloat64()
	p := current * 0.985
	out := make([]decimal.Decimal, points)
	for i := range out {
		p += (rng.Float64() - 0.48) * 2
		p = math.Max(p, current*0.95)
		p = math.Min(p, current*1.05)
		out[i] = round2(p)
	}
	out[points-1] = price
	return out
}

// GenerateCandles builds days of daily candles ending the day before now,
// with the last close pinned to price.
func GenerateCandles(days int, price decimal.Decimal, now time.Time, rng *rand.Rand) []Candle {
	if days <= 0 {
		return nil
	}
	current := price.InexactFloat64()
	base := current * 0.92
	out := make([]Candle, days)
	for i := range out {
		vol := base * 0.02
		open := base + (rng.Float64()-0.5)*vol
		cl := open + (rng.Float64()-0.45)*vol*2
		high := math.Max(open, cl) + rng.Float64()*vol
		low := math.Min(open, cl) - rng.Float64()*vol
		out[i] = Candle{
			Open:  round2(open),
			High:  round2(high),
			Low:   round2(low),
			Close: round2(cl),
			Date:  now.AddDate(0, 0, -(days - i)).Format("Jan 2"),
		}
		base = cl
	}
	last := &out[days-1]
	last.Close = price
	last.High = decimal.Max(last.High, price)
	return out
}

// BootStep is one line of the market boot overlay.
type BootStep struct {
	Text  string
	Delay time.Duration
}

// BootSequence is played before the dashboard is shown.
var BootSequence = []BootStep{
	{"Initialising market terminal...", 0},
	{"Loading market data...", 300 * time.Millisecond},
	{"Syncing ticker feed...", 600 * time.Millisecond},
	{"Connecting to exchange...", 900 * time.Millisecond},
	{"Authenticating trading session...", 1200 * time.Millisecond},
	{"Fetching portfolio data...", 1500 * time.Millisecond},
	{"Loading asset information...", 1800 * time.Millisecond},
	{"System ready.", 2100 * time.Millisecond},
}

const (
	// BootFadeAfter is when the overlay starts fading out.
	BootFadeAfter = 2400 * time.Millisecond
	// BootDuration is when the view switches to the dashboard.
	BootDuration = 2800 * time.Millisecond
)

// BootStepsAt returns how many boot lines are visible after elapsed.
func BootStepsAt(elapsed time.Duration) int {
	n := 0
	for _, step := range BootSequence {
		if step.Delay <= elapsed {
			n++
		}
	}
	return n
}
