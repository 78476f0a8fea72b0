package market

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func TestGenerateSparkline(t *testing.T) {
	points := GenerateSparkline(60, jpmPrice, testRand())
	require.Len(t, points, 60)

	lo := jpmPrice.Mul(decimal.RequireFromString("0.95")).Sub(decimal.RequireFromString("0.01"))
	hi := jpmPrice.Mul(decimal.RequireFromString("1.05")).Add(decimal.RequireFromString("0.01"))
	for _, p := range points {
		assert.True(t, p.GreaterThanOrEqual(lo), p.String())
		assert.True(t, p.LessThanOrEqual(hi), p.String())
	}
	assert.True(t, points[59].Equal(jpmPrice))
	assert.Nil(t, GenerateSparkline(0, jpmPrice, testRand()))
}

func TestGenerateCandles(t *testing.T) {
	now := time.Date(2026, time.March, 29, 0, 0, 0, 0, time.UTC)
	candles := GenerateCandles(28, jpmPrice, now, testRand())
	require.Len(t, candles, 28)

	for _, c := range candles[:27] {
		assert.True(t, c.High.GreaterThanOrEqual(c.Open))
		assert.True(t, c.High.GreaterThanOrEqual(c.Close))
		assert.True(t, c.Low.LessThanOrEqual(c.Open))
		assert.True(t, c.Low.LessThanOrEqual(c.Close))
	}
	last := candles[27]
	assert.True(t, last.Close.Equal(jpmPrice))
	assert.True(t, last.High.GreaterThanOrEqual(jpmPrice))
	assert.Equal(t, "Mar 1", candles[0].Date)
	assert.Equal(t, "Mar 28", last.Date)
}

func TestStock_Unlocked(t *testing.T) {
	s := Stock{Ticker: "JPM", Price: jpmPrice}
	l := NewLedger(DefaultStartingCash)
	assert.False(t, s.Unlocked(l))
	require.True(t, l.Buy("JPM", 1, jpmPrice))
	assert.True(t, s.Unlocked(l))
}

func TestPriceBookAndFind(t *testing.T) {
	stocks := []Stock{{Ticker: "JPM", Price: jpmPrice}, {Ticker: "ABC", Price: decimal.NewFromInt(3)}}
	book := PriceBook(stocks)
	assert.Len(t, book, 2)
	assert.True(t, book["ABC"].Equal(decimal.NewFromInt(3)))

	s, ok := Find(stocks, "JPM")
	assert.True(t, ok)
	assert.Equal(t, "JPM", s.Ticker)
	_, ok = Find(stocks, "NOPE")
	assert.False(t, ok)
}

func TestBootStepsAt(t *testing.T) {
	assert.Equal(t, 1, BootStepsAt(0))
	assert.Equal(t, 2, BootStepsAt(300*time.Millisecond))
	assert.Equal(t, len(BootSequence), BootStepsAt(BootDuration))
	assert.Less(t, BootSequence[len(BootSequence)-1].Delay, BootFadeAfter)
}
