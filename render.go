package main

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Zachkp/termfolio/internal/content"
	"github.com/Zachkp/termfolio/internal/market"
	"github.com/Zachkp/termfolio/internal/terminal"
)

// sparkPoints scales values into an SVG polyline points attribute.
func sparkPoints(values []decimal.Decimal, width, height int) string {
	if len(values) < 2 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = decimal.Min(lo, v)
		hi = decimal.Max(hi, v)
	}
	span := hi.Sub(lo).InexactFloat64()
	if span == 0 {
		span = 1
	}
	step := float64(width) / float64(len(values)-1)

	var b strings.Builder
	for i, v := range values {
		y := float64(height) - (v.Sub(lo).InexactFloat64()/span)*float64(height)
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.1f,%.1f", float64(i)*step, y)
	}
	return b.String()
}

type candleShape struct {
	X, BodyX, Width float64
	WickTop, WickLo float64
	BodyTop, BodyH  float64
	Bullish         bool
	Date            string
}

// candleShapes lays candles out left to right in a width x height box.
func candleShapes(candles []market.Candle, width, height int) []candleShape {
	if len(candles) == 0 {
		return nil
	}
	lo, hi := candles[0].Low, candles[0].High
	for _, c := range candles[1:] {
		lo = decimal.Min(lo, c.Low)
		hi = decimal.Max(hi, c.High)
	}
	span := hi.Sub(lo).InexactFloat64()
	if span == 0 {
		span = 1
	}
	y := func(d decimal.Decimal) float64 {
		return float64(height) - (d.Sub(lo).InexactFloat64()/span)*float64(height)
	}

	slot := float64(width) / float64(len(candles))
	out := make([]candleShape, len(candles))
	for i, c := range candles {
		top, bottom := y(decimal.Max(c.Open, c.Close)), y(decimal.Min(c.Open, c.Close))
		bodyH := bottom - top
		if bodyH < 1 {
			bodyH = 1
		}
		out[i] = candleShape{
			X:       float64(i)*slot + slot/2,
			BodyX:   float64(i)*slot + slot*0.2,
			Width:   slot * 0.6,
			WickTop: y(c.High),
			WickLo:  y(c.Low),
			BodyTop: top,
			BodyH:   bodyH,
			Bullish: c.Bullish(),
			Date:    c.Date,
		}
	}
	return out
}

type bootLine struct {
	Text    string
	DelayMs int64
}

func bootLines() []bootLine {
	out := make([]bootLine, len(market.BootSequence))
	for i, step := range market.BootSequence {
		out[i] = bootLine{Text: step.Text, DelayMs: step.Delay.Milliseconds()}
	}
	return out
}

func initial(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1])
}

func toneClass(t terminal.Tone) string {
	if t == "" {
		return "tone-plain"
	}
	return "tone-" + string(t)
}

func (s *site) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"profile":      func() *content.Profile { return s.profile },
		"money":        market.Money,
		"signed":       market.Signed,
		"price":        func(d decimal.Decimal) string { return d.StringFixed(2) },
		"sparkPoints":  sparkPoints,
		"candleShapes": candleShapes,
		"toneClass":    toneClass,
		"helpTopics":   terminal.HelpTopics,
		"helpTip":      func() string { return HelpTip },
		"lsFiles":      s.interp.Files,
		"neofetchLogo": func() string { return NeofetchLogo },
		"marketBanner": func() string { return MarketBanner },
		"bootLines":    bootLines,
		"bootMs":       func() int64 { return market.BootDuration.Milliseconds() },
		"bootFadeMs":   func() int64 { return market.BootFadeAfter.Milliseconds() },
		"loginDate":    func(t time.Time) string { return t.Format("1/2/2006") },
		"clock":        func(t time.Time) string { return t.Format("15:04:05") },
		"initial":      initial,
	}
}
