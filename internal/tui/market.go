package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Zachkp/termfolio/internal/market"
)

const marketBanner = ` __  __    _    ____  _  _______ _____
|  \/  |  / \  |  _ \| |/ / ____|_   _|
| |\/| | / _ \ | |_) | ' /|  _|   | |
| |  | |/ ___ \|  _ <| . \| |___  | |
|_|  |_/_/   \_\_| \_\_|\_\_____| |_|`

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkline draws values as a row of block characters.
func sparkline(values []decimal.Decimal) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = decimal.Min(lo, v)
		hi = decimal.Max(hi, v)
	}
	span := hi.Sub(lo).InexactFloat64()
	top := len(sparkBlocks) - 1

	var b strings.Builder
	for _, v := range values {
		i := top / 2
		if span > 0 {
			i = int(v.Sub(lo).InexactFloat64() / span * float64(top))
		}
		b.WriteRune(sparkBlocks[i])
	}
	return b.String()
}

// bootView renders the overlay as it looks after bootElapsed.
func (m Model) bootView() string {
	var b strings.Builder
	b.WriteString(greenStyle.Render(marketBanner) + "\n\n")

	const barWidth = 40
	filled := int(float64(barWidth) * float64(m.bootElapsed) / float64(market.BootDuration))
	if filled > barWidth {
		filled = barWidth
	}
	b.WriteString(greenStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", barWidth-filled)) + "\n\n")

	for _, step := range market.BootSequence[:market.BootStepsAt(m.bootElapsed)] {
		b.WriteString(greenStyle.Render("[OK] ") + step.Text + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("Paper Trading Mode · "+market.Money(m.profile.Market.StartingCash)+" Starting Capital"))
	return b.String()
}

func (m Model) marketView() string {
	var b strings.Builder
	l := m.ledger

	b.WriteString(modeStyle.Render("MARKET") + " " + dimStyle.Render("PAPER TRADING") + "   ")
	b.WriteString(mutedStyle.Render("Net Worth ") + greenStyle.Render(market.Money(l.NetWorth(m.prices))) + "   ")
	b.WriteString(mutedStyle.Render("Cash ") + boldStyle.Render(market.Money(l.Cash())) + "\n\n")
	b.WriteString(mutedStyle.Render("Buy shares in companies to unlock work experience and roles.") + "\n\n")

	for i, s := range m.stocks {
		change := greenStyle
		if !s.Rising() {
			change = redStyle
		}
		row := fmt.Sprintf("%-6s %-28s $%10s %s", s.Ticker, s.Name, s.Price.StringFixed(2),
			change.Render(market.Signed(s.ChangePercent24h)+"%"))
		if i == m.selected {
			row = selectedStyle.Render("> ") + row
		} else {
			row = "  " + row
		}
		b.WriteString(row + "\n")
		b.WriteString("  " + change.Render(sparkline(s.Sparkline)) + "\n")

		if s.Unlocked(l) {
			shares := l.Shares(s.Ticker)
			b.WriteString("  " + greenStyle.Render(fmt.Sprintf("%d Roles Unlocked · %d shares (%s)",
				len(s.Roles), shares, market.Money(market.Cost(shares, s.Price)))) + "\n")
		} else {
			b.WriteString("  " + mutedStyle.Render(fmt.Sprintf("%d Roles Locked", len(s.Roles))) + "\n")
		}
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n\n")
	}

	if m.showRoles && len(m.stocks) > 0 {
		b.WriteString(m.rolesView(m.stocks[m.selected]) + "\n")
	}

	b.WriteString(helpStyle.Render("↑↓: select  b: buy 10  m: buy max  r: roles  esc: back to terminal"))
	return b.String()
}

func (m Model) rolesView(s market.Stock) string {
	var b strings.Builder
	b.WriteString(cyanStyle.Render("Work Experience") + " " + dimStyle.Render(fmt.Sprintf("%s · %s", s.Name, s.Ticker)))
	for _, r := range s.Roles {
		b.WriteString("\n\n" + boldStyle.Render(r.Title) + " " + greenStyle.Render(r.Gain))
		b.WriteString("\n" + dimStyle.Render(r.Timeline))
		b.WriteString("\n" + mutedStyle.Render(r.OneLiner))
		if len(r.Tags) > 0 {
			b.WriteString("\n" + cyanStyle.Render(strings.Join(r.Tags, " · ")))
		}
	}
	return panelStyle.Render(b.String())
}
