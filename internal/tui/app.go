package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Zachkp/termfolio/internal/content"
	"github.com/Zachkp/termfolio/internal/market"
	"github.com/Zachkp/termfolio/internal/terminal"
)

type screen int

const (
	screenTerminal screen = iota
	screenBoot
	screenMarket
)

// bootTick is the refresh interval of the boot overlay.
const bootTick = 100 * time.Millisecond

// quickBuy is how many shares b buys.
const quickBuy = 10

type bootStartMsg struct{}

type bootTickMsg struct{}

type Model struct {
	profile  *content.Profile
	shell    *terminal.Shell
	ledger   *market.Ledger
	stocks   []market.Stock
	prices   map[string]decimal.Decimal
	render   renderer
	input    textinput.Model
	screen   screen
	log      *zap.Logger
	width    int
	height   int
	quitting bool

	bootElapsed time.Duration
	selected    int
	showRoles   bool
	notice      string
}

func NewModel(profile *content.Profile, now time.Time, log *zap.Logger) Model {
	interp := terminal.New(
		terminal.WithHome(profile.Home()),
		terminal.WithFiles(profile.Files...),
		terminal.WithReadme(profile.Readme),
	)
	shell := terminal.NewShell(interp, terminal.NewSession())
	shell.Welcome()

	stocks := profile.Stocks(now, rand.New(rand.NewPCG(uint64(now.UnixNano()), 0x5eed)))

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200
	ti.Focus()

	return Model{
		profile: profile,
		shell:   shell,
		ledger:  market.NewLedger(profile.Market.StartingCash),
		stocks:  stocks,
		prices:  market.PriceBook(stocks),
		render:  renderer{profile: profile, files: interp.Files()},
		input:   ti,
		log:     log,
		width:   100,
		height:  30,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case bootStartMsg:
		m.screen = screenBoot
		m.bootElapsed = 0
		return m, tickBoot()

	case bootTickMsg:
		if m.screen != screenBoot {
			return m, nil
		}
		m.bootElapsed += bootTick
		if m.bootElapsed >= market.BootDuration {
			m.screen = screenMarket
			m.input.Blur()
			return m, nil
		}
		return m, tickBoot()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen {
		case screenTerminal:
			return m.updateTerminal(msg)
		case screenMarket:
			return m.updateMarket(msg)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func tickBoot() tea.Cmd {
	return tea.Tick(bootTick, func(time.Time) tea.Msg { return bootTickMsg{} })
}

func (m Model) updateTerminal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.shell.Session()

	switch msg.String() {
	case "enter":
		line := m.input.Value()
		m.input.SetValue("")
		res, _ := m.shell.Exec(line)
		if res.Kind == terminal.KindLaunch {
			m.log.Info("market launched", zap.Duration("delay", res.Delay))
			return m, tea.Tick(res.Delay, func(time.Time) tea.Msg { return bootStartMsg{} })
		}
		return m, nil

	case "up":
		if s := session.RecallPrevious(); s != "" {
			m.input.SetValue(s)
			m.input.CursorEnd()
		}
		return m, nil

	case "down":
		m.input.SetValue(session.RecallNext())
		m.input.CursorEnd()
		return m, nil

	case "tab":
		m.input.SetValue(terminal.Complete(m.input.Value()))
		m.input.CursorEnd()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateMarket(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.screen = screenTerminal
		m.notice = ""
		m.showRoles = false
		return m, m.input.Focus()

	case "up", "k":
		if m.selected > 0 {
			m.selected--
			m.showRoles = false
		}

	case "down", "j":
		if m.selected < len(m.stocks)-1 {
			m.selected++
			m.showRoles = false
		}

	case "b":
		m.buy(quickBuy)

	case "m":
		if len(m.stocks) > 0 {
			m.buy(m.ledger.MaxShares(m.stocks[m.selected].Price))
		}

	case "r":
		if len(m.stocks) == 0 {
			break
		}
		s := m.stocks[m.selected]
		if !s.Unlocked(m.ledger) {
			m.notice = fmt.Sprintf("Buy %s to unlock its roles", s.Ticker)
			m.showRoles = false
			break
		}
		m.showRoles = !m.showRoles
	}
	return m, nil
}

func (m *Model) buy(shares int64) {
	if len(m.stocks) == 0 {
		return
	}
	s := m.stocks[m.selected]
	if reason := m.ledger.Rejection(s.Ticker, shares, s.Price); reason != "" {
		m.notice = reason
		return
	}
	first := !s.Unlocked(m.ledger)
	m.ledger.Buy(s.Ticker, shares, s.Price)
	m.log.Info("paper trade",
		zap.String("ticker", s.Ticker),
		zap.Int64("shares", shares),
		zap.String("cash", m.ledger.Cash().String()))
	m.notice = fmt.Sprintf("Bought %d %s at $%s", shares, s.Ticker, s.Price.StringFixed(2))
	if first {
		m.showRoles = true
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenBoot:
		return m.bootView()
	case screenMarket:
		return m.marketView()
	}
	return m.terminalView()
}

func (m Model) terminalView() string {
	var b strings.Builder
	body := m.render.history(m.shell.Session().Entries())
	// room for prompt and status bar
	if body != "" {
		b.WriteString(tail(body, m.height-2) + "\n")
	}
	b.WriteString(m.render.prompt() + m.input.View() + "\n")
	b.WriteString(modeStyle.Render("NORMAL") + statusBarStyle.Render(m.profile.Host+" · "+m.profile.Location))
	return b.String()
}

// Ledger exposes the paper trading account, for reporting after exit.
func (m Model) Ledger() *market.Ledger { return m.ledger }
