package content

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Zachkp/termfolio/internal/market"
)

//go:embed profile.yaml
var defaultProfile []byte

type Education struct {
	School          string   `yaml:"school"`
	Major           string   `yaml:"major"`
	Specializations []string `yaml:"specializations"`
}

type SkillGroup struct {
	Title  string   `yaml:"title"`
	Tone   string   `yaml:"tone"`
	Skills []string `yaml:"skills"`
}

type Project struct {
	Name string   `yaml:"name"`
	Desc string   `yaml:"desc"`
	Tech []string `yaml:"tech"`
	Link string   `yaml:"link"`
}

type Contact struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Href  string `yaml:"href"`
}

type RoleSpec struct {
	Title    string   `yaml:"title"`
	Timeline string   `yaml:"timeline"`
	OneLiner string   `yaml:"one_liner"`
	Tags     []string `yaml:"tags"`
	Gain     string   `yaml:"gain"`
}

type StockSpec struct {
	Ticker           string          `yaml:"ticker"`
	Name             string          `yaml:"name"`
	Price            decimal.Decimal `yaml:"price"`
	Change24h        decimal.Decimal `yaml:"change_24h"`
	ChangePercent24h decimal.Decimal `yaml:"change_percent_24h"`
	Volume           string          `yaml:"volume"`
	MarketCap        string          `yaml:"market_cap"`
	Open             decimal.Decimal `yaml:"open"`
	High             decimal.Decimal `yaml:"high"`
	Low              decimal.Decimal `yaml:"low"`
	Roles            []RoleSpec      `yaml:"roles"`
}

type Market struct {
	StartingCash    decimal.Decimal `yaml:"starting_cash"`
	SparklinePoints int             `yaml:"sparkline_points"`
	CandleDays      int             `yaml:"candle_days"`
	Stocks          []StockSpec     `yaml:"stocks"`
}

// Profile is everything the site displays about its owner.
type Profile struct {
	Name      string       `yaml:"name"`
	Role      string       `yaml:"role"`
	ShortRole string       `yaml:"short_role"`
	Company   string       `yaml:"company"`
	Host      string       `yaml:"host"`
	Location  string       `yaml:"location"`
	Message   string       `yaml:"message"`
	Version   string       `yaml:"version"`
	About     []string     `yaml:"about"`
	Education Education    `yaml:"education"`
	Skills    []SkillGroup `yaml:"skills"`
	Projects  []Project    `yaml:"projects"`
	Contacts  []Contact    `yaml:"contacts"`
	Files     []string     `yaml:"files"`
	Readme    string       `yaml:"readme"`
	Market    Market       `yaml:"market"`
}

// Default returns the embedded profile.
func Default() (*Profile, error) {
	return Parse(defaultProfile)
}

// Load reads a profile from path, or the embedded one when path is empty.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read profile")
	}
	return Parse(data)
}

// Parse decodes and validates a YAML profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "decode profile")
	}
	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid profile")
	}
	return &p, nil
}

func (p *Profile) applyDefaults() {
	if p.Host == "" {
		p.Host = "localhost"
	}
	if p.Readme == "" {
		p.Readme = "readme.md"
	}
	if len(p.Files) == 0 {
		p.Files = []string{p.Readme}
	}
	if p.Market.StartingCash.IsZero() {
		p.Market.StartingCash = market.DefaultStartingCash
	}
	if p.Market.SparklinePoints == 0 {
		p.Market.SparklinePoints = 60
	}
	if p.Market.CandleDays == 0 {
		p.Market.CandleDays = 28
	}
}

// Validate checks the fields the renderers rely on.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	if p.Market.StartingCash.IsNegative() {
		return errors.New("starting cash must not be negative")
	}
	seen := make(map[string]bool, len(p.Market.Stocks))
	for _, s := range p.Market.Stocks {
		if s.Ticker == "" {
			return errors.New("stock ticker is required")
		}
		if seen[s.Ticker] {
			return fmt.Errorf("duplicate ticker %s", s.Ticker)
		}
		seen[s.Ticker] = true
		if !s.Price.IsPositive() {
			return fmt.Errorf("stock %s: price must be positive", s.Ticker)
		}
	}
	return nil
}

// Home is the directory pwd prints.
func (p *Profile) Home() string {
	first := strings.Fields(p.Name)[0]
	return "/home/guest/" + strings.ToLower(first) + "-portfolio"
}

// Stocks builds market listings with freshly generated charts.
func (p *Profile) Stocks(now time.Time, rng *rand.Rand) []market.Stock {
	out := make([]market.Stock, 0, len(p.Market.Stocks))
	for _, s := range p.Market.Stocks {
		roles := make([]market.Role, 0, len(s.Roles))
		for _, r := range s.Roles {
			roles = append(roles, market.Role{
				Title:    r.Title,
				Timeline: r.Timeline,
				OneLiner: r.OneLiner,
				Tags:     nonEmpty(r.Tags),
				Gain:     r.Gain,
			})
		}
		out = append(out, market.Stock{
			Ticker:           s.Ticker,
			Name:             s.Name,
			Price:            s.Price,
			Change24h:        s.Change24h,
			ChangePercent24h: s.ChangePercent24h,
			Volume:           s.Volume,
			MarketCap:        s.MarketCap,
			Open:             s.Open,
			High:             s.High,
			Low:              s.Low,
			Sparkline:        market.GenerateSparkline(p.Market.SparklinePoints, s.Price, rng),
			Candles:          market.GenerateCandles(p.Market.CandleDays, s.Price, now, rng),
			Roles:            roles,
		})
	}
	return out
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
