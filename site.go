package main

import (
	"embed"
	"html/template"
	"io/fs"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Zachkp/termfolio/internal/content"
	"github.com/Zachkp/termfolio/internal/market"
	"github.com/Zachkp/termfolio/internal/terminal"
)

//go:embed templates/*.html static/*
var assets embed.FS

type site struct {
	profile  *content.Profile
	interp   *terminal.Interpreter
	stocks   []market.Stock
	prices   map[string]decimal.Decimal
	sessions *sessionStore
	tracker  *visitorTracker
	log      *zap.Logger
}

func newSite(profile *content.Profile, tracker *visitorTracker, ttl time.Duration, log *zap.Logger) *site {
	now := time.Now()
	stocks := profile.Stocks(now, rand.New(rand.NewPCG(uint64(now.UnixNano()), 0x5eed)))
	s := &site{
		profile: profile,
		interp: terminal.New(
			terminal.WithHome(profile.Home()),
			terminal.WithFiles(profile.Files...),
			terminal.WithReadme(profile.Readme),
		),
		stocks:  stocks,
		prices:  market.PriceBook(stocks),
		tracker: tracker,
		log:     log,
	}
	s.sessions = newSessionStore(ttl, s.newVisitor, log)
	return s
}

func (s *site) newVisitor(id string) *visitor {
	shell := terminal.NewShell(s.interp, terminal.NewSession())
	shell.Welcome()
	return &visitor{
		id:     id,
		shell:  shell,
		ledger: market.NewLedger(s.profile.Market.StartingCash),
	}
}

func (s *site) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))
	if s.tracker != nil {
		r.Use(s.tracker.middleware())
	}

	tmpl := template.Must(template.New("").Funcs(s.templateFuncs()).ParseFS(assets, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))

	setupTerminalRoutes(r, s)
	setupMarketRoutes(r, s)
	setupVisitorRoutes(r, s.tracker)
	return r
}

// freshVisitor starts a new page load, dropping any previous state of the browser.
func (s *site) freshVisitor(c *gin.Context) *visitor {
	old, _ := c.Cookie(sessionCookie)
	v := s.sessions.create(old)
	c.SetCookie(sessionCookie, v.id, 0, "/", "", false, true)
	return v
}

// currentVisitor returns the browser's state, starting one when the cookie is
// missing or expired.
func (s *site) currentVisitor(c *gin.Context) *visitor {
	if id, err := c.Cookie(sessionCookie); err == nil {
		if v, ok := s.sessions.get(id); ok {
			return v
		}
	}
	return s.freshVisitor(c)
}

// page is the data every full-page template receives.
func (s *site) page(view string) gin.H {
	h := gin.H{
		"view":    view,
		"profile": s.profile,
	}
	if s.tracker != nil {
		if stats, err := s.tracker.stats(); err == nil {
			h["stats"] = stats
		} else {
			s.log.Warn("error loading visitor stats", zap.Error(err))
		}
	}
	return h
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.Bool("htmx", c.GetHeader("HX-Request") == "true"),
		)
	}
}
