package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/termfolio/internal/market"
)

func setupMarketRoutes(r *gin.Engine, s *site) {
	r.GET("/market", func(c *gin.Context) {
		v := s.currentVisitor(c)
		v.mu.Lock()
		defer v.mu.Unlock()
		s.renderMarket(c, v, marketState{})
	})

	// Buy order from the dashboard form
	r.POST("/market/buy", func(c *gin.Context) {
		v := s.currentVisitor(c)
		v.mu.Lock()
		defer v.mu.Unlock()

		stock, ok := market.Find(s.stocks, c.PostForm("ticker"))
		if !ok {
			c.String(http.StatusNotFound, "unknown ticker")
			return
		}

		var shares int64
		if c.PostForm("max") != "" {
			shares = v.ledger.MaxShares(stock.Price)
		} else {
			n, err := strconv.ParseInt(c.PostForm("shares"), 10, 64)
			if err != nil {
				c.String(http.StatusBadRequest, "shares must be a whole number")
				return
			}
			shares = n
		}

		if reason := v.ledger.Rejection(stock.Ticker, shares, stock.Price); reason != "" {
			s.renderMarket(c, v, marketState{notice: reason})
			return
		}

		firstPosition := !stock.Unlocked(v.ledger)
		v.ledger.Buy(stock.Ticker, shares, stock.Price)
		s.log.Info("paper trade",
			zap.String("session", v.id),
			zap.String("ticker", stock.Ticker),
			zap.Int64("shares", shares),
			zap.String("cash", v.ledger.Cash().String()))

		st := marketState{notice: fmt.Sprintf("Bought %d %s at $%s", shares, stock.Ticker, stock.Price.StringFixed(2))}
		// Reveal the roles right after the first purchase
		if firstPosition {
			st.roles = stock.Ticker
		}
		s.renderMarket(c, v, st)
	})

	r.GET("/market/:ticker/roles", func(c *gin.Context) {
		v := s.currentVisitor(c)
		v.mu.Lock()
		defer v.mu.Unlock()

		stock, ok := market.Find(s.stocks, c.Param("ticker"))
		if !ok {
			c.String(http.StatusNotFound, "unknown ticker")
			return
		}
		if !stock.Unlocked(v.ledger) {
			s.renderMarket(c, v, marketState{notice: fmt.Sprintf("Buy %s to unlock its roles", stock.Ticker)})
			return
		}
		s.renderMarket(c, v, marketState{roles: stock.Ticker})
	})
}

type marketState struct {
	notice string
	roles  string // ticker whose role panel is open
}

type stockCard struct {
	market.Stock
	Shares   int64
	Unlocked bool
	MaxBuy   int64
	Value    string
}

func (s *site) renderMarket(c *gin.Context, v *visitor, st marketState) {
	cards := make([]stockCard, 0, len(s.stocks))
	open := -1
	for _, stock := range s.stocks {
		shares := v.ledger.Shares(stock.Ticker)
		cards = append(cards, stockCard{
			Stock:    stock,
			Shares:   shares,
			Unlocked: stock.Unlocked(v.ledger),
			MaxBuy:   v.ledger.MaxShares(stock.Price),
			Value:    market.Money(market.Cost(shares, stock.Price)),
		})
		if stock.Ticker == st.roles {
			open = len(cards) - 1
		}
	}

	h := s.page("market")
	h["cards"] = cards
	h["cash"] = market.Money(v.ledger.Cash())
	h["netWorth"] = market.Money(v.ledger.NetWorth(s.prices))
	h["startingCash"] = market.Money(s.profile.Market.StartingCash)
	h["notice"] = st.notice
	if open >= 0 {
		h["roles"] = cards[open]
	}
	h["intro"] = MarketIntro
	h["disclaimer"] = MarketDisclaimer
	c.HTML(http.StatusOK, "market.html", h)
}
