package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/termfolio/internal/market"
	"github.com/Zachkp/termfolio/internal/terminal"
)

func setupTerminalRoutes(r *gin.Engine, s *site) {
	// Home page route: every full load starts a new session
	r.GET("/", func(c *gin.Context) {
		v := s.freshVisitor(c)
		v.mu.Lock()
		defer v.mu.Unlock()
		s.renderTerminal(c, v)
	})

	// Back from another view, history kept
	r.GET("/terminal", func(c *gin.Context) {
		v := s.currentVisitor(c)
		v.mu.Lock()
		defer v.mu.Unlock()
		s.renderTerminal(c, v)
	})

	r.GET("/cards", func(c *gin.Context) {
		h := s.page("cards")
		c.HTML(http.StatusOK, "cards.html", h)
	})

	// HTMX command endpoint - returns the new entry fragment
	r.POST("/terminal/exec", func(c *gin.Context) {
		v := s.currentVisitor(c)
		v.mu.Lock()
		defer v.mu.Unlock()

		line := c.PostForm("command")
		res, recorded := v.shell.Exec(line)
		session := v.shell.Session()
		s.log.Debug("command",
			zap.String("session", v.id),
			zap.Stringer("kind", res.Kind),
			zap.Bool("recorded", recorded))

		switch {
		case res.Kind == terminal.KindClear:
			s.log.Debug("session cleared", zap.String("session", v.id), zap.Uint64("generation", session.Generation()))
			c.Header("HX-Retarget", "#history")
			c.Header("HX-Reswap", "outerHTML")
			c.HTML(http.StatusOK, "history.html", gin.H{
				"generation": session.Generation(),
			})
		case !recorded:
			c.Status(http.StatusNoContent)
		default:
			entries := session.Entries()
			c.HTML(http.StatusOK, "exec.html", gin.H{
				"entry":    entries[len(entries)-1],
				"launch":   res.Kind == terminal.KindLaunch,
				"delay":    res.Delay.Milliseconds(),
				"switchMs": (res.Delay + market.BootDuration).Milliseconds(),
			})
		}
	})

	// History recall for the arrow keys, plain text
	r.GET("/terminal/history", func(c *gin.Context) {
		v := s.currentVisitor(c)
		v.mu.Lock()
		defer v.mu.Unlock()

		session := v.shell.Session()
		switch c.Query("dir") {
		case "prev":
			c.String(http.StatusOK, session.RecallPrevious())
		case "next":
			c.String(http.StatusOK, session.RecallNext())
		default:
			c.String(http.StatusBadRequest, "dir must be prev or next")
		}
	})

	r.GET("/terminal/complete", func(c *gin.Context) {
		c.String(http.StatusOK, terminal.Complete(c.Query("prefix")))
	})
}

func (s *site) renderTerminal(c *gin.Context, v *visitor) {
	session := v.shell.Session()
	h := s.page("terminal")
	h["entries"] = session.Entries()
	h["generation"] = session.Generation()
	c.HTML(http.StatusOK, "index.html", h)
}
