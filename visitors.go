// visitors.go - privacy-conscious visitor counting
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

type VisitorStats struct {
	TotalVisitors    int64 `json:"total_visitors"`
	UniqueVisitors   int64 `json:"unique_visitors"`
	VisitorsToday    int64 `json:"visitors_today"`
	VisitorsThisWeek int64 `json:"visitors_this_week"`
}

type visitorTracker struct {
	db        *sql.DB
	salt      string
	retention time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func openVisitorDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open visitor database")
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping visitor database")
	}
	return db, nil
}

func newVisitorTracker(db *sql.DB, retention time.Duration, log *zap.Logger) (*visitorTracker, error) {
	t := &visitorTracker{
		db:        db,
		salt:      generateSalt(),
		retention: retention,
		log:       log,
		now:       time.Now,
	}

	createVisitorTable := `
	CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,  -- Store hashed IP instead of raw IP
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createVisitorTable); err != nil {
		return nil, errors.Wrap(err, "create visitors table")
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors (timestamp)`); err != nil {
		return nil, errors.Wrap(err, "create visitors index")
	}

	log.Info("privacy-conscious visitor tracking initialized", zap.Duration("retention", retention))
	return t, nil
}

func generateSalt() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic("failed to generate hashing salt: " + err.Error())
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address for privacy compliance (consistent per IP for the process lifetime)
func (t *visitorTracker) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + t.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// Middleware recording page views
// countable reports whether a request is a full page load worth recording.
// Fragments, assets, the keyboard helpers behind terminal.js and DNT
// requests are not.
func countable(r *http.Request) bool {
	path := r.URL.Path
	switch {
	case r.Method != http.MethodGet,
		r.Header.Get("HX-Request") == "true",
		strings.HasPrefix(path, "/static/"),
		strings.HasPrefix(path, "/api/"),
		strings.HasPrefix(path, "/terminal/"),
		strings.HasPrefix(path, "/favicon"):
		return false
	}
	// Respect Do Not Track header
	return r.Header.Get("DNT") != "1"
}

func (t *visitorTracker) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if countable(c.Request) {
			go t.record(c.ClientIP(), c.GetHeader("User-Agent"), c.Request.URL.Path)
		}
		c.Next()
	}
}

func (t *visitorTracker) record(ip, userAgent, path string) {
	_, err := t.db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, t.hashIP(ip), userAgent, path, t.now().UTC())
	if err != nil {
		t.log.Warn("error recording visitor", zap.Error(err))
	}
}

// Cleanup old visitor data for privacy compliance
func (t *visitorTracker) cleanup() (int64, error) {
	cutoff := t.now().UTC().Add(-t.retention)
	result, err := t.db.Exec(`DELETE FROM visitors WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "delete old visitors")
	}

	rowsDeleted, _ := result.RowsAffected()
	if rowsDeleted > 0 {
		t.log.Info("privacy cleanup", zap.Int64("removed", rowsDeleted))
	}
	return rowsDeleted, nil
}

func (t *visitorTracker) stats() (*VisitorStats, error) {
	stats := &VisitorStats{}
	now := t.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	err := t.db.QueryRow("SELECT COUNT(*) FROM visitors").Scan(&stats.TotalVisitors)
	if err != nil {
		return nil, err
	}

	// Unique visitors (by hashed IP)
	err = t.db.QueryRow("SELECT COUNT(DISTINCT hashed_ip) FROM visitors").Scan(&stats.UniqueVisitors)
	if err != nil {
		return nil, err
	}

	err = t.db.QueryRow(`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, startOfDay).Scan(&stats.VisitorsToday)
	if err != nil {
		return nil, err
	}

	err = t.db.QueryRow(`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, now.Add(-7*24*time.Hour)).Scan(&stats.VisitorsThisWeek)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// runCleanup prunes expired rows once at start and then daily until done closes.
func (t *visitorTracker) runCleanup(done <-chan struct{}) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		if _, err := t.cleanup(); err != nil {
			t.log.Warn("error cleaning up old visitor data", zap.Error(err))
		}
		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}

// Public, aggregate-only statistics
func setupVisitorRoutes(r *gin.Engine, t *visitorTracker) {
	r.GET("/api/stats", func(c *gin.Context) {
		if t == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "visitor tracking disabled"})
			return
		}
		stats, err := t.stats()
		if err != nil {
			t.log.Error("error loading visitor stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})
}
