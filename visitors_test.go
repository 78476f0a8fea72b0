package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTracker(t *testing.T) *visitorTracker {
	t.Helper()
	db, err := openVisitorDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tracker, err := newVisitorTracker(db, 30*24*time.Hour, zap.NewNop())
	require.NoError(t, err)
	tracker.now = func() time.Time { return time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC) }
	return tracker
}

func TestCountable(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		header map[string]string
		want   bool
	}{
		{"home", http.MethodGet, "/", nil, true},
		{"cards", http.MethodGet, "/cards", nil, true},
		{"htmx fragment", http.MethodGet, "/market", map[string]string{"HX-Request": "true"}, false},
		{"history recall", http.MethodGet, "/terminal/history?dir=prev", nil, false},
		{"completion", http.MethodGet, "/terminal/complete?prefix=ab", nil, false},
		{"exec", http.MethodPost, "/terminal/exec", nil, false},
		{"asset", http.MethodGet, "/static/site.css", nil, false},
		{"stats", http.MethodGet, "/api/stats", nil, false},
		{"favicon", http.MethodGet, "/favicon.ico", nil, false},
		{"do not track", http.MethodGet, "/", map[string]string{"DNT": "1"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, countable(req))
		})
	}
}

func TestHashIP(t *testing.T) {
	tracker := newTestTracker(t)

	a := tracker.hashIP("198.51.100.1")
	assert.Len(t, a, 16)
	assert.Equal(t, a, tracker.hashIP("198.51.100.1"))
	assert.NotEqual(t, a, tracker.hashIP("198.51.100.2"))
	assert.NotContains(t, a, "198")
}

func TestVisitorTracker_Stats(t *testing.T) {
	tracker := newTestTracker(t)
	today := tracker.now()

	tracker.now = func() time.Time { return today.Add(-3 * 24 * time.Hour) }
	tracker.record("198.51.100.1", "curl", "/")
	tracker.now = func() time.Time { return today.Add(-time.Hour) }
	tracker.record("198.51.100.1", "curl", "/cards")
	tracker.now = func() time.Time { return today }
	tracker.record("198.51.100.2", "firefox", "/")

	stats, err := tracker.stats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalVisitors)
	assert.Equal(t, int64(2), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitorsToday)
	assert.Equal(t, int64(3), stats.VisitorsThisWeek)
}

func TestVisitorTracker_Cleanup(t *testing.T) {
	tracker := newTestTracker(t)
	today := tracker.now()

	tracker.now = func() time.Time { return today.Add(-40 * 24 * time.Hour) }
	tracker.record("198.51.100.1", "curl", "/")
	tracker.now = func() time.Time { return today }
	tracker.record("198.51.100.2", "curl", "/")

	removed, err := tracker.cleanup()
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	stats, err := tracker.stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalVisitors)
}
