package main

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zachkp/termfolio/internal/market"
	"github.com/Zachkp/termfolio/internal/terminal"
)

const sessionCookie = "termfolio_sid"

// visitor is the in-memory state of one page load. mu serialises requests
// from the same browser.
type visitor struct {
	mu       sync.Mutex
	id       string
	shell    *terminal.Shell
	ledger   *market.Ledger
	lastSeen time.Time
}

type sessionStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	ttl      time.Duration
	build    func(id string) *visitor
	now      func() time.Time
	log      *zap.Logger
}

func newSessionStore(ttl time.Duration, build func(id string) *visitor, log *zap.Logger) *sessionStore {
	return &sessionStore{
		visitors: make(map[string]*visitor),
		ttl:      ttl,
		build:    build,
		now:      time.Now,
		log:      log,
	}
}

// create starts a fresh visitor, replacing old when it is non-empty.
func (s *sessionStore) create(old string) *visitor {
	v := s.build(uuid.NewString())
	v.lastSeen = s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if old != "" {
		delete(s.visitors, old)
	}
	s.visitors[v.id] = v
	return v
}

func (s *sessionStore) get(id string) (*visitor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.visitors[id]
	if !ok {
		return nil, false
	}
	if s.now().Sub(v.lastSeen) > s.ttl {
		delete(s.visitors, id)
		return nil, false
	}
	v.lastSeen = s.now()
	return v, true
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// sweep drops visitors idle for longer than the ttl.
func (s *sessionStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, v := range s.visitors {
		if s.now().Sub(v.lastSeen) > s.ttl {
			delete(s.visitors, id)
			removed++
		}
	}
	return removed
}

// run sweeps every interval until ctx is cancelled.
func (s *sessionStore) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sweep(); n > 0 {
				s.log.Debug("expired sessions", zap.Int("removed", n), zap.Int("active", s.len()))
			}
		}
	}
}
