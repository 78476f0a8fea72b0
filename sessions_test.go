package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(ttl time.Duration) (*sessionStore, *time.Time) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	s := newSessionStore(ttl, func(id string) *visitor { return &visitor{id: id} }, zap.NewNop())
	s.now = func() time.Time { return now }
	return s, &now
}

func TestSessionStore_CreateReplacesOld(t *testing.T) {
	s, _ := newTestStore(time.Hour)

	first := s.create("")
	second := s.create(first.id)

	assert.NotEqual(t, first.id, second.id)
	assert.Equal(t, 1, s.len())
	_, ok := s.get(first.id)
	assert.False(t, ok)
}

func TestSessionStore_GetExpires(t *testing.T) {
	s, now := newTestStore(time.Hour)
	v := s.create("")

	*now = now.Add(59 * time.Minute)
	got, ok := s.get(v.id)
	require.True(t, ok)
	assert.Same(t, v, got)

	// the previous get refreshed lastSeen
	*now = now.Add(59 * time.Minute)
	_, ok = s.get(v.id)
	assert.True(t, ok)

	*now = now.Add(61 * time.Minute)
	_, ok = s.get(v.id)
	assert.False(t, ok)
	assert.Equal(t, 0, s.len())
}

func TestSessionStore_Sweep(t *testing.T) {
	s, now := newTestStore(time.Hour)
	stale := s.create("")
	*now = now.Add(30 * time.Minute)
	fresh := s.create("")

	*now = now.Add(45 * time.Minute)
	assert.Equal(t, 1, s.sweep())

	_, ok := s.get(stale.id)
	assert.False(t, ok)
	_, ok = s.get(fresh.id)
	assert.True(t, ok)
}

func TestSessionStore_UnknownID(t *testing.T) {
	s, _ := newTestStore(time.Hour)
	_, ok := s.get("missing")
	assert.False(t, ok)
}
