package terminal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitAll(s *Session, inputs ...string) {
	it := New()
	for _, in := range inputs {
		s.Submit(in, it.Interpret(in))
	}
}

func TestSession_SubmitAndReset(t *testing.T) {
	s := NewSession()
	submitAll(s, "help", "about", "skills", "ls")
	require.Equal(t, 4, s.Len())

	before := s.Generation()
	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Entries())
	assert.Greater(t, s.Generation(), before)

	s.Reset()
	assert.Equal(t, before+2, s.Generation())
}

func TestSession_Timestamps(t *testing.T) {
	at := time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)
	s := NewSession(WithSessionClock(func() time.Time { return at }))
	e := s.Submit("whoami", Result{Kind: KindContent})
	assert.Equal(t, at, e.Timestamp)
	assert.Equal(t, at, s.Entries()[0].Timestamp)
}

func TestSession_EntriesIsCopy(t *testing.T) {
	s := NewSession()
	submitAll(s, "help")
	entries := s.Entries()
	entries[0].Input = "tampered"
	assert.Equal(t, "help", s.Entries()[0].Input)
}

func TestSession_RecallPreviousSaturates(t *testing.T) {
	s := NewSession()
	submitAll(s, "a", "b", "c")

	assert.Equal(t, "c", s.RecallPrevious())
	assert.Equal(t, "b", s.RecallPrevious())
	assert.Equal(t, "a", s.RecallPrevious())
	assert.Equal(t, "a", s.RecallPrevious())
}

func TestSession_RecallNext(t *testing.T) {
	s := NewSession()
	submitAll(s, "a", "b", "c")

	s.RecallPrevious()
	s.RecallPrevious()
	s.RecallPrevious()
	assert.Equal(t, "b", s.RecallNext())
	assert.Equal(t, "c", s.RecallNext())
	assert.Equal(t, "", s.RecallNext())
	assert.False(t, s.Recalling())
	assert.Equal(t, "", s.RecallNext())

	assert.Equal(t, "c", s.RecallPrevious())
}

func TestSession_RecallSkipsEmptyInputs(t *testing.T) {
	s := NewSession()
	s.Submit("a", Result{})
	s.Submit("", Result{})
	s.Submit("b", Result{})

	assert.Equal(t, "b", s.RecallPrevious())
	assert.Equal(t, "a", s.RecallPrevious())
	assert.Equal(t, "a", s.RecallPrevious())
}

func TestSession_RecallEmptyLog(t *testing.T) {
	s := NewSession()
	assert.Equal(t, "", s.RecallPrevious())
	assert.Equal(t, "", s.RecallNext())
	assert.False(t, s.Recalling())
}

func TestSession_SubmitResetsCursor(t *testing.T) {
	s := NewSession()
	submitAll(s, "a", "b")
	s.RecallPrevious()
	s.RecallPrevious()
	require.True(t, s.Recalling())

	submitAll(s, "c")
	assert.False(t, s.Recalling())
	assert.Equal(t, "c", s.RecallPrevious())
}

func TestSession_ResetClearsCursor(t *testing.T) {
	s := NewSession()
	submitAll(s, "a")
	s.RecallPrevious()
	s.Reset()
	assert.False(t, s.Recalling())
	assert.Equal(t, "", s.RecallPrevious())
}

func TestShell_Exec(t *testing.T) {
	sh := NewShell(New(), NewSession())

	res, recorded := sh.Exec("  help ")
	assert.True(t, recorded)
	assert.Equal(t, ViewHelp, res.View)
	assert.Equal(t, "help", sh.Session().Entries()[0].Input)

	_, recorded = sh.Exec("   ")
	assert.False(t, recorded)
	assert.Equal(t, 1, sh.Session().Len())

	res, recorded = sh.Exec("nope")
	assert.True(t, recorded)
	assert.Equal(t, KindError, res.Kind)
	assert.Equal(t, 2, sh.Session().Len())
}

func TestShell_ClearIsNotRecorded(t *testing.T) {
	sh := NewShell(New(), NewSession())
	sh.Welcome()
	sh.Exec("about")
	gen := sh.Session().Generation()

	res, recorded := sh.Exec("CLEAR")
	assert.Equal(t, KindClear, res.Kind)
	assert.False(t, recorded)
	assert.Equal(t, 0, sh.Session().Len())
	assert.Greater(t, sh.Session().Generation(), gen)
}

func TestShell_LaunchIsRecorded(t *testing.T) {
	sh := NewShell(New(), NewSession())
	res, recorded := sh.Exec("market")
	assert.True(t, recorded)
	assert.Equal(t, KindLaunch, res.Kind)
	assert.Equal(t, "market", sh.Session().RecallPrevious())
}

func TestShell_Welcome(t *testing.T) {
	sh := NewShell(New(), NewSession())
	e := sh.Welcome()
	assert.Equal(t, "welcome", e.Input)
	assert.Equal(t, ViewWelcome, e.Output.View)
	assert.Equal(t, 1, sh.Session().Len())
}
