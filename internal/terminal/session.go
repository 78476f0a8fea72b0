package terminal

import (
	"strings"
	"time"
)

// noCursor means no history entry is being recalled.
const noCursor = -1

// Entry is one exchange in the session log.
type Entry struct {
	Input     string
	Output    Result
	Timestamp time.Time
}

// Session is the ordered log of one page load plus the history recall cursor.
// It is not safe for concurrent use; callers serialise access per visitor.
type Session struct {
	entries    []Entry
	cursor     int // offset from the newest recallable input
	generation uint64
	now        func() time.Time
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionClock replaces the clock used for entry timestamps.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

func NewSession(opts ...SessionOption) *Session {
	s := &Session{cursor: noCursor, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit appends an entry and resets the recall cursor.
func (s *Session) Submit(input string, out Result) Entry {
	e := Entry{Input: input, Output: out, Timestamp: s.now()}
	s.entries = append(s.entries, e)
	s.cursor = noCursor
	return e
}

// Reset drops the whole log and bumps the generation so renderers never reuse
// markup from before the reset.
func (s *Session) Reset() {
	s.entries = nil
	s.cursor = noCursor
	s.generation++
}

// Entries returns a copy of the log, oldest first.
func (s *Session) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Session) Len() int { return len(s.entries) }

func (s *Session) Generation() uint64 { return s.generation }

// Recalling reports whether the cursor currently points at a history entry.
func (s *Session) Recalling() bool { return s.cursor != noCursor }

// RecallPrevious moves one step back through submitted inputs and returns the
// input there. It saturates at the oldest one.
func (s *Session) RecallPrevious() string {
	inputs := s.inputs()
	if len(inputs) == 0 {
		return ""
	}
	if s.cursor < len(inputs)-1 {
		s.cursor++
	}
	return inputs[len(inputs)-1-s.cursor]
}

// RecallNext moves one step forward. Stepping past the newest input clears the
// cursor and returns "".
func (s *Session) RecallNext() string {
	if s.cursor <= 0 {
		s.cursor = noCursor
		return ""
	}
	s.cursor--
	inputs := s.inputs()
	if s.cursor >= len(inputs) {
		s.cursor = noCursor
		return ""
	}
	return inputs[len(inputs)-1-s.cursor]
}

func (s *Session) inputs() []string {
	out := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		if e.Input != "" {
			out = append(out, e.Input)
		}
	}
	return out
}

// Shell runs input lines against an Interpreter and records them in a
// Session, handling the clear signal itself.
type Shell struct {
	interp  *Interpreter
	session *Session
}

func NewShell(interp *Interpreter, session *Session) *Shell {
	return &Shell{interp: interp, session: session}
}

func (sh *Shell) Session() *Session { return sh.session }

// Welcome records the greeting shown on a fresh page load.
func (sh *Shell) Welcome() Entry {
	return sh.session.Submit("welcome", content(ViewWelcome))
}

// Exec interprets one line. Blank lines are not dispatched. A clear result
// resets the session and is not recorded. The bool reports whether an entry
// was appended.
func (sh *Shell) Exec(line string) (Result, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return none(), false
	}
	res := sh.interp.Interpret(line)
	if res.Kind == KindClear {
		sh.session.Reset()
		return res, false
	}
	sh.session.Submit(line, res)
	return res, true
}
