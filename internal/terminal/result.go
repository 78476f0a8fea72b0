package terminal

import "time"

// Kind tags the variant of a Result.
type Kind uint8

const (
	// KindNone is a no-op result with nothing to display.
	KindNone Kind = iota
	// KindContent names a renderable block.
	KindContent
	// KindError is an inline error, the session continues normally.
	KindError
	// KindClear asks the caller to reset the session log.
	KindClear
	// KindLaunch asks the caller to start the market boot sequence.
	KindLaunch
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindContent:
		return "content"
	case KindError:
		return "error"
	case KindClear:
		return "clear"
	case KindLaunch:
		return "launch"
	}
	return "unknown"
}

// View identifies which content block a renderer should draw.
type View string

const (
	ViewHelp     View = "help"
	ViewAbout    View = "about"
	ViewSkills   View = "skills"
	ViewProjects View = "projects"
	ViewContact  View = "contact"
	ViewNeofetch View = "neofetch"
	ViewLs       View = "ls"
	ViewMarket   View = "market"
	ViewText     View = "text"
	ViewWelcome  View = "welcome"
)

// Tone is a colour hint for text results.
type Tone string

const (
	TonePlain  Tone = "plain"
	ToneMuted  Tone = "muted"
	ToneCyan   Tone = "cyan"
	ToneRed    Tone = "red"
	ToneYellow Tone = "yellow"
)

// Result is what the interpreter produces for one input line.
// Renderers switch on Kind, then on View.
type Result struct {
	Kind    Kind
	View    View
	Tone    Tone
	Text    string
	Subject string        // unknown input or missing file name
	Delay   time.Duration // KindLaunch only
}

func none() Result { return Result{Kind: KindNone} }

func content(v View) Result { return Result{Kind: KindContent, View: v} }

func text(tone Tone, s string) Result {
	return Result{Kind: KindContent, View: ViewText, Tone: tone, Text: s}
}

func failure(subject, msg string) Result {
	return Result{Kind: KindError, View: ViewText, Tone: ToneRed, Subject: subject, Text: msg}
}

// IsEmpty reports whether the result has nothing to draw.
func (r Result) IsEmpty() bool {
	switch r.Kind {
	case KindNone, KindClear:
		return true
	case KindContent, KindError:
		return r.View == ViewText && r.Text == ""
	}
	return false
}
