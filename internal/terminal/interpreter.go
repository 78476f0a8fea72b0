package terminal

import (
	"fmt"
	"strings"
	"time"
)

// DefaultLaunchDelay is how long the caller waits before starting the boot sequence.
const DefaultLaunchDelay = 100 * time.Millisecond

// dateLayout mimics the browser's Date.toString().
const dateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// Topic is one line of the help listing.
type Topic struct {
	Command     string
	Description string
}

var helpTopics = []Topic{
	{"about", "Learn about me"},
	{"skills", "View my technical skills"},
	{"projects", "Browse my projects"},
	{"contact", "Get in touch"},
	{"neofetch", "Display system info"},
	{"market", "Launch trading experience"},
	{"clear", "Clear terminal"},
}

var commands = []string{
	"help", "about", "skills", "projects", "contact", "neofetch", "market", "clear",
	"whoami", "date", "pwd", "ls", "cat", "echo", "sudo", "rm", "exit",
}

// Commands returns the recognised base commands in declaration order.
func Commands() []string {
	out := make([]string, len(commands))
	copy(out, commands)
	return out
}

// HelpTopics returns the commands advertised by help.
func HelpTopics() []Topic {
	out := make([]Topic, len(helpTopics))
	copy(out, helpTopics)
	return out
}

// Interpreter maps input lines to results. It holds configuration only, never
// session state, so one value can serve every visitor.
type Interpreter struct {
	now         func() time.Time
	user        string
	home        string
	files       []string
	readme      string
	launchDelay time.Duration
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithClock replaces the wall clock read by date.
func WithClock(now func() time.Time) Option {
	return func(i *Interpreter) { i.now = now }
}

// WithUser sets the name printed by whoami.
func WithUser(user string) Option {
	return func(i *Interpreter) { i.user = user }
}

// WithHome sets the directory printed by pwd.
func WithHome(dir string) Option {
	return func(i *Interpreter) { i.home = dir }
}

// WithFiles sets the listing printed by ls. The readme must be one of them
// to stay discoverable, but cat does not enforce it.
func WithFiles(files ...string) Option {
	return func(i *Interpreter) { i.files = files }
}

// WithReadme sets the only file cat can open.
func WithReadme(name string) Option {
	return func(i *Interpreter) { i.readme = strings.ToLower(name) }
}

// WithLaunchDelay sets the delay carried by the market launch signal.
func WithLaunchDelay(d time.Duration) Option {
	return func(i *Interpreter) { i.launchDelay = d }
}

// New returns an Interpreter with the site defaults.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		now:         time.Now,
		user:        "guest",
		home:        "/home/guest/portfolio",
		files:       []string{"about.md", "skills.json", "projects/", "contact.txt", "readme.md"},
		readme:      "readme.md",
		launchDelay: DefaultLaunchDelay,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Files returns the ls listing.
func (i *Interpreter) Files() []string {
	out := make([]string, len(i.files))
	copy(out, i.files)
	return out
}

// Interpret runs one input line. Empty input yields KindNone; callers are
// expected not to dispatch it at all.
func (i *Interpreter) Interpret(raw string) Result {
	line := strings.TrimSpace(raw)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return none()
	}
	base := strings.ToLower(fields[0])
	args := fields[1:]

	switch base {
	case "help":
		return content(ViewHelp)
	case "about":
		return content(ViewAbout)
	case "skills":
		return content(ViewSkills)
	case "projects":
		return content(ViewProjects)
	case "contact":
		return content(ViewContact)
	case "neofetch":
		return content(ViewNeofetch)
	case "market":
		return Result{Kind: KindLaunch, View: ViewMarket, Delay: i.launchDelay}
	case "clear":
		return Result{Kind: KindClear}
	case "whoami":
		return text(ToneCyan, i.user)
	case "date":
		return text(ToneMuted, i.now().Format(dateLayout))
	case "pwd":
		return text(ToneMuted, i.home)
	case "ls":
		return content(ViewLs)
	case "cat":
		return i.cat(args)
	case "echo":
		return text(TonePlain, strings.Join(args, " "))
	case "sudo":
		return text(ToneRed, "Nice try! But you don't have sudo access here")
	case "rm":
		return text(ToneRed, "Permission denied: Cannot delete portfolio files!")
	case "exit":
		return text(ToneYellow, "Thanks for visiting! Refresh to start a new session.")
	}
	return failure(line, fmt.Sprintf("Command not found: %s. Type 'help' for available commands.", line))
}

func (i *Interpreter) cat(args []string) Result {
	if len(args) == 0 {
		return failure("missing operand", "cat: missing operand: No such file")
	}
	if strings.ToLower(args[0]) == i.readme {
		return content(ViewAbout)
	}
	return failure(args[0], fmt.Sprintf("cat: %s: No such file", args[0]))
}

// Complete proposes a completion for a partial command. Exactly one match
// wins; otherwise the input comes back unchanged.
func Complete(prefix string) string {
	p := strings.ToLower(prefix)
	match := ""
	for _, cmd := range commands {
		if !strings.HasPrefix(cmd, p) {
			continue
		}
		if match != "" {
			return prefix
		}
		match = cmd
	}
	if match == "" {
		return prefix
	}
	return match
}
