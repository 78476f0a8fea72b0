package tui

import (
	"fmt"
	"strings"

	"github.com/Zachkp/termfolio/internal/content"
	"github.com/Zachkp/termfolio/internal/terminal"
)

const neofetchLogo = `  ██████╗ ██╗
  ██╔══██╗██║
  ██████╔╝██║
  ██╔══██╗██║
  ██║  ██║███████╗
  ╚═╝  ╚═╝╚══════╝`

// renderer draws session entries as ANSI text.
type renderer struct {
	profile *content.Profile
	files   []string
}

func (r renderer) prompt() string {
	return promptUserStyle.Render("guest@"+r.profile.Host) + promptPathStyle.Render(" ~ ")
}

func (r renderer) entry(e terminal.Entry) string {
	line := r.prompt() + e.Input
	if e.Output.IsEmpty() {
		return line
	}
	return line + "\n" + r.output(e)
}

func (r renderer) output(e terminal.Entry) string {
	res := e.Output
	p := r.profile

	switch res.Kind {
	case terminal.KindError:
		return redStyle.Render(res.Text)
	case terminal.KindLaunch:
		return greenStyle.Render("Initialising market terminal...") + "\n" +
			mutedStyle.Render("Loading trading dashboard...")
	}

	var b strings.Builder
	switch res.View {
	case terminal.ViewWelcome:
		b.WriteString(cyanStyle.Render(fmt.Sprintf("Welcome to %s's Portfolio Terminal v%s", p.Name, p.Version)) + "\n")
		b.WriteString(mutedStyle.Render("Type ") + greenStyle.Render("help") + mutedStyle.Render(" to see available commands.") + "\n")
		b.WriteString(dimStyle.Render("Last login: " + e.Timestamp.Format("1/2/2006") + " from 127.0.0.1"))

	case terminal.ViewHelp:
		b.WriteString(cyanStyle.Render("Available commands:") + "\n")
		for _, t := range terminal.HelpTopics() {
			b.WriteString("  " + greenStyle.Render(fmt.Sprintf("%-10s", t.Command)) + mutedStyle.Render(t.Description) + "\n")
		}
		b.WriteString(dimStyle.Render("Tip: Use ↑↓ arrows for history, Tab for autocomplete"))

	case terminal.ViewAbout:
		b.WriteString(cyanStyle.Render("/* About Me */") + "\n")
		b.WriteString(fmt.Sprintf("Hi! I'm %s, a %s at %s.", greenStyle.Render(p.Name), p.Role, p.Company))
		for _, para := range p.About {
			b.WriteString("\n" + mutedStyle.Render(para))
		}

	case terminal.ViewSkills:
		b.WriteString(cyanStyle.Render("/* Technical Skills */"))
		for _, g := range p.Skills {
			chips := make([]string, len(g.Skills))
			for i, s := range g.Skills {
				chips[i] = chipStyle.Render(" " + s + " ")
			}
			b.WriteString("\n" + toneStyle(g.Tone).Render(g.Title+":") + " " + strings.Join(chips, " "))
		}

	case terminal.ViewProjects:
		b.WriteString(cyanStyle.Render("/* Featured Projects */"))
		for _, pr := range p.Projects {
			b.WriteString("\n" + greenStyle.Render(pr.Name))
			if pr.Link != "" {
				b.WriteString(" " + dimStyle.Render(pr.Link))
			}
			b.WriteString("\n  " + mutedStyle.Render(pr.Desc))
			b.WriteString("\n  " + cyanStyle.Render(strings.Join(pr.Tech, " · ")))
		}

	case terminal.ViewContact:
		b.WriteString(cyanStyle.Render("/* Contact */") + "\n")
		b.WriteString(mutedStyle.Render("I'm always open to new opportunities and collaborations!"))
		for _, c := range p.Contacts {
			b.WriteString("\n" + dimStyle.Render(c.Label+":") + " " + c.Value)
		}

	case terminal.ViewNeofetch:
		info := []string{
			cyanStyle.Render("guest") + "@" + cyanStyle.Render(p.Host),
			dimStyle.Render("-------------------"),
			greenStyle.Render("Name:") + " " + p.Name,
			greenStyle.Render("Role:") + " " + p.ShortRole,
			greenStyle.Render("Location:") + " " + p.Location,
			greenStyle.Render("Message:") + " " + p.Message,
		}
		logo := strings.Split(neofetchLogo, "\n")
		for i := 0; i < len(logo) || i < len(info); i++ {
			left, right := "", ""
			if i < len(logo) {
				left = logo[i]
			}
			if i < len(info) {
				right = info[i]
			}
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(greenStyle.Render(fmt.Sprintf("%-20s", left)) + right)
		}

	case terminal.ViewLs:
		b.WriteString(strings.Join(r.files, "  "))

	default:
		b.WriteString(toneStyle(string(res.Tone)).Render(res.Text))
	}
	return b.String()
}

// history renders every entry, oldest first.
func (r renderer) history(entries []terminal.Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = r.entry(e)
	}
	return strings.Join(parts, "\n")
}

// tail keeps the last n lines of s.
func tail(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
