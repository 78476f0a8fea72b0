package tui

import "github.com/charmbracelet/lipgloss"

var (
	promptUserStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("44"))

	promptPathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	greenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	cyanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("44"))

	yellowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	redStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boldStyle = lipgloss.NewStyle().
			Bold(true)

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("237"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("234")).
			Background(lipgloss.Color("42")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("25")).
			Foreground(lipgloss.Color("255"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))
)

// toneStyle maps a result tone to a colour.
func toneStyle(tone string) lipgloss.Style {
	switch tone {
	case "green":
		return greenStyle
	case "cyan":
		return cyanStyle
	case "yellow":
		return yellowStyle
	case "red":
		return redStyle
	case "muted":
		return mutedStyle
	}
	return lipgloss.NewStyle()
}
