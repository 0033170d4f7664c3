package styles

import "github.com/charmbracelet/lipgloss"

const (
	AccentDarkColor  = "#1C5E8A"
	AccentMidColor   = "#2D7FB8"
	AccentLightColor = "#5FA8DC"
)

var (
	AccentDark = lipgloss.NewStyle().
			Foreground(lipgloss.Color(AccentDarkColor))

	AccentMid = lipgloss.NewStyle().
			Foreground(lipgloss.Color(AccentMidColor))

	AccentLight = lipgloss.NewStyle().
			Foreground(lipgloss.Color(AccentLightColor))

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	Version = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	Message = lipgloss.NewStyle()

	SecondaryMessage = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(AccentLightColor))
)
