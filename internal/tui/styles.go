package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 1)

	currentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7"))

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))
)
