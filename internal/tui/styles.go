package tui

import "github.com/charmbracelet/lipgloss"

var (
	purple = lipgloss.Color("#8B5CF6")
	gray   = lipgloss.Color("#9CA3AF")
	red    = lipgloss.Color("#F87171")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(purple).
			MarginBottom(1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#DDD6FE")).
			Padding(0, 1)

	filterActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(purple).
				Padding(0, 1)

	filterStyle = lipgloss.NewStyle().
			Foreground(purple).
			Padding(0, 1)

	doneTextStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(gray)

	timestampStyle = lipgloss.NewStyle().Foreground(gray)
	cursorStyle    = lipgloss.NewStyle().Foreground(purple).Bold(true)
	emptyStyle     = lipgloss.NewStyle().Foreground(gray).MarginTop(1)
	footerStyle    = lipgloss.NewStyle().Foreground(gray).MarginTop(1)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle     = lipgloss.NewStyle().Foreground(red)
)
