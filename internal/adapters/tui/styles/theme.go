package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatLine = lipgloss.NewStyle().
			Foreground(White)

	StatTotal = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	PathLine = lipgloss.NewStyle().
			Foreground(Muted)

	Message = lipgloss.NewStyle().
		Foreground(Secondary)

	ErrorMessage = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)
)
