package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // purple
	Secondary = lipgloss.Color("#06B6D4") // cyan
	Success   = lipgloss.Color("#10B981") // green
	Warning   = lipgloss.Color("#F59E0B") // amber
	Danger    = lipgloss.Color("#EF4444") // red
	Muted     = lipgloss.Color("#6B7280") // gray
	Text      = lipgloss.Color("#E5E7EB") // light gray
	Border    = lipgloss.Color("#374151") // dark gray

	// Reusable styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			PaddingLeft(1).
			PaddingRight(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted)

	MissionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Secondary).
				MarginBottom(1)

	BodyStyle = lipgloss.NewStyle().
			Foreground(Text)

	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Warning)

	StatusBar = lipgloss.NewStyle().
			Foreground(Text).
			Background(lipgloss.Color("#1F2937")).
			PaddingLeft(1).
			PaddingRight(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			PaddingLeft(1)

	PhaseActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Secondary)

	PhaseLabelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	CorrectStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Success)

	WrongStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Danger)

	ChipStyle = lipgloss.NewStyle().
			Foreground(Text).
			Background(lipgloss.Color("#312E81")).
			Padding(0, 1)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Faint(true)

	ButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Primary).
			Padding(0, 2)
)
