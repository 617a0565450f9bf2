package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBarModel shows mission progress as "Mission 2/3" with a percentage.
type ProgressBarModel struct {
	done  int
	total int
	width int
	label string
}

var (
	progressBarFilled = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7C3AED"))
	progressBarEmpty = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#374151"))
	progressBarLabel = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#06B6D4"))
	progressBarText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))
)

// NewProgressBarModel creates a bar out of total steps.
func NewProgressBarModel(total, width int) ProgressBarModel {
	return ProgressBarModel{
		total: total,
		width: width,
		label: "Mission",
	}
}

// SetDone updates the current step.
func (m *ProgressBarModel) SetDone(done int) {
	if done < 0 {
		done = 0
	}
	if done > m.total {
		done = m.total
	}
	m.done = done
}

// SetWidth updates the bar width.
func (m *ProgressBarModel) SetWidth(width int) {
	m.width = width
}

// SetLabel changes the step noun shown before the counter.
func (m *ProgressBarModel) SetLabel(label string) {
	m.label = label
}

// Percent returns the completed share, rounded down: 1 of 3 is 33.
func (m ProgressBarModel) Percent() int {
	if m.total == 0 {
		return 0
	}
	return m.done * 100 / m.total
}

// View renders the progress bar.
func (m ProgressBarModel) View() string {
	prefix := progressBarLabel.Render(fmt.Sprintf("%s %d/%d", m.label, m.done, m.total))
	suffix := progressBarText.Render(fmt.Sprintf(" %d%%", m.Percent()))

	barWidth := m.width - lipgloss.Width(prefix) - lipgloss.Width(suffix) - 4
	if barWidth < 5 {
		barWidth = 5
	}

	filled := 0
	if m.total > 0 {
		filled = m.done * barWidth / m.total
	}
	bar := progressBarFilled.Render(strings.Repeat("█", filled)) +
		progressBarEmpty.Render(strings.Repeat("░", barWidth-filled))

	return fmt.Sprintf("  %s %s%s", prefix, bar, suffix)
}
