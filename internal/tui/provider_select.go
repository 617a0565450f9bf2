package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/manasm11/academy/internal/provider"
)

// providerOptions lists the selectable backends in display order.
var providerOptions = []provider.ProviderType{provider.ProviderGemini, provider.ProviderOllama}

// providerSelectModel is a small inline model for choosing the generation backend.
type providerSelectModel struct {
	cursor       int
	choice       provider.ProviderType
	confirmed    bool
	quit         bool
	hasAPIKey    bool
	ollamaStatus provider.OllamaStatus
	width        int
}

func newProviderSelectModel(hasAPIKey bool, ollamaStatus provider.OllamaStatus) providerSelectModel {
	m := providerSelectModel{
		hasAPIKey:    hasAPIKey,
		ollamaStatus: ollamaStatus,
		width:        50,
	}
	// Start on Ollama when it is the only backend that can work right away.
	if !hasAPIKey && ollamaStatus.Available {
		m.cursor = 1
	}
	return m
}

func (m providerSelectModel) Init() tea.Cmd {
	return nil
}

func (m providerSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(providerOptions)-1 {
				m.cursor++
			}
		case "1", "2":
			m.cursor = int(msg.String()[0] - '1')
			return m.confirm()
		case "enter", " ":
			return m.confirm()
		case "q", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m providerSelectModel) confirm() (tea.Model, tea.Cmd) {
	m.choice = providerOptions[m.cursor]
	m.confirmed = true
	return m, tea.Quit
}

func providerLabel(pt provider.ProviderType) string {
	if pt == provider.ProviderOllama {
		return "Ollama (local)"
	}
	return "Gemini (cloud)"
}

func (m providerSelectModel) optionDetail(pt provider.ProviderType) string {
	if pt == provider.ProviderGemini {
		if m.hasAPIKey {
			return provider.DefaultGeminiModel + " · API key found"
		}
		return provider.DefaultGeminiModel + " · set GEMINI_API_KEY"
	}

	if !m.ollamaStatus.Available {
		return "Not running at " + provider.DefaultOllamaURL()
	}
	parts := []string{"Local execution"}
	if len(m.ollamaStatus.Models) > 0 {
		parts = append(parts, fmt.Sprintf("%d models", len(m.ollamaStatus.Models)))
	}
	if m.ollamaStatus.Version != "" {
		parts = append(parts, m.ollamaStatus.Version)
	}
	return strings.Join(parts, " · ")
}

func (m providerSelectModel) View() string {
	if m.confirmed {
		done := lipgloss.NewStyle().Foreground(Success).Render("  ✓ Selected " + providerLabel(m.choice) + " backend")
		return done + "\n"
	}
	if m.quit {
		return ""
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Render("  🤖 AI Co-Pilot Academy · Select AI Backend")

	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(Secondary)
	normalStyle := lipgloss.NewStyle().Foreground(Text)

	icons := map[provider.ProviderType]string{
		provider.ProviderGemini: "☁ ",
		provider.ProviderOllama: "🖥 ",
	}

	lines := []string{""}
	for i, pt := range providerOptions {
		label := fmt.Sprintf("%s %s", icons[pt], providerLabel(pt))
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render("  ▸ "+label))
		} else {
			lines = append(lines, normalStyle.Render("    "+label))
		}
		lines = append(lines, SubtitleStyle.Render("       "+m.optionDetail(pt)), "")
	}

	boxWidth := 46
	if m.width > 10 && m.width-6 > boxWidth {
		boxWidth = min(m.width-6, 60)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Width(boxWidth).
		PaddingLeft(1).
		PaddingRight(1).
		Render(strings.Join(lines, "\n"))

	help := SubtitleStyle.Render("  ↑/↓ navigate · enter confirm · q quit")

	return fmt.Sprintf("\n%s\n\n%s\n\n%s\n", title, box, help)
}

// RunProviderSelection asks the student which backend to use. It returns an
// error if they quit without choosing.
func RunProviderSelection(hasAPIKey bool, ollamaStatus provider.OllamaStatus) (provider.ProviderType, error) {
	p := tea.NewProgram(newProviderSelectModel(hasAPIKey, ollamaStatus))

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("provider selection failed: %w", err)
	}

	result := finalModel.(providerSelectModel)
	if !result.confirmed {
		return "", fmt.Errorf("provider selection cancelled")
	}
	return result.choice, nil
}
