package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/manasm11/academy/internal/session"
)

// IntroModel collects the student's school, grade and name.
type IntroModel struct {
	inputs        [introFieldCount]textinput.Model
	focus         int
	width, height int
}

func NewIntroModel() IntroModel {
	var m IntroModel
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = introPlaceholders[i]
		ti.CharLimit = 40
		ti.Width = 32
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	return m
}

func (m IntroModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m IntroModel) values() [introFieldCount]string {
	var v [introFieldCount]string
	for i, in := range m.inputs {
		v[i] = in.Value()
	}
	return v
}

// Profile returns the profile as currently typed.
func (m IntroModel) Profile() session.UserProfile {
	return ProfileFromFields(m.values())
}

// CanStart reports whether every field is filled in.
func (m IntroModel) CanStart() bool {
	return m.Profile().Valid()
}

func (m IntroModel) Update(msg tea.Msg) (IntroModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return m, m.setFocus(CycleFocus(m.focus, 1))
		case "shift+tab", "up":
			return m, m.setFocus(CycleFocus(m.focus, -1))
		case "enter":
			if m.CanStart() {
				profile := m.Profile().Trimmed()
				return m, func() tea.Msg {
					return StageCompleteMsg{From: session.StageIntro, Profile: &profile}
				}
			}
			if idx := FirstEmptyField(m.values()); idx >= 0 {
				return m, m.setFocus(idx)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *IntroModel) setFocus(idx int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = idx
	return m.inputs[m.focus].Focus()
}

func (m IntroModel) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Render("AI Co-Pilot Academy")
	tagline := SubtitleStyle.Render("AI와 함께 떠나는 나의 꿈 찾기 여행")

	welcome := BodyStyle.Render("환영합니다, 생도님!\n미래 시대의 리더가 되기 위한\n") +
		HighlightStyle.Render("3가지 핵심 미션") +
		BodyStyle.Render("을 수행할 준비가 되셨나요?")

	var fields []string
	for i, in := range m.inputs {
		prefix := "  "
		if i == m.focus {
			prefix = SelectedStyle.Render("▸ ")
		}
		fields = append(fields, prefix+in.View())
	}

	start := "미션 시작하기 🚀"
	if m.CanStart() {
		start = ButtonStyle.Render(start)
	} else {
		start = DisabledStyle.Render(start)
	}

	form := PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		welcome,
		"",
		lipgloss.JoinVertical(lipgloss.Left, fields...),
		"",
		start,
	))

	help := HelpStyle.Render("tab: next field  |  enter: start")

	content := lipgloss.JoinVertical(lipgloss.Center, title, tagline, "", form, "", help)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *IntroModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}
