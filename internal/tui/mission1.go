package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/manasm11/academy/internal/session"
	"github.com/muesli/reflow/wordwrap"
)

// Mission1Model is the prompt-quality quiz. It makes no network calls.
type Mission1Model struct {
	quiz          QuizState
	cursor        int
	width, height int
}

func NewMission1Model() Mission1Model {
	return Mission1Model{quiz: NewQuizState(session.Challenges())}
}

func (m Mission1Model) Init() tea.Cmd {
	return nil
}

func (m Mission1Model) Update(msg tea.Msg) (Mission1Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	options := len(m.quiz.Current().BetterPromptOptions)
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < options-1 {
			m.cursor++
		}
	case "1", "2", "3":
		idx := int(key.String()[0] - '1')
		if idx < options {
			m.cursor = idx
			m.quiz.Choose(idx)
		}
	case "enter", " ":
		m.quiz.Choose(m.cursor)
	case "n":
		if !m.quiz.CanAdvance() {
			return m, nil
		}
		if m.quiz.Next() {
			return m, complete(session.StageMission1)
		}
		m.cursor = 0
	}
	return m, nil
}

func (m Mission1Model) View() string {
	wrap := max(m.width-10, 30)
	c := m.quiz.Current()

	title := MissionTitleStyle.Render("Mission 1: 질문이 곧 실력이다")
	intro := BodyStyle.Render(wordwrap.String("과거에는 정답을 외우는 게 중요했지만, 미래는 핵심을 찌르는 질문을 하는 사람이 리더가 됩니다.", wrap))

	counter := SubtitleStyle.Render(fmt.Sprintf("문제 %d/%d", m.quiz.Index()+1, m.quiz.Len()))
	scenario := PanelStyle.Render(
		HighlightStyle.Render("상황") + "\n" + BodyStyle.Render(wordwrap.String(c.Scenario, wrap-4)) + "\n\n" +
			WrongStyle.Render("❌ 나쁜 질문 (Too Simple)") + "\n" + BodyStyle.Render(c.BadPrompt),
	)

	var options []string
	options = append(options, BodyStyle.Render("더 좋은 질문을 선택해주세요:"))
	for i, opt := range c.BetterPromptOptions {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		switch {
		case i == m.quiz.LastChoice() && i == c.CorrectIndex:
			line = CorrectStyle.Render("✓ " + line)
		case i == m.quiz.LastChoice():
			line = WrongStyle.Render("✗ " + line)
		case i == m.cursor:
			line = SelectedStyle.Render("▸ " + line)
		default:
			line = BodyStyle.Render("  " + line)
		}
		options = append(options, wordwrap.String(line, wrap))
	}

	var feedback string
	if fb := m.quiz.Feedback(); fb != "" {
		style := WrongStyle
		if m.quiz.CanAdvance() {
			style = CorrectStyle
		}
		feedback = style.Render(wordwrap.String(fb, wrap))
	}

	help := "↑/↓ or 1-3: select  |  enter: choose"
	if m.quiz.CanAdvance() {
		help += "  |  n: " + m.nextLabel()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title, intro, "", counter, scenario, "",
		lipgloss.JoinVertical(lipgloss.Left, options...),
		"", feedback, "", HelpStyle.Render(help),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Mission1Model) nextLabel() string {
	if m.quiz.Index() == m.quiz.Len()-1 {
		return "다음 미션으로 이동 →"
	}
	return "다음 문제 →"
}

func (m *Mission1Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}
