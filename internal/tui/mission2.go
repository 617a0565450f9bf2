package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/manasm11/academy/internal/session"
	"github.com/manasm11/academy/internal/tui/components"
	"github.com/muesli/reflow/wordwrap"
)

// NarrativeWriter writes and rewrites the diary. It never fails; errors
// come back as displayable text.
type NarrativeWriter interface {
	Narrative(ctx context.Context, instruction, prior string) string
}

// narrativeDoneMsg carries a finished diary generation.
type narrativeDoneMsg struct {
	Text string
}

// Mission2Model is the diary co-writing loop.
type Mission2Model struct {
	writer        NarrativeWriter
	state         CoWriteState
	input         textarea.Model
	spinner       spinner.Model
	panel         components.NarrativeModel
	width, height int
}

var chipLabels = []string{"😭 더 감동적으로", "🚨 위기 상황 추가", "🤖 기술 묘사 추가"}

func NewMission2Model(writer NarrativeWriter) Mission2Model {
	ta := textarea.New()
	ta.Placeholder = "예시: 2045년, 나는 화성 탐사 기지에서 식물을 키우는 우주 농부가 되었다. 오늘 가장 기억에 남는 사건은..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 500
	ta.SetHeight(3)
	ta.KeyMap.InsertNewline.SetKeys("alt+enter")
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(Secondary)

	return Mission2Model{
		writer:  writer,
		input:   ta,
		spinner: sp,
		panel:   components.NewNarrativeModel("왼쪽 창에 2045년의 꿈을 입력하면 AI가 생생한 미래 일기를 써줍니다."),
	}
}

func (m Mission2Model) Init() tea.Cmd {
	return textarea.Blink
}

// State returns the co-writing state.
func (m Mission2Model) State() CoWriteState {
	return m.state
}

func (m Mission2Model) Update(msg tea.Msg) (Mission2Model, tea.Cmd) {
	switch msg := msg.(type) {
	case narrativeDoneMsg:
		m.state.Apply(msg.Text)
		m.panel.SetMarkdown(msg.Text)
		m.input.Reset()
		m.input.Placeholder = "예시: 갑자기 산소 공급 장치가 고장나는 위기 상황을 추가해줘."
		return m, m.input.Focus()

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "enter":
			return m, m.submit()
		case "ctrl+n":
			if m.state.CanFinish() && !m.state.Loading {
				diary := m.state.Diary
				return m, func() tea.Msg {
					return StageCompleteMsg{From: session.StageMission2, Diary: diary}
				}
			}
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.panel, cmd = m.panel.Update(msg)
			return m, cmd
		}
		if text, ok := SuggestionForKey(key); ok {
			if m.state.ShowSuggestions() && !m.state.Loading {
				m.input.SetValue(text)
			}
			return m, nil
		}
	}

	if m.state.Loading {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Mission2Model) submit() tea.Cmd {
	if !m.state.CanSubmit(m.input.Value()) {
		return nil
	}
	instruction, prior := m.state.Begin(m.input.Value())
	m.input.Blur()

	writer := m.writer
	return tea.Batch(
		func() tea.Msg {
			return narrativeDoneMsg{Text: writer.Narrative(context.Background(), instruction, prior)}
		},
		m.spinner.Tick,
	)
}

func (m Mission2Model) View() string {
	leftWidth := m.leftWidth()
	wrap := leftWidth - 4

	title := MissionTitleStyle.Render("Mission 2: 미래 일기장")
	intro := BodyStyle.Render(wordwrap.String("AI를 나의 두뇌를 확장시켜주는 생각 파트너(Thinking Partner)로 활용해 20년 후의 꿈을 함께 그려보세요.", max(m.width-4, 30)))

	stepTitle := "✍️ 2045년의 나 상상하기"
	if m.state.Iteration > 0 {
		stepTitle = "✍️ AI에게 피드백 주기"
	}

	var inputArea string
	if m.state.Loading {
		inputArea = fmt.Sprintf("%s AI가 상상하는 중...", m.spinner.View())
	} else {
		inputArea = m.input.View()
	}

	left := []string{
		HighlightStyle.Render(stepTitle),
		BodyStyle.Render(wordwrap.String(m.state.InputHint(), wrap)),
		"",
		inputArea,
	}
	if m.state.ShowSuggestions() {
		var chips []string
		for i, label := range chipLabels {
			chips = append(chips, ChipStyle.Render(fmt.Sprintf("alt+%d %s", i+1, label)))
		}
		left = append(left, "", lipgloss.JoinVertical(lipgloss.Left, chips...))
	}
	submitLabel := "enter: 미래 일기 생성 ✨"
	if m.state.Iteration > 0 {
		submitLabel = "enter: 수정 요청하기 🔄"
	}
	left = append(left, "", HelpStyle.Render(submitLabel))
	if n := len(m.state.Requests); n > 0 {
		left = append(left, SubtitleStyle.Render(fmt.Sprintf("요청 %d회 · 완성 %d회", n, m.state.Iteration)))
	}

	leftPanel := PanelStyle.Width(leftWidth).Render(lipgloss.JoinVertical(lipgloss.Left, left...))

	rightPanel := lipgloss.JoinVertical(lipgloss.Left,
		HighlightStyle.Render("📔 2045년 미래 일기장"),
		m.panel.View(),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, "  ", rightPanel)

	var footer string
	if enc := m.state.Encouragement(); enc != "" {
		footer = CorrectStyle.Render(enc)
		if m.state.CanFinish() {
			footer += "\n" + HelpStyle.Render("ctrl+n: 다음 단계: 팩트 체크 →")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, intro, "", body, "", footer)
}

func (m Mission2Model) leftWidth() int {
	return max(m.width*2/5, 30)
}

func (m *Mission2Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	left := m.leftWidth()
	m.input.SetWidth(left - 4)
	m.panel.SetSize(max(w-left-6, 30), max(h-8, 8))
}
