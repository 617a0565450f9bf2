package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/manasm11/academy/internal/session"
	"github.com/manasm11/academy/internal/tui/components"
	"github.com/muesli/reflow/wordwrap"
)

// FactChecker produces a fresh statement for a topic on every call.
type FactChecker interface {
	FactCheckItem(ctx context.Context, topic string) session.FactCheckItem
}

// factCheckMsg carries a generated statement for one attempt.
type factCheckMsg struct {
	Attempt int
	Item    session.FactCheckItem
}

// Mission3Model is the topic fact-check grid and its question modal.
type Mission3Model struct {
	checker       FactChecker
	state         FactCheckState
	grid          components.TopicGridModel
	progress      components.ProgressBarModel
	spinner       spinner.Model
	width, height int
}

func NewMission3Model(checker FactChecker, cleared session.TopicSet) Mission3Model {
	state := NewFactCheckState(cleared)

	var cards []components.TopicCard
	for _, t := range session.Topics() {
		cards = append(cards, components.TopicCard{Name: t.Name, Icon: t.Icon, Cleared: state.Cleared.Has(t.Name)})
	}

	progress := components.NewProgressBarModel(len(cards), 50)
	progress.SetLabel("Topic")
	progress.SetDone(state.Cleared.Len())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(Secondary)

	return Mission3Model{
		checker:  checker,
		state:    state,
		grid:     components.NewTopicGridModel(cards),
		progress: progress,
		spinner:  sp,
	}
}

func (m Mission3Model) Init() tea.Cmd {
	return nil
}

// State returns the fact-check state.
func (m Mission3Model) State() FactCheckState {
	return m.state
}

func (m Mission3Model) Update(msg tea.Msg) (Mission3Model, tea.Cmd) {
	switch msg := msg.(type) {
	case components.TopicOpenMsg:
		attempt, ok := m.state.Open(msg.Topic)
		if !ok {
			return m, nil
		}
		checker := m.checker
		topic := msg.Topic
		return m, tea.Batch(
			func() tea.Msg {
				return factCheckMsg{Attempt: attempt, Item: checker.FactCheckItem(context.Background(), topic)}
			},
			m.spinner.Tick,
		)

	case factCheckMsg:
		m.state.Receive(msg.Attempt, msg.Item)
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.state.ModalOpen() {
			return m.updateModal(msg)
		}
		if msg.String() == "ctrl+n" {
			if m.state.Complete() {
				return m, complete(session.StageMission3)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.grid, cmd = m.grid.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Mission3Model) updateModal(msg tea.KeyMsg) (Mission3Model, tea.Cmd) {
	switch msg.String() {
	case "t", "o", "1":
		m.guess(true)
	case "f", "x", "2":
		m.guess(false)
	case "esc":
		m.state.Close()
	case "enter":
		if m.state.Result != GuessNone {
			m.state.Close()
		}
	}
	return m, nil
}

func (m *Mission3Model) guess(isTrue bool) {
	result, ok := m.state.Guess(isTrue)
	if ok && result == GuessCorrect {
		m.grid.SetCleared(m.state.Active)
		m.progress.SetDone(m.state.Cleared.Len())
	}
}

func (m Mission3Model) View() string {
	title := MissionTitleStyle.Render("Mission 3: 팩트 체크 (Critical Thinking)")
	intro := BodyStyle.Render(wordwrap.String("AI 파트너도 실수할 수 있어요. 4가지 주제의 팩트를 검증하여 AI의 실수를 잡아내세요!", max(m.width-4, 30)))

	var body string
	if m.state.ModalOpen() {
		body = m.renderModal()
	} else {
		body = m.grid.View()
	}

	var footer string
	switch {
	case m.state.ModalOpen():
		footer = HelpStyle.Render(m.modalHelp())
	case m.state.Complete():
		footer = HighlightStyle.Render("모든 팩트 체크 완료! 🎉") + "\n" + HelpStyle.Render("ctrl+n: 수료증 발급 받기 🏆")
	default:
		footer = HelpStyle.Render("←/→/↑/↓ or 1-4: select  |  enter: 도전하기")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, intro, "", m.progress.View(), "", body, "", footer)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Mission3Model) renderModal() string {
	wrap := min(max(m.width-12, 30), 70)
	heading := SelectedStyle.Render(fmt.Sprintf("%s 팩트 체크", m.state.Active))

	var lines []string
	switch {
	case m.state.Loading:
		lines = append(lines, fmt.Sprintf("%s AI가 문제를 생성하고 있습니다...", m.spinner.View()),
			SubtitleStyle.Render("(데이터베이스 스캔 중 📡)"))
	case m.state.Item == nil:
		lines = append(lines, WrongStyle.Render("문제를 불러오지 못했습니다. 다시 시도해주세요."))
	default:
		lines = append(lines,
			SubtitleStyle.Render("AI의 주장:"),
			BodyStyle.Render(wordwrap.String(fmt.Sprintf("%q", m.state.Item.Statement), wrap)),
			"",
		)
		if m.state.Result == GuessNone {
			lines = append(lines, CorrectStyle.Render("[t] 진실 (True) ⭕")+"    "+WrongStyle.Render("[f] 거짓 (False) ❌"))
		} else {
			style := WrongStyle
			if m.state.Result == GuessCorrect {
				style = CorrectStyle
			}
			lines = append(lines,
				style.Render(m.state.Result.Text()),
				BodyStyle.Render(wordwrap.String(m.state.Item.Correction, wrap)),
			)
		}
	}

	return PanelStyle.
		BorderForeground(Primary).
		Width(wrap + 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, heading, "", lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

func (m Mission3Model) modalHelp() string {
	switch {
	case m.state.Result == GuessCorrect:
		return "enter: 미션 완료! 목록으로"
	case m.state.Result == GuessWrong:
		return "enter: 다시 시도하기"
	case m.state.Loading:
		return "esc: close"
	}
	return "t: 진실  |  f: 거짓  |  esc: close"
}

func (m *Mission3Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.grid.SetWidth(w)
	m.progress.SetWidth(min(w, 70))
}
