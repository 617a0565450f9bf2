package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/manasm11/academy/internal/session"
	"github.com/manasm11/academy/internal/survey"
)

// SurveySender delivers the questionnaire without blocking the caller.
type SurveySender interface {
	Submit(p session.UserProfile, diary string, r survey.Response) <-chan struct{}
}

// SurveyModel is the optional satisfaction questionnaire.
type SurveyModel struct {
	sender        SurveySender
	profile       session.UserProfile
	diary         string
	response      survey.Response
	opinion       textinput.Model
	focus         int
	submitted     bool
	sent          <-chan struct{}
	width, height int
}

func NewSurveyModel(sender SurveySender, profile session.UserProfile, diary string) SurveyModel {
	ti := textinput.New()
	ti.Placeholder = "자유롭게 의견을 남겨주세요."
	ti.CharLimit = 500
	ti.Width = 50

	return SurveyModel{
		sender:   sender,
		profile:  profile,
		diary:    diary,
		response: NewSurveyResponse(),
		opinion:  ti,
	}
}

func (m SurveyModel) Init() tea.Cmd {
	return nil
}

// Response returns the answers as currently filled in.
func (m SurveyModel) Response() survey.Response {
	r := m.response
	r.Opinion = m.opinion.Value()
	return r
}

// Submitted reports whether the survey was sent.
func (m SurveyModel) Submitted() bool {
	return m.submitted
}

// Sent returns the channel closed once delivery finishes, or nil when
// nothing was sent.
func (m SurveyModel) Sent() <-chan struct{} {
	return m.sent
}

func (m SurveyModel) Update(msg tea.Msg) (SurveyModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.focus == surveyFieldOpinion {
			var cmd tea.Cmd
			m.opinion, cmd = m.opinion.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % surveyFieldCount)
	case "shift+tab", "up":
		return m, m.setFocus((m.focus + surveyFieldCount - 1) % surveyFieldCount)
	case "ctrl+s":
		return m, m.submit()
	case "esc":
		return m, complete(session.StageSurvey)
	}

	switch m.focus {
	case surveyFieldSatisfaction, surveyFieldHelpfulness:
		delta := 0
		switch key.String() {
		case "left", "h", "-":
			delta = -1
		case "right", "l", "+":
			delta = 1
		case "enter":
			return m, m.setFocus(m.focus + 1)
		}
		if m.focus == surveyFieldSatisfaction {
			m.response.Satisfaction = AdjustRating(m.response.Satisfaction, delta)
		} else {
			m.response.Helpfulness = AdjustRating(m.response.Helpfulness, delta)
		}
		return m, nil
	}

	if key.String() == "enter" {
		return m, m.submit()
	}
	var cmd tea.Cmd
	m.opinion, cmd = m.opinion.Update(msg)
	return m, cmd
}

func (m *SurveyModel) setFocus(field int) tea.Cmd {
	m.focus = field
	if field == surveyFieldOpinion {
		return m.opinion.Focus()
	}
	m.opinion.Blur()
	return nil
}

func (m *SurveyModel) submit() tea.Cmd {
	if m.submitted {
		return nil
	}
	m.submitted = true
	if m.sender != nil {
		m.sent = m.sender.Submit(m.profile, m.diary, m.Response())
	}
	return complete(session.StageSurvey)
}

// complete returns a command reporting that stage is finished.
func complete(stage session.Stage) tea.Cmd {
	return func() tea.Msg {
		return StageCompleteMsg{From: stage}
	}
}

func (m SurveyModel) View() string {
	title := MissionTitleStyle.Render("교육 만족도 설문")
	intro := BodyStyle.Render("수료증을 받기 전에 잠깐! 여러분의 의견을 들려주세요.")

	rows := []string{title, intro, ""}
	ratings := [2]int{m.response.Satisfaction, m.response.Helpfulness}
	for i, q := range surveyQuestions {
		label := BodyStyle.Render(q)
		stars := SubtitleStyle.Render(Stars(ratings[i]))
		if m.focus == i {
			label = SelectedStyle.Render("▸ " + q)
			stars = HighlightStyle.Render("◀ " + Stars(ratings[i]) + " ▶")
		}
		rows = append(rows, label, fmt.Sprintf("  %s  %d/%d", stars, ratings[i], survey.MaxRating), "")
	}

	opinionLabel := BodyStyle.Render("기타 의견")
	if m.focus == surveyFieldOpinion {
		opinionLabel = SelectedStyle.Render("▸ 기타 의견")
	}
	rows = append(rows, opinionLabel, PanelStyle.Render(m.opinion.View()), "")

	rows = append(rows,
		ButtonStyle.Render("제출하고 수료증 받기"),
		"",
		HelpStyle.Render("tab: next  |  ←/→: rating  |  ctrl+s: submit  |  esc: skip"),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *SurveyModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.opinion.Width = min(max(w-20, 20), 60)
}
