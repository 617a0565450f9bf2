package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/manasm11/academy/internal/certificate"
	"github.com/manasm11/academy/internal/logger"
	"github.com/manasm11/academy/internal/session"
	"github.com/manasm11/academy/internal/tui/components"
)

// StageCompleteMsg signals that the screen for From is done. Profile is set
// by Intro and Diary by Mission 2. A message whose From is not the current
// stage is stale and ignored.
type StageCompleteMsg struct {
	From    session.Stage
	Profile *session.UserProfile
	Diary   string
}

// Deps are the collaborators the screens call out to.
type Deps struct {
	Writer    NarrativeWriter
	Checker   FactChecker
	Survey    SurveySender
	Exporter  CertificateExporter
	Issuer    string
	ExportDir string
	Log       *logger.Logger
	Now       func() time.Time
}

// AppModel is the root bubbletea model. It owns the session and swaps the
// active screen on every stage transition.
type AppModel struct {
	deps     Deps
	sess     *session.Session
	log      *logger.Logger
	intro    IntroModel
	mission1 Mission1Model
	mission2 Mission2Model
	mission3 Mission3Model
	survey   SurveyModel
	cert     CertificateModel
	progress components.ProgressBarModel
	width    int
	height   int
	err      error
	quitting bool

	// One channel per survey handed to the sender.
	deliveries []<-chan struct{}
}

// NewAppModel creates the root model for sess.
func NewAppModel(sess *session.Session, deps Deps) *AppModel {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	m := &AppModel{
		deps:     deps,
		sess:     sess,
		progress: components.NewProgressBarModel(3, 30),
	}
	m.log = deps.Log.With("session", sess.ID)
	m.enterStage()
	return m
}

// Session returns the session being driven.
func (m *AppModel) Session() *session.Session {
	return m.sess
}

// Stage returns the active stage.
func (m *AppModel) Stage() session.Stage {
	return m.sess.Stage
}

func (m *AppModel) Init() tea.Cmd {
	return m.initStage()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case StageCompleteMsg:
		return m, m.complete(msg)
	}

	// Delegate to active stage
	var cmd tea.Cmd
	switch m.sess.Stage {
	case session.StageIntro:
		m.intro, cmd = m.intro.Update(msg)
	case session.StageMission1:
		m.mission1, cmd = m.mission1.Update(msg)
	case session.StageMission2:
		m.mission2, cmd = m.mission2.Update(msg)
	case session.StageMission3:
		m.mission3, cmd = m.mission3.Update(msg)
	case session.StageSurvey:
		sent := m.survey.Sent()
		m.survey, cmd = m.survey.Update(msg)
		if ch := m.survey.Sent(); ch != nil && sent == nil {
			m.deliveries = append(m.deliveries, ch)
		}
	case session.StageCertificate:
		m.cert, cmd = m.cert.Update(msg)
	}
	return m, cmd
}

// WaitForSurveys blocks until every submitted survey has been delivered or
// timeout elapses, and reports whether all of them finished.
func (m *AppModel) WaitForSurveys(timeout time.Duration) bool {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for _, done := range m.deliveries {
		select {
		case <-done:
		case <-deadline.C:
			return false
		}
	}
	return true
}

// complete applies a finished stage's outputs and moves the session on.
func (m *AppModel) complete(msg StageCompleteMsg) tea.Cmd {
	if msg.From != m.sess.Stage {
		m.log.Debug("ignoring stale stage completion", "from", msg.From, "stage", m.sess.Stage)
		return nil
	}

	if msg.Profile != nil {
		if err := m.sess.SetProfile(*msg.Profile); err != nil {
			m.log.Warn("profile rejected", "error", err)
		}
	}
	if msg.From == session.StageMission2 {
		m.sess.Diary = msg.Diary
	}

	prevID := m.sess.ID
	next, err := m.sess.Next()
	if err != nil {
		m.err = err
		m.log.Error("stage transition failed", "from", msg.From, "error", err)
		return nil
	}
	if m.sess.ID != prevID {
		m.log.Info("session restarted", "next_session", m.sess.ID)
		m.log = m.deps.Log.With("session", m.sess.ID)
	}
	m.log.Info("stage transition", "from", msg.From, "to", next)

	m.err = nil
	m.enterStage()
	return m.initStage()
}

// enterStage rebuilds the screen for the current stage.
func (m *AppModel) enterStage() {
	switch m.sess.Stage {
	case session.StageIntro:
		m.intro = NewIntroModel()
	case session.StageMission1:
		m.mission1 = NewMission1Model()
	case session.StageMission2:
		m.mission2 = NewMission2Model(m.deps.Writer)
	case session.StageMission3:
		m.mission3 = NewMission3Model(m.deps.Checker, m.sess.Cleared)
	case session.StageSurvey:
		m.survey = NewSurveyModel(m.deps.Survey, m.sess.Profile, m.sess.Diary)
	case session.StageCertificate:
		data := certificate.NewData(m.sess.Profile, m.deps.Issuer, m.deps.Now())
		m.cert = NewCertificateModel(m.deps.Exporter, data, m.deps.ExportDir)
	}
	m.progress.SetDone(m.sess.Stage.MissionNumber())
	m.resize()
}

func (m *AppModel) initStage() tea.Cmd {
	switch m.sess.Stage {
	case session.StageIntro:
		return m.intro.Init()
	case session.StageMission2:
		return m.mission2.Init()
	}
	return nil
}

func (m *AppModel) resize() {
	// Reserve space for header and status bar
	contentHeight := max(m.height-4, 0)

	// Only the active screen has been built.
	switch m.sess.Stage {
	case session.StageIntro:
		m.intro.SetSize(m.width, contentHeight)
	case session.StageMission1:
		m.mission1.SetSize(m.width, contentHeight)
	case session.StageMission2:
		m.mission2.SetSize(m.width, contentHeight)
	case session.StageMission3:
		m.mission3.SetSize(m.width, contentHeight)
	case session.StageSurvey:
		m.survey.SetSize(m.width, contentHeight)
	case session.StageCertificate:
		m.cert.SetSize(m.width, contentHeight)
	}
	m.progress.SetWidth(min(m.width/3, 40))
}

func (m *AppModel) View() string {
	if m.quitting {
		return ""
	}

	header := m.renderHeader()

	var content string
	switch m.sess.Stage {
	case session.StageIntro:
		content = m.intro.View()
	case session.StageMission1:
		content = m.mission1.View()
	case session.StageMission2:
		content = m.mission2.View()
	case session.StageMission3:
		content = m.mission3.View()
	case session.StageSurvey:
		content = m.survey.View()
	case session.StageCertificate:
		content = m.cert.View()
	default:
		content = lipgloss.Place(m.width, max(m.height-4, 0), lipgloss.Center, lipgloss.Center,
			WrongStyle.Render("알 수 없는 단계입니다. 프로그램을 다시 시작해주세요."))
	}

	if m.err != nil {
		errMsg := lipgloss.NewStyle().
			Foreground(Danger).
			Render(fmt.Sprintf("Error: %v", m.err))
		content = lipgloss.JoinVertical(lipgloss.Left, content, errMsg)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, m.renderStatusBar())
}

func (m *AppModel) renderHeader() string {
	title := TitleStyle.Render("🤖 AI Co-Pilot Academy")

	type stageLabel struct {
		name  string
		stage session.Stage
	}
	stages := []stageLabel{
		{"Intro", session.StageIntro},
		{"Mission 1", session.StageMission1},
		{"Mission 2", session.StageMission2},
		{"Mission 3", session.StageMission3},
	}
	if m.sess.IncludeSurvey {
		stages = append(stages, stageLabel{"Survey", session.StageSurvey})
	}
	stages = append(stages, stageLabel{"License", session.StageCertificate})

	var indicators string
	for i, s := range stages {
		style := PhaseLabelStyle
		if s.stage == m.sess.Stage {
			style = PhaseActiveStyle
		}
		if i > 0 {
			indicators += SubtitleStyle.Render(" → ")
		}
		indicators += style.Render(s.name)
	}

	parts := []string{title, "  ", indicators}
	if m.sess.Stage.MissionNumber() > 0 {
		parts = append(parts, "  ", m.progress.View())
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Background(lipgloss.Color("#1F2937")).
		PaddingLeft(1).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, parts...))
}

func (m *AppModel) renderStatusBar() string {
	help := "ctrl+c: quit"
	if name := m.sess.Profile.Name; name != "" {
		help = name + "  |  " + help
	}
	return StatusBar.
		Width(m.width).
		Render(help)
}
