package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/manasm11/academy/internal/certificate"
	"github.com/manasm11/academy/internal/session"
)

// CertificateExporter writes the license card to dir and returns the path.
type CertificateExporter interface {
	Export(d certificate.Data, dir string) (string, error)
}

// exportDoneMsg reports the outcome of a PDF export.
type exportDoneMsg struct {
	Path string
	Err  error
}

type exportStatus int

const (
	exportIdle exportStatus = iota
	exportRunning
	exportSaved
	exportFailed
)

// CertificateModel shows the license card and exports it on request.
type CertificateModel struct {
	exporter      CertificateExporter
	data          certificate.Data
	dir           string
	status        exportStatus
	path          string
	err           error
	width, height int
}

func NewCertificateModel(exporter CertificateExporter, data certificate.Data, dir string) CertificateModel {
	return CertificateModel{exporter: exporter, data: data, dir: dir}
}

func (m CertificateModel) Init() tea.Cmd {
	return nil
}

// Data returns the card being shown.
func (m CertificateModel) Data() certificate.Data {
	return m.data
}

func (m CertificateModel) Update(msg tea.Msg) (CertificateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.Err != nil {
			m.status = exportFailed
			m.path = ""
			m.err = msg.Err
			return m, nil
		}
		m.status = exportSaved
		m.path = msg.Path
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "p":
			if m.status == exportRunning || m.exporter == nil {
				return m, nil
			}
			m.status = exportRunning
			exporter, data, dir := m.exporter, m.data, m.dir
			return m, func() tea.Msg {
				path, err := exporter.Export(data, dir)
				return exportDoneMsg{Path: path, Err: err}
			}
		case "r":
			if m.status == exportRunning {
				return m, nil
			}
			return m, complete(session.StageCertificate)
		}
	}
	return m, nil
}

func (m CertificateModel) View() string {
	heading := lipgloss.JoinVertical(lipgloss.Center,
		HighlightStyle.Render("🏆"),
		MissionTitleStyle.Render("축하합니다! 모든 미션을 완료했습니다!"),
	)

	var status string
	switch m.status {
	case exportRunning:
		status = SubtitleStyle.Render("다운로드 중... ⏳")
	case exportSaved:
		status = CorrectStyle.Render("저장 완료: " + m.path)
	case exportFailed:
		status = WrongStyle.Render(certificate.ExportErrorMessage)
		if errors.Is(m.err, certificate.ErrMissingGlyphs) {
			status += "\n" + SubtitleStyle.Render("한글 글꼴을 찾을 수 없습니다. certificate.font_path를 설정해주세요.")
		}
	}

	help := HelpStyle.Render("p: PDF로 저장하기  |  r: 처음으로 돌아가기")
	content := lipgloss.JoinVertical(lipgloss.Center, heading, "", m.renderCard(), "", status, help)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m CertificateModel) renderCard() string {
	p := m.data.Profile
	cardWidth := min(max(m.width-8, 44), 72)

	title := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Foreground(Primary).Render(certificate.Title),
		SubtitleStyle.Render(certificate.Subtitle),
	)

	field := func(label, value string) string {
		return SubtitleStyle.Render(fmt.Sprintf("%-6s", label)) + " " + BodyStyle.Bold(true).Render(value)
	}
	fields := lipgloss.JoinVertical(lipgloss.Left,
		field("소속", p.School),
		field("학년/반", p.Grade),
		field("성명", p.Name),
	)

	var badges []string
	for _, b := range certificate.Badges() {
		badges = append(badges, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Width((cardWidth-12)/3).
			Align(lipgloss.Center).
			Render(b.Icon+"\n"+SelectedStyle.Render(b.Title)+"\n"+SubtitleStyle.Render(b.Subtitle)))
	}
	badgeRow := lipgloss.JoinHorizontal(lipgloss.Top, badges...)

	statement := lipgloss.NewStyle().
		Foreground(Text).
		Width(cardWidth - 6).
		Align(lipgloss.Center).
		Render(certificate.Statement)

	footer := lipgloss.JoinVertical(lipgloss.Right,
		BodyStyle.Bold(true).Render(m.data.Issuer),
		SubtitleStyle.Render(m.data.IssuedLine()),
	)

	body := lipgloss.JoinVertical(lipgloss.Center,
		title, "", fields, "", badgeRow, "", statement, "",
		lipgloss.NewStyle().Width(cardWidth-6).Align(lipgloss.Right).Render(footer),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Warning).
		Padding(1, 2).
		Width(cardWidth).
		Render(strings.TrimRight(body, "\n"))
}

func (m *CertificateModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}
