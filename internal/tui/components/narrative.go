package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// NarrativeModel shows a Markdown document in a scrollable panel.
type NarrativeModel struct {
	viewport    viewport.Model
	renderer    *glamour.TermRenderer
	markdown    string
	placeholder string
	wrapWidth   int
	width       int
	height      int
}

var (
	narrativeBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#06B6D4"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6B7280")).
				Italic(true)
)

// NewNarrativeModel creates an empty panel that shows placeholder until
// content arrives.
func NewNarrativeModel(placeholder string) NarrativeModel {
	return NarrativeModel{
		viewport:    viewport.New(0, 0),
		placeholder: placeholder,
	}
}

// SetSize updates the outer dimensions, border included.
func (m *NarrativeModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = max(w-2, 0)
	m.viewport.Height = max(h-2, 0)
	m.refresh()
}

// SetMarkdown replaces the document and scrolls to the top.
func (m *NarrativeModel) SetMarkdown(md string) {
	m.markdown = md
	m.refresh()
	m.viewport.GotoTop()
}

// Markdown returns the raw document.
func (m NarrativeModel) Markdown() string {
	return m.markdown
}

// Update forwards scroll keys to the viewport.
func (m NarrativeModel) Update(msg tea.Msg) (NarrativeModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the bordered panel.
func (m NarrativeModel) View() string {
	if m.width == 0 {
		return ""
	}
	return narrativeBorderStyle.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(m.viewport.View())
}

func (m *NarrativeModel) refresh() {
	inner := max(m.viewport.Width-2, 10)

	if strings.TrimSpace(m.markdown) == "" {
		m.viewport.SetContent(placeholderStyle.Render(wordwrap.String(m.placeholder, inner)))
		return
	}

	if m.renderer == nil || m.wrapWidth != inner {
		m.renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(inner),
		)
		m.wrapWidth = inner
	}
	m.viewport.SetContent(RenderMarkdown(m.renderer, m.markdown, inner))
}

// RenderMarkdown renders md with r, falling back to word-wrapped plain text
// when r is nil or fails.
func RenderMarkdown(r *glamour.TermRenderer, md string, width int) string {
	if r != nil {
		if out, err := r.Render(md); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	return wordwrap.String(md, width)
}
