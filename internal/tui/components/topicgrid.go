package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TopicCard is one cell in the topic grid.
type TopicCard struct {
	Name    string
	Icon    string
	Cleared bool
}

// TopicOpenMsg is emitted when the student opens an uncleared topic.
type TopicOpenMsg struct {
	Topic string
}

// TopicGridModel is a keyboard-driven grid of topic cards.
type TopicGridModel struct {
	cards  []TopicCard
	cursor int
	width  int
}

const topicCardWidth = 16

// Styles for topic cards.
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6B7280")).
			Width(topicCardWidth).
			Align(lipgloss.Center).
			Padding(0, 1)

	cardClearedStyle = cardStyle.
				BorderForeground(lipgloss.Color("#10B981"))

	clearedLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true).
			Render("CLEAR ✅")

	openLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Render("도전하기")
)

// NewTopicGridModel creates a grid over cards.
func NewTopicGridModel(cards []TopicCard) TopicGridModel {
	return TopicGridModel{cards: cards}
}

// SetWidth updates the available width; it controls the column count.
func (m *TopicGridModel) SetWidth(w int) {
	m.width = w
}

// SetCleared marks the named topic as cleared.
func (m *TopicGridModel) SetCleared(name string) {
	for i := range m.cards {
		if m.cards[i].Name == name {
			m.cards[i].Cleared = true
		}
	}
}

// Cards returns a copy of the cards.
func (m TopicGridModel) Cards() []TopicCard {
	out := make([]TopicCard, len(m.cards))
	copy(out, m.cards)
	return out
}

// Cursor returns the highlighted card index.
func (m TopicGridModel) Cursor() int {
	return m.cursor
}

// Columns returns how many cards fit side by side: all of them when wide
// enough, otherwise two.
func (m TopicGridModel) Columns() int {
	n := len(m.cards)
	if n == 0 {
		return 1
	}
	full := n * (topicCardWidth + 4)
	if m.width == 0 || m.width >= full || n <= 2 {
		return n
	}
	return 2
}

// Init returns the initial command.
func (m TopicGridModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and opening.
func (m TopicGridModel) Update(msg tea.Msg) (TopicGridModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.cards) == 0 {
		return m, nil
	}

	cols := m.Columns()
	switch key.String() {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(m.cards)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case "down", "j":
		if m.cursor+cols < len(m.cards) {
			m.cursor += cols
		}
	case "enter", " ":
		return m, m.open(m.cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key.String()[0] - '1')
		if idx < len(m.cards) {
			m.cursor = idx
			return m, m.open(idx)
		}
	}
	return m, nil
}

func (m TopicGridModel) open(idx int) tea.Cmd {
	card := m.cards[idx]
	if card.Cleared {
		return nil
	}
	return func() tea.Msg {
		return TopicOpenMsg{Topic: card.Name}
	}
}

// View renders the grid.
func (m TopicGridModel) View() string {
	if len(m.cards) == 0 {
		return ""
	}

	cols := m.Columns()
	var rows []string
	for start := 0; start < len(m.cards); start += cols {
		end := start + cols
		if end > len(m.cards) {
			end = len(m.cards)
		}
		var cells []string
		for i := start; i < end; i++ {
			cells = append(cells, m.renderCard(i), " ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m TopicGridModel) renderCard(idx int) string {
	card := m.cards[idx]

	style := cardStyle
	label := openLabel
	if card.Cleared {
		style = cardClearedStyle
		label = clearedLabel
	}
	if idx == m.cursor {
		style = style.BorderForeground(lipgloss.Color("#7C3AED")).BorderStyle(lipgloss.ThickBorder())
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Center, card.Icon, card.Name, label))
}
