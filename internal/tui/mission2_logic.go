package tui

import (
	"strings"

	"github.com/manasm11/academy/internal/session"
)

// minDiaryIterations is how many generations unlock the next mission.
const minDiaryIterations = 2

// CoWriteState tracks Mission 2. Loading is the in-flight guard: while it is
// set no new request may be issued.
type CoWriteState struct {
	Diary     string
	Iteration int
	Loading   bool
	Requests  []string
}

// CanSubmit reports whether input may be sent now.
func (s CoWriteState) CanSubmit(input string) bool {
	return !s.Loading && strings.TrimSpace(input) != ""
}

// Begin marks a request as in flight and returns the prior diary to refine.
func (s *CoWriteState) Begin(input string) (instruction, prior string) {
	s.Loading = true
	instruction = strings.TrimSpace(input)
	s.Requests = append(s.Requests, instruction)
	return instruction, s.Diary
}

// Apply stores a finished generation.
func (s *CoWriteState) Apply(text string) {
	s.Diary = text
	s.Iteration++
	s.Loading = false
}

// CanFinish reports whether the next mission is unlocked.
func (s CoWriteState) CanFinish() bool {
	return s.Iteration >= minDiaryIterations
}

// ShowSuggestions reports whether the refinement chips are offered.
func (s CoWriteState) ShowSuggestions() bool {
	return s.Iteration >= 1
}

// Encouragement is the line shown under the diary after each iteration.
func (s CoWriteState) Encouragement() string {
	switch {
	case s.Iteration == 0:
		return ""
	case s.Iteration == 1:
		return "AI가 작성한 미래가 마음에 드시나요? 피드백을 통해 내용을 더 풍성하게 만들어보세요!"
	default:
		return "멋진 협업입니다! AI 파트너와 함께 상상하면 꿈이 더 구체적으로 변합니다."
	}
}

// InputHint is the prompt above the text area.
func (s CoWriteState) InputHint() string {
	if s.Iteration == 0 {
		return "20년 후, 어떤 직업을 가지고 있을까요? AI에게 상황을 설명해주세요."
	}
	return "AI가 쓴 일기가 어떤가요? 더 구체적으로 묘사하거나 내용을 추가해달라고 요청해보세요."
}

// SuggestionForKey maps a chip shortcut to its suggestion text.
func SuggestionForKey(key string) (string, bool) {
	var idx int
	switch key {
	case "ctrl+1", "alt+1":
		idx = 0
	case "ctrl+2", "alt+2":
		idx = 1
	case "ctrl+3", "alt+3":
		idx = 2
	default:
		return "", false
	}
	suggestions := session.DiarySuggestions()
	if idx >= len(suggestions) {
		return "", false
	}
	return suggestions[idx], true
}
