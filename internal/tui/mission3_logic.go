package tui

import "github.com/manasm11/academy/internal/session"

// GuessResult is the outcome of a Mission 3 guess.
type GuessResult int

const (
	GuessNone GuessResult = iota
	GuessCorrect
	GuessWrong
)

// Text returns the banner shown for the result.
func (r GuessResult) Text() string {
	switch r {
	case GuessCorrect:
		return "정답입니다! 🎯"
	case GuessWrong:
		return "틀렸습니다 😅"
	}
	return ""
}

// FactCheckState tracks Mission 3. Each Open bumps Attempt, and replies are
// accepted only for the current attempt of an open modal.
type FactCheckState struct {
	Cleared session.TopicSet
	Active  string
	Attempt int
	Loading bool
	Item    *session.FactCheckItem
	Result  GuessResult
}

func NewFactCheckState(cleared session.TopicSet) FactCheckState {
	if cleared == nil {
		cleared = session.NewTopicSet()
	}
	return FactCheckState{Cleared: cleared}
}

// ModalOpen reports whether a topic is being attempted.
func (s FactCheckState) ModalOpen() bool {
	return s.Active != ""
}

// Open starts a new attempt at topic. Cleared topics and a second modal are
// refused.
func (s *FactCheckState) Open(topic string) (attempt int, ok bool) {
	if s.ModalOpen() || s.Cleared.Has(topic) {
		return 0, false
	}
	s.Attempt++
	s.Active = topic
	s.Loading = true
	s.Item = nil
	s.Result = GuessNone
	return s.Attempt, true
}

// Receive stores a generated item. It returns false and changes nothing when
// the reply belongs to a closed or superseded attempt.
func (s *FactCheckState) Receive(attempt int, item session.FactCheckItem) bool {
	if !s.ModalOpen() || attempt != s.Attempt || !s.Loading {
		return false
	}
	s.Item = &item
	s.Loading = false
	return true
}

// Guess answers the open statement. Guesses are ignored while loading or
// once a result is showing.
func (s *FactCheckState) Guess(isTrue bool) (GuessResult, bool) {
	if s.Loading || s.Item == nil || s.Result != GuessNone {
		return GuessNone, false
	}
	if isTrue == s.Item.IsTrue {
		s.Result = GuessCorrect
		s.Cleared.Add(s.Active)
	} else {
		s.Result = GuessWrong
	}
	return s.Result, true
}

// Close dismisses the modal and discards the statement.
func (s *FactCheckState) Close() {
	s.Active = ""
	s.Loading = false
	s.Item = nil
	s.Result = GuessNone
}

// Complete reports whether every topic is cleared.
func (s FactCheckState) Complete() bool {
	return s.Cleared.Complete()
}
