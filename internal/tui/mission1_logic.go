package tui

import "github.com/manasm11/academy/internal/session"

// QuizState tracks Mission 1. Advancing is gated on the most recent choice,
// so a wrong answer after a right one locks "next" again.
type QuizState struct {
	challenges []session.PromptChallenge
	index      int
	lastChoice int
	feedback   string
}

func NewQuizState(challenges []session.PromptChallenge) QuizState {
	return QuizState{challenges: challenges, lastChoice: -1}
}

// Current returns the active challenge.
func (q QuizState) Current() session.PromptChallenge {
	return q.challenges[q.index]
}

// Index returns the zero-based position of the active challenge.
func (q QuizState) Index() int {
	return q.index
}

// Len returns the number of challenges.
func (q QuizState) Len() int {
	return len(q.challenges)
}

// Choose records a choice and returns the feedback to show. Out-of-range
// choices are ignored.
func (q *QuizState) Choose(i int) string {
	c := q.Current()
	if i < 0 || i >= len(c.BetterPromptOptions) {
		return q.feedback
	}
	q.lastChoice = i
	if i == c.CorrectIndex {
		q.feedback = c.Explanation
	} else {
		q.feedback = session.RetryFeedback
	}
	return q.feedback
}

// Feedback returns the message for the most recent choice.
func (q QuizState) Feedback() string {
	return q.feedback
}

// LastChoice returns the most recent choice, or -1.
func (q QuizState) LastChoice() int {
	return q.lastChoice
}

// CanAdvance reports whether the most recent choice was correct.
func (q QuizState) CanAdvance() bool {
	return q.lastChoice >= 0 && q.lastChoice == q.Current().CorrectIndex
}

// Next moves to the following challenge. It reports done when the last
// challenge was just passed; it does nothing while CanAdvance is false.
func (q *QuizState) Next() (done bool) {
	if !q.CanAdvance() {
		return false
	}
	if q.index == len(q.challenges)-1 {
		return true
	}
	q.index++
	q.lastChoice = -1
	q.feedback = ""
	return false
}
