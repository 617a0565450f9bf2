package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Stage is one screen of the wizard.
type Stage string

const (
	StageIntro       Stage = "intro"
	StageMission1    Stage = "mission1"
	StageMission2    Stage = "mission2"
	StageMission3    Stage = "mission3"
	StageSurvey      Stage = "survey"
	StageCertificate Stage = "certificate"
)

// ErrUnknownStage is returned by Advance for a value outside the enum.
var ErrUnknownStage = errors.New("unknown stage")

// Stages returns the full ordered stage list.
func Stages() []Stage {
	return []Stage{StageIntro, StageMission1, StageMission2, StageMission3, StageSurvey, StageCertificate}
}

// Advance returns the stage that follows current. The survey stage is only
// visited when includeSurvey is set. Certificate wraps around to Intro,
// which is the restart path.
func Advance(current Stage, includeSurvey bool) (Stage, error) {
	switch current {
	case StageIntro:
		return StageMission1, nil
	case StageMission1:
		return StageMission2, nil
	case StageMission2:
		return StageMission3, nil
	case StageMission3:
		if includeSurvey {
			return StageSurvey, nil
		}
		return StageCertificate, nil
	case StageSurvey:
		return StageCertificate, nil
	case StageCertificate:
		return StageIntro, nil
	default:
		return "", fmt.Errorf("advance from %q: %w", current, ErrUnknownStage)
	}
}

// MissionNumber returns 1-3 for mission stages and 0 otherwise.
func (s Stage) MissionNumber() int {
	switch s {
	case StageMission1:
		return 1
	case StageMission2:
		return 2
	case StageMission3:
		return 3
	}
	return 0
}

// UserProfile is collected at Intro and read by the certificate.
type UserProfile struct {
	Name   string `json:"name"`
	School string `json:"school"`
	Grade  string `json:"grade"`
}

// Valid reports whether every field is non-empty.
func (p UserProfile) Valid() bool {
	return strings.TrimSpace(p.Name) != "" &&
		strings.TrimSpace(p.School) != "" &&
		strings.TrimSpace(p.Grade) != ""
}

// Trimmed returns a copy with surrounding whitespace removed.
func (p UserProfile) Trimmed() UserProfile {
	return UserProfile{
		Name:   strings.TrimSpace(p.Name),
		School: strings.TrimSpace(p.School),
		Grade:  strings.TrimSpace(p.Grade),
	}
}

// Session is the state of one wizard run. It lives in memory only and is
// reset when the student restarts from the certificate.
type Session struct {
	ID            string
	Profile       UserProfile
	Stage         Stage
	Diary         string
	Cleared       TopicSet
	IncludeSurvey bool
	StartedAt     time.Time
}

// New creates a session at the Intro stage.
func New(includeSurvey bool) *Session {
	return &Session{
		ID:            uuid.NewString(),
		Stage:         StageIntro,
		Cleared:       NewTopicSet(),
		IncludeSurvey: includeSurvey,
		StartedAt:     time.Now(),
	}
}

// SetProfile records the profile. It only succeeds once per run.
func (s *Session) SetProfile(p UserProfile) error {
	if s.Profile.Valid() {
		return errors.New("profile already set for this session")
	}
	if !p.Valid() {
		return errors.New("profile requires name, school and grade")
	}
	s.Profile = p.Trimmed()
	return nil
}

// Next moves the session to the following stage and returns it.
func (s *Session) Next() (Stage, error) {
	next, err := Advance(s.Stage, s.IncludeSurvey)
	if err != nil {
		return s.Stage, err
	}
	if next == StageIntro {
		s.Reset()
		return s.Stage, nil
	}
	s.Stage = next
	return next, nil
}

// Reset discards everything collected and returns to Intro with a new ID.
func (s *Session) Reset() {
	s.ID = uuid.NewString()
	s.Profile = UserProfile{}
	s.Stage = StageIntro
	s.Diary = ""
	s.Cleared = NewTopicSet()
	s.StartedAt = time.Now()
}
