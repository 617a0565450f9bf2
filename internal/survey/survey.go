// Package survey sends the optional end-of-course questionnaire to a
// spreadsheet-logging endpoint.
package survey

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/manasm11/academy/internal/logger"
	"github.com/manasm11/academy/internal/session"
)

// Rating bounds for satisfaction and helpfulness.
const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 5
)

// ErrRatingOutOfRange is returned by Validate for a score outside 1..5.
var ErrRatingOutOfRange = errors.New("survey: rating must be between 1 and 5")

// Response is what the student filled in.
type Response struct {
	Satisfaction int
	Helpfulness  int
	Opinion      string
}

// Validate checks both ratings.
func (r Response) Validate() error {
	if r.Satisfaction < MinRating || r.Satisfaction > MaxRating {
		return fmt.Errorf("satisfaction %d: %w", r.Satisfaction, ErrRatingOutOfRange)
	}
	if r.Helpfulness < MinRating || r.Helpfulness > MaxRating {
		return fmt.Errorf("helpfulness %d: %w", r.Helpfulness, ErrRatingOutOfRange)
	}
	return nil
}

// Payload is the JSON body the spreadsheet endpoint expects.
type Payload struct {
	Date         string `json:"date"`
	School       string `json:"school"`
	Grade        string `json:"grade"`
	Name         string `json:"name"`
	Satisfaction int    `json:"satisfaction"`
	Helpfulness  int    `json:"helpfulness"`
	Opinion      string `json:"opinion"`
	Diary        string `json:"diary"`
	Timestamp    string `json:"timestamp"`
}

// NewPayload assembles the body from the session and the answers.
func NewPayload(p session.UserProfile, diary string, r Response, now time.Time) Payload {
	return Payload{
		Date:         now.Format("2006-01-02"),
		School:       p.School,
		Grade:        p.Grade,
		Name:         p.Name,
		Satisfaction: r.Satisfaction,
		Helpfulness:  r.Helpfulness,
		Opinion:      strings.TrimSpace(r.Opinion),
		Diary:        diary,
		Timestamp:    now.Format(time.RFC3339),
	}
}

// Submitter posts payloads. The zero value is not usable; call NewSubmitter.
type Submitter struct {
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
	log        *logger.Logger
	now        func() time.Time
}

// NewSubmitter creates a submitter for endpoint. An empty endpoint makes
// every submit a logged no-op.
func NewSubmitter(endpoint string, timeout time.Duration, log *logger.Logger) *Submitter {
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Submitter{
		endpoint:   strings.TrimSpace(endpoint),
		timeout:    timeout,
		httpClient: http.DefaultClient,
		log:        log,
		now:        time.Now,
	}
}

// Enabled reports whether an endpoint is configured.
func (s *Submitter) Enabled() bool {
	return s.endpoint != ""
}

// Submit sends the survey in the background and returns immediately. The
// returned channel is closed once the attempt finishes, whatever its outcome.
// Failures are only logged.
func (s *Submitter) Submit(p session.UserProfile, diary string, r Response) <-chan struct{} {
	done := make(chan struct{})
	if !s.Enabled() {
		s.log.Info("survey endpoint not configured, skipping submit")
		close(done)
		return done
	}

	payload := NewPayload(p, diary, r, s.now())
	go func() {
		defer close(done)
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.post(ctx, payload); err != nil {
			s.log.Warn("survey submit failed", "error", err)
			return
		}
		s.log.Info("survey submitted")
	}()
	return done
}

func (s *Submitter) post(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode survey: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	// The body is never inspected; drain it so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}
