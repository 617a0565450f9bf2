package generation

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/manasm11/academy/internal/logger"
	"github.com/manasm11/academy/internal/session"
)

// Fallback texts shown to students when the backend fails. The Client never
// surfaces an error to its caller.
const (
	NarrativeEmptyFallback = "AI와의 연결이 불안정합니다. 잠시 후 다시 시도해주세요."
	NarrativeErrorFallback = "통신 오류가 발생했습니다. (API Key 확인 필요)"

	FactLoadingStatement  = "AI 모델 로딩 중..."
	FactLoadingCorrection = "연결을 확인해주세요."
	FactParseCorrection   = "AI는 항상 검증이 필요합니다."

	CoachEmptyFallback = "분석을 완료할 수 없습니다."
	CoachErrorFallback = "오류가 발생했습니다."
)

const (
	seedLimit           = 1_000_000
	factTemperature     = float32(0.9)
	factParseSuffixText = "에 대한 AI의 지식은 방대하지만 가끔은 실수를 합니다."
)

// Client turns student input into prompts, sends them through a Generator
// and maps every failure to a displayable fallback.
type Client struct {
	gen     Generator
	log     *logger.Logger
	seed    func() int
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithSeedSource replaces the random seed used in fact-check prompts.
func WithSeedSource(fn func() int) Option {
	return func(c *Client) {
		c.seed = fn
	}
}

// WithTimeout bounds each outbound call. The default is no bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient wraps gen. A nil log discards output.
func NewClient(gen Generator, log *logger.Logger, opts ...Option) *Client {
	if log == nil {
		log = logger.Nop()
	}
	c := &Client{
		gen:  gen,
		log:  log.With("backend", gen.Name()),
		seed: func() int { return rand.Intn(seedLimit) },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Backend names the wrapped generator.
func (c *Client) Backend() string {
	return c.gen.Name()
}

// Narrative writes a fresh diary entry when prior is blank and rewrites prior
// otherwise.
func (c *Client) Narrative(ctx context.Context, instruction, prior string) string {
	op := "narrative"
	if strings.TrimSpace(prior) != "" {
		op = "narrative_refine"
	}

	text, err := c.call(ctx, op, Request{Prompt: BuildNarrativePrompt(instruction, prior)})
	switch {
	case err != nil:
		return NarrativeErrorFallback
	case strings.TrimSpace(text) == "":
		c.log.Warn("empty generation", "op", op)
		return NarrativeEmptyFallback
	}
	return text
}

// FactCheckItem asks for a new statement about topic. Every call draws a new
// seed so repeated opens of the same topic differ.
func (c *Client) FactCheckItem(ctx context.Context, topic string) session.FactCheckItem {
	seed := c.seed()
	text, err := c.call(ctx, "fact_check", Request{
		Prompt:      BuildFactCheckPrompt(topic, seed),
		Temperature: temperature(factTemperature),
	})
	if err != nil {
		return session.FactCheckItem{
			Topic:      topic,
			Statement:  FactLoadingStatement,
			IsTrue:     true,
			Correction: FactLoadingCorrection,
		}
	}

	item, ok := ParseFactCheck(text)
	if !ok {
		c.log.Warn("unparseable fact check", "topic", topic, "seed", seed)
		return FactParseFallback(topic)
	}
	item.Topic = topic
	return item
}

// CoachPrompt returns brief feedback on a student's own prompt.
func (c *Client) CoachPrompt(ctx context.Context, prompt string) string {
	text, err := c.call(ctx, "coach", Request{Prompt: BuildCoachPrompt(prompt)})
	switch {
	case err != nil:
		return CoachErrorFallback
	case strings.TrimSpace(text) == "":
		return CoachEmptyFallback
	}
	return strings.TrimSpace(text)
}

// FactParseFallback is the item used when a reply lacks one of its fields.
func FactParseFallback(topic string) session.FactCheckItem {
	return session.FactCheckItem{
		Topic:      topic,
		Statement:  topic + factParseSuffixText,
		IsTrue:     true,
		Correction: FactParseCorrection,
	}
}

func (c *Client) call(ctx context.Context, op string, req Request) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := c.gen.Generate(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		c.log.Error("generation failed", "op", op, "elapsed", elapsed, "error", err)
		return "", err
	}
	c.log.Info("generation complete", "op", op, "elapsed", elapsed, "chars", len([]rune(text)))
	return text, nil
}
