package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/manasm11/academy/internal/provider"
)

// ErrMissingAPIKey is returned when the Gemini backend is selected without a key.
var ErrMissingAPIKey = errors.New("generation: API key is required")

// Request is a single free-text generation call.
type Request struct {
	Prompt string
	// Temperature overrides the backend default when non-nil.
	Temperature *float32
}

// Generator sends one prompt to a text-generation backend and returns its
// text. Implementations perform exactly one outbound call per Generate and
// never retry.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
}

// NewGenerator builds the backend selected by cfg.
func NewGenerator(ctx context.Context, cfg provider.Config) (Generator, error) {
	model := cfg.Model
	if model == "" {
		model = provider.DefaultModel(cfg.Type)
	}

	switch cfg.Type {
	case provider.ProviderGemini:
		return NewGeminiGenerator(ctx, cfg.APIKey, model)
	case provider.ProviderOllama:
		return NewOllamaGenerator(cfg.OllamaURL, model, nil), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Type)
	}
}

func temperature(v float32) *float32 {
	return &v
}
