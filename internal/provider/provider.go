package provider

import (
	"fmt"
	"strings"
)

// ProviderType identifies the text-generation backend.
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
)

// Config holds the backend selection the generation client is built from.
type Config struct {
	Type      ProviderType `yaml:"type"`
	Model     string       `yaml:"model"`
	APIKey    string       `yaml:"api_key,omitempty"`
	OllamaURL string       `yaml:"ollama_url,omitempty"`
}

// OllamaStatus is what DetectOllama learned about a server.
type OllamaStatus struct {
	Available bool
	URL       string
	Version   string
	Models    []OllamaModel // empty when the tag listing failed
	Error     string
}

// OllamaModel is one pulled model.
type OllamaModel struct {
	Name   string // e.g. "gemma3:latest"
	Size   int64
	Params string // parameter count as Ollama reports it, e.g. "4.3B"
}

// DefaultOllamaURL returns the standard local Ollama endpoint.
func DefaultOllamaURL() string {
	return "http://localhost:11434"
}

// DefaultGeminiModel is the hosted model the academy was written against.
const DefaultGeminiModel = "gemini-2.5-flash"

// DefaultConfig returns Gemini with the default model. The API key comes
// from the environment later.
func DefaultConfig() Config {
	return Config{
		Type:  ProviderGemini,
		Model: DefaultGeminiModel,
	}
}

// DefaultModel returns the model used when the config leaves it blank.
func DefaultModel(pt ProviderType) string {
	if pt == ProviderOllama {
		return RecommendedModels(ProviderOllama)[0]
	}
	return DefaultGeminiModel
}

// ValidateConfig checks that a provider config is usable.
// Returns a slice of error messages (empty = valid).
func ValidateConfig(cfg Config) []string {
	var errs []string

	switch cfg.Type {
	case "":
		errs = append(errs, "provider type is required")
	case ProviderGemini:
		if strings.TrimSpace(cfg.APIKey) == "" {
			errs = append(errs, "gemini provider needs an API key (set GEMINI_API_KEY)")
		}
	case ProviderOllama:
		if cfg.OllamaURL != "" && !strings.HasPrefix(cfg.OllamaURL, "http://") && !strings.HasPrefix(cfg.OllamaURL, "https://") {
			errs = append(errs, fmt.Sprintf("invalid Ollama URL: %q (must start with http:// or https://)", cfg.OllamaURL))
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown provider type: %q", cfg.Type))
	}

	if cfg.Model == "" {
		errs = append(errs, "model is required")
	}

	return errs
}

// FormatModelName shortens display names (strips ":latest" suffix).
func FormatModelName(name string) string {
	return strings.TrimSuffix(name, ":latest")
}

// FormatModelSize returns a human-readable model size like "7.6 GB".
func FormatModelSize(bytes int64) string {
	switch {
	case bytes >= 1_000_000_000:
		return fmt.Sprintf("%.1f GB", float64(bytes)/1_000_000_000)
	case bytes >= 1_000_000:
		return fmt.Sprintf("%.1f MB", float64(bytes)/1_000_000)
	case bytes >= 1_000:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1_000)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// RecommendedModels lists models that write passable Korean prose for each
// provider. Hints only.
func RecommendedModels(pt ProviderType) []string {
	if pt == ProviderGemini {
		return []string{"gemini-2.5-flash", "gemini-2.5-pro"}
	}
	return []string{"gemma3", "qwen3", "exaone3.5"}
}

// ModelInList checks if a model name exists in a list of OllamaModels.
// Matches both full name ("gemma3:latest") and short name ("gemma3").
func ModelInList(name string, models []OllamaModel) bool {
	if name == "" {
		return false
	}
	for _, m := range models {
		if m.Name == name || FormatModelName(m.Name) == FormatModelName(name) {
			return true
		}
		// short name against a tagged model, e.g. "qwen3" against "qwen3:8b"
		if strings.HasPrefix(m.Name, name+":") {
			return true
		}
	}
	return false
}
