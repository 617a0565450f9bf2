package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/manasm11/academy/internal/provider"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when --config is not given. A missing file there is
// not an error.
const DefaultPath = "academy.yaml"

// DefaultLogFile is used when logging.file is blank. The TUI draws on the
// terminal, so logs never go to stderr.
const DefaultLogFile = "academy.log"

// Config holds all academy settings.
type Config struct {
	Provider    provider.Config   `yaml:"provider"`
	Generation  GenerationConfig  `yaml:"generation"`
	Survey      SurveyConfig      `yaml:"survey"`
	Certificate CertificateConfig `yaml:"certificate"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// GenerationConfig tunes calls to the text-generation backend.
type GenerationConfig struct {
	// Timeout bounds a single call. Empty means the transport default.
	Timeout string `yaml:"timeout"`
}

// SurveyConfig controls the optional survey stage.
type SurveyConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Timeout  string `yaml:"timeout"`
}

// CertificateConfig controls certificate rendering and export.
type CertificateConfig struct {
	FontPath  string `yaml:"font_path"` // TrueType font with Hangul glyphs
	ExportDir string `yaml:"export_dir"`
	Issuer    string `yaml:"issuer"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Provider: provider.DefaultConfig(),
		Survey: SurveyConfig{
			Timeout: "10s",
		},
		Certificate: CertificateConfig{
			ExportDir: ".",
			Issuer:    "부산대학교 AI융합교육원",
		},
		Logging: LoggingConfig{
			File:  DefaultLogFile,
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults. When path is the
// default path and the file does not exist, defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables. getenv is os.Getenv outside tests.
//
//	GEMINI_API_KEY (or API_KEY) -> provider.api_key
//	OLLAMA_HOST                 -> provider.ollama_url
//	ACADEMY_SURVEY_URL          -> survey.endpoint
func (c *Config) ApplyEnv(getenv func(string) string) {
	if key := firstNonEmpty(getenv("GEMINI_API_KEY"), getenv("API_KEY")); key != "" {
		c.Provider.APIKey = key
	}
	if host := getenv("OLLAMA_HOST"); host != "" {
		c.Provider.OllamaURL = provider.NormalizeOllamaURL(host)
	}
	if url := getenv("ACADEMY_SURVEY_URL"); url != "" {
		c.Survey.Endpoint = url
	}
	if c.Provider.Model == "" {
		c.Provider.Model = provider.DefaultModel(c.Provider.Type)
	}
}

// Validate returns every problem found (empty = valid).
func (c *Config) Validate() []string {
	errs := provider.ValidateConfig(c.Provider)

	if _, err := parseDuration(c.Generation.Timeout); err != nil {
		errs = append(errs, fmt.Sprintf("generation.timeout: %v", err))
	}
	if _, err := parseDuration(c.Survey.Timeout); err != nil {
		errs = append(errs, fmt.Sprintf("survey.timeout: %v", err))
	}
	if c.Survey.Endpoint != "" && !strings.HasPrefix(c.Survey.Endpoint, "http://") && !strings.HasPrefix(c.Survey.Endpoint, "https://") {
		errs = append(errs, fmt.Sprintf("survey.endpoint must be an http(s) URL, got %q", c.Survey.Endpoint))
	}
	return errs
}

// GenerationTimeout returns the parsed generation timeout (0 = none).
func (c *Config) GenerationTimeout() time.Duration {
	d, _ := parseDuration(c.Generation.Timeout)
	return d
}

// LogFile returns logging.file, or DefaultLogFile when it is blank.
func (c *Config) LogFile() string {
	if f := strings.TrimSpace(c.Logging.File); f != "" {
		return f
	}
	return DefaultLogFile
}

// SurveyTimeout returns the parsed survey timeout, defaulting to 10s.
func (c *Config) SurveyTimeout() time.Duration {
	d, _ := parseDuration(c.Survey.Timeout)
	if d == 0 {
		return 10 * time.Second
	}
	return d
}

func parseDuration(s string) (time.Duration, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", s)
	}
	return d, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
