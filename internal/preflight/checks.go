package preflight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/manasm11/academy/internal/certificate"
	"github.com/manasm11/academy/internal/config"
	"github.com/manasm11/academy/internal/provider"
)

type CheckResult struct {
	Name  string
	OK    bool
	Info  string
	Error string
	// Fatal results stop the wizard from starting.
	Fatal bool
}

// Detector reports on an Ollama server. Tests replace provider.DetectOllama.
type Detector func(ctx context.Context, url string) provider.OllamaStatus

// RunAll checks the selected backend, the certificate font and the export
// directory.
func RunAll(ctx context.Context, cfg *config.Config, detect Detector) []CheckResult {
	if detect == nil {
		detect = provider.DetectOllama
	}
	return []CheckResult{
		checkBackend(ctx, cfg.Provider, detect),
		checkFont(cfg.Certificate.FontPath, certificate.HangulFontPaths),
		checkExportDir(cfg.Certificate.ExportDir),
	}
}

// Failed returns the fatal failures in results.
func Failed(results []CheckResult) []CheckResult {
	var out []CheckResult
	for _, r := range results {
		if !r.OK && r.Fatal {
			out = append(out, r)
		}
	}
	return out
}

func checkBackend(ctx context.Context, pc provider.Config, detect Detector) CheckResult {
	switch pc.Type {
	case provider.ProviderGemini:
		if strings.TrimSpace(pc.APIKey) == "" {
			return CheckResult{
				Name:  "gemini",
				Error: "no API key (set GEMINI_API_KEY)",
				Fatal: true,
			}
		}
		return CheckResult{Name: "gemini", OK: true, Info: pc.Model}

	case provider.ProviderOllama:
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		status := detect(ctx, pc.OllamaURL)
		if !status.Available {
			return CheckResult{Name: "ollama", Error: status.Error, Fatal: true}
		}
		if !provider.ModelInList(pc.Model, status.Models) {
			return CheckResult{
				Name:  "ollama",
				Error: fmt.Sprintf("model %q not pulled (run: ollama pull %s)", pc.Model, pc.Model),
				Fatal: true,
			}
		}
		info := status.URL
		if status.Version != "" {
			info += " v" + status.Version
		}
		return CheckResult{Name: "ollama", OK: true, Info: info}

	default:
		return CheckResult{
			Name:  string(pc.Type),
			Error: fmt.Sprintf("unknown provider %q", pc.Type),
			Fatal: true,
		}
	}
}

// checkFont resolves the certificate font the way the renderer does. With
// no Hangul font the course still runs but the PDF cannot be exported.
func checkFont(path string, candidates []string) CheckResult {
	if strings.TrimSpace(path) == "" {
		found := certificate.FindFont("", candidates)
		if found == "" {
			return CheckResult{
				Name:  "font",
				Error: "no Hangul font found; set certificate.font_path or the license PDF cannot be exported",
			}
		}
		return CheckResult{Name: "font", OK: true, Info: filepath.Base(found) + " (installed)"}
	}
	if _, err := os.Stat(path); err != nil {
		return CheckResult{Name: "font", Error: err.Error(), Fatal: true}
	}
	return CheckResult{Name: "font", OK: true, Info: filepath.Base(path)}
}

func checkExportDir(dir string) CheckResult {
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return CheckResult{Name: "export dir", OK: true, Info: dir + " (will be created)"}
	case err != nil:
		return CheckResult{Name: "export dir", Error: err.Error(), Fatal: true}
	case !info.IsDir():
		return CheckResult{Name: "export dir", Error: dir + " is not a directory", Fatal: true}
	}
	return CheckResult{Name: "export dir", OK: true, Info: dir}
}
