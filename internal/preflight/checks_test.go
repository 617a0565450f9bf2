package preflight

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/manasm11/academy/internal/config"
	"github.com/manasm11/academy/internal/provider"
)

func fakeDetector(status provider.OllamaStatus) Detector {
	return func(ctx context.Context, url string) provider.OllamaStatus {
		status.URL = provider.NormalizeOllamaURL(url)
		return status
	}
}

func find(t *testing.T, results []CheckResult, name string) CheckResult {
	t.Helper()
	for _, r := range results {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no %q check in %+v", name, results)
	return CheckResult{}
}

func TestRunAll_ReturnsAllChecks(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Provider.APIKey = "key"

	results := RunAll(context.Background(), cfg, nil)
	if len(results) != 3 {
		t.Fatalf("RunAll() returned %d results, want 3", len(results))
	}
	for _, r := range results {
		if r.Name == "" {
			t.Error("CheckResult.Name should not be empty")
		}
		if !r.OK && r.Error == "" {
			t.Errorf("CheckResult for %q: OK=false but Error is empty", r.Name)
		}
	}
}

func TestCheckBackend_Gemini(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		key       string
		wantOK    bool
		wantFatal bool
	}{
		{"with key", "abc", true, false},
		{"without key", "", false, true},
		{"blank key", "   ", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			cfg.Provider.APIKey = tt.key

			r := find(t, RunAll(context.Background(), cfg, nil), "gemini")
			if r.OK != tt.wantOK || r.Fatal != tt.wantFatal {
				t.Errorf("result = %+v", r)
			}
		})
	}
}

func TestCheckBackend_Ollama(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		status provider.OllamaStatus
		model  string
		wantOK bool
	}{
		{
			name:   "running with model",
			status: provider.OllamaStatus{Available: true, Version: "0.6.0", Models: []provider.OllamaModel{{Name: "gemma3:latest"}}},
			model:  "gemma3",
			wantOK: true,
		},
		{
			name:   "running without model",
			status: provider.OllamaStatus{Available: true, Models: []provider.OllamaModel{{Name: "qwen3:8b"}}},
			model:  "gemma3",
			wantOK: false,
		},
		{
			name:   "not running",
			status: provider.OllamaStatus{Error: "connection failed: refused"},
			model:  "gemma3",
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			cfg.Provider = provider.Config{Type: provider.ProviderOllama, Model: tt.model}

			r := find(t, RunAll(context.Background(), cfg, fakeDetector(tt.status)), "ollama")
			if r.OK != tt.wantOK {
				t.Errorf("OK = %v, want %v (%+v)", r.OK, tt.wantOK, r)
			}
			if !r.OK && (!r.Fatal || r.Error == "") {
				t.Errorf("failed ollama check should be fatal with an error: %+v", r)
			}
		})
	}
}

func TestCheckFont(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(fontPath, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	missing := filepath.Join(dir, "missing.ttf")

	if r := checkFont("", []string{missing}); r.OK || r.Fatal || r.Error == "" {
		t.Errorf("no font anywhere should warn, got %+v", r)
	}
	if r := checkFont("", []string{missing, fontPath}); !r.OK || !strings.Contains(r.Info, "font.ttf") {
		t.Errorf("installed font should be found, got %+v", r)
	}
	if r := checkFont(fontPath, nil); !r.OK {
		t.Errorf("existing font: %+v", r)
	}
	if r := checkFont(missing, []string{fontPath}); r.OK || !r.Fatal {
		t.Errorf("missing configured font should be fatal, got %+v", r)
	}
}

func TestCheckExportDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if r := checkExportDir(dir); !r.OK {
		t.Errorf("existing dir: %+v", r)
	}
	if r := checkExportDir(filepath.Join(dir, "new")); !r.OK {
		t.Errorf("missing dir should be created later: %+v", r)
	}
	if r := checkExportDir(file); r.OK || !r.Fatal {
		t.Errorf("file as dir should be fatal: %+v", r)
	}
}

func TestFailed(t *testing.T) {
	t.Parallel()
	results := []CheckResult{
		{Name: "a", OK: true},
		{Name: "b", Error: "warn only"},
		{Name: "c", Error: "bad", Fatal: true},
	}
	got := Failed(results)
	if len(got) != 1 || got[0].Name != "c" {
		t.Errorf("Failed() = %+v", got)
	}
}
