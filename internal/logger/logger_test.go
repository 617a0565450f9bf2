package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "info", false},
		{"info", "info", false},
		{"DEBUG", "debug", false},
		{"warning", "warn", false},
		{"error", "error", false},
		{"chatty", "info", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got.String() != tt.want {
				t.Errorf("parseLevel(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_WritesToFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "academy.log")

	log, err := New(Options{File: path, Level: "info"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	log.With("session", "abc").Info("stage advanced", "to", "mission1")
	log.Debug("hidden at info level")
	log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "stage advanced") {
		t.Errorf("log file missing message, got %q", out)
	}
	if !strings.Contains(out, `"session":"abc"`) {
		t.Errorf("log file missing session field, got %q", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Error("debug line written at info level")
	}
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "academy.log")

	log, err := New(Options{File: path, Level: "error", Verbose: true})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	log.Debug("now visible")
	log.Sync()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "now visible") {
		t.Error("verbose logger dropped debug line")
	}
}

func TestNew_BadLevel(t *testing.T) {
	t.Parallel()
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNop(t *testing.T) {
	t.Parallel()
	log := Nop()
	log.Info("discarded", "k", "v")
	log.With("a", 1).Error("also discarded")
}
