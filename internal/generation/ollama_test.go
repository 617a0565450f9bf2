package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/manasm11/academy/internal/provider"
)

func TestOllamaGenerator_Generate(t *testing.T) {
	t.Parallel()

	var got ollamaGenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: "안녕하세요"})
	}))
	defer srv.Close()

	g := NewOllamaGenerator(srv.URL+"/", "gemma3:latest", srv.Client())
	text, err := g.Generate(context.Background(), Request{Prompt: "hi", Temperature: temperature(0.9)})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if text != "안녕하세요" {
		t.Errorf("text = %q", text)
	}
	if got.Model != "gemma3:latest" || got.Prompt != "hi" || got.Stream {
		t.Errorf("request = %+v", got)
	}
	if temp, ok := got.Options["temperature"].(float64); !ok || temp < 0.89 || temp > 0.91 {
		t.Errorf("options = %v", got.Options)
	}
	if g.Name() != "ollama:gemma3" {
		t.Errorf("Name() = %q", g.Name())
	}
}

func TestOllamaGenerator_NoTemperatureOmitsOptions(t *testing.T) {
	t.Parallel()

	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&raw)
		json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: "ok"})
	}))
	defer srv.Close()

	g := NewOllamaGenerator(srv.URL, "gemma3", srv.Client())
	if _, err := g.Generate(context.Background(), Request{Prompt: "x"}); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if _, ok := raw["options"]; ok {
		t.Errorf("options present: %v", raw)
	}
}

func TestOllamaGenerator_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "http status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "model not found", http.StatusNotFound)
			},
			wantErr: "HTTP 404",
		},
		{
			name: "error field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(ollamaGenerateResponse{Error: "out of memory"})
			},
			wantErr: "out of memory",
		},
		{
			name: "bad json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("{not json"))
			},
			wantErr: "decode",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			g := NewOllamaGenerator(srv.URL, "gemma3", srv.Client())
			_, err := g.Generate(context.Background(), Request{Prompt: "x"})
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewGenerator(t *testing.T) {
	t.Parallel()

	if _, err := NewGenerator(context.Background(), provider.Config{Type: provider.ProviderGemini}); err != ErrMissingAPIKey {
		t.Errorf("gemini without key: err = %v, want ErrMissingAPIKey", err)
	}

	g, err := NewGenerator(context.Background(), provider.Config{Type: provider.ProviderOllama, OllamaURL: "localhost:11434"})
	if err != nil {
		t.Fatalf("ollama: %v", err)
	}
	if g.Name() != "ollama:"+provider.FormatModelName(provider.DefaultModel(provider.ProviderOllama)) {
		t.Errorf("Name() = %q", g.Name())
	}

	if _, err := NewGenerator(context.Background(), provider.Config{Type: "openai"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}
