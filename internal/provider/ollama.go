package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Upper bounds for each Ollama request; a shorter caller deadline wins.
const (
	versionTimeout = 3 * time.Second
	tagsTimeout    = 5 * time.Second
)

var errMalformed = errors.New("malformed response")

// tagList is the subset of GET /api/tags the academy reads.
type tagList struct {
	Models []struct {
		Name    string `json:"name"`
		Size    int64  `json:"size"`
		Details struct {
			ParameterSize string `json:"parameter_size"`
		} `json:"details"`
	} `json:"models"`
}

// NormalizeOllamaURL fills in the default endpoint and accepts the bare
// host:port form that OLLAMA_HOST commonly uses.
func NormalizeOllamaURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return DefaultOllamaURL()
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	return strings.TrimSuffix(url, "/")
}

// getJSON decodes the body of GET base+path into out. Decode failures wrap
// errMalformed so callers can tell them from transport failures.
func getJSON(ctx context.Context, base, path string, timeout time.Duration, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: %w: %v", path, errMalformed, err)
	}
	return nil
}

// DetectOllama reports whether an Ollama server answers at url and which
// models it has. A server that answers but cannot list its models is still
// available.
func DetectOllama(ctx context.Context, url string) OllamaStatus {
	status := OllamaStatus{URL: NormalizeOllamaURL(url)}

	var version struct {
		Version string `json:"version"`
	}
	if err := getJSON(ctx, status.URL, "/api/version", versionTimeout, &version); err != nil && !errors.Is(err, errMalformed) {
		status.Error = err.Error()
		return status
	}
	status.Available = true
	status.Version = version.Version

	if models, err := ListOllamaModels(ctx, status.URL); err == nil {
		status.Models = models
	}
	return status
}

// ListOllamaModels returns the models pulled on the server at url.
func ListOllamaModels(ctx context.Context, url string) ([]OllamaModel, error) {
	var tags tagList
	if err := getJSON(ctx, NormalizeOllamaURL(url), "/api/tags", tagsTimeout, &tags); err != nil {
		return nil, fmt.Errorf("listing ollama models: %w", err)
	}

	models := make([]OllamaModel, len(tags.Models))
	for i, m := range tags.Models {
		models[i] = OllamaModel{Name: m.Name, Size: m.Size, Params: m.Details.ParameterSize}
	}
	return models, nil
}
