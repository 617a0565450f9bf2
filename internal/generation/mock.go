package generation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
)

// MockGenerator is a test backend that returns predefined responses.
type MockGenerator struct {
	// Responses is a queue of responses. Each call pops the next one.
	Responses []MockResponse
	// Calls records every request for assertion.
	Calls []Request

	mu      sync.Mutex
	callIdx int
}

// MockResponse defines the result of a single Generate call.
type MockResponse struct {
	Text string
	Err  error
}

var _ Generator = (*MockGenerator)(nil)

// NewMockGenerator creates a mock with the given response queue.
func NewMockGenerator(responses ...MockResponse) *MockGenerator {
	return &MockGenerator{
		Responses: responses,
	}
}

func (m *MockGenerator) Generate(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.callIdx >= len(m.Responses) {
		return "", fmt.Errorf("mock: no more responses (call %d)", m.callIdx)
	}
	resp := m.Responses[m.callIdx]
	m.callIdx++
	return resp.Text, resp.Err
}

func (m *MockGenerator) Name() string {
	return "mock"
}

// CallCount returns the number of Generate calls so far.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// AssertCallCount verifies the expected number of calls were made.
func (m *MockGenerator) AssertCallCount(t *testing.T, expected int) {
	t.Helper()
	if n := m.CallCount(); n != expected {
		t.Errorf("MockGenerator: call count = %d, want %d", n, expected)
	}
}

// AssertCall verifies that a specific call's prompt contains a substring.
func (m *MockGenerator) AssertCall(t *testing.T, index int, promptContains string) {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if index >= len(m.Calls) {
		t.Fatalf("MockGenerator: call index %d out of range (have %d calls)", index, len(m.Calls))
	}
	call := m.Calls[index]
	if promptContains != "" && !strings.Contains(call.Prompt, promptContains) {
		t.Errorf("MockGenerator: call[%d].Prompt does not contain %q\ngot: %s", index, promptContains, call.Prompt)
	}
}
