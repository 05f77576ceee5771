package mock

import (
	"context"
	"sync"

	"github.com/poiesic/scout/ai"
)

// MockSearcher is a test double for ai.WebSearcher.
type MockSearcher struct {
	// SearchFunc is called by Search if set.
	// If nil, Search returns no results.
	SearchFunc func(ctx context.Context, req ai.SearchRequest) ([]ai.RawResult, error)

	mu          sync.Mutex
	callCount   int
	lastRequest ai.SearchRequest
}

// NewMockSearcher creates a mock searcher that finds nothing.
// Note: Returns concrete type to allow test assertions.
func NewMockSearcher() *MockSearcher {
	return &MockSearcher{}
}

// WithResults makes every call return results.
func (m *MockSearcher) WithResults(results ...ai.RawResult) *MockSearcher {
	m.SearchFunc = func(ctx context.Context, req ai.SearchRequest) ([]ai.RawResult, error) {
		out := make([]ai.RawResult, len(results))
		copy(out, results)
		return out, nil
	}
	return m
}

// WithError makes every call fail with err.
func (m *MockSearcher) WithError(err error) *MockSearcher {
	m.SearchFunc = func(ctx context.Context, req ai.SearchRequest) ([]ai.RawResult, error) {
		return nil, err
	}
	return m
}

// Search records the request and returns the scripted results.
func (m *MockSearcher) Search(ctx context.Context, req ai.SearchRequest) ([]ai.RawResult, error) {
	m.mu.Lock()
	m.callCount++
	m.lastRequest = req
	fn := m.SearchFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	return []ai.RawResult{}, nil
}

// CallCount returns the number of times Search was called.
func (m *MockSearcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastRequest returns the most recent request.
func (m *MockSearcher) LastRequest() ai.SearchRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastRequest
}

// Reset clears the call count and custom functions.
func (m *MockSearcher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastRequest = ai.SearchRequest{}
	m.SearchFunc = nil
}
