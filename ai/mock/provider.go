// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mock

import "github.com/poiesic/scout/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock analyzer and searcher instances.
type MockProvider struct {
	analyzer *MockAnalyzer
	searcher *MockSearcher
	closed   bool
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use GetMockAnalyzer()/GetMockSearcher() to access concrete types for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		analyzer: NewMockAnalyzer(),
		searcher: NewMockSearcher(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// Nil services are replaced by defaults.
func NewMockProviderWithServices(analyzer *MockAnalyzer, searcher *MockSearcher) *MockProvider {
	if analyzer == nil {
		analyzer = NewMockAnalyzer()
	}
	if searcher == nil {
		searcher = NewMockSearcher()
	}
	return &MockProvider{
		analyzer: analyzer,
		searcher: searcher,
	}
}

// Analyzer returns the mock analyzer.
func (p *MockProvider) Analyzer() ai.SymptomAnalyzer {
	return p.analyzer
}

// Searcher returns the mock searcher.
func (p *MockProvider) Searcher() ai.WebSearcher {
	return p.searcher
}

// Close marks the provider closed.
func (p *MockProvider) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close was called.
func (p *MockProvider) Closed() bool {
	return p.closed
}

// GetMockAnalyzer returns the underlying mock analyzer for test assertions.
func (p *MockProvider) GetMockAnalyzer() *MockAnalyzer {
	return p.analyzer
}

// GetMockSearcher returns the underlying mock searcher for test assertions.
func (p *MockProvider) GetMockSearcher() *MockSearcher {
	return p.searcher
}
