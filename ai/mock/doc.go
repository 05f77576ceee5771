// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.SymptomAnalyzer,
// ai.WebSearcher and ai.Provider for use in unit tests. They let the
// pipelines be exercised against scripted provider behaviour, including
// failures, without any network access.
//
// These are test doubles. The deterministic data the pipelines fall back to
// when a provider is unavailable lives in the fallback package.
//
// # Usage in Tests
//
//	// Scripted results
//	searcher := mock.NewMockSearcher().WithResults(results...)
//	provider := mock.NewMockProviderWithServices(nil, searcher)
//
//	// Failure injection
//	searcher.WithError(ai.ErrProviderHTTP)
//
//	// Call assertions
//	count := searcher.CallCount()
//	last := searcher.LastRequest()
//
// # Default Behavior
//
//   - MockAnalyzer: returns a fixed mild payload
//   - MockSearcher: returns no results
//   - MockProvider: aggregates one of each
package mock
