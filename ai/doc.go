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


// Package ai provides abstractions for the external services used by Scout.
//
// This package defines the interfaces the pipelines depend on, so the
// heuristic post-processing can be exercised without a network:
//
//   - SymptomAnalyzer: asks a generative model for a structured assessment
//   - WebSearcher: runs one web search query
//   - Provider: aggregates both for convenient initialization
//
// # Implementation Packages
//
//   - ai/gemini: symptom analysis through langchaingo against Gemini's
//     OpenAI-compatible endpoint
//   - ai/tavily: web search against the Tavily HTTP API
//   - ai/mock: test doubles for unit testing without external dependencies
//
// # Error Taxonomy
//
// Adapters report failures with three sentinels: ErrMissingCredential,
// ErrProviderHTTP and ErrProviderParse. They are internal signals. The
// pipelines in search and triage convert every one of them into fallback
// data, so callers of those pipelines never see an error.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithSearchAPIKey(key))
//	provider, err := scout.NewProvider(cfg, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	results, err := provider.Searcher().Search(ctx, ai.SearchRequest{Query: "..."})
package ai
