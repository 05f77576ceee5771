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


package ai

import "context"

// SymptomAnalyzer turns a free-text symptom description into a structured
// preliminary assessment using a generative model.
// Implementations must be thread-safe for concurrent use.
type SymptomAnalyzer interface {
	// AnalyzeSymptoms sends the symptoms to the model and returns the decoded
	// payload with every missing field defaulted.
	// Returns ErrMissingCredential, ErrProviderHTTP or ErrProviderParse
	// (possibly wrapped) when no usable payload could be produced.
	AnalyzeSymptoms(ctx context.Context, symptoms string) (*AnalysisPayload, error)
}

// WebSearcher runs a single web search query.
// Implementations must be thread-safe for concurrent use.
type WebSearcher interface {
	// Search performs one provider call and returns the raw results in
	// provider order. An empty slice with a nil error means the provider
	// answered but found nothing.
	Search(ctx context.Context, req SearchRequest) ([]RawResult, error)
}

// Provider aggregates the external services used by the pipelines.
type Provider interface {
	// Analyzer returns the symptom analysis service.
	Analyzer() SymptomAnalyzer

	// Searcher returns the web search service.
	Searcher() WebSearcher

	// Close releases resources held by the provider and its services.
	Close() error
}
