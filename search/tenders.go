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


package search

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/scout/ai"
	"github.com/poiesic/scout/core"
	"github.com/poiesic/scout/fallback"
	"github.com/poiesic/scout/normalize"
	"github.com/poiesic/scout/query"
)

const (
	// errorFallbackLimit caps fixtures served after a failed provider call.
	errorFallbackLimit = 5
	// emptyFallbackLimit caps fixtures served after an empty provider answer.
	emptyFallbackLimit = 3
)

// TenderResult is the outcome of one tender search.
type TenderResult struct {
	// Generation is the request number the search ran under. Callers
	// compare it with core.Generation.IsCurrent to drop stale results.
	Generation uint64            `json:"generation"`
	Query      string            `json:"query"`
	Tenders    []core.Tender     `json:"tenders"`
	Source     core.ResultSource `json:"source"`
}

// TenderSearcher finds construction tenders through a web search provider
// and falls back to fixture tenders whenever the provider cannot help.
type TenderSearcher struct {
	searcher ai.WebSearcher
	config   *ai.Config
	options
}

// NewTenderSearcher creates a tender searcher.
func NewTenderSearcher(provider ai.Provider, config *ai.Config, opts ...Option) (*TenderSearcher, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}
	if config == nil {
		return nil, ErrConfigRequired
	}

	o, err := newOptions("tender-search", opts)
	if err != nil {
		return nil, err
	}

	return &TenderSearcher{
		searcher: provider.Searcher(),
		config:   config,
		options:  o,
	}, nil
}

// Generation returns the request counter results are stamped from.
func (s *TenderSearcher) Generation() *core.Generation {
	return s.generation
}

// Search runs a tender search. It never fails: provider problems are
// logged and answered with fixture data.
func (s *TenderSearcher) Search(ctx context.Context, params core.SearchParams) TenderResult {
	return s.SearchWithMonitor(ctx, params, nil)
}

// SearchWithMonitor runs a tender search, reporting progress to monitor.
func (s *TenderSearcher) SearchWithMonitor(ctx context.Context, params core.SearchParams, monitor SearchMonitor) TenderResult {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	gen := s.generation.Next()
	q := query.BuildTenderQuery(params)
	year := params.EffectiveYear(s.config.DefaultYear)
	logger := s.logger.With("generation", gen)

	monitor.Start(q)
	steps := newStepper(monitor, TenderSteps())
	finish := func(tenders []core.Tender, source core.ResultSource) TenderResult {
		steps.finish()
		monitor.Finish(len(tenders), source)
		logger.Debug("tender search finished", "count", len(tenders), "source", source)
		return TenderResult{Generation: gen, Query: q, Tenders: tenders, Source: source}
	}

	steps.next()

	if s.config.SearchMockMode() {
		logger.Warn("search API key not configured, using mock tenders")
		monitor.Fallback(ai.ErrMissingCredential)
		return finish(s.mockTenders(ctx, params, year), core.SourceMock)
	}

	logger.Debug("searching tenders", "query", q)
	raws, err := s.searcher.Search(ctx, ai.SearchRequest{
		Query:             q,
		SearchDepth:       ai.SearchDepthAdvanced,
		MaxResults:        ai.TenderMaxResults,
		IncludeRawContent: true,
		IncludeDomains:    ai.TenderDomains,
	})
	if errors.Is(err, ai.ErrMissingCredential) {
		logger.Warn("search API key rejected as missing, using mock tenders")
		monitor.Fallback(err)
		return finish(s.mockTenders(ctx, params, year), core.SourceMock)
	}
	if err != nil {
		logger.Error("error searching tenders", "err", err)
		monitor.Fallback(err)
		return finish(s.errorTenders(ctx, params, year, logger), core.SourceFallback)
	}

	if len(raws) == 0 {
		logger.Warn("no tender results from provider, using mock tenders")
		monitor.Fallback(ErrNoResults)
		return finish(firstN(fallback.CityTenders(params.City), emptyFallbackLimit), core.SourceFallback)
	}

	steps.next()
	now := s.now()
	tenders, err := normalize.Batch(ctx, s.pool, raws, func(i int, raw ai.RawResult) (core.Tender, bool) {
		return normalize.Tender(raw, i, params, now), true
	})
	if err != nil {
		logger.Error("error normalizing tenders", "err", err)
		monitor.Fallback(err)
		return finish(s.errorTenders(ctx, params, year, logger), core.SourceFallback)
	}

	steps.next()
	return finish(FilterByDate(tenders, year, params.Month), core.SourceLive)
}

// mockTenders serves fixtures filtered like a real search, after the
// simulated provider latency.
func (s *TenderSearcher) mockTenders(ctx context.Context, params core.SearchParams, year int) []core.Tender {
	pause(ctx, s.config.TenderMockDelay)
	return FilterByDate(fallback.FilterTenders(params, true), year, params.Month)
}

// errorTenders serves a short fixture list after a failed provider call.
// The free-text query is not applied.
func (s *TenderSearcher) errorTenders(ctx context.Context, params core.SearchParams, year int, logger *slog.Logger) []core.Tender {
	logger.Warn("falling back to mock tenders due to provider error")
	pause(ctx, s.config.TenderFallbackDelay)
	return firstN(FilterByDate(fallback.FilterTenders(params, false), year, params.Month), errorFallbackLimit)
}
