package search

import (
	"context"
	"errors"

	"github.com/poiesic/scout/ai"
	"github.com/poiesic/scout/core"
	"github.com/poiesic/scout/normalize"
	"github.com/poiesic/scout/query"
	"github.com/poiesic/scout/rank"
)

// DoctorResult is the outcome of one doctor search.
type DoctorResult struct {
	Generation uint64            `json:"generation"`
	Query      string            `json:"query"`
	Doctors    []core.Doctor     `json:"doctors"`
	Source     core.ResultSource `json:"source"`
}

// DoctorSearcher finds individual practitioners near the patient. Unlike
// tender search it has no fixture data: every failure yields an empty list.
type DoctorSearcher struct {
	searcher ai.WebSearcher
	config   *ai.Config
	options
}

// NewDoctorSearcher creates a doctor searcher.
func NewDoctorSearcher(provider ai.Provider, config *ai.Config, opts ...Option) (*DoctorSearcher, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}
	if config == nil {
		return nil, ErrConfigRequired
	}

	o, err := newOptions("doctor-search", opts)
	if err != nil {
		return nil, err
	}

	return &DoctorSearcher{
		searcher: provider.Searcher(),
		config:   config,
		options:  o,
	}, nil
}

// Generation returns the request counter results are stamped from.
func (s *DoctorSearcher) Generation() *core.Generation {
	return s.generation
}

// Find searches for doctors. It never fails.
func (s *DoctorSearcher) Find(ctx context.Context, params core.DoctorSearchParams) DoctorResult {
	return s.FindWithMonitor(ctx, params, nil)
}

// FindWithMonitor searches for doctors, reporting progress to monitor.
// Institutions are dropped and doctors matching the recommended
// specialties are ranked first.
func (s *DoctorSearcher) FindWithMonitor(ctx context.Context, params core.DoctorSearchParams, monitor SearchMonitor) DoctorResult {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	gen := s.generation.Next()
	q := query.BuildDoctorQuery(params)
	logger := s.logger.With("generation", gen)

	monitor.Start(q)
	finish := func(doctors []core.Doctor, source core.ResultSource) DoctorResult {
		monitor.Finish(len(doctors), source)
		logger.Debug("doctor search finished", "count", len(doctors), "source", source)
		return DoctorResult{Generation: gen, Query: q, Doctors: doctors, Source: source}
	}

	if s.config.SearchMockMode() {
		logger.Warn("search API key not configured, skipping doctor search")
		monitor.Fallback(ai.ErrMissingCredential)
		return finish([]core.Doctor{}, core.SourceMock)
	}

	logger.Debug("searching doctors", "query", q)
	raws, err := s.searcher.Search(ctx, ai.SearchRequest{
		Query:             q,
		SearchDepth:       ai.SearchDepthAdvanced,
		MaxResults:        ai.DoctorMaxResults,
		IncludeRawContent: true,
	})
	if err != nil {
		if errors.Is(err, ai.ErrMissingCredential) {
			logger.Warn("search API key rejected as missing, skipping doctor search")
			monitor.Fallback(err)
			return finish([]core.Doctor{}, core.SourceMock)
		}
		logger.Error("error searching doctors", "err", err)
		monitor.Fallback(err)
		return finish([]core.Doctor{}, core.SourceFallback)
	}

	if len(raws) == 0 {
		logger.Warn("no doctor results from provider")
		monitor.Fallback(ErrNoResults)
		return finish([]core.Doctor{}, core.SourceLive)
	}

	now := s.now()
	doctors, err := normalize.Batch(ctx, s.pool, raws, func(i int, raw ai.RawResult) (core.Doctor, bool) {
		return normalize.Doctor(raw, i, params, now)
	})
	if err != nil {
		logger.Error("error normalizing doctors", "err", err)
		monitor.Fallback(err)
		return finish([]core.Doctor{}, core.SourceFallback)
	}

	logger.Debug("normalized doctors", "raw", len(raws), "kept", len(doctors))
	return finish(rank.ByMatch(doctors), core.SourceLive)
}
