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


package scout

import (
	"context"
	"log/slog"

	"github.com/poiesic/scout/ai"
	"github.com/poiesic/scout/ai/gemini"
	"github.com/poiesic/scout/ai/tavily"
	"github.com/poiesic/scout/core"
	"github.com/poiesic/scout/normalize"
	"github.com/poiesic/scout/search"
	"github.com/poiesic/scout/triage"
)

// Scout wires the provider adapters to the tender, doctor and symptom
// pipelines.
type Scout struct {
	config   *ai.Config
	provider ai.Provider
	pool     *normalize.Pool
	tenders  *search.TenderSearcher
	doctors  *search.DoctorSearcher
	triage   *triage.Analyzer
	logger   *slog.Logger
}

// Option configures a Scout.
type Option func(*scoutOptions)

type scoutOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
	logger   *slog.Logger
	poolSize int
}

// WithAIConfig sets the provider configuration.
// Default is ai.DefaultConfig(), which runs in mock mode.
func WithAIConfig(cfg *ai.Config) Option {
	return func(o *scoutOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithProvider replaces the Gemini and Tavily adapters.
func WithProvider(provider ai.Provider) Option {
	return func(o *scoutOptions) {
		o.provider = provider
	}
}

// WithLogger sets the logger handed to every pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(o *scoutOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPoolSize sets the number of normalization workers.
// Default is half the CPU count.
func WithPoolSize(size int) Option {
	return func(o *scoutOptions) {
		o.poolSize = size
	}
}

// New creates a Scout.
func New(opts ...Option) (*Scout, error) {
	options := &scoutOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	if err := options.aiConfig.Validate(); err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		p, err := NewProvider(options.aiConfig, options.logger)
		if err != nil {
			return nil, err
		}
		provider = p
	}

	pool, err := normalize.NewPool(options.poolSize)
	if err != nil {
		provider.Close()
		return nil, err
	}

	tenders, err := search.NewTenderSearcher(provider, options.aiConfig,
		search.WithLogger(options.logger), search.WithPool(pool))
	if err != nil {
		pool.Release()
		provider.Close()
		return nil, err
	}

	doctors, err := search.NewDoctorSearcher(provider, options.aiConfig,
		search.WithLogger(options.logger), search.WithPool(pool))
	if err != nil {
		pool.Release()
		provider.Close()
		return nil, err
	}

	analyzer, err := triage.NewAnalyzer(provider, options.aiConfig, triage.WithLogger(options.logger))
	if err != nil {
		pool.Release()
		provider.Close()
		return nil, err
	}

	options.logger.Debug("scout ready",
		"search_mock", options.aiConfig.SearchMockMode(),
		"analysis_mock", options.aiConfig.AnalysisMockMode())

	return &Scout{
		config:   options.aiConfig,
		provider: provider,
		pool:     pool,
		tenders:  tenders,
		doctors:  doctors,
		triage:   analyzer,
		logger:   options.logger,
	}, nil
}

// Close releases the worker pool and the provider.
func (s *Scout) Close() error {
	s.pool.Release()
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
		return err
	}
	return nil
}

func (s *Scout) Config() *ai.Config {
	return s.config
}

func (s *Scout) TenderSearcher() *search.TenderSearcher {
	return s.tenders
}

func (s *Scout) DoctorSearcher() *search.DoctorSearcher {
	return s.doctors
}

func (s *Scout) Analyzer() *triage.Analyzer {
	return s.triage
}

// SearchTenders runs a tender search with the configured pipeline.
func (s *Scout) SearchTenders(ctx context.Context, params core.SearchParams) search.TenderResult {
	return s.tenders.Search(ctx, params)
}

// FindDoctors runs a doctor search with the configured pipeline.
func (s *Scout) FindDoctors(ctx context.Context, params core.DoctorSearchParams) search.DoctorResult {
	return s.doctors.Find(ctx, params)
}

// AnalyzeSymptoms assesses the symptoms in input.
func (s *Scout) AnalyzeSymptoms(ctx context.Context, input core.SymptomInput) triage.AnalysisResult {
	return s.triage.Analyze(ctx, input)
}

// provider combines the Gemini analyzer and the Tavily searcher.
type provider struct {
	analyzer ai.SymptomAnalyzer
	searcher ai.WebSearcher
}

// NewProvider builds the live provider for cfg. Services whose credential
// is missing are still returned; they report ai.ErrMissingCredential.
func NewProvider(cfg *ai.Config, logger *slog.Logger) (ai.Provider, error) {
	if logger == nil {
		logger = slog.Default()
	}

	analyzer, err := gemini.NewAnalyzer(cfg)
	if err != nil {
		return nil, err
	}

	searcher, err := tavily.NewClient(cfg, tavily.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &provider{analyzer: analyzer, searcher: searcher}, nil
}

func (p *provider) Analyzer() ai.SymptomAnalyzer {
	return p.analyzer
}

func (p *provider) Searcher() ai.WebSearcher {
	return p.searcher
}

func (p *provider) Close() error {
	return nil
}
