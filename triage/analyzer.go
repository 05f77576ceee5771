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


package triage

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/poiesic/scout/ai"
	"github.com/poiesic/scout/core"
	"github.com/poiesic/scout/fallback"
)

// AnalysisResult is the outcome of one symptom analysis.
type AnalysisResult struct {
	Generation uint64               `json:"generation"`
	Analysis   core.SymptomAnalysis `json:"analysis"`
	Source     core.ResultSource    `json:"source"`
}

// Analyzer produces symptom assessments through an analysis provider.
type Analyzer struct {
	analyzer   ai.SymptomAnalyzer
	config     *ai.Config
	logger     *slog.Logger
	generation *core.Generation
	now        func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// WithClock sets the time source for analysis timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) error {
		if now == nil {
			now = time.Now
		}
		a.now = now
		return nil
	}
}

// WithGeneration stamps results from a shared request counter.
func WithGeneration(gen *core.Generation) Option {
	return func(a *Analyzer) error {
		if gen == nil {
			gen = &core.Generation{}
		}
		a.generation = gen
		return nil
	}
}

// NewAnalyzer creates a symptom analyzer backed by the provider's analysis
// service.
func NewAnalyzer(provider ai.Provider, config *ai.Config, opts ...Option) (*Analyzer, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}
	if config == nil {
		return nil, ErrConfigRequired
	}

	a := &Analyzer{
		analyzer:   provider.Analyzer(),
		config:     config,
		logger:     slog.Default(),
		generation: &core.Generation{},
		now:        time.Now,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	a.logger = a.logger.With("component", "triage")
	return a, nil
}

// Generation returns the request counter results are stamped from.
func (a *Analyzer) Generation() *core.Generation {
	return a.generation
}

// Analyze assesses the symptoms in input. It never fails: without a usable
// provider the keyword-based fallback assessment is returned.
func (a *Analyzer) Analyze(ctx context.Context, input core.SymptomInput) AnalysisResult {
	gen := a.generation.Next()
	logger := a.logger.With("generation", gen)

	if a.config.AnalysisMockMode() {
		logger.Warn("analysis API key not configured, using mock analysis")
		pause(ctx, a.config.AnalysisMockDelay)
		return AnalysisResult{Generation: gen, Analysis: fallback.Analysis(input.Symptoms, a.now()), Source: core.SourceMock}
	}

	payload, err := a.analyzer.AnalyzeSymptoms(ctx, input.Symptoms)
	if errors.Is(err, ai.ErrMissingCredential) {
		logger.Warn("analysis API key rejected as missing, using mock analysis")
		pause(ctx, a.config.AnalysisMockDelay)
		return AnalysisResult{Generation: gen, Analysis: fallback.Analysis(input.Symptoms, a.now()), Source: core.SourceMock}
	}
	if err != nil {
		logger.Error("error analyzing symptoms", "err", err)
		pause(ctx, a.config.AnalysisFallbackDelay)
		return AnalysisResult{Generation: gen, Analysis: fallback.Analysis(input.Symptoms, a.now()), Source: core.SourceFallback}
	}

	analysis := fromPayload(payload, a.now())
	if !analysis.Consistent() {
		logger.Debug("severity and urgency disagree", "severity", analysis.Severity, "urgent", analysis.ShouldSeeDoctorUrgently)
	}
	return AnalysisResult{Generation: gen, Analysis: analysis, Source: core.SourceLive}
}

// fromPayload maps a provider payload onto an analysis. Unknown severities
// read as moderate.
func fromPayload(p *ai.AnalysisPayload, now time.Time) core.SymptomAnalysis {
	severity, ok := core.ParseSeverity(p.Severity)
	if !ok {
		severity = core.SeverityModerate
	}

	return core.SymptomAnalysis{
		ID:                      core.NewAnalysisID("analysis"),
		Summary:                 p.Summary,
		PossibleConditions:      cloneList(p.PossibleConditions),
		Severity:                severity,
		RedFlags:                cloneList(p.RedFlags),
		RecommendedActions:      cloneList(p.RecommendedActions),
		ShouldSeeDoctorUrgently: p.ShouldSeeDoctorUrgently,
		SuggestedSpecialist:     p.SuggestedSpecialist,
		RecommendedSpecialties:  cloneList(p.RecommendedSpecialties),
		DoctorNotes:             p.DoctorNotes,
		Disclaimer:              core.Disclaimer,
		Timestamp:               now,
	}
}

// cloneList copies s, turning nil into an empty list.
func cloneList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
