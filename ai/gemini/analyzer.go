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


package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/scout/ai"
	"github.com/poiesic/scout/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

// Generation settings sent with every analysis request.
const (
	temperature = 0.8
	topK        = 40
	topP        = 0.95
	maxTokens   = 2048
)

// googleHost prefixes every Gemini API endpoint. Other hosts are treated
// as plain OpenAI-compatible servers.
const googleHost = "https://generativelanguage.googleapis.com"

// harmThreshold blocks harassment, hate speech, sexually explicit and
// dangerous content rated medium or above.
const harmThreshold = googleai.HarmBlockMediumAndAbove

// newGoogleModel builds the native Gemini client. Tests replace it.
var newGoogleModel = func(ctx context.Context, opts ...googleai.Option) (llms.Model, error) {
	return googleai.New(ctx, opts...)
}

// Defaults applied to fields the model leaves out.
const (
	DefaultSummary             = "Thank you for sharing your symptoms with me. Let me provide you with a comprehensive assessment."
	DefaultSuggestedSpecialist = "General Physician for initial evaluation"
)

var (
	DefaultPossibleConditions     = []string{"General health concern"}
	DefaultRedFlags               = []string{"Symptoms that worsen significantly", "Development of new concerning symptoms"}
	DefaultRecommendedSpecialties = []string{"General Physician"}
	DefaultRecommendedActions     = []string{
		"Monitor your symptoms closely",
		"Rest and stay well-hydrated",
		"Consult with a healthcare provider if symptoms persist or worsen",
		"Keep a symptom diary to track changes",
	}
)

// Analyzer implements ai.SymptomAnalyzer on top of a langchaingo model.
type Analyzer struct {
	client llms.Model
	logger *slog.Logger
}

var _ ai.SymptomAnalyzer = (*Analyzer)(nil)

// newAnalyzer creates an analyzer and returns the concrete type.
// Without a usable credential no client is built and every call reports
// ai.ErrMissingCredential.
func newAnalyzer(config *ai.Config) (*Analyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	a := &Analyzer{
		logger: slog.Default().With("component", "gemini-analyzer"),
	}
	if config.AnalysisMockMode() {
		return a, nil
	}

	client, err := newModel(config)
	if err != nil {
		return nil, err
	}
	a.client = client
	return a, nil
}

// newModel picks the native Gemini client for Google hosts, which carries
// the safety settings, and the OpenAI client for anything else.
func newModel(config *ai.Config) (llms.Model, error) {
	if strings.HasPrefix(config.AnalysisHost, googleHost) {
		return newGoogleModel(context.Background(), googleOptions(config)...)
	}
	return openai.New(
		openai.WithBaseURL(config.AnalysisHost),
		openai.WithToken(config.AnalysisAPIKey),
		openai.WithModel(config.AnalysisModel),
	)
}

func googleOptions(config *ai.Config) []googleai.Option {
	return []googleai.Option{
		googleai.WithAPIKey(config.AnalysisAPIKey),
		googleai.WithDefaultModel(config.AnalysisModel),
		googleai.WithHarmThreshold(harmThreshold),
	}
}

// NewAnalyzer creates a symptom analyzer for the configured Gemini endpoint.
//
// Returns ai.SymptomAnalyzer interface to maintain abstraction.
func NewAnalyzer(config *ai.Config) (ai.SymptomAnalyzer, error) {
	return newAnalyzer(config)
}

// NewAnalyzerWithModel wraps an already constructed model, for alternative
// backends and tests.
func NewAnalyzerWithModel(model llms.Model) ai.SymptomAnalyzer {
	return &Analyzer{
		client: model,
		logger: slog.Default().With("component", "gemini-analyzer"),
	}
}

// AnalyzeSymptoms asks the model for a structured assessment of symptoms.
func (a *Analyzer) AnalyzeSymptoms(ctx context.Context, symptoms string) (*ai.AnalysisPayload, error) {
	if a.client == nil {
		return nil, ai.ErrMissingCredential
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSystemPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildPatientPrompt(symptoms)),
			},
		},
	}

	response, err := a.client.GenerateContent(ctx, content,
		llms.WithTemperature(temperature),
		llms.WithTopK(topK),
		llms.WithTopP(topP),
		llms.WithMaxTokens(maxTokens),
		llms.WithJSONMode(),
	)
	if err != nil {
		a.logger.Error("failed to generate analysis", "err", err)
		return nil, fmt.Errorf("%w: %w", ai.ErrProviderHTTP, err)
	}

	if len(response.Choices) < 1 || strings.TrimSpace(response.Choices[0].Content) == "" {
		a.logger.Error("no content returned from model")
		return nil, fmt.Errorf("%w: empty model response", ai.ErrProviderParse)
	}

	payload, err := ParsePayload(response.Choices[0].Content)
	if err != nil {
		a.logger.Warn("error parsing analysis response", "response", response.Choices[0].Content, "err", err)
		return nil, err
	}

	a.logger.Debug("analysis complete",
		"severity", payload.Severity,
		"specialties", len(payload.RecommendedSpecialties))
	return payload, nil
}

// ParsePayload de-fences, repairs and decodes model text, then fills every
// field the model omitted with its default.
func ParsePayload(text string) (*ai.AnalysisPayload, error) {
	var payload ai.AnalysisPayload
	if err := json.Unmarshal([]byte(cleanModelJSON(text)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrProviderParse, err)
	}
	applyDefaults(&payload)
	return &payload, nil
}

func applyDefaults(p *ai.AnalysisPayload) {
	if strings.TrimSpace(p.Summary) == "" {
		p.Summary = DefaultSummary
	}
	if p.PossibleConditions == nil {
		p.PossibleConditions = clone(DefaultPossibleConditions)
	}
	if severity, ok := core.ParseSeverity(p.Severity); ok {
		p.Severity = string(severity)
	} else {
		p.Severity = string(core.SeverityModerate)
	}
	if p.RedFlags == nil {
		p.RedFlags = clone(DefaultRedFlags)
	}
	if p.RecommendedActions == nil {
		p.RecommendedActions = clone(DefaultRecommendedActions)
	}
	if strings.TrimSpace(p.SuggestedSpecialist) == "" {
		p.SuggestedSpecialist = DefaultSuggestedSpecialist
	}
	if p.RecommendedSpecialties == nil {
		p.RecommendedSpecialties = clone(DefaultRecommendedSpecialties)
	}
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
