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

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for the external providers and the fallback
// behaviour of the pipelines.
type Config struct {
	// AnalysisHost is the base URL of the OpenAI-compatible endpoint of the
	// analysis model.
	// Example: "https://generativelanguage.googleapis.com/v1beta/openai"
	AnalysisHost string

	// AnalysisModel is the model identifier used for symptom analysis.
	// Example: "gemini-1.5-flash"
	AnalysisModel string

	// AnalysisAPIKey authenticates against the analysis model. Empty or
	// placeholder keys switch the symptom pipeline to mock data.
	AnalysisAPIKey string

	// SearchHost is the base URL of the web search API.
	// Example: "https://api.tavily.com"
	SearchHost string

	// SearchAPIKey authenticates against the web search API. Empty or
	// placeholder keys switch the search pipelines to mock data.
	SearchAPIKey string

	// SearchRate caps outbound search calls per second. Zero disables throttling.
	SearchRate float64

	// DefaultYear is the tender filter year used when a search does not set one.
	// Default: 2025
	DefaultYear int

	// TenderMockDelay and AnalysisMockDelay simulate provider latency when no
	// credential is configured, so progress indicators still advance.
	TenderMockDelay   time.Duration
	AnalysisMockDelay time.Duration

	// TenderFallbackDelay and AnalysisFallbackDelay are applied before
	// returning fallback data after a provider failure.
	TenderFallbackDelay   time.Duration
	AnalysisFallbackDelay time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithAnalysisHost sets the analysis model host URL.
func WithAnalysisHost(host string) ConfigOption {
	return func(c *Config) {
		c.AnalysisHost = host
	}
}

// WithAnalysisModel sets the analysis model identifier.
func WithAnalysisModel(model string) ConfigOption {
	return func(c *Config) {
		c.AnalysisModel = model
	}
}

// WithAnalysisAPIKey sets the analysis model credential.
func WithAnalysisAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.AnalysisAPIKey = key
	}
}

// WithSearchHost sets the web search API host URL.
func WithSearchHost(host string) ConfigOption {
	return func(c *Config) {
		c.SearchHost = host
	}
}

// WithSearchAPIKey sets the web search credential.
func WithSearchAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.SearchAPIKey = key
	}
}

// WithSearchRate sets the maximum number of search calls per second.
func WithSearchRate(perSecond float64) ConfigOption {
	return func(c *Config) {
		c.SearchRate = perSecond
	}
}

// WithDefaultYear sets the tender filter year used when a search omits it.
func WithDefaultYear(year int) ConfigOption {
	return func(c *Config) {
		c.DefaultYear = year
	}
}

// WithMockDelay sets both simulated latencies used in mock mode.
func WithMockDelay(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.TenderMockDelay = d
		c.AnalysisMockDelay = d
	}
}

// WithFallbackDelay sets both delays applied before returning fallback data.
func WithFallbackDelay(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.TenderFallbackDelay = d
		c.AnalysisFallbackDelay = d
	}
}

// WithoutDelays disables every artificial delay. Intended for tests and batch use.
func WithoutDelays() ConfigOption {
	return func(c *Config) {
		c.TenderMockDelay = 0
		c.AnalysisMockDelay = 0
		c.TenderFallbackDelay = 0
		c.AnalysisFallbackDelay = 0
	}
}

// DefaultConfig returns a Config pointing at the public Gemini and Tavily
// endpoints with no credentials, which means mock mode.
func DefaultConfig() *Config {
	return &Config{
		AnalysisHost:          "https://generativelanguage.googleapis.com/v1beta/openai",
		AnalysisModel:         "gemini-1.5-flash",
		SearchHost:            "https://api.tavily.com",
		SearchRate:            2,
		DefaultYear:           2025,
		TenderMockDelay:       1800 * time.Millisecond,
		AnalysisMockDelay:     2500 * time.Millisecond,
		TenderFallbackDelay:   1000 * time.Millisecond,
		AnalysisFallbackDelay: 1500 * time.Millisecond,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithSearchAPIKey(os.Getenv("SCOUT_TAVILY_API_KEY")),
//	    WithDefaultYear(2026),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize trims hosts and keys into canonical form.
func (c *Config) Normalize() {
	c.AnalysisHost = strings.TrimSuffix(strings.TrimSpace(c.AnalysisHost), "/")
	c.SearchHost = strings.TrimSuffix(strings.TrimSpace(c.SearchHost), "/")
	c.AnalysisAPIKey = strings.TrimSpace(c.AnalysisAPIKey)
	c.SearchAPIKey = strings.TrimSpace(c.SearchAPIKey)
}

// Validate checks that the configuration is usable.
// It automatically normalizes the configuration before validation.
// Missing credentials are valid; they select mock mode.
func (c *Config) Validate() error {
	c.Normalize()

	if c.AnalysisHost == "" {
		return errors.New("ai config: AnalysisHost is required")
	}
	if c.AnalysisModel == "" {
		return errors.New("ai config: AnalysisModel is required")
	}
	if c.SearchHost == "" {
		return errors.New("ai config: SearchHost is required")
	}
	if c.SearchRate < 0 {
		return errors.New("ai config: SearchRate cannot be negative")
	}
	if c.DefaultYear < 1900 || c.DefaultYear > 2100 {
		return errors.New("ai config: DefaultYear must be between 1900 and 2100")
	}
	if c.TenderMockDelay < 0 || c.AnalysisMockDelay < 0 || c.TenderFallbackDelay < 0 || c.AnalysisFallbackDelay < 0 {
		return errors.New("ai config: delays cannot be negative")
	}
	return nil
}

// AnalysisMockMode reports whether symptom analysis must use mock data.
func (c *Config) AnalysisMockMode() bool {
	return IsPlaceholderKey(c.AnalysisAPIKey)
}

// SearchMockMode reports whether the search pipelines must use mock data.
func (c *Config) SearchMockMode() bool {
	return IsPlaceholderKey(c.SearchAPIKey)
}

// IsPlaceholderKey reports whether key is missing or one of the template
// values shipped in example env files ("your_tavily_api_key_here").
func IsPlaceholderKey(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return true
	}
	return strings.HasPrefix(key, "your_") && strings.HasSuffix(key, "_here")
}
