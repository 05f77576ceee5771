package ai

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta/openai", cfg.AnalysisHost)
	assert.Equal(t, "gemini-1.5-flash", cfg.AnalysisModel)
	assert.Equal(t, "https://api.tavily.com", cfg.SearchHost)
	assert.Equal(t, 2025, cfg.DefaultYear)
	assert.Equal(t, 1800*time.Millisecond, cfg.TenderMockDelay)
	assert.Equal(t, 2500*time.Millisecond, cfg.AnalysisMockDelay)
	assert.Equal(t, 1000*time.Millisecond, cfg.TenderFallbackDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.AnalysisFallbackDelay)
	assert.True(t, cfg.AnalysisMockMode())
	assert.True(t, cfg.SearchMockMode())
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("with credentials", func(t *testing.T) {
		cfg := NewConfig(
			WithAnalysisAPIKey("gemini-key"),
			WithSearchAPIKey("tvly-key"),
		)

		assert.Equal(t, "gemini-key", cfg.AnalysisAPIKey)
		assert.Equal(t, "tvly-key", cfg.SearchAPIKey)
		assert.False(t, cfg.AnalysisMockMode())
		assert.False(t, cfg.SearchMockMode())
	})

	t.Run("with hosts and model", func(t *testing.T) {
		cfg := NewConfig(
			WithAnalysisHost("http://localhost:9100/v1"),
			WithAnalysisModel("gemini-2.0-flash"),
			WithSearchHost("http://localhost:9200"),
			WithSearchRate(5),
		)

		assert.Equal(t, "http://localhost:9100/v1", cfg.AnalysisHost)
		assert.Equal(t, "gemini-2.0-flash", cfg.AnalysisModel)
		assert.Equal(t, "http://localhost:9200", cfg.SearchHost)
		assert.Equal(t, 5.0, cfg.SearchRate)
	})

	t.Run("with delays", func(t *testing.T) {
		cfg := NewConfig(WithMockDelay(10*time.Millisecond), WithFallbackDelay(20*time.Millisecond))

		assert.Equal(t, 10*time.Millisecond, cfg.TenderMockDelay)
		assert.Equal(t, 10*time.Millisecond, cfg.AnalysisMockDelay)
		assert.Equal(t, 20*time.Millisecond, cfg.TenderFallbackDelay)
		assert.Equal(t, 20*time.Millisecond, cfg.AnalysisFallbackDelay)
	})

	t.Run("without delays", func(t *testing.T) {
		cfg := NewConfig(WithoutDelays())

		assert.Zero(t, cfg.TenderMockDelay)
		assert.Zero(t, cfg.AnalysisMockDelay)
		assert.Zero(t, cfg.TenderFallbackDelay)
		assert.Zero(t, cfg.AnalysisFallbackDelay)
	})

	t.Run("options apply in order", func(t *testing.T) {
		cfg := NewConfig(WithDefaultYear(2024), WithDefaultYear(2026))
		assert.Equal(t, 2026, cfg.DefaultYear)
	})
}

func TestConfigNormalize(t *testing.T) {
	cfg := &Config{
		AnalysisHost:   " https://example.com/v1/ ",
		SearchHost:     "https://api.tavily.com/",
		AnalysisAPIKey: "  key  ",
		SearchAPIKey:   "\ttvly\n",
	}
	cfg.Normalize()

	assert.Equal(t, "https://example.com/v1", cfg.AnalysisHost)
	assert.Equal(t, "https://api.tavily.com", cfg.SearchHost)
	assert.Equal(t, "key", cfg.AnalysisAPIKey)
	assert.Equal(t, "tvly", cfg.SearchAPIKey)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing analysis host", func(c *Config) { c.AnalysisHost = "" }, "AnalysisHost is required"},
		{"missing analysis model", func(c *Config) { c.AnalysisModel = "" }, "AnalysisModel is required"},
		{"missing search host", func(c *Config) { c.SearchHost = " " }, "SearchHost is required"},
		{"negative rate", func(c *Config) { c.SearchRate = -1 }, "SearchRate cannot be negative"},
		{"year too small", func(c *Config) { c.DefaultYear = 0 }, "DefaultYear must be between"},
		{"negative delay", func(c *Config) { c.TenderFallbackDelay = -time.Second }, "delays cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsPlaceholderKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"your_tavily_api_key_here", true},
		{"your_gemini_api_key_here", true},
		{"YOUR_GEMINI_API_KEY_HERE", true},
		{"tvly-dev-abc123", false},
		{"AIzaSyExample", false},
		{"your_key", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPlaceholderKey(tt.key), "key %q", tt.key)
	}
}

func TestHTTPError(t *testing.T) {
	err := error(&HTTPError{Provider: "tavily", StatusCode: 502, Body: "bad gateway"})

	assert.True(t, errors.Is(err, ErrProviderHTTP))
	assert.False(t, errors.Is(err, ErrProviderParse))
	assert.Equal(t, "tavily: status 502: bad gateway", err.Error())

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 502, httpErr.StatusCode)
}

func TestRawResultText(t *testing.T) {
	assert.Equal(t, "snippet", RawResult{Content: "snippet", RawContent: "page"}.Text())
	assert.Equal(t, "page", RawResult{RawContent: "page"}.Text())
	assert.Empty(t, RawResult{}.Text())
}
