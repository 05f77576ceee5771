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


// Package config resolves an ai.Config from a TOML file, a .env file and
// the process environment. Later sources win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/poiesic/scout/ai"
)

// Environment variables read by Load. The VITE_ names are accepted so an
// existing web frontend .env can be reused.
const (
	EnvGeminiAPIKey = "SCOUT_GEMINI_API_KEY"
	EnvGeminiModel  = "SCOUT_GEMINI_MODEL"
	EnvGeminiHost   = "SCOUT_GEMINI_HOST"
	EnvTavilyAPIKey = "SCOUT_TAVILY_API_KEY"
	EnvTavilyHost   = "SCOUT_TAVILY_HOST"
	EnvDefaultYear  = "SCOUT_DEFAULT_YEAR"

	legacyGeminiAPIKey = "VITE_GEMINI_API_KEY"
	legacyTavilyAPIKey = "VITE_TAVILY_API_KEY"
)

// DefaultEnvFile is read when no other env file is configured.
const DefaultEnvFile = ".env"

// File is the TOML file layout.
//
//	default_year = 2025
//
//	[gemini]
//	api_key = "..."
//	model = "gemini-2.0-flash"
//
//	[tavily]
//	api_key = "tvly-..."
//	rate = 2.0
//
//	[delays]
//	tender_mock_ms = 1800
type File struct {
	DefaultYear int        `toml:"default_year"`
	Gemini      GeminiFile `toml:"gemini"`
	Tavily      TavilyFile `toml:"tavily"`
	Delays      DelaysFile `toml:"delays"`
}

type GeminiFile struct {
	APIKey string `toml:"api_key"`
	Host   string `toml:"host"`
	Model  string `toml:"model"`
}

type TavilyFile struct {
	APIKey string  `toml:"api_key"`
	Host   string  `toml:"host"`
	Rate   float64 `toml:"rate"`
}

// DelaysFile holds simulated latencies in milliseconds. Nil keeps the default.
type DelaysFile struct {
	TenderMockMS       *int `toml:"tender_mock_ms"`
	AnalysisMockMS     *int `toml:"analysis_mock_ms"`
	TenderFallbackMS   *int `toml:"tender_fallback_ms"`
	AnalysisFallbackMS *int `toml:"analysis_fallback_ms"`
}

type loadOptions struct {
	envFile string
	lookup  func(string) (string, bool)
}

// Option configures Load.
type Option func(*loadOptions)

// WithEnvFile reads path instead of DefaultEnvFile. An empty path skips
// the env file.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) {
		o.envFile = path
	}
}

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(o *loadOptions) {
		if lookup != nil {
			o.lookup = lookup
		}
	}
}

// Load builds a validated ai.Config. path names an optional TOML file; an
// empty path skips it. A missing env file is not an error.
func Load(path string, opts ...Option) (*ai.Config, error) {
	o := &loadOptions{
		envFile: DefaultEnvFile,
		lookup:  os.LookupEnv,
	}
	for _, opt := range opts {
		opt(o)
	}

	cfg := ai.DefaultConfig()

	if path != "" {
		f, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		f.apply(cfg)
	}

	dotenv := map[string]string{}
	if o.envFile != "" {
		m, err := godotenv.Read(o.envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: reading %s: %w", o.envFile, err)
		default:
			dotenv = m
		}
	}

	lookup := func(keys ...string) (string, bool) {
		for _, k := range keys {
			if v, ok := o.lookup(k); ok && v != "" {
				return v, true
			}
		}
		for _, k := range keys {
			if v, ok := dotenv[k]; ok && v != "" {
				return v, true
			}
		}
		return "", false
	}

	if v, ok := lookup(EnvGeminiAPIKey, legacyGeminiAPIKey); ok {
		cfg.AnalysisAPIKey = v
	}
	if v, ok := lookup(EnvGeminiModel); ok {
		cfg.AnalysisModel = v
	}
	if v, ok := lookup(EnvGeminiHost); ok {
		cfg.AnalysisHost = v
	}
	if v, ok := lookup(EnvTavilyAPIKey, legacyTavilyAPIKey); ok {
		cfg.SearchAPIKey = v
	}
	if v, ok := lookup(EnvTavilyHost); ok {
		cfg.SearchHost = v
	}
	if v, ok := lookup(EnvDefaultYear); ok {
		year, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvDefaultYear, err)
		}
		cfg.DefaultYear = year
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadFile decodes a TOML config file. Unknown keys are rejected.
func ReadFile(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer r.Close()

	var f File
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &f, nil
}

func (f *File) apply(cfg *ai.Config) {
	if f.DefaultYear != 0 {
		cfg.DefaultYear = f.DefaultYear
	}
	setString(&cfg.AnalysisAPIKey, f.Gemini.APIKey)
	setString(&cfg.AnalysisHost, f.Gemini.Host)
	setString(&cfg.AnalysisModel, f.Gemini.Model)
	setString(&cfg.SearchAPIKey, f.Tavily.APIKey)
	setString(&cfg.SearchHost, f.Tavily.Host)
	if f.Tavily.Rate != 0 {
		cfg.SearchRate = f.Tavily.Rate
	}
	setMillis(&cfg.TenderMockDelay, f.Delays.TenderMockMS)
	setMillis(&cfg.AnalysisMockDelay, f.Delays.AnalysisMockMS)
	setMillis(&cfg.TenderFallbackDelay, f.Delays.TenderFallbackMS)
	setMillis(&cfg.AnalysisFallbackDelay, f.Delays.AnalysisFallbackMS)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setMillis(dst *time.Duration, ms *int) {
	if ms != nil {
		*dst = time.Duration(*ms) * time.Millisecond
	}
}
