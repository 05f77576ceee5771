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


// Package tavily implements ai.WebSearcher against the Tavily search API.
package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/poiesic/scout/ai"
	"golang.org/x/time/rate"
)

const maxErrorBody = 2048

// Client calls the /search endpoint. It is safe for concurrent use.
type Client struct {
	host       string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

var _ ai.WebSearcher = (*Client)(nil)

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger. Nil falls back to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

func newClient(config *ai.Config, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		host:       config.SearchHost,
		apiKey:     config.SearchAPIKey,
		httpClient: http.DefaultClient,
		logger:     slog.Default().With("component", "tavily-client"),
	}
	if config.SearchRate > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(config.SearchRate), 1)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewClient creates a search client for the configured host.
//
// Returns ai.WebSearcher interface to maintain abstraction.
func NewClient(config *ai.Config, opts ...Option) (ai.WebSearcher, error) {
	return newClient(config, opts...)
}

type searchBody struct {
	APIKey            string   `json:"api_key"`
	Query             string   `json:"query"`
	SearchDepth       string   `json:"search_depth,omitempty"`
	MaxResults        int      `json:"max_results,omitempty"`
	IncludeAnswer     bool     `json:"include_answer"`
	IncludeRawContent bool     `json:"include_raw_content"`
	IncludeImages     bool     `json:"include_images"`
	IncludeDomains    []string `json:"include_domains,omitempty"`
}

type searchResponse struct {
	Results []ai.RawResult `json:"results"`
}

// Search performs one POST to <host>/search.
func (c *Client) Search(ctx context.Context, req ai.SearchRequest) ([]ai.RawResult, error) {
	if ai.IsPlaceholderKey(c.apiKey) {
		return nil, ai.ErrMissingCredential
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(searchBody{
		APIKey:            c.apiKey,
		Query:             req.Query,
		SearchDepth:       req.SearchDepth,
		MaxResults:        req.MaxResults,
		IncludeRawContent: req.IncludeRawContent,
		IncludeDomains:    req.IncludeDomains,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Debug("searching", "query", req.Query, "max_results", req.MaxResults, "domains", len(req.IncludeDomains))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &ai.HTTPError{Provider: "tavily", StatusCode: resp.StatusCode, Body: string(text)}
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrProviderParse, err)
	}

	c.logger.Debug("search complete", "results", len(decoded.Results))
	if decoded.Results == nil {
		return []ai.RawResult{}, nil
	}
	return decoded.Results, nil
}
