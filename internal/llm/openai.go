// Copyright 2026 The gptresearch Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	// DefaultModel is the model used when no override is provided.
	DefaultModel = "gpt-5.1"

	// defaultMaxRetries is the SDK's automatic retry count for 408/409/429
	// and 5xx responses. Backoff is handled by the SDK.
	defaultMaxRetries = 2

	// responsesPath is the Responses API endpoint, relative to the base URL.
	responsesPath = "responses"

	// webSearchToolType is the tool type string for web search.
	webSearchToolType = "web_search"
)

// OpenAIProvider implements Provider against the OpenAI Responses API.
type OpenAIProvider struct {
	client     openai.Client
	model      string
	maxRetries int
	timeout    time.Duration
}

// Compile-time check that OpenAIProvider satisfies the Provider interface.
var _ Provider = (*OpenAIProvider)(nil)

// OpenAIOption configures an OpenAIProvider.
type OpenAIOption func(*openaiConfig)

type openaiConfig struct {
	apiKey     string
	baseURL    string
	model      string
	maxRetries int
	timeout    time.Duration
}

// WithAPIKey sets the API key. If not provided, the provider reads
// OPENAI_API_KEY from the environment.
func WithAPIKey(key string) OpenAIOption {
	return func(c *openaiConfig) {
		c.apiKey = key
	}
}

// WithBaseURL points the client at a different API root (proxies, tests).
func WithBaseURL(url string) OpenAIOption {
	return func(c *openaiConfig) {
		c.baseURL = url
	}
}

// WithModel overrides the default model for requests that do not set one.
func WithModel(model string) OpenAIOption {
	return func(c *openaiConfig) {
		c.model = model
	}
}

// WithMaxRetries sets the SDK retry count for transient errors.
func WithMaxRetries(n int) OpenAIOption {
	return func(c *openaiConfig) {
		c.maxRetries = n
	}
}

// WithRequestTimeout bounds each HTTP attempt. Zero leaves it unbounded.
func WithRequestTimeout(d time.Duration) OpenAIOption {
	return func(c *openaiConfig) {
		c.timeout = d
	}
}

// NewOpenAIProvider creates a new OpenAI provider.
// It returns an error if no API key is available (neither via option nor env).
func NewOpenAIProvider(opts ...OpenAIOption) (*OpenAIProvider, error) {
	cfg := openaiConfig{
		model:      DefaultModel,
		maxRetries: defaultMaxRetries,
	}
	for _, o := range opts {
		o(&cfg)
	}

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("llm: OPENAI_API_KEY not set and no API key provided")
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(cfg.maxRetries),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}
	if cfg.timeout > 0 {
		clientOpts = append(clientOpts, option.WithRequestTimeout(cfg.timeout))
	}

	return &OpenAIProvider{
		client:     openai.NewClient(clientOpts...),
		model:      cfg.model,
		maxRetries: cfg.maxRetries,
		timeout:    cfg.timeout,
	}, nil
}

type wireRequest struct {
	Model string     `json:"model"`
	Tools []wireTool `json:"tools,omitempty"`
	Input string     `json:"input"`
}

type wireTool struct {
	Type              string            `json:"type"`
	SearchContextSize SearchContextSize `json:"search_context_size,omitempty"`
}

// Create posts the request to the Responses API and decodes the result.
func (p *OpenAIProvider) Create(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	wr := wireRequest{Model: model, Input: req.Input}
	for _, t := range req.Tools {
		wr.Tools = append(wr.Tools, wireTool{
			Type:              webSearchToolType,
			SearchContextSize: t.SearchContextSize,
		})
	}

	body, err := json.Marshal(wr)
	if err != nil {
		return nil, fmt.Errorf("openai: encode request: %w", err)
	}

	var raw json.RawMessage
	if err := p.client.Post(ctx, responsesPath, json.RawMessage(body), &raw); err != nil {
		return nil, fmt.Errorf("openai: create response failed: %w", err)
	}

	resp, err := DecodeResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	return resp, nil
}

// Model returns the default model configured for this provider.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// MaxRetries returns the configured max retry count.
func (p *OpenAIProvider) MaxRetries() int {
	return p.maxRetries
}

// RequestTimeout returns the per-attempt timeout, or zero if unbounded.
func (p *OpenAIProvider) RequestTimeout() time.Duration {
	return p.timeout
}
