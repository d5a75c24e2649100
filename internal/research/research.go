// Copyright 2026 The gptresearch Authors
// SPDX-License-Identifier: MIT

// Package research implements the research operation: one web-search
// completion per query, normalized into an answer followed by a markdown
// list of sources.
package research

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/davetashner/gptresearch/internal/llm"
)

// Researcher runs research queries against a provider. It holds no per-call
// state and is safe for concurrent use.
type Researcher struct {
	provider         llm.Provider
	model            string
	contextSize      llm.SearchContextSize
	urlCitationsOnly bool
}

// Option configures a Researcher.
type Option func(*Researcher)

// WithModel sets the model identifier sent with every request.
func WithModel(model string) Option {
	return func(r *Researcher) {
		if model != "" {
			r.model = model
		}
	}
}

// WithSearchContextSize sets the web search context size. Invalid sizes are
// rejected by New.
func WithSearchContextSize(size llm.SearchContextSize) Option {
	return func(r *Researcher) {
		if size != "" {
			r.contextSize = size
		}
	}
}

// WithURLCitationsOnly drops annotations whose kind is set and is not
// url_citation. By default every annotation is treated as a citation.
func WithURLCitationsOnly(only bool) Option {
	return func(r *Researcher) {
		r.urlCitationsOnly = only
	}
}

// New creates a Researcher bound to provider.
func New(provider llm.Provider, opts ...Option) (*Researcher, error) {
	if provider == nil {
		return nil, fmt.Errorf("research: nil provider")
	}
	r := &Researcher{
		provider:    provider,
		model:       llm.DefaultModel,
		contextSize: llm.SearchContextMedium,
	}
	for _, o := range opts {
		o(r)
	}
	if !r.contextSize.Valid() {
		return nil, fmt.Errorf("research: invalid search context size %q (must be low, medium, or high)", r.contextSize)
	}
	return r, nil
}

// Research sends query to the provider with web search enabled and returns
// the answer text, followed by a Sources section when the response carries
// annotations. The query is forwarded unmodified, even when empty.
//
// Provider errors are returned wrapped, with an empty result.
func (r *Researcher) Research(ctx context.Context, query string) (string, error) {
	req := llm.Request{
		Model: r.model,
		Tools: []llm.WebSearchTool{{SearchContextSize: r.contextSize}},
		Input: query,
		ID:    uuid.NewString(),
	}

	slog.Debug("research request", "request_id", req.ID, "model", req.Model,
		"search_context_size", r.contextSize)

	resp, err := r.provider.Create(ctx, req)
	if err != nil {
		slog.Debug("research failed", "request_id", req.ID, "error", err)
		return "", fmt.Errorf("research: %w", err)
	}

	citations := ExtractCitations(resp, r.urlCitationsOnly)
	slog.Debug("research complete", "request_id", req.ID,
		"response_id", resp.ID, "citations", len(citations))

	return Format(resp.OutputText, citations), nil
}

// Model returns the model identifier used for requests.
func (r *Researcher) Model() string { return r.model }

// SearchContextSize returns the configured web search context size.
func (r *Researcher) SearchContextSize() llm.SearchContextSize { return r.contextSize }
