// Copyright 2026 The gptresearch Authors
// SPDX-License-Identifier: MIT

// Package llm provides the completion-service client used by gptresearch:
// a small Provider interface, an OpenAI Responses API implementation, and an
// optional tracing decorator selected from the environment.
package llm

import "context"

// Provider abstracts the completion service behind a single synchronous call.
type Provider interface {
	// Create sends one request and returns the normalized response.
	// Implementations must respect context cancellation and deadlines and
	// must be safe for concurrent use.
	Create(ctx context.Context, req Request) (*Response, error)
}

// SearchContextSize controls how much web context the search tool gathers.
type SearchContextSize string

// Search context sizes accepted by the web_search tool.
const (
	SearchContextLow    SearchContextSize = "low"
	SearchContextMedium SearchContextSize = "medium"
	SearchContextHigh   SearchContextSize = "high"
)

// Valid reports whether s is one of the sizes the service accepts.
func (s SearchContextSize) Valid() bool {
	switch s {
	case SearchContextLow, SearchContextMedium, SearchContextHigh:
		return true
	default:
		return false
	}
}

// WebSearchTool enables the service's web_search tool for a request.
type WebSearchTool struct {
	SearchContextSize SearchContextSize
}

// Request describes a single create call.
type Request struct {
	// Model is the model identifier sent to the service.
	Model string

	// Tools lists the web search tools attached to the request.
	Tools []WebSearchTool

	// Input is the user's query, forwarded verbatim.
	Input string

	// ID correlates logs and traces for this call. It is never sent upstream.
	ID string
}

// Response holds the normalized result of a create call.
type Response struct {
	// ID is the service-assigned response id.
	ID string

	// Model is the model that served the request.
	Model string

	// OutputText is the primary answer text.
	OutputText string

	// Output is the ordered sequence of content items.
	Output []OutputItem

	// Usage reports token consumption.
	Usage Usage
}

// Usage tracks input and output token counts for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// OutputItem is one element of Response.Output. It is either a MessageItem
// or an OtherItem.
type OutputItem interface {
	outputItem()
}

// MessageItem is an output item whose type discriminator is "message".
type MessageItem struct {
	Content []ContentBlock
}

// OtherItem is any output item that is not a message, including items that
// carry no type discriminator at all (Type is then empty).
type OtherItem struct {
	Type string
}

func (MessageItem) outputItem() {}
func (OtherItem) outputItem()   {}

// ContentBlock is one block of a message item.
type ContentBlock struct {
	Type string
	Text string

	// Annotations is nil when the block carried no annotations field.
	Annotations []Annotation
}

// Annotation is metadata the service attached to generated text. For web
// search results it is usually a url_citation.
type Annotation struct {
	Type       string
	Title      string
	URL        string
	StartIndex int
	EndIndex   int
}

// AnnotationTypeURLCitation is the annotation kind emitted for web citations.
const AnnotationTypeURLCitation = "url_citation"
