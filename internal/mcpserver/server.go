// Copyright 2026 The gptresearch Authors
// SPDX-License-Identifier: MIT

// Package mcpserver exposes the research operation as a Model Context
// Protocol tool.
package mcpserver

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Researcher is the operation the research tool delegates to.
type Researcher interface {
	Research(ctx context.Context, query string) (string, error)
}

// New creates a new MCP server with the research tool registered.
func New(version string, r Researcher) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "gptresearch",
		Title:   "GPT Research Server",
		Version: version,
	}, nil)

	registerTools(server, r)
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, r Researcher, transport mcp.Transport) error {
	return New(version, r).Run(ctx, transport)
}

// HTTPHandler serves server over the MCP streamable HTTP transport.
func HTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}
