// Copyright 2026 The gptresearch Authors
// SPDX-License-Identifier: MIT

// Package httpapi serves the research operation over a small REST API,
// alongside the MCP streamable HTTP endpoint.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Researcher is the operation the REST endpoint delegates to.
type Researcher interface {
	Research(ctx context.Context, query string) (string, error)
}

// Options configures the router.
type Options struct {
	// APIKey, when non-empty, is required on /v1 and /mcp routes.
	APIKey string
	// AllowOrigins enables CORS for the listed origins. Empty disables it.
	AllowOrigins []string
	// MCPHandler is mounted at /mcp when non-nil.
	MCPHandler http.Handler
}

// New builds the gin engine with all routes attached.
func New(r Researcher, opts Options) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())

	if len(opts.AllowOrigins) > 0 {
		g.Use(cors.New(cors.Config{
			AllowOrigins:  opts.AllowOrigins,
			AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-API-Key", "Mcp-Session-Id"},
			ExposeHeaders: []string{"Content-Length", "Mcp-Session-Id"},
		}))
	}

	attachRoutes(g, r, opts)
	return g
}

func attachRoutes(g *gin.Engine, r Researcher, opts Options) {
	g.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := APIKeyMiddleware(opts.APIKey)
	researchH := NewResearch(r)

	v1 := g.Group("/v1", auth)
	{
		v1.POST("/research", researchH.Create)
	}

	if opts.MCPHandler != nil {
		mcp := gin.WrapH(opts.MCPHandler)
		g.Any("/mcp", auth, mcp)
	}
}
