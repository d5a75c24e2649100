// Copyright 2026 The gptresearch Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/davetashner/gptresearch/internal/mcpserver"
)

// mcpHTTPAddr, when set, switches mcp serve from stdio to streamable HTTP.
var mcpHTTPAddr string

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running gptresearch as an MCP server, exposing the research tool to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio or streamable HTTP.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start the "GPT Research Server" MCP server, exposing one tool:
  - research: Research a query and return findings with cited sources

The server uses the stdio transport by default, so it can be launched directly
by an MCP client. With --http it serves the streamable HTTP transport instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := buildApp(ctx, cmd.Flags())
		if err != nil {
			return err
		}
		defer a.close(ctx)

		if mcpHTTPAddr == "" {
			return mcpserver.Run(ctx, Version, a.researcher, &mcp.StdioTransport{})
		}
		return listenAndServe(ctx, mcpHTTPAddr, mcpserver.HTTPHandler(mcpserver.New(Version, a.researcher)))
	},
}

func init() {
	mcpServeCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve streamable HTTP on this address instead of stdio")
	mcpCmd.AddCommand(mcpServeCmd)
}
