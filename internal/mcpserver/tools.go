package mcpserver

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ResearchInput is the input schema for the research MCP tool.
type ResearchInput struct {
	Query string `json:"query" jsonschema:"The question or topic to research"`
}

// ToolName is the name the research tool is registered under.
const ToolName = "research"

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds the research tool to the MCP server.
func registerTools(server *mcp.Server, r Researcher) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolName,
		Description: "Research a query using a search-augmented language model and return findings with citations.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, researchHandler(r))
}

func researchHandler(r Researcher) mcp.ToolHandlerFor[ResearchInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ResearchInput) (*mcp.CallToolResult, any, error) {
		result, err := r.Research(ctx, input.Query)
		if err != nil {
			slog.Warn("research tool failed", "error", err)
			return nil, nil, err
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: result},
			},
		}, nil, nil
	}
}
