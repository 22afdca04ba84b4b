// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes cddspec capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	cddspec "github.com/offscale/cdd-web-ng-sub003"
)

const serverInstructions = `cddspec MCP server: validates OpenAPI specification documents and lists their resolved schemas.

Tools accept a spec either as a file path or as inline content. Validation is fail-fast: an invalid document reports exactly one violation, the first found in deterministic document order.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "cddspec", Version: cddspec.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate an OpenAPI Specification document against the structural rules of its declared version (Swagger 2.0, OpenAPI 3.0 through 3.2). Returns the first violation with its document path, or valid=true.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "schemas",
		Description: "List the named schemas of an OpenAPI Specification document in stable order: component schemas sorted by name, then synthesized names for inline request/response body schemas.",
	}, handleSchemas)
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
