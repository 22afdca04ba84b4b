package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/offscale/cdd-web-ng-sub003/resolver"
)

type schemasInput struct {
	Spec specSource `json:"spec" jsonschema:"The specification document to inspect"`
}

type schemaSummary struct {
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	Properties int    `json:"properties,omitempty"`
}

type schemasOutput struct {
	Count   int             `json:"count"`
	Schemas []schemaSummary `json:"schemas,omitempty"`
}

func handleSchemas(_ context.Context, _ *mcp.CallToolRequest, input schemasInput) (*mcp.CallToolResult, schemasOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), schemasOutput{}, nil
	}
	r, err := resolver.New(doc)
	if err != nil {
		return errResult(err), schemasOutput{}, nil
	}

	named := r.Schemas()
	output := schemasOutput{
		Count:   len(named),
		Schemas: makeSlice[schemaSummary](len(named)),
	}
	for _, ns := range named {
		summary := schemaSummary{
			Name:       ns.Name,
			Properties: len(ns.Schema.Properties),
		}
		if typeName, ok := ns.Schema.Type.(string); ok {
			summary.Type = typeName
		}
		output.Schemas = append(output.Schemas, summary)
	}
	return nil, output, nil
}
