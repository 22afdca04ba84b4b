package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/offscale/cdd-web-ng-sub003/specerrors"
	"github.com/offscale/cdd-web-ng-sub003/validator"
)

type validateInput struct {
	Spec specSource `json:"spec" jsonschema:"The specification document to validate"`
}

type validateOutput struct {
	Valid   bool   `json:"valid"`
	Version string `json:"version"`
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{Version: doc.OASVersion.String()}
	if err := validator.Validate(doc); err != nil {
		var verr *specerrors.SpecValidationError
		if errors.As(err, &verr) {
			output.Path = verr.Path
			output.Field = verr.Field
			output.Message = verr.Message
		}
		output.Error = err.Error()
		return nil, output, nil
	}
	output.Valid = true
	return nil, output, nil
}
