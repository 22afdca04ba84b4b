package mcpserver

import (
	"github.com/offscale/cdd-web-ng-sub003/spec"
	"github.com/offscale/cdd-web-ng-sub003/specerrors"
)

// specSource represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type specSource struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a specification file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline specification content (JSON or YAML)"`
}

// resolve parses the document from whichever source is set.
func (s specSource) resolve() (*spec.Document, error) {
	switch {
	case s.File != "" && s.Content != "":
		return nil, &specerrors.ConfigError{Option: "spec", Message: "provide either 'file' or 'content', not both"}
	case s.File != "":
		return spec.ParseFile(s.File)
	case s.Content != "":
		return spec.Parse([]byte(s.Content))
	default:
		return nil, &specerrors.ConfigError{Option: "spec", Message: "must provide 'file' or 'content'"}
	}
}
