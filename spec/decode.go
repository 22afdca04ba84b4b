package spec

import (
	"errors"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/offscale/cdd-web-ng-sub003/specerrors"
)

// Parse decodes YAML or JSON source text into a Document and detects its
// OAS version. The YAML parser handles both formats since JSON is a subset
// of YAML. Structural validation is the validator package's job; Parse only
// fails on malformed input.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &specerrors.ParseError{Message: "failed to decode document", Cause: err}
	}
	doc.OASVersion = DetectVersion(doc.Swagger, doc.OpenAPI)
	return &doc, nil
}

// ParseFile reads and decodes a specification document from disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &specerrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}
	doc, err := Parse(data)
	if err != nil {
		var perr *specerrors.ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return doc, nil
}
