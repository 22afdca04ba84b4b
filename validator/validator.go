// Package validator checks parsed OpenAPI and Swagger documents against the
// structural rules of their declared specification version.
//
// Validation is fail-fast: the first violation found is returned as a
// *specerrors.SpecValidationError and traversal stops. Map keys are always
// visited in sorted order, so the same document yields the same first
// violation on every run.
//
// Supported versions: Swagger 2.0 and OpenAPI 3.0 through 3.2.
//
// Example:
//
//	doc, err := spec.ParseFile("openapi.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := validator.Validate(doc); err != nil {
//	    log.Fatal(err)
//	}
package validator

import (
	"github.com/offscale/cdd-web-ng-sub003/spec"
	"github.com/offscale/cdd-web-ng-sub003/specerrors"
)

// Option configures a Validator.
type Option func(*Validator) error

// Validator checks documents for structural violations.
// The zero configuration (via New with no options) logs nothing.
type Validator struct {
	logger spec.Logger
}

// New constructs a Validator.
func New(opts ...Option) (*Validator, error) {
	v := &Validator{logger: spec.NopLogger()}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// WithLogger sets the logger used during validation.
func WithLogger(logger spec.Logger) Option {
	return func(v *Validator) error {
		if logger == nil {
			return &specerrors.ConfigError{Option: "WithLogger", Message: "logger must not be nil"}
		}
		v.logger = logger
		return nil
	}
}

// Validate checks doc using a Validator with default configuration.
func Validate(doc *spec.Document) error {
	v, err := New()
	if err != nil {
		return err
	}
	return v.Validate(doc)
}

// Validate returns nil when doc satisfies every structural rule of its
// declared version, or the first violation found as a
// *specerrors.SpecValidationError.
func (v *Validator) Validate(doc *spec.Document) error {
	if doc == nil {
		return errAt("document", "", "document is nil")
	}
	v.logger.Debug("validating document", "version", doc.OASVersion.String())

	checks := []func(*spec.Document) error{
		v.validateDocument,
		v.validateTags,
		v.validateRootServers,
		v.validatePaths,
		v.validateWebhooks,
		v.validateComponents,
		v.validateOperationIDs,
	}
	for _, check := range checks {
		if err := check(doc); err != nil {
			v.logger.Debug("validation failed", "error", err)
			return err
		}
	}
	v.logger.Debug("document valid")
	return nil
}

func errAt(path, field, message string) error {
	return &specerrors.SpecValidationError{Path: path, Field: field, Message: message}
}

func errValue(path, field string, value any, message string) error {
	return &specerrors.SpecValidationError{Path: path, Field: field, Value: value, Message: message}
}
