// Package specerrors provides structured error types for cddspec.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML/JSON decoding failures
//   - SpecValidationError: OpenAPI specification structural violations
//   - ConfigError: Invalid configuration or input options
//
// # Usage with errors.As
//
//	if err := validator.Validate(doc); err != nil {
//	    var verr *specerrors.SpecValidationError
//	    if errors.As(err, &verr) {
//	        fmt.Println(verr.Path, verr.Message)
//	    }
//	}
package specerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a decoding failure occurred.
	ErrParse = errors.New("parse error")

	// ErrSpecValidation indicates a specification validation failure.
	ErrSpecValidation = errors.New("spec validation error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to decode an OpenAPI document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the decoding failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// SpecValidationError represents the first structural violation found while
// validating a specification document. Validation is fail-fast: a document
// produces at most one of these per run.
type SpecValidationError struct {
	// Path is the document location of the violation (e.g., "paths./pets.get")
	Path string
	// Field is the specific field name with the issue, when one applies
	Field string
	// Value is the offending value (may be nil)
	Value any
	// Message describes the violation in human-readable form
	Message string
}

// Error returns a human-readable error message.
func (e *SpecValidationError) Error() string {
	msg := "invalid specification"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Field != "" {
		msg += "." + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *SpecValidationError) Is(target error) bool {
	return target == ErrSpecValidation
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
