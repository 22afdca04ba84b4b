package specerrors

import (
	"errors"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/file.yaml",
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in /path/to/file.yaml: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
		if errors.Is(err, ErrSpecValidation) {
			t.Error("ParseError should not match ErrSpecValidation")
		}
	})
}

func TestSpecValidationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &SpecValidationError{
			Path:    "paths./pets.get.parameters[0]",
			Field:   "required",
			Value:   false,
			Message: "path parameters must have required: true",
		}

		want := "invalid specification at paths./pets.get.parameters[0].required: path parameters must have required: true"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with message only", func(t *testing.T) {
		err := &SpecValidationError{Message: "missing info"}
		if err.Error() != "invalid specification: missing info" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrSpecValidation", func(t *testing.T) {
		err := &SpecValidationError{Message: "test"}
		if !errors.Is(err, ErrSpecValidation) {
			t.Error("SpecValidationError should match ErrSpecValidation")
		}
		if errors.Is(err, ErrParse) {
			t.Error("SpecValidationError should not match ErrParse")
		}
	})

	t.Run("As extracts SpecValidationError", func(t *testing.T) {
		var err error = &SpecValidationError{Path: "tags[1]", Message: "duplicate tag"}
		var verr *SpecValidationError
		if !errors.As(err, &verr) {
			t.Fatal("As should extract SpecValidationError")
		}
		if verr.Path != "tags[1]" {
			t.Errorf("unexpected path: %s", verr.Path)
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with option and value", func(t *testing.T) {
		err := &ConfigError{
			Option:  "documentURI",
			Value:   "",
			Message: "must not be empty when a cache is supplied",
		}
		// Value of "" is non-nil any, so it renders
		want := "configuration error for documentURI (value: ): must not be empty when a cache is supplied"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Message: "test"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}
