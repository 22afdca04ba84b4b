package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestHandleValidate(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		path := writeSpec(t, `
openapi: 3.1.0
info: {title: T, version: "1"}
paths:
  /pets:
    get:
      responses:
        "200": {description: ok}
`)
		assert.NoError(t, handleValidate([]string{"-quiet", path}))
	})

	t.Run("invalid document returns the violation", func(t *testing.T) {
		path := writeSpec(t, `
openapi: 3.1.0
info: {title: "", version: "1"}
paths: {}
`)
		err := handleValidate([]string{"-quiet", path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("missing file", func(t *testing.T) {
		err := handleValidate([]string{"-quiet", "/nonexistent/spec.yaml"})
		assert.Error(t, err)
	})

	t.Run("no arguments", func(t *testing.T) {
		err := handleValidate(nil)
		assert.Error(t, err)
	})
}

func TestHandleSchemas(t *testing.T) {
	path := writeSpec(t, `
openapi: 3.1.0
info: {title: T, version: "1"}
paths: {}
components:
  schemas:
    Pet: {type: object}
`)
	assert.NoError(t, handleSchemas([]string{"--json", path}))
}
