package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePathsAmbiguousTemplates(t *testing.T) {
	verr := requireViolation(t, `
openapi: 3.1.0
info: {title: T, version: "1"}
paths:
  /pets/{id}:
    get:
      parameters:
        - name: id
          in: path
          required: true
          schema: {type: string}
      responses:
        "200": {description: ok}
  /pets/{petId}:
    get:
      parameters:
        - name: petId
          in: path
          required: true
          schema: {type: string}
      responses:
        "200": {description: ok}
`, "ambiguous path definition")
	assert.Contains(t, verr.Message, "/pets/{id}")
	assert.Contains(t, verr.Message, "/pets/{petId}")
}

func TestValidatePathsMustBeginWithSlash(t *testing.T) {
	requireViolation(t, `
openapi: 3.1.0
info: {title: T, version: "1"}
paths:
  pets:
    get:
      responses:
        "200": {description: ok}
`, "must begin with '/'")
}

func TestPathTemplateIssue(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"well-formed", "/pets/{petId}", ""},
		{"no template", "/pets", ""},
		{"empty braces", "/pets/{}", "empty parameter name"},
		{"consecutive slashes", "/pets//list", "consecutive slashes"},
		{"fragment", "/pets#frag", "reserved character '#'"},
		{"query", "/pets?x=1", "reserved character '?'"},
		{"nested braces", "/pets/{a{b}}", "nested braces"},
		{"unclosed brace", "/pets/{petId", "unclosed brace"},
		{"stray closing brace", "/pets/petId}", "unexpected closing brace"},
		{"duplicate variable", "/x/{id}/y/{id}", "duplicate parameter name 'id'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pathTemplateIssue(tt.pattern)
			if tt.want == "" {
				assert.Empty(t, got)
			} else {
				assert.Contains(t, got, tt.want)
			}
		})
	}
}

func TestValidateTemplateConsistency(t *testing.T) {
	t.Run("template variable without parameter", func(t *testing.T) {
		requireViolation(t, `
openapi: 3.1.0
info: {title: T, version: "1"}
paths:
  /pets/{petId}:
    get:
      responses:
        "200": {description: ok}
`, "has no matching 'in: path' parameter")
	})

	t.Run("path parameter not in template", func(t *testing.T) {
		requireViolation(t, `
openapi: 3.1.0
info: {title: T, version: "1"}
paths:
  /pets:
    get:
      parameters:
        - name: petId
          in: path
          required: true
          schema: {type: string}
      responses:
        "200": {description: ok}
`, "does not appear in the path template")
	})

	t.Run("path parameter must be required", func(t *testing.T) {
		requireViolation(t, `
openapi: 3.1.0
info: {title: T, version: "1"}
paths:
  /pets/{petId}:
    get:
      parameters:
        - name: petId
          in: path
          schema: {type: string}
      responses:
        "200": {description: ok}
`, "required: true")
	})

	t.Run("inherited path-level parameter satisfies the template", func(t *testing.T) {
		require.NoError(t, Validate(mustParse(t, `
openapi: 3.1.0
info: {title: T, version: "1"}
paths:
  /pets/{petId}:
    parameters:
      - name: petId
        in: path
        required: true
        schema: {type: string}
    get:
      responses:
        "200": {description: ok}
`)))
	})

	t.Run("referenced path item skips template checks", func(t *testing.T) {
		require.NoError(t, Validate(mustParse(t, `
openapi: 3.1.0
info: {title: T, version: "1"}
paths:
  /pets/{petId}:
    $ref: "#/components/pathItems/PetById"
`)))
	})
}

func TestValidateAdditionalOperations(t *testing.T) {
	t.Run("fixed verb collision", func(t *testing.T) {
		requireViolation(t, `
openapi: 3.2.0
info: {title: T, version: "1"}
paths:
  /pets:
    additionalOperations:
      GET:
        responses:
          "200": {description: ok}
`, "collides with a fixed HTTP method")
	})

	t.Run("custom verb accepted", func(t *testing.T) {
		require.NoError(t, Validate(mustParse(t, `
openapi: 3.2.0
info: {title: T, version: "1"}
paths:
  /pets:
    additionalOperations:
      purge:
        responses:
          "200": {description: ok}
`)))
	})
}
