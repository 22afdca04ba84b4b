package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// serverDoc wraps a servers array in a minimal valid document.
func serverDoc(servers string) string {
	return `
openapi: 3.2.0
info: {title: T, version: "1"}
paths: {}
servers:
` + servers
}

func TestValidateServers(t *testing.T) {
	tests := []struct {
		name    string
		servers string
		want    string
	}{
		{
			name:    "empty url",
			servers: `  - url: ""`,
			want:    "non-empty string",
		},
		{
			name:    "url with query string",
			servers: `  - url: "https://api.example.com?env=prod"`,
			want:    "query string or fragment",
		},
		{
			name:    "url with fragment",
			servers: `  - url: "https://api.example.com#prod"`,
			want:    "query string or fragment",
		},
		{
			name: "duplicate server name",
			servers: `  - {url: "https://a.example.com", name: prod}
  - {url: "https://b.example.com", name: prod}`,
			want: "duplicate server name 'prod'",
		},
		{
			name:    "variable appears twice",
			servers: "  - url: \"https://{region}.example.com/{region}\"\n    variables:\n      region: {default: us}",
			want:    "appears more than once",
		},
		{
			name:    "variable without entry",
			servers: `  - url: "https://{region}.example.com"`,
			want:    "no matching 'variables' entry",
		},
		{
			name:    "variable missing default",
			servers: "  - url: \"https://{region}.example.com\"\n    variables:\n      region: {description: aws region}",
			want:    "default: is required",
		},
		{
			name:    "empty enum",
			servers: "  - url: \"https://{region}.example.com\"\n    variables:\n      region: {default: us, enum: []}",
			want:    "must not be empty",
		},
		{
			name:    "enum missing default",
			servers: "  - url: \"https://{region}.example.com\"\n    variables:\n      region: {default: us, enum: [eu, ap]}",
			want:    "must contain the 'default' value",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireViolation(t, serverDoc(tt.servers), tt.want)
		})
	}

	t.Run("valid templated server", func(t *testing.T) {
		assert.NoError(t, Validate(mustParse(t, serverDoc(
			"  - url: \"https://{region}.example.com/{basePath}\"\n    variables:\n      region: {default: us, enum: [us, eu]}\n      basePath: {default: v1}",
		))))
	})
}

func TestValidateOperationServers(t *testing.T) {
	requireViolation(t, `
openapi: 3.1.0
info: {title: T, version: "1"}
paths:
  /things:
    get:
      servers:
        - url: "https://{region}.example.com"
      responses:
        "200": {description: ok}
`, "no matching 'variables' entry")
}
