package spec

// Parameter locations. OAS 3.2 adds "querystring", which describes the
// entire query string as a single schema and is mutually exclusive with
// "query" parameters within one operation.
const (
	InQuery       = "query"
	InPath        = "path"
	InHeader      = "header"
	InCookie      = "cookie"
	InQueryString = "querystring" // OAS 3.2+
)

// Parameter describes a single operation parameter
type Parameter struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	// Name and In use omitempty because parameters can be defined via $ref.
	// When a parameter uses $ref, these fields are empty in the referencing
	// object (the actual values live in the referenced definition).
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	In          string `yaml:"in,omitempty" json:"in,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// AllowEmptyValue is only legal for in: query, and excludes style.
	AllowEmptyValue bool `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`

	// Serialization fields; all three are forbidden for in: querystring.
	Style         string `yaml:"style,omitempty" json:"style,omitempty"`
	Explode       *bool  `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved bool   `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`

	// Schema and Content are mutually exclusive in OAS 3.x; Content must
	// contain exactly one entry.
	Schema  *SchemaOrRef          `yaml:"schema,omitempty" json:"schema,omitempty"`
	Content map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`

	// Example and Examples are mutually exclusive.
	Example  any                 `yaml:"example,omitempty" json:"example,omitempty"`
	Examples map[string]*Example `yaml:"examples,omitempty" json:"examples,omitempty"`

	// OAS 2.0 fields (type information lives directly on the parameter)
	Type             string `yaml:"type,omitempty" json:"type,omitempty"`
	Format           string `yaml:"format,omitempty" json:"format,omitempty"`
	CollectionFormat string `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`
	Default          any    `yaml:"default,omitempty" json:"default,omitempty"`
	Enum             []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
