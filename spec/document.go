package spec

// Document represents a parsed OpenAPI/Swagger specification document.
// A structurally valid document carries exactly one of Swagger (2.x) or
// OpenAPI (3.x); the validator enforces that and every other invariant.
// The validator and resolver treat the document as immutable.
type Document struct {
	Swagger      string                `yaml:"swagger,omitempty" json:"swagger,omitempty"` // OAS 2.0
	OpenAPI      string                `yaml:"openapi,omitempty" json:"openapi,omitempty"` // OAS 3.x
	Info         *Info                 `yaml:"info" json:"info"`                           // Required
	Servers      []*Server             `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths        Paths                 `yaml:"paths,omitempty" json:"paths,omitempty"`
	Webhooks     map[string]*PathItem  `yaml:"webhooks,omitempty" json:"webhooks,omitempty"` // OAS 3.1+
	Components   *Components           `yaml:"components,omitempty" json:"components,omitempty"`
	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Tags         []*Tag                `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`

	// OAS 2.0 specific: reusable schemas live under "definitions"
	Definitions map[string]*SchemaOrRef `yaml:"definitions,omitempty" json:"definitions,omitempty"`

	// OAS 3.1+ additions
	JSONSchemaDialect string `yaml:"jsonSchemaDialect,omitempty" json:"jsonSchemaDialect,omitempty"`

	// OAS 3.2+ additions
	Self string `yaml:"$self,omitempty" json:"$self,omitempty"` // Document identity/base URI

	// OASVersion is the detected version series, populated by Parse.
	OASVersion OASVersion `yaml:"-" json:"-"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Components holds reusable objects for different aspects of the spec (OAS 3.0+)
type Components struct {
	Schemas         map[string]*SchemaOrRef    `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       map[string]*Response       `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      map[string]*Parameter      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Examples        map[string]*Example        `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequestBodies   map[string]*RequestBody    `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers         map[string]*Header         `yaml:"headers,omitempty" json:"headers,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	Links           map[string]*Link           `yaml:"links,omitempty" json:"links,omitempty"`
	Callbacks       map[string]*Callback       `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`

	// OAS 3.1+ additions
	PathItems map[string]*PathItem `yaml:"pathItems,omitempty" json:"pathItems,omitempty"`

	// OAS 3.2+ additions
	MediaTypes map[string]*MediaType `yaml:"mediaTypes,omitempty" json:"mediaTypes,omitempty"`
	Webhooks   map[string]*PathItem  `yaml:"webhooks,omitempty" json:"webhooks,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Info provides metadata about the API
type Info struct {
	Title          string   `yaml:"title" json:"title"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string   `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License `yaml:"license,omitempty" json:"license,omitempty"`
	Version        string   `yaml:"version" json:"version"`
	// OAS 3.1+ additions
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Contact information for the exposed API
type Contact struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// License information for the exposed API.
// URL and Identifier are mutually exclusive (OAS 3.1+).
type License struct {
	Name       string `yaml:"name" json:"name"`
	URL        string `yaml:"url,omitempty" json:"url,omitempty"`
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"` // OAS 3.1+
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ExternalDocs allows referencing external documentation
type ExternalDocs struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string `yaml:"url" json:"url"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Tag adds metadata to a single tag used by operations.
// Parent (OAS 3.2+) references another tag's name; the parent graph must be
// acyclic, which the validator enforces.
type Tag struct {
	Name         string        `yaml:"name" json:"name"`
	Description  string        `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	// OAS 3.2+ additions
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Parent  string `yaml:"parent,omitempty" json:"parent,omitempty"`
	Kind    string `yaml:"kind,omitempty" json:"kind,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Server represents a Server object (OAS 3.0+)
type Server struct {
	URL         string                     `yaml:"url" json:"url"`
	Description string                     `yaml:"description,omitempty" json:"description,omitempty"`
	Variables   map[string]*ServerVariable `yaml:"variables,omitempty" json:"variables,omitempty"`
	// OAS 3.2+ additions
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ServerVariable represents a Server Variable object (OAS 3.0+)
type ServerVariable struct {
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default     string   `yaml:"default" json:"default"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// SecurityRequirement lists required security schemes by name
type SecurityRequirement map[string][]string

// SecurityScheme defines a security scheme that can be used by operations
type SecurityScheme struct {
	Ref              string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Type             string         `yaml:"type,omitempty" json:"type,omitempty"`
	Description      string         `yaml:"description,omitempty" json:"description,omitempty"`
	Name             string         `yaml:"name,omitempty" json:"name,omitempty"`
	In               string         `yaml:"in,omitempty" json:"in,omitempty"`
	Scheme           string         `yaml:"scheme,omitempty" json:"scheme,omitempty"`
	BearerFormat     string         `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"`
	Flows            map[string]any `yaml:"flows,omitempty" json:"flows,omitempty"`
	OpenIDConnectURL string         `yaml:"openIdConnectUrl,omitempty" json:"openIdConnectUrl,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
