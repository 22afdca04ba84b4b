package spec

// SchemaRefKind discriminates the three forms a schema position can take.
type SchemaRefKind int

const (
	// KindConcrete is an inline schema definition
	KindConcrete SchemaRefKind = iota
	// KindRef is a {$ref: ...} reference wrapper
	KindRef
	// KindDynamicRef is a {$dynamicRef: ...} reference wrapper (OAS 3.1+)
	KindDynamicRef
)

// SchemaOrRef is the sum type for every schema position in the document:
// either a concrete schema, a $ref, or a $dynamicRef. The decision is made
// once, at decode time, so consumers switch on Kind() instead of sniffing
// for reference keys on loose maps.
//
// Sibling keywords are never combined with a reference form: when $ref or
// $dynamicRef is present the node is a reference and any siblings are
// ignored.
type SchemaOrRef struct {
	kind   SchemaRefKind
	ref    string
	schema *Schema
}

// ConcreteSchema wraps an inline schema definition.
func ConcreteSchema(s *Schema) *SchemaOrRef {
	return &SchemaOrRef{kind: KindConcrete, schema: s}
}

// RefTo creates a $ref reference wrapper.
func RefTo(ref string) *SchemaOrRef {
	return &SchemaOrRef{kind: KindRef, ref: ref}
}

// DynamicRefTo creates a $dynamicRef reference wrapper.
func DynamicRefTo(ref string) *SchemaOrRef {
	return &SchemaOrRef{kind: KindDynamicRef, ref: ref}
}

// Kind returns which form this node holds.
func (s *SchemaOrRef) Kind() SchemaRefKind {
	return s.kind
}

// IsRef reports whether the node is a reference of either form.
func (s *SchemaOrRef) IsRef() bool {
	return s.kind == KindRef || s.kind == KindDynamicRef
}

// Ref returns the reference string; empty for concrete schemas.
func (s *SchemaOrRef) Ref() string {
	return s.ref
}

// Schema returns the concrete schema; nil for reference forms.
func (s *SchemaOrRef) Schema() *Schema {
	return s.schema
}

// refProbe captures only the reference keys during the decode-time decision.
type refProbe struct {
	Ref        string `yaml:"$ref"`
	DynamicRef string `yaml:"$dynamicRef"`
}

// UnmarshalYAML decides the node form exactly once. Boolean schemas
// (JSON Schema true/false) decode to an empty schema and a "not anything"
// schema respectively.
func (s *SchemaOrRef) UnmarshalYAML(unmarshal func(any) error) error {
	var b bool
	if err := unmarshal(&b); err == nil {
		if b {
			s.kind, s.schema = KindConcrete, &Schema{}
		} else {
			s.kind, s.schema = KindConcrete, &Schema{Not: ConcreteSchema(&Schema{})}
		}
		return nil
	}

	var probe refProbe
	if err := unmarshal(&probe); err != nil {
		return err
	}
	switch {
	case probe.Ref != "":
		s.kind, s.ref = KindRef, probe.Ref
		return nil
	case probe.DynamicRef != "":
		s.kind, s.ref = KindDynamicRef, probe.DynamicRef
		return nil
	}

	var schema Schema
	if err := unmarshal(&schema); err != nil {
		return err
	}
	s.kind, s.schema = KindConcrete, &schema
	return nil
}

// MarshalYAML renders the node back into its source form.
func (s *SchemaOrRef) MarshalYAML() (any, error) {
	switch s.kind {
	case KindRef:
		return map[string]string{"$ref": s.ref}, nil
	case KindDynamicRef:
		return map[string]string{"$dynamicRef": s.ref}, nil
	default:
		return s.schema, nil
	}
}

// Schema represents a JSON-Schema-like definition.
// Identity for resolution purposes is pointer identity: resolving the same
// reference string twice yields the same *Schema, and cycle detection keys
// visited sets on these pointers.
type Schema struct {
	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// Type validation
	Type   any    `yaml:"type,omitempty" json:"type,omitempty"` // string or []string (OAS 3.1+)
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
	Const  any    `yaml:"const,omitempty" json:"const,omitempty"`

	// Numeric validation
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum any      `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"` // bool in 3.0, number in 3.1+
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum any      `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`

	// String validation
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items       *SchemaOrRef   `yaml:"items,omitempty" json:"items,omitempty"`
	PrefixItems []*SchemaOrRef `yaml:"prefixItems,omitempty" json:"prefixItems,omitempty"`
	MaxItems    *int           `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems    *int           `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems bool           `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Object validation
	Properties           map[string]*SchemaOrRef `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties any                     `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"` // *SchemaOrRef or bool
	Required             []string                `yaml:"required,omitempty" json:"required,omitempty"`
	MaxProperties        *int                    `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties        *int                    `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`

	// Schema composition
	AllOf []*SchemaOrRef `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*SchemaOrRef `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*SchemaOrRef `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Not   *SchemaOrRef   `yaml:"not,omitempty" json:"not,omitempty"`

	// OAS specific extensions
	Nullable      bool           `yaml:"nullable,omitempty" json:"nullable,omitempty"` // OAS 3.0 only
	Discriminator *Discriminator `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	ReadOnly      bool           `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly     bool           `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	Example       any            `yaml:"example,omitempty" json:"example,omitempty"`
	Examples      []any          `yaml:"examples,omitempty" json:"examples,omitempty"`
	ExternalDocs  *ExternalDocs  `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	XML           *XML           `yaml:"xml,omitempty" json:"xml,omitempty"`

	// JSON Schema Draft 2020-12 identity fields, indexed by the resolver's
	// pre-pass so anchors and $ids resolve without pointer walking
	ID            string                  `yaml:"$id,omitempty" json:"$id,omitempty"`
	Anchor        string                  `yaml:"$anchor,omitempty" json:"$anchor,omitempty"`
	DynamicAnchor string                  `yaml:"$dynamicAnchor,omitempty" json:"$dynamicAnchor,omitempty"`
	Comment       string                  `yaml:"$comment,omitempty" json:"$comment,omitempty"`
	Defs          map[string]*SchemaOrRef `yaml:"$defs,omitempty" json:"$defs,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Discriminator represents a discriminator for polymorphism (OAS 3.0+)
type Discriminator struct {
	PropertyName string            `yaml:"propertyName" json:"propertyName"`
	Mapping      map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"`
	Extra        map[string]any    `yaml:",inline" json:"-"`
}

// XML represents metadata for XML encoding (OAS 2.0+)
type XML struct {
	Name      string         `yaml:"name,omitempty" json:"name,omitempty"`
	Namespace string         `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Prefix    string         `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Attribute bool           `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Wrapped   bool           `yaml:"wrapped,omitempty" json:"wrapped,omitempty"`
	Extra     map[string]any `yaml:",inline" json:"-"`
}
