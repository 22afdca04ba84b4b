// Package spec defines the typed document model for OpenAPI/Swagger
// specifications (2.0 through 3.2) and decodes YAML or JSON source text
// into it.
//
// The model is deliberately loose: decoding succeeds for any document that
// is shaped like a specification, and structural rules are enforced
// separately by the validator package. Specification extensions ("x-"
// fields) are captured in the Extra map carried by every object.
//
// Schema positions use the SchemaOrRef sum type, which decides once at
// decode time whether a node is a concrete schema, a $ref, or a
// $dynamicRef. Consumers switch on Kind() instead of probing for keys.
package spec
