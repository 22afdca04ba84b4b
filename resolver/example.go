package resolver

import (
	"maps"
	"slices"
	"time"

	"github.com/offscale/cdd-web-ng-sub003/spec"
)

// ExampleValue produces a representative value for a schema position.
// Explicit example, default, const, and enum values win; otherwise a value
// is generated from the type and format. Generation is seeded, so repeated
// runs over the same document produce the same values.
//
// Traversal carries a visited set with insert/remove pairing around each
// descent, so sibling branches may legitimately share a schema while true
// cycles terminate with an empty object.
func (r *Resolver) ExampleValue(node *spec.SchemaOrRef) any {
	return r.exampleValue(node, make(map[*spec.Schema]bool))
}

func (r *Resolver) exampleValue(node *spec.SchemaOrRef, visited map[*spec.Schema]bool) any {
	s := r.ResolveSchema(node)
	if s == nil {
		return nil
	}
	if visited[s] {
		return map[string]any{}
	}
	visited[s] = true
	defer delete(visited, s)

	switch {
	case s.Example != nil:
		return s.Example
	case len(s.Examples) > 0:
		return s.Examples[0]
	case s.Default != nil:
		return s.Default
	case s.Const != nil:
		return s.Const
	case len(s.Enum) > 0:
		return s.Enum[0]
	}

	if len(s.AllOf) > 0 {
		s = r.mergeAllOf(s, make(map[*spec.Schema]bool))
	}
	if variants := r.Variants(s); len(variants) > 0 {
		return r.exampleValue(spec.ConcreteSchema(variants[0]), visited)
	}

	switch typeName(s) {
	case "object":
		obj := make(map[string]any, len(s.Properties))
		for _, name := range slices.Sorted(maps.Keys(s.Properties)) {
			obj[name] = r.exampleValue(s.Properties[name], visited)
		}
		return obj
	case "array":
		if s.Items == nil {
			return []any{}
		}
		item := r.exampleValue(s.Items, visited)
		if item == nil {
			return []any{}
		}
		return []any{item}
	case "string":
		return r.exampleString(s)
	case "integer":
		return r.exampleInt(s)
	case "number":
		return r.faker.Float64Range(0, 100)
	case "boolean":
		return true
	case "null":
		return nil
	}
	return nil
}

// typeName normalizes the type keyword, which is a string in 3.0 and may be
// a list in 3.1+. The first non-null entry wins; untyped schemas fall back
// to shape inference.
func typeName(s *spec.Schema) string {
	switch t := s.Type.(type) {
	case string:
		return t
	case []any:
		for _, v := range t {
			if name, ok := v.(string); ok && name != "null" {
				return name
			}
		}
	}
	if len(s.Properties) > 0 {
		return "object"
	}
	if s.Items != nil {
		return "array"
	}
	return ""
}

func (r *Resolver) exampleString(s *spec.Schema) string {
	switch s.Format {
	case "email":
		return r.faker.Email()
	case "uuid":
		return r.faker.UUID()
	case "uri", "url":
		return r.faker.URL()
	case "hostname":
		return r.faker.DomainName()
	case "ipv4":
		return r.faker.IPv4Address()
	case "date":
		return r.faker.Date().Format(time.DateOnly)
	case "date-time":
		return r.faker.Date().Format(time.RFC3339)
	default:
		return r.faker.Word()
	}
}

func (r *Resolver) exampleInt(s *spec.Schema) int {
	lo, hi := 1, 100
	if s.Minimum != nil {
		lo = int(*s.Minimum)
	}
	if s.Maximum != nil {
		hi = int(*s.Maximum)
	}
	if hi < lo {
		hi = lo
	}
	return r.faker.Number(lo, hi)
}
