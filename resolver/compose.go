package resolver

import (
	"maps"
	"slices"

	"github.com/offscale/cdd-web-ng-sub003/spec"
)

// MergeAllOf flattens an allOf composition into a single schema view.
// Branches are resolved independently and merged in declaration order:
// properties union with later branches winning name collisions, required
// lists accumulate with duplicates removed, and the parent schema's own
// keywords apply last. Schemas without allOf are returned unchanged, so
// the result is safe to use in place of the input.
func (r *Resolver) MergeAllOf(s *spec.Schema) *spec.Schema {
	return r.mergeAllOf(s, make(map[*spec.Schema]bool))
}

func (r *Resolver) mergeAllOf(s *spec.Schema, visited map[*spec.Schema]bool) *spec.Schema {
	if s == nil || len(s.AllOf) == 0 {
		return s
	}
	if visited[s] {
		return s
	}
	visited[s] = true
	defer delete(visited, s)

	merged := &spec.Schema{
		Type:       "object",
		Properties: make(map[string]*spec.SchemaOrRef),
	}
	var required []string
	absorb := func(b *spec.Schema) {
		if b == nil {
			return
		}
		for _, name := range slices.Sorted(maps.Keys(b.Properties)) {
			merged.Properties[name] = b.Properties[name]
		}
		required = append(required, b.Required...)
		if b.Discriminator != nil {
			merged.Discriminator = b.Discriminator
		}
		if b.Title != "" {
			merged.Title = b.Title
		}
		if b.Description != "" {
			merged.Description = b.Description
		}
	}

	for _, branch := range s.AllOf {
		b := r.ResolveSchema(branch)
		if b != nil && len(b.AllOf) > 0 {
			b = r.mergeAllOf(b, visited)
		}
		absorb(b)
	}
	// The composing schema's own keywords win over every branch.
	absorb(&spec.Schema{
		Title:         s.Title,
		Description:   s.Description,
		Properties:    s.Properties,
		Required:      s.Required,
		Discriminator: s.Discriminator,
	})

	merged.Required = dedupe(required)
	return merged
}

// dedupe removes duplicates preserving first-occurrence order.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := values[:0:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Variants returns the resolved oneOf (or, failing that, anyOf) branches of
// s without flattening them; the caller decides how to model the union.
// Unresolvable branches are skipped.
func (r *Resolver) Variants(s *spec.Schema) []*spec.Schema {
	if s == nil {
		return nil
	}
	branches := s.OneOf
	if len(branches) == 0 {
		branches = s.AnyOf
	}
	var out []*spec.Schema
	for _, branch := range branches {
		if resolved := r.ResolveSchema(branch); resolved != nil {
			out = append(out, resolved)
		}
	}
	return out
}

// DiscriminatorValue extracts the literal tag value a branch schema pins
// for the given discriminator property, via the property's const or a
// single-value enum. Returns "" when the branch does not pin a value;
// callers then fall back to the discriminator mapping keys.
func DiscriminatorValue(branch *spec.Schema, propertyName string) string {
	if branch == nil || propertyName == "" {
		return ""
	}
	prop, ok := branch.Properties[propertyName]
	if !ok || prop == nil || prop.IsRef() {
		return ""
	}
	ps := prop.Schema()
	if ps == nil {
		return ""
	}
	if v, ok := ps.Const.(string); ok && v != "" {
		return v
	}
	if len(ps.Enum) == 1 {
		if v, ok := ps.Enum[0].(string); ok {
			return v
		}
	}
	return ""
}
