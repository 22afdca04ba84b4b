package resolver

import (
	"maps"
	"slices"

	"github.com/offscale/cdd-web-ng-sub003/spec"
)

// IDIndex maps the JSON Schema identity keywords of one document ($id,
// $anchor, $dynamicAnchor) to their schema nodes, so non-pointer fragments
// resolve without walking.
type IDIndex struct {
	ids     map[string]*spec.SchemaOrRef
	anchors map[string]*spec.SchemaOrRef
}

// ID returns the schema node declaring the given $id, or nil.
func (idx *IDIndex) ID(id string) *spec.SchemaOrRef {
	return idx.ids[id]
}

// Anchor returns the schema node declaring the given $anchor or
// $dynamicAnchor, or nil.
func (idx *IDIndex) Anchor(name string) *spec.SchemaOrRef {
	return idx.anchors[name]
}

// BuildIDIndex walks every schema position of doc and records identity
// keyword declarations. Cyclic schema graphs are handled with permanent
// marking since reachability, not path structure, is what matters here.
func BuildIDIndex(doc *spec.Document) *IDIndex {
	idx := &IDIndex{
		ids:     make(map[string]*spec.SchemaOrRef),
		anchors: make(map[string]*spec.SchemaOrRef),
	}
	if doc == nil {
		return idx
	}
	visited := make(map[*spec.Schema]bool)
	for _, root := range schemaRoots(doc) {
		idx.addTree(root, visited)
	}
	return idx
}

func (idx *IDIndex) addTree(node *spec.SchemaOrRef, visited map[*spec.Schema]bool) {
	if node == nil || node.IsRef() {
		return
	}
	s := node.Schema()
	if s == nil || visited[s] {
		return
	}
	visited[s] = true

	if s.ID != "" {
		idx.ids[s.ID] = node
	}
	if s.Anchor != "" {
		idx.anchors[s.Anchor] = node
	}
	if s.DynamicAnchor != "" {
		idx.anchors[s.DynamicAnchor] = node
	}
	for _, sub := range subschemas(s) {
		idx.addTree(sub, visited)
	}
}

// subschemas lists the directly nested schema positions of s in
// deterministic order.
func subschemas(s *spec.Schema) []*spec.SchemaOrRef {
	var subs []*spec.SchemaOrRef
	for _, name := range slices.Sorted(maps.Keys(s.Properties)) {
		subs = append(subs, s.Properties[name])
	}
	if s.Items != nil {
		subs = append(subs, s.Items)
	}
	subs = append(subs, s.PrefixItems...)
	subs = append(subs, s.AllOf...)
	subs = append(subs, s.AnyOf...)
	subs = append(subs, s.OneOf...)
	if s.Not != nil {
		subs = append(subs, s.Not)
	}
	for _, name := range slices.Sorted(maps.Keys(s.Defs)) {
		subs = append(subs, s.Defs[name])
	}
	return subs
}

// schemaRoots returns the top-level schema positions of doc in
// deterministic order: component schemas (or 2.0 definitions), then every
// schema reachable through paths and webhooks.
func schemaRoots(doc *spec.Document) []*spec.SchemaOrRef {
	var roots []*spec.SchemaOrRef
	appendNode := func(node *spec.SchemaOrRef) {
		if node != nil {
			roots = append(roots, node)
		}
	}
	appendContent := func(content map[string]*spec.MediaType) {
		for _, key := range slices.Sorted(maps.Keys(content)) {
			if mt := content[key]; mt != nil {
				appendNode(mt.Schema)
				appendNode(mt.ItemSchema)
			}
		}
	}
	appendParams := func(params []*spec.Parameter) {
		for _, p := range params {
			if p != nil {
				appendNode(p.Schema)
				appendContent(p.Content)
			}
		}
	}
	appendHeaders := func(headers map[string]*spec.Header) {
		for _, name := range slices.Sorted(maps.Keys(headers)) {
			if h := headers[name]; h != nil {
				appendNode(h.Schema)
				appendContent(h.Content)
			}
		}
	}
	appendItem := func(item *spec.PathItem) {
		if item == nil || item.Ref != "" {
			return
		}
		appendParams(item.Parameters)
		for _, entry := range item.Operations(spec.OASVersion32) {
			op := entry.Operation
			appendParams(op.Parameters)
			if op.RequestBody != nil {
				appendContent(op.RequestBody.Content)
			}
			for _, code := range slices.Sorted(maps.Keys(op.Responses)) {
				if resp := op.Responses[code]; resp != nil {
					appendContent(resp.Content)
					appendHeaders(resp.Headers)
					appendNode(resp.Schema)
				}
			}
		}
	}

	if c := doc.Components; c != nil {
		for _, name := range slices.Sorted(maps.Keys(c.Schemas)) {
			appendNode(c.Schemas[name])
		}
		for _, name := range slices.Sorted(maps.Keys(c.Parameters)) {
			if p := c.Parameters[name]; p != nil {
				appendNode(p.Schema)
				appendContent(p.Content)
			}
		}
		for _, name := range slices.Sorted(maps.Keys(c.Responses)) {
			if resp := c.Responses[name]; resp != nil {
				appendContent(resp.Content)
				appendHeaders(resp.Headers)
				appendNode(resp.Schema)
			}
		}
		for _, name := range slices.Sorted(maps.Keys(c.RequestBodies)) {
			if rb := c.RequestBodies[name]; rb != nil {
				appendContent(rb.Content)
			}
		}
		appendHeaders(c.Headers)
		for _, name := range slices.Sorted(maps.Keys(c.MediaTypes)) {
			if mt := c.MediaTypes[name]; mt != nil {
				appendNode(mt.Schema)
				appendNode(mt.ItemSchema)
			}
		}
	}
	for _, name := range slices.Sorted(maps.Keys(doc.Definitions)) {
		appendNode(doc.Definitions[name])
	}
	for _, pattern := range slices.Sorted(maps.Keys(doc.Paths)) {
		appendItem(doc.Paths[pattern])
	}
	for _, name := range slices.Sorted(maps.Keys(doc.Webhooks)) {
		appendItem(doc.Webhooks[name])
	}
	return roots
}
