// Package resolver resolves schema references within and across OpenAPI
// documents and derives composed views (allOf merges, oneOf/anyOf variants,
// example values) from the resolved graph.
//
// Resolution is best-effort: an unresolvable reference yields nil, never an
// error. The resolver performs no I/O; cross-document references are served
// from an injected read-only DocumentCache. Resolution is also stable: the
// same reference string always yields the same target pointer, so callers
// can key caches and visited sets on node identity.
//
// Example:
//
//	doc, _ := spec.ParseFile("openapi.yaml")
//	r, _ := resolver.New(doc)
//	for _, named := range r.Schemas() {
//	    fmt.Println(named.Name)
//	}
package resolver

import (
	"maps"
	"slices"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/offscale/cdd-web-ng-sub003/spec"
	"github.com/offscale/cdd-web-ng-sub003/specerrors"
)

// maxRefDepth bounds reference chain chasing in ResolveSchema.
const maxRefDepth = 100

// fakerSeed makes generated example values reproducible across runs.
const fakerSeed = 1

// DocumentCache maps document URIs to pre-parsed documents. The resolver
// treats the cache as read-only, so one cache may back any number of
// resolver instances concurrently.
type DocumentCache map[string]*spec.Document

// NamedSchema pairs a schema with its component name, or with a synthesized
// name for inline body schemas.
type NamedSchema struct {
	Name   string
	Schema *spec.Schema
}

// Option configures a Resolver.
type Option func(*Resolver) error

// Resolver resolves $ref and $dynamicRef targets against a root document
// and an optional cache of sibling documents.
type Resolver struct {
	doc    *spec.Document
	docURI string
	cache  DocumentCache
	logger spec.Logger
	faker  *gofakeit.Faker

	// indexes holds one identity index per document, keyed by document URI.
	// The root document is indexed under "".
	indexes map[string]*IDIndex
}

// New builds a Resolver for doc. The identity index for doc and every cache
// entry is built eagerly, so anchors resolve without walking afterward.
func New(doc *spec.Document, opts ...Option) (*Resolver, error) {
	if doc == nil {
		return nil, &specerrors.ConfigError{Option: "doc", Message: "document must not be nil"}
	}
	r := &Resolver{
		doc:    doc,
		cache:  DocumentCache{},
		logger: spec.NopLogger(),
		faker:  gofakeit.New(fakerSeed),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	r.indexes = map[string]*IDIndex{"": BuildIDIndex(doc)}
	for _, uri := range slices.Sorted(maps.Keys(r.cache)) {
		if cached := r.cache[uri]; cached != nil {
			r.indexes[uri] = BuildIDIndex(cached)
		}
	}
	if r.docURI != "" {
		r.indexes[r.docURI] = r.indexes[""]
	}
	return r, nil
}

// WithDocumentURI sets the URI under which the root document is itself
// addressable, so absolute references back into it resolve locally.
func WithDocumentURI(uri string) Option {
	return func(r *Resolver) error {
		if uri == "" {
			return &specerrors.ConfigError{Option: "WithDocumentURI", Message: "uri must not be empty"}
		}
		r.docURI = uri
		return nil
	}
}

// WithDocumentCache injects pre-parsed documents for cross-document
// references. The resolver never mutates the cache.
func WithDocumentCache(cache DocumentCache) Option {
	return func(r *Resolver) error {
		if cache == nil {
			return &specerrors.ConfigError{Option: "WithDocumentCache", Message: "cache must not be nil"}
		}
		r.cache = cache
		return nil
	}
}

// WithLogger sets the logger used during resolution.
func WithLogger(logger spec.Logger) Option {
	return func(r *Resolver) error {
		if logger == nil {
			return &specerrors.ConfigError{Option: "WithLogger", Message: "logger must not be nil"}
		}
		r.logger = logger
		return nil
	}
}

// Resolve returns the target node of a reference. Concrete input is
// returned unchanged. Targets that are themselves references are returned
// as found; use ResolveSchema to chase a chain to a concrete schema.
// Unresolvable references (unknown document, broken pointer, missing
// anchor) return nil.
func (r *Resolver) Resolve(node *spec.SchemaOrRef) *spec.SchemaOrRef {
	if node == nil {
		return nil
	}
	if !node.IsRef() {
		return node
	}
	ref := node.Ref()
	uri, fragment, _ := strings.Cut(ref, "#")

	doc := r.doc
	docKey := ""
	if uri != "" && uri != r.docURI {
		cached, ok := r.cache[uri]
		if !ok || cached == nil {
			// The URI may be a schema $id rather than a cached document.
			if target := r.lookupID(ref, uri, fragment); target != nil {
				return target
			}
			r.logger.Debug("unresolvable reference", "ref", ref, "reason", "document not cached")
			return nil
		}
		doc = cached
		docKey = uri
	}

	if fragment == "" {
		r.logger.Debug("unresolvable reference", "ref", ref, "reason", "no fragment")
		return nil
	}
	if strings.HasPrefix(fragment, "/") {
		target := walkPointer(doc, fragment)
		if target == nil {
			r.logger.Debug("unresolvable reference", "ref", ref, "reason", "broken pointer")
		}
		return target
	}

	if idx := r.indexes[docKey]; idx != nil {
		if target := idx.Anchor(fragment); target != nil {
			return target
		}
	}
	r.logger.Debug("unresolvable reference", "ref", ref, "reason", "unknown anchor")
	return nil
}

// lookupID searches every document index for a schema whose $id matches the
// reference. Indexes are consulted in sorted URI order so the result is
// deterministic.
func (r *Resolver) lookupID(ref, uri, fragment string) *spec.SchemaOrRef {
	for _, key := range slices.Sorted(maps.Keys(r.indexes)) {
		idx := r.indexes[key]
		if target := idx.ID(ref); target != nil {
			return target
		}
		if fragment != "" {
			continue
		}
		if target := idx.ID(uri); target != nil {
			return target
		}
	}
	return nil
}

// ResolveSchema chases a reference chain to a concrete schema. Returns nil
// when any link in the chain is unresolvable or the chain exceeds the depth
// bound.
func (r *Resolver) ResolveSchema(node *spec.SchemaOrRef) *spec.Schema {
	for range maxRefDepth {
		if node == nil {
			return nil
		}
		if !node.IsRef() {
			return node.Schema()
		}
		node = r.Resolve(node)
	}
	r.logger.Warn("reference chain exceeds depth limit", "limit", maxRefDepth)
	return nil
}

// Schemas returns every named schema of the root document in stable order:
// components.schemas (or Swagger 2.0 definitions) sorted by name, followed
// by synthesized names for inline request and response body object schemas
// in path order. Unresolvable entries are skipped.
func (r *Resolver) Schemas() []NamedSchema {
	var out []NamedSchema
	add := func(name string, node *spec.SchemaOrRef) {
		if s := r.ResolveSchema(node); s != nil {
			out = append(out, NamedSchema{Name: name, Schema: s})
		}
	}

	if c := r.doc.Components; c != nil {
		for _, name := range slices.Sorted(maps.Keys(c.Schemas)) {
			add(name, c.Schemas[name])
		}
	}
	for _, name := range slices.Sorted(maps.Keys(r.doc.Definitions)) {
		add(name, r.doc.Definitions[name])
	}

	for _, pattern := range slices.Sorted(maps.Keys(r.doc.Paths)) {
		item := r.doc.Paths[pattern]
		if item == nil || item.Ref != "" {
			continue
		}
		for _, entry := range item.Operations(r.doc.OASVersion) {
			op := entry.Operation
			if op.RequestBody != nil && op.RequestBody.Ref == "" {
				if node := firstInlineBody(op.RequestBody.Content); node != nil {
					add(synthesizedName(op.OperationID, pattern, entry.Verb, "Request"), node)
				}
			}
			for _, code := range slices.Sorted(maps.Keys(op.Responses)) {
				resp := op.Responses[code]
				if resp == nil || resp.Ref != "" {
					continue
				}
				node := firstInlineBody(resp.Content)
				if node == nil && resp.Schema != nil && !resp.Schema.IsRef() {
					node = resp.Schema // Swagger 2.0 body schema
				}
				if node != nil {
					add(synthesizedName(op.OperationID, pattern, entry.Verb, responseSuffix(code)), node)
				}
			}
		}
	}
	return out
}

// firstInlineBody picks the first (sorted by media type) inline object
// schema of a content map. Referenced schemas already have component names.
func firstInlineBody(content map[string]*spec.MediaType) *spec.SchemaOrRef {
	for _, key := range slices.Sorted(maps.Keys(content)) {
		mt := content[key]
		if mt == nil || mt.Schema == nil || mt.Schema.IsRef() {
			continue
		}
		s := mt.Schema.Schema()
		if s != nil && (len(s.Properties) > 0 || s.Type == "object") {
			return mt.Schema
		}
	}
	return nil
}
