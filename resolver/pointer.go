package resolver

import (
	"strconv"
	"strings"

	"github.com/offscale/cdd-web-ng-sub003/spec"
)

// unescapeJSONPointer applies RFC 6901 token unescaping: "~1" becomes "/"
// and "~0" becomes "~", in that order.
func unescapeJSONPointer(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

// walkPointer evaluates an RFC 6901 JSON Pointer against the typed document
// model. The walk traverses non-schema intermediates (path items,
// operations, responses, media types) but only schema positions are valid
// destinations; anything else returns nil. References along the way are not
// chased, so the returned node is exactly the one the pointer names.
func walkPointer(doc *spec.Document, pointer string) *spec.SchemaOrRef {
	if doc == nil || !strings.HasPrefix(pointer, "/") {
		return nil
	}
	var cur any = doc
	for _, raw := range strings.Split(pointer[1:], "/") {
		cur = step(cur, unescapeJSONPointer(raw))
		if cur == nil {
			return nil
		}
	}
	if node, ok := cur.(*spec.SchemaOrRef); ok && node != nil {
		return node
	}
	return nil
}

// step descends one pointer token. A nil return means the token does not
// exist or names a position the model does not type.
func step(cur any, token string) any {
	switch node := cur.(type) {
	case *spec.Document:
		switch token {
		case "components":
			return nilGuard(node.Components)
		case "paths":
			return node.Paths
		case "webhooks":
			return node.Webhooks
		case "definitions":
			return node.Definitions
		}

	case *spec.Components:
		if node == nil {
			return nil
		}
		switch token {
		case "schemas":
			return node.Schemas
		case "responses":
			return node.Responses
		case "parameters":
			return node.Parameters
		case "examples":
			return node.Examples
		case "requestBodies":
			return node.RequestBodies
		case "headers":
			return node.Headers
		case "links":
			return node.Links
		case "callbacks":
			return node.Callbacks
		case "pathItems":
			return node.PathItems
		case "mediaTypes":
			return node.MediaTypes
		case "webhooks":
			return node.Webhooks
		}

	case spec.Paths:
		return nilGuard(node[token])
	case map[string]*spec.PathItem:
		return nilGuard(node[token])
	case map[string]*spec.SchemaOrRef:
		return nilGuard(node[token])
	case map[string]*spec.Response:
		return nilGuard(node[token])
	case map[string]*spec.Parameter:
		return nilGuard(node[token])
	case map[string]*spec.RequestBody:
		return nilGuard(node[token])
	case map[string]*spec.Header:
		return nilGuard(node[token])
	case map[string]*spec.MediaType:
		return nilGuard(node[token])
	case map[string]*spec.Operation:
		return nilGuard(node[token])
	case spec.Responses:
		return nilGuard(node[token])
	case *spec.Callback:
		if node == nil {
			return nil
		}
		return nilGuard((*node)[token])
	case map[string]*spec.Callback:
		return nilGuard(node[token])

	case *spec.PathItem:
		if node == nil {
			return nil
		}
		if method, fixed := spec.FixedMethod(token); fixed && token == method.String() {
			for _, entry := range node.Operations(spec.OASVersion32) {
				if entry.Verb == token {
					return entry.Operation
				}
			}
			return nil
		}
		switch token {
		case "parameters":
			return node.Parameters
		case "additionalOperations":
			return node.AdditionalOperations
		}

	case *spec.Operation:
		if node == nil {
			return nil
		}
		switch token {
		case "parameters":
			return node.Parameters
		case "requestBody":
			return nilGuard(node.RequestBody)
		case "responses":
			return node.Responses
		case "callbacks":
			return node.Callbacks
		}

	case []*spec.Parameter:
		if i, ok := sliceIndex(token, len(node)); ok {
			return nilGuard(node[i])
		}
	case []*spec.SchemaOrRef:
		if i, ok := sliceIndex(token, len(node)); ok {
			return nilGuard(node[i])
		}

	case *spec.Parameter:
		if node == nil {
			return nil
		}
		switch token {
		case "schema":
			return nilGuard(node.Schema)
		case "content":
			return node.Content
		}
	case *spec.RequestBody:
		if node == nil {
			return nil
		}
		if token == "content" {
			return node.Content
		}
	case *spec.Response:
		if node == nil {
			return nil
		}
		switch token {
		case "content":
			return node.Content
		case "headers":
			return node.Headers
		case "schema":
			return nilGuard(node.Schema)
		}
	case *spec.Header:
		if node == nil {
			return nil
		}
		switch token {
		case "schema":
			return nilGuard(node.Schema)
		case "content":
			return node.Content
		}
	case *spec.MediaType:
		if node == nil {
			return nil
		}
		switch token {
		case "schema":
			return nilGuard(node.Schema)
		case "itemSchema":
			return nilGuard(node.ItemSchema)
		}

	case *spec.SchemaOrRef:
		if node == nil || node.IsRef() {
			return nil
		}
		return step(node.Schema(), token)
	case *spec.Schema:
		if node == nil {
			return nil
		}
		switch token {
		case "properties":
			return node.Properties
		case "items":
			return nilGuard(node.Items)
		case "prefixItems":
			return node.PrefixItems
		case "allOf":
			return node.AllOf
		case "anyOf":
			return node.AnyOf
		case "oneOf":
			return node.OneOf
		case "not":
			return nilGuard(node.Not)
		case "$defs":
			return node.Defs
		}
	}
	return nil
}

// nilGuard strips typed nil pointers so the walk loop's nil check fires.
func nilGuard[T any](p *T) any {
	if p == nil {
		return nil
	}
	return p
}

func sliceIndex(token string, length int) (int, bool) {
	i, err := strconv.Atoi(token)
	if err != nil || i < 0 || i >= length {
		return 0, false
	}
	return i, true
}
