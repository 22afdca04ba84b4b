package spec

import (
	"sort"
	"strings"
)

// Method is the closed set of HTTP methods an operation can be keyed by.
// Non-standard verbs from additionalOperations (OAS 3.2+) are represented by
// MethodAdditional with the verbatim verb carried alongside, so consumers
// pattern-match exhaustively instead of probing by string.
type Method int

const (
	MethodGet Method = iota
	MethodPut
	MethodPost
	MethodDelete
	MethodOptions
	MethodHead
	MethodPatch
	MethodTrace // OAS 3.0+
	MethodQuery // OAS 3.2+
	MethodAdditional
)

var methodNames = [...]string{
	MethodGet:        "get",
	MethodPut:        "put",
	MethodPost:       "post",
	MethodDelete:     "delete",
	MethodOptions:    "options",
	MethodHead:       "head",
	MethodPatch:      "patch",
	MethodTrace:      "trace",
	MethodQuery:      "query",
	MethodAdditional: "additional",
}

// String returns the lowercase method name. MethodAdditional stringifies as
// "additional"; the actual verb lives on the OperationEntry.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return "unknown"
	}
	return methodNames[m]
}

// FixedMethod maps a verb string (any case) to its fixed Method. The second
// return is false for verbs outside the fixed set.
func FixedMethod(verb string) (Method, bool) {
	switch strings.ToLower(verb) {
	case "get":
		return MethodGet, true
	case "put":
		return MethodPut, true
	case "post":
		return MethodPost, true
	case "delete":
		return MethodDelete, true
	case "options":
		return MethodOptions, true
	case "head":
		return MethodHead, true
	case "patch":
		return MethodPatch, true
	case "trace":
		return MethodTrace, true
	case "query":
		return MethodQuery, true
	}
	return MethodAdditional, false
}

// OperationEntry pairs an operation with the method it is keyed by.
type OperationEntry struct {
	// Method is the fixed verb, or MethodAdditional for custom verbs
	Method Method
	// Verb is the lowercase method name; for MethodAdditional it is the
	// verbatim additionalOperations key
	Verb string
	// Operation is the operation definition, never nil
	Operation *Operation
}

// Operations returns the defined operations of a path item in deterministic
// order: the fixed method set first (filtered by what the version supports),
// then additionalOperations keys sorted lexically. Undefined methods are
// omitted.
func (p *PathItem) Operations(version OASVersion) []OperationEntry {
	fixed := []struct {
		method Method
		op     *Operation
	}{
		{MethodGet, p.Get},
		{MethodPut, p.Put},
		{MethodPost, p.Post},
		{MethodDelete, p.Delete},
		{MethodOptions, p.Options},
		{MethodHead, p.Head},
		{MethodPatch, p.Patch},
		{MethodTrace, p.Trace},
		{MethodQuery, p.Query},
	}

	entries := make([]OperationEntry, 0, len(fixed)+len(p.AdditionalOperations))
	for _, f := range fixed {
		if f.op == nil {
			continue
		}
		if f.method == MethodTrace && version < OASVersion30 {
			continue
		}
		if f.method == MethodQuery && version < OASVersion32 {
			continue
		}
		entries = append(entries, OperationEntry{Method: f.method, Verb: f.method.String(), Operation: f.op})
	}

	if version >= OASVersion32 && len(p.AdditionalOperations) > 0 {
		verbs := make([]string, 0, len(p.AdditionalOperations))
		for verb := range p.AdditionalOperations {
			verbs = append(verbs, verb)
		}
		sort.Strings(verbs)
		for _, verb := range verbs {
			if op := p.AdditionalOperations[verb]; op != nil {
				entries = append(entries, OperationEntry{Method: MethodAdditional, Verb: verb, Operation: op})
			}
		}
	}

	return entries
}
