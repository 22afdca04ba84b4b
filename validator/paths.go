package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/offscale/cdd-web-ng-sub003/internal/pathutil"
	"github.com/offscale/cdd-web-ng-sub003/spec"
)

// validatePaths checks every path entry: template well-formedness, routing
// ambiguity between templated paths, and the operations beneath each item.
func (v *Validator) validatePaths(doc *spec.Document) error {
	signatures := make(map[string]string) // normalized signature -> first path seen
	for _, pattern := range slices.Sorted(maps.Keys(doc.Paths)) {
		if strings.HasPrefix(pattern, "x-") {
			continue
		}
		location := "paths." + pattern
		if !strings.HasPrefix(pattern, "/") {
			return errValue("paths", pattern, pattern, "must begin with '/'")
		}
		if msg := pathTemplateIssue(pattern); msg != "" {
			return errValue(location, "", pattern, msg)
		}
		sig := pathutil.Signature(pattern)
		if prev, ok := signatures[sig]; ok {
			return errValue("paths", "", pattern,
				fmt.Sprintf("ambiguous path definition: '%s' and '%s' have identical templated signatures", prev, pattern))
		}
		signatures[sig] = pattern

		item := doc.Paths[pattern]
		if item == nil {
			continue
		}
		if err := v.validatePathItem(location, pattern, item, doc.OASVersion); err != nil {
			return err
		}
	}
	return nil
}

// validateWebhooks checks webhook path items. Webhook keys are names, not
// URL templates, so no template consistency applies.
func (v *Validator) validateWebhooks(doc *spec.Document) error {
	for _, name := range slices.Sorted(maps.Keys(doc.Webhooks)) {
		item := doc.Webhooks[name]
		if item == nil {
			continue
		}
		if err := v.validatePathItem("webhooks."+name, "", item, doc.OASVersion); err != nil {
			return err
		}
	}
	return nil
}

// validatePathItem checks one path item. An empty pattern means the item is
// not addressed by a URL template (webhooks, callbacks, components), so
// template consistency checks are skipped. Items defined entirely via $ref
// are skipped; their targets are validated where they are defined.
func (v *Validator) validatePathItem(location, pattern string, item *spec.PathItem, version spec.OASVersion) error {
	if item.Ref != "" {
		return nil
	}
	for _, verb := range slices.Sorted(maps.Keys(item.AdditionalOperations)) {
		if _, fixed := spec.FixedMethod(verb); fixed {
			return errValue(location, "additionalOperations", verb,
				fmt.Sprintf("'%s' collides with a fixed HTTP method", verb))
		}
	}
	if err := v.validateServers(location+".servers", item.Servers); err != nil {
		return err
	}
	for i, p := range item.Parameters {
		if err := v.validateParameter(fmt.Sprintf("%s.parameters[%d]", location, i), p, version); err != nil {
			return err
		}
	}

	var templateVars []string
	if pattern != "" {
		templateVars = pathutil.TemplateVars(pattern)
	}
	for _, entry := range item.Operations(version) {
		opLoc := location + "." + entry.Verb
		if err := v.validateOperation(opLoc, entry.Operation, item.Parameters, templateVars, pattern != "", version); err != nil {
			return err
		}
	}
	return nil
}

// validateOperation checks one operation, including its effective parameter
// set (path-level parameters merged with operation overrides), request body,
// responses, servers, and callbacks.
func (v *Validator) validateOperation(location string, op *spec.Operation, inherited []*spec.Parameter, templateVars []string, templated bool, version spec.OASVersion) error {
	if op == nil {
		return nil
	}
	for i, p := range op.Parameters {
		if err := v.validateParameter(fmt.Sprintf("%s.parameters[%d]", location, i), p, version); err != nil {
			return err
		}
	}
	effective := effectiveParameters(inherited, op.Parameters)
	if err := v.validateParameterSet(location, effective); err != nil {
		return err
	}
	if templated {
		if err := v.validateTemplateConsistency(location, templateVars, effective); err != nil {
			return err
		}
	}
	if err := v.validateServers(location+".servers", op.Servers); err != nil {
		return err
	}
	if err := v.validateRequestBody(location+".requestBody", op.RequestBody); err != nil {
		return err
	}
	if err := v.validateResponses(location+".responses", op.Responses); err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(op.Callbacks)) {
		cb := op.Callbacks[name]
		if cb == nil {
			continue
		}
		for _, expr := range slices.Sorted(maps.Keys(*cb)) {
			item := (*cb)[expr]
			if item == nil {
				continue
			}
			cbLoc := fmt.Sprintf("%s.callbacks.%s.%s", location, name, expr)
			if err := v.validatePathItem(cbLoc, "", item, version); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateTemplateConsistency checks that the path template variables and
// the operation's declared 'in: path' parameters match exactly.
func (v *Validator) validateTemplateConsistency(location string, templateVars []string, params []*spec.Parameter) error {
	declared := make(map[string]*spec.Parameter)
	for _, p := range params {
		if p.In == spec.InPath {
			declared[p.Name] = p
		}
	}
	inTemplate := make(map[string]bool, len(templateVars))
	for _, name := range templateVars {
		inTemplate[name] = true
		p, ok := declared[name]
		if !ok {
			return errValue(location, "parameters", name,
				fmt.Sprintf("path template variable '{%s}' has no matching 'in: path' parameter", name))
		}
		if !p.Required {
			return errValue(location, "parameters", name,
				fmt.Sprintf("path parameter '%s' must set required: true", name))
		}
	}
	for _, name := range slices.Sorted(maps.Keys(declared)) {
		if !inTemplate[name] {
			return errValue(location, "parameters", name,
				fmt.Sprintf("'in: path' parameter '%s' does not appear in the path template", name))
		}
	}
	return nil
}

// pathTemplateIssue reports why a path template is malformed, or "" when it
// is well-formed.
func pathTemplateIssue(pattern string) string {
	if strings.Contains(pattern, "{}") {
		return "empty parameter name in path template"
	}
	if strings.Contains(pattern, "//") {
		return "path contains consecutive slashes"
	}
	if strings.Contains(pattern, "#") {
		return "path contains reserved character '#'"
	}
	if strings.Contains(pattern, "?") {
		return "path contains reserved character '?'"
	}

	open := 0
	for _, ch := range pattern {
		switch ch {
		case '{':
			open++
			if open > 1 {
				return "nested braces in path template"
			}
		case '}':
			open--
			if open < 0 {
				return "unexpected closing brace in path template"
			}
		}
	}
	if open != 0 {
		return "unclosed brace in path template"
	}

	names := make(map[string]bool)
	for _, name := range pathutil.TemplateVars(pattern) {
		if strings.TrimSpace(name) == "" {
			return "empty parameter name in path template"
		}
		if names[name] {
			return fmt.Sprintf("duplicate parameter name '%s' in path template", name)
		}
		names[name] = true
	}
	return ""
}
