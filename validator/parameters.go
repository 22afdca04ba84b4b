package validator

import (
	"fmt"

	"github.com/offscale/cdd-web-ng-sub003/spec"
)

// validateParameter checks the rules that apply to a single parameter
// definition independent of its siblings. Parameters defined via $ref are
// skipped; their targets are validated under components.
func (v *Validator) validateParameter(location string, p *spec.Parameter, version spec.OASVersion) error {
	if p == nil || p.Ref != "" {
		return nil
	}
	if p.Name == "" {
		return errAt(location, "name", "is required")
	}
	if p.In == "" {
		return errAt(location, "in", "is required")
	}
	if p.Example != nil && len(p.Examples) > 0 {
		return errAt(location, "", "'example' and 'examples' are mutually exclusive")
	}
	if p.In == spec.InPath && !p.Required {
		return errValue(location, "required", p.Required, "path parameters must set required: true")
	}
	if p.AllowEmptyValue {
		if p.In != spec.InQuery {
			return errValue(location, "allowEmptyValue", p.In, "is only allowed for 'in: query' parameters")
		}
		if p.Style != "" {
			return errAt(location, "", "'allowEmptyValue' and 'style' are mutually exclusive")
		}
	}
	if p.In == spec.InQueryString {
		if p.Style != "" || p.Explode != nil || p.AllowReserved {
			return errAt(location, "", "'in: querystring' parameters must not set serialization fields ('style', 'explode', 'allowReserved')")
		}
	}
	if version.IsOAS3() {
		if p.Schema != nil && len(p.Content) > 0 {
			return errAt(location, "", "'schema' and 'content' are mutually exclusive")
		}
		if p.Schema == nil && len(p.Content) == 0 {
			return errAt(location, "", "must define either 'schema' or 'content'")
		}
		if len(p.Content) > 1 {
			return errValue(location, "content", len(p.Content), "must contain exactly one media type entry")
		}
		if err := v.validateContentMap(location+".content", p.Content); err != nil {
			return err
		}
	}
	return nil
}

// validateParameterSet checks rules that span an operation's effective
// parameter set.
func (v *Validator) validateParameterSet(location string, params []*spec.Parameter) error {
	type paramKey struct{ name, in string }
	seen := make(map[paramKey]bool, len(params))
	hasQuery := false
	hasQueryString := false
	for _, p := range params {
		k := paramKey{p.Name, p.In}
		if seen[k] {
			return errValue(location, "parameters", p.Name,
				fmt.Sprintf("duplicate parameter '%s' in '%s'", p.Name, p.In))
		}
		seen[k] = true
		switch p.In {
		case spec.InQuery:
			hasQuery = true
		case spec.InQueryString:
			hasQueryString = true
		}
	}
	if hasQuery && hasQueryString {
		return errAt(location, "parameters",
			"'in: query' and 'in: querystring' parameters cannot be combined in one operation")
	}
	return nil
}

// effectiveParameters merges path-level parameters with operation-level
// overrides. An operation parameter with the same name and location replaces
// the inherited one. Parameters defined via $ref are omitted because their
// name and location are not known without resolution.
func effectiveParameters(inherited, own []*spec.Parameter) []*spec.Parameter {
	merged := make([]*spec.Parameter, 0, len(inherited)+len(own))
	for _, p := range inherited {
		if p == nil || p.Ref != "" {
			continue
		}
		overridden := false
		for _, o := range own {
			if o != nil && o.Ref == "" && o.Name == p.Name && o.In == p.In {
				overridden = true
				break
			}
		}
		if !overridden {
			merged = append(merged, p)
		}
	}
	for _, p := range own {
		if p == nil || p.Ref != "" {
			continue
		}
		merged = append(merged, p)
	}
	return merged
}
