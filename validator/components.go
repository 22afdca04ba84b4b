package validator

import (
	"fmt"
	"maps"
	"regexp"
	"slices"

	"github.com/offscale/cdd-web-ng-sub003/spec"
)

// componentKeyRegex is the legal character set for keys in every components
// category.
var componentKeyRegex = regexp.MustCompile(`^[a-zA-Z0-9.\-_]+$`)

// validateComponents checks component key syntax across every category and
// validates the reusable objects that have structural rules of their own.
func (v *Validator) validateComponents(doc *spec.Document) error {
	c := doc.Components
	if c == nil {
		return nil
	}

	categories := []struct {
		name string
		keys []string
	}{
		{"schemas", slices.Sorted(maps.Keys(c.Schemas))},
		{"responses", slices.Sorted(maps.Keys(c.Responses))},
		{"parameters", slices.Sorted(maps.Keys(c.Parameters))},
		{"examples", slices.Sorted(maps.Keys(c.Examples))},
		{"requestBodies", slices.Sorted(maps.Keys(c.RequestBodies))},
		{"headers", slices.Sorted(maps.Keys(c.Headers))},
		{"securitySchemes", slices.Sorted(maps.Keys(c.SecuritySchemes))},
		{"links", slices.Sorted(maps.Keys(c.Links))},
		{"callbacks", slices.Sorted(maps.Keys(c.Callbacks))},
		{"pathItems", slices.Sorted(maps.Keys(c.PathItems))},
		{"mediaTypes", slices.Sorted(maps.Keys(c.MediaTypes))},
		{"webhooks", slices.Sorted(maps.Keys(c.Webhooks))},
	}
	for _, cat := range categories {
		for _, key := range cat.keys {
			if !componentKeyRegex.MatchString(key) {
				return errValue("components."+cat.name, key, key,
					"keys may only contain a-z, A-Z, 0-9, '.', '-', and '_'")
			}
		}
	}

	version := doc.OASVersion
	for _, name := range slices.Sorted(maps.Keys(c.Parameters)) {
		if err := v.validateParameter("components.parameters."+name, c.Parameters[name], version); err != nil {
			return err
		}
	}
	for _, name := range slices.Sorted(maps.Keys(c.Responses)) {
		resp := c.Responses[name]
		if resp == nil || resp.Ref != "" {
			continue
		}
		if err := v.validateResponse("components.responses."+name, resp); err != nil {
			return err
		}
	}
	for _, name := range slices.Sorted(maps.Keys(c.RequestBodies)) {
		if err := v.validateRequestBody("components.requestBodies."+name, c.RequestBodies[name]); err != nil {
			return err
		}
	}
	if err := v.validateHeaders("components.headers", c.Headers); err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(c.Links)) {
		if err := v.validateLink("components.links."+name, c.Links[name]); err != nil {
			return err
		}
	}
	for _, name := range slices.Sorted(maps.Keys(c.MediaTypes)) {
		mt := c.MediaTypes[name]
		if mt == nil {
			continue
		}
		if err := v.validateMediaType("components.mediaTypes."+name, mt); err != nil {
			return err
		}
	}
	for _, name := range slices.Sorted(maps.Keys(c.PathItems)) {
		item := c.PathItems[name]
		if item == nil {
			continue
		}
		if err := v.validatePathItem("components.pathItems."+name, "", item, version); err != nil {
			return err
		}
	}
	for _, name := range slices.Sorted(maps.Keys(c.Callbacks)) {
		cb := c.Callbacks[name]
		if cb == nil {
			continue
		}
		for _, expr := range slices.Sorted(maps.Keys(*cb)) {
			item := (*cb)[expr]
			if item == nil {
				continue
			}
			cbLoc := fmt.Sprintf("components.callbacks.%s.%s", name, expr)
			if err := v.validatePathItem(cbLoc, "", item, version); err != nil {
				return err
			}
		}
	}
	for _, name := range slices.Sorted(maps.Keys(c.Webhooks)) {
		item := c.Webhooks[name]
		if item == nil {
			continue
		}
		if err := v.validatePathItem("components.webhooks."+name, "", item, version); err != nil {
			return err
		}
	}
	return nil
}
