package validator

import (
	"fmt"

	"github.com/offscale/cdd-web-ng-sub003/spec"
)

// validateTags checks tag name uniqueness and the parent hierarchy: every
// parent must name an existing tag and the parent graph must be acyclic.
func (v *Validator) validateTags(doc *spec.Document) error {
	byName := make(map[string]*spec.Tag, len(doc.Tags))
	for i, tag := range doc.Tags {
		if tag == nil {
			continue
		}
		location := fmt.Sprintf("tags[%d]", i)
		if tag.Name == "" {
			return errAt(location, "name", "is required")
		}
		if _, ok := byName[tag.Name]; ok {
			return errValue(location, "name", tag.Name, fmt.Sprintf("duplicate tag name '%s'", tag.Name))
		}
		byName[tag.Name] = tag
	}

	for i, tag := range doc.Tags {
		if tag == nil || tag.Parent == "" {
			continue
		}
		location := fmt.Sprintf("tags[%d]", i)
		if _, ok := byName[tag.Parent]; !ok {
			return errValue(location, "parent", tag.Parent,
				fmt.Sprintf("references unknown tag '%s'", tag.Parent))
		}
		visited := map[string]bool{tag.Name: true}
		for cur := byName[tag.Parent]; cur != nil; cur = byName[cur.Parent] {
			if visited[cur.Name] {
				return errValue(location, "parent", tag.Parent, "circular tag parent reference")
			}
			visited[cur.Name] = true
			if cur.Parent == "" {
				break
			}
		}
	}
	return nil
}
