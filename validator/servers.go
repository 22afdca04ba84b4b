package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/offscale/cdd-web-ng-sub003/internal/pathutil"
	"github.com/offscale/cdd-web-ng-sub003/spec"
)

func (v *Validator) validateRootServers(doc *spec.Document) error {
	return v.validateServers("servers", doc.Servers)
}

// validateServers checks a server array. The same rules apply wherever a
// server array appears: at the root, on a path item, or on an operation.
func (v *Validator) validateServers(location string, servers []*spec.Server) error {
	names := make(map[string]bool)
	for i, s := range servers {
		if s == nil {
			continue
		}
		loc := fmt.Sprintf("%s[%d]", location, i)
		if s.URL == "" {
			return errAt(loc, "url", "must be a non-empty string")
		}
		if strings.ContainsAny(s.URL, "?#") {
			return errValue(loc, "url", s.URL, "must not contain a query string or fragment")
		}
		if s.Name != "" {
			if names[s.Name] {
				return errValue(loc, "name", s.Name, fmt.Sprintf("duplicate server name '%s'", s.Name))
			}
			names[s.Name] = true
		}

		counts := make(map[string]int)
		for _, name := range pathutil.TemplateVars(s.URL) {
			counts[name]++
		}
		for _, name := range slices.Sorted(maps.Keys(counts)) {
			if counts[name] > 1 {
				return errValue(loc, "url", name,
					fmt.Sprintf("server variable '%s' appears more than once in the URL", name))
			}
			if _, ok := s.Variables[name]; !ok {
				return errValue(loc, "url", name,
					fmt.Sprintf("server variable '%s' has no matching 'variables' entry", name))
			}
		}

		for _, name := range slices.Sorted(maps.Keys(s.Variables)) {
			sv := s.Variables[name]
			if sv == nil {
				continue
			}
			varLoc := fmt.Sprintf("%s.variables.%s", loc, name)
			if sv.Default == "" {
				return errAt(varLoc, "default", "is required")
			}
			if sv.Enum != nil {
				if len(sv.Enum) == 0 {
					return errAt(varLoc, "enum", "must not be empty when present")
				}
				if !slices.Contains(sv.Enum, sv.Default) {
					return errValue(varLoc, "enum", sv.Default, "must contain the 'default' value")
				}
			}
		}
	}
	return nil
}
