// Package pathutil provides helpers for OpenAPI path templates.
package pathutil

import "regexp"

// PathParamRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// TemplateVars returns the template variable names of a path pattern in
// order of appearance, duplicates included.
func TemplateVars(pathPattern string) []string {
	matches := PathParamRegex.FindAllStringSubmatch(pathPattern, -1)
	if len(matches) == 0 {
		return nil
	}
	vars := make([]string, 0, len(matches))
	for _, match := range matches {
		vars = append(vars, match[1])
	}
	return vars
}

// Signature normalizes a path pattern by erasing template variable names,
// so "/pets/{petId}" and "/pets/{id}" produce the same signature. Paths with
// identical signatures are ambiguous to route.
func Signature(pathPattern string) string {
	return PathParamRegex.ReplaceAllString(pathPattern, "{}")
}
