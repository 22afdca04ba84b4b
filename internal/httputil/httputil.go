// Package httputil provides HTTP-related validation helpers for response
// keys and media type strings.
package httputil

import (
	"mime"
	"strconv"
	"strings"
)

const (
	statusCodeLength = 3   // standard length of HTTP status codes ("200", "404")
	minStatusCode    = 100 // minimum valid HTTP status code
	maxStatusCode    = 599 // maximum valid HTTP status code
	wildcardChar     = 'X' // wildcard in patterns such as "2XX"
)

// ValidStatusKey reports whether a responses-map key is valid according to
// the OpenAPI spec. Valid keys are:
//   - "default" for the default response
//   - extension fields starting with "x-"
//   - wildcard patterns: 1XX through 5XX
//   - numeric codes: 100-599
func ValidStatusKey(code string) bool {
	if code == "default" {
		return true
	}
	if strings.HasPrefix(code, "x-") {
		return true
	}
	if len(code) != statusCodeLength {
		return false
	}
	if code[1] == wildcardChar && code[2] == wildcardChar {
		return code[0] >= '1' && code[0] <= '5'
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return false
	}
	return n >= minStatusCode && n <= maxStatusCode
}

// ValidMediaTypeKey reports whether a content-map key is a well-formed media
// type per RFC 2045/2046. Wildcards "*/*" and "type/*" are accepted;
// "*/subtype" is not.
func ValidMediaTypeKey(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}
	if sub, ok := strings.CutSuffix(mediaType, "/*"); ok {
		return sub != "" && sub != "*" && !strings.Contains(sub, "/")
	}
	parsed, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return false
	}
	// ParseMediaType accepts bare tokens; a media type needs type/subtype
	parts := strings.Split(parsed, "/")
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}
