package spec

import (
	"regexp"
	"strconv"
)

// OASVersion identifies the minor series of the OpenAPI Specification a
// document declares. Patch numbers do not change behavior anywhere in this
// module, so versions are tracked at minor-series granularity.
type OASVersion int

const (
	// Unknown represents an unknown or invalid OAS version
	Unknown OASVersion = iota
	// OASVersion20 OpenAPI Specification 2.0 (Swagger)
	OASVersion20
	// OASVersion30 OpenAPI Specification 3.0.x
	OASVersion30
	// OASVersion31 OpenAPI Specification 3.1.x
	OASVersion31
	// OASVersion32 OpenAPI Specification 3.2.x
	OASVersion32
)

var versionNames = map[OASVersion]string{
	Unknown:      "unknown",
	OASVersion20: "2.0",
	OASVersion30: "3.0",
	OASVersion31: "3.1",
	OASVersion32: "3.2",
}

// String returns the minor-series version string (e.g., "3.1").
func (v OASVersion) String() string {
	if s, ok := versionNames[v]; ok {
		return s
	}
	return "unknown"
}

// IsOAS3 reports whether v is any 3.x series version.
func (v OASVersion) IsOAS3() bool {
	return v >= OASVersion30
}

var (
	// swaggerVersionPattern matches valid "swagger" field values: 2.x
	swaggerVersionPattern = regexp.MustCompile(`^2(\.\d+)*$`)
	// openAPIVersionPattern matches valid "openapi" field values: 3.x or 3.x.y
	// with an optional pre-release/build suffix. The first group captures the
	// minor version.
	openAPIVersionPattern = regexp.MustCompile(`^3\.(\d+)(\.\d+)?([-+].*)?$`)
)

// IsSwaggerVersion reports whether s is a valid Swagger 2.x version string.
func IsSwaggerVersion(s string) bool {
	return swaggerVersionPattern.MatchString(s)
}

// IsOpenAPIVersion reports whether s is a valid OpenAPI 3.x version string.
func IsOpenAPIVersion(s string) bool {
	return openAPIVersionPattern.MatchString(s)
}

// DetectVersion determines the OAS version series from the mutually
// exclusive "swagger" and "openapi" header fields. Future 3.x minor versions
// map to the highest known series so documents parse forward-compatibly;
// callers that care about exact header validity use the validator.
func DetectVersion(swagger, openapi string) OASVersion {
	if swagger != "" && IsSwaggerVersion(swagger) {
		return OASVersion20
	}
	m := openAPIVersionPattern.FindStringSubmatch(openapi)
	if m == nil {
		return Unknown
	}
	minor, err := strconv.Atoi(m[1])
	if err != nil {
		return Unknown
	}
	switch {
	case minor == 0:
		return OASVersion30
	case minor == 1:
		return OASVersion31
	default:
		// 3.2 and any future minor parse as the 3.2 series
		return OASVersion32
	}
}
