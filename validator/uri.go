package validator

import (
	"net/url"
	"regexp"
)

var (
	// uriSchemeRegex approximates an absolute URI: a scheme followed by a
	// non-empty remainder with no whitespace. It backstops url.Parse for
	// schemes the standard library rejects.
	uriSchemeRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:\S+$`)

	// uriReferenceRegex limits URI references to the RFC 3986 character set.
	// Relative references are allowed; only the characters are checked.
	uriReferenceRegex = regexp.MustCompile(`^[A-Za-z0-9\-._~:/?#\[\]@!$&'()*+,;=%]+$`)
)

// isValidURI reports whether s is an absolute URI.
func isValidURI(s string) bool {
	u, err := url.Parse(s)
	if err == nil && u.Scheme != "" {
		return true
	}
	return uriSchemeRegex.MatchString(s)
}

// isURIReference reports whether s is usable as a URI reference.
func isURIReference(s string) bool {
	return uriReferenceRegex.MatchString(s)
}
