package httputil

import "testing"

func TestValidStatusKey(t *testing.T) {
	valid := []string{"default", "200", "404", "599", "100", "2XX", "5XX", "x-custom"}
	for _, code := range valid {
		if !ValidStatusKey(code) {
			t.Errorf("ValidStatusKey(%q) = false, want true", code)
		}
	}

	invalid := []string{"", "99", "600", "6XX", "0XX", "20", "2000", "OK", "X20"}
	for _, code := range invalid {
		if ValidStatusKey(code) {
			t.Errorf("ValidStatusKey(%q) = true, want false", code)
		}
	}
}

func TestValidMediaTypeKey(t *testing.T) {
	valid := []string{
		"application/json",
		"application/xml",
		"text/plain",
		"application/vnd.api+json",
		"multipart/form-data",
		"*/*",
		"application/*",
	}
	for _, mt := range valid {
		if !ValidMediaTypeKey(mt) {
			t.Errorf("ValidMediaTypeKey(%q) = false, want true", mt)
		}
	}

	invalid := []string{"", "json", "*/json", "application/"}
	for _, mt := range invalid {
		if ValidMediaTypeKey(mt) {
			t.Errorf("ValidMediaTypeKey(%q) = true, want false", mt)
		}
	}
}
