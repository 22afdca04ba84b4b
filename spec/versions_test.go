package spec

import "testing"

func TestDetectVersion(t *testing.T) {
	tests := []struct {
		name    string
		swagger string
		openapi string
		want    OASVersion
	}{
		{"swagger 2.0", "2.0", "", OASVersion20},
		{"openapi 3.0.0", "", "3.0.0", OASVersion30},
		{"openapi 3.0.3", "", "3.0.3", OASVersion30},
		{"openapi 3.1.0", "", "3.1.0", OASVersion31},
		{"openapi 3.2.0", "", "3.2.0", OASVersion32},
		{"future patch", "", "3.1.9", OASVersion31},
		{"future minor maps to latest series", "", "3.3.0", OASVersion32},
		{"neither", "", "", Unknown},
		{"garbage swagger", "two", "", Unknown},
		{"garbage openapi", "", "three.one", Unknown},
		{"openapi 4.x unsupported", "", "4.0.0", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectVersion(tt.swagger, tt.openapi); got != tt.want {
				t.Errorf("DetectVersion(%q, %q) = %v, want %v", tt.swagger, tt.openapi, got, tt.want)
			}
		})
	}
}

func TestIsSwaggerVersion(t *testing.T) {
	valid := []string{"2.0", "2.1", "2"}
	for _, s := range valid {
		if !IsSwaggerVersion(s) {
			t.Errorf("IsSwaggerVersion(%q) = false, want true", s)
		}
	}
	invalid := []string{"3.0.0", "2.0beta", "v2.0", ""}
	for _, s := range invalid {
		if IsSwaggerVersion(s) {
			t.Errorf("IsSwaggerVersion(%q) = true, want false", s)
		}
	}
}

func TestOASVersionString(t *testing.T) {
	if OASVersion32.String() != "3.2" {
		t.Errorf("unexpected string: %s", OASVersion32)
	}
	if OASVersion(99).String() != "unknown" {
		t.Errorf("out of range version should stringify as unknown")
	}
	if OASVersion20.IsOAS3() {
		t.Error("2.0 should not report as OAS 3")
	}
	if !OASVersion31.IsOAS3() {
		t.Error("3.1 should report as OAS 3")
	}
}
