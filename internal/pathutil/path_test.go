package pathutil

import "testing"

func TestTemplateVars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"no params", "/pets", nil},
		{"single param", "/pets/{petId}", []string{"petId"}},
		{"multiple params", "/pets/{petId}/owners/{ownerId}", []string{"petId", "ownerId"}},
		{"repeated param", "/x/{id}/y/{id}", []string{"id", "id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TemplateVars(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("var %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSignature(t *testing.T) {
	a := Signature("/pets/{petId}")
	b := Signature("/pets/{id}")
	if a != b {
		t.Errorf("signatures differ: %q vs %q", a, b)
	}
	if a != "/pets/{}" {
		t.Errorf("got %q, want %q", a, "/pets/{}")
	}
	if got := Signature("/pets"); got != "/pets" {
		t.Errorf("got %q, want %q", got, "/pets")
	}
}
