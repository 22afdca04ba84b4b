package resolver

import (
	"strings"

	"github.com/gobuffalo/flect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// synthesizedName builds a schema name for an inline body schema. The
// operationId is the preferred base; without one the name derives from the
// verb and path segments, so "/pets/{petId}" GET yields "GetPetsPetId".
func synthesizedName(operationID, pattern, verb, suffix string) string {
	base := operationID
	if base == "" {
		cleaner := strings.NewReplacer("{", "", "}", "")
		words := []string{verb}
		for _, seg := range strings.Split(cleaner.Replace(pattern), "/") {
			if seg != "" {
				words = append(words, titleCaser.String(seg))
			}
		}
		base = strings.Join(words, " ")
	}
	return flect.Pascalize(base) + suffix
}

// responseSuffix names the response variant: the 200/default bodies get the
// plain "Response" suffix, anything else carries its status key.
func responseSuffix(code string) string {
	if code == "200" || code == "default" {
		return "Response"
	}
	return "Response" + titleCaser.String(code)
}
