// Package cddspec provides the OpenAPI specification-processing core used by
// the cdd web generators: a structural validator and a schema reference
// resolver.
//
// The library consists of three primary packages:
//
//   - spec: the typed OpenAPI/Swagger document model (2.0 through 3.2) and
//     its YAML/JSON decoder
//   - validator: fail-fast structural validation of a parsed document
//   - resolver: $ref/$dynamicRef resolution, composition handling, and the
//     flat list of named schemas consumed by type emitters
//
// # Quick Start
//
// Parse and validate a specification, then resolve schemas:
//
//	doc, err := spec.ParseFile("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := validator.Validate(doc); err != nil {
//		log.Fatal(err) // first structural violation, human-readable
//	}
//	r, err := resolver.New(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, named := range r.Schemas() {
//		fmt.Println(named.Name)
//	}
//
// Validation failures abort generation; unresolvable references do not. The
// resolver returns nil for dangling references so emitters can degrade the
// affected type to a generic placeholder and continue.
package cddspec

import "fmt"

var (
	// version is set via ldflags during build by GoReleaser
	// For development builds, this will show "dev"
	version = "dev"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// UserAgent returns the User-Agent string to use
func UserAgent() string {
	return fmt.Sprintf("cddspec/%s", version)
}
