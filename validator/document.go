package validator

import (
	"github.com/offscale/cdd-web-ng-sub003/internal/stringutil"
	"github.com/offscale/cdd-web-ng-sub003/spec"
)

// validateDocument checks the root-level fields: the version declaration,
// the info block, and required top-level structure.
func (v *Validator) validateDocument(doc *spec.Document) error {
	hasSwagger := doc.Swagger != ""
	hasOpenAPI := doc.OpenAPI != ""
	switch {
	case hasSwagger && hasOpenAPI:
		return errAt("document", "", "cannot declare both 'swagger' and 'openapi'")
	case !hasSwagger && !hasOpenAPI:
		return errAt("document", "", "must declare either 'swagger' (2.x) or 'openapi' (3.x)")
	case hasSwagger && !spec.IsSwaggerVersion(doc.Swagger):
		return errValue("document", "swagger", doc.Swagger, "must be a valid 2.x version string")
	case hasOpenAPI && !spec.IsOpenAPIVersion(doc.OpenAPI):
		return errValue("document", "openapi", doc.OpenAPI, "must be a valid 3.x version string")
	}

	if doc.Info == nil {
		return errAt("document", "info", "is required")
	}
	if doc.Info.Title == "" {
		return errAt("info", "title", "must be a non-empty string")
	}
	if doc.Info.Version == "" {
		return errAt("info", "version", "must be a non-empty string")
	}
	if err := v.validateInfo(doc.Info); err != nil {
		return err
	}

	if doc.OASVersion == spec.OASVersion20 && doc.Paths == nil {
		return errAt("document", "paths", "is required in Swagger 2.0 documents")
	}
	if doc.OASVersion.IsOAS3() && doc.Paths == nil && doc.Components == nil && doc.Webhooks == nil {
		return errAt("document", "", "must contain at least one of 'paths', 'components', or 'webhooks'")
	}

	if doc.JSONSchemaDialect != "" && !isValidURI(doc.JSONSchemaDialect) {
		return errValue("document", "jsonSchemaDialect", doc.JSONSchemaDialect, "must be a valid URI")
	}
	if doc.Self != "" && !isURIReference(doc.Self) {
		return errValue("document", "$self", doc.Self, "must be a valid URI reference")
	}
	if doc.ExternalDocs != nil && doc.ExternalDocs.URL == "" {
		return errAt("externalDocs", "url", "is required")
	}
	return nil
}

func (v *Validator) validateInfo(info *spec.Info) error {
	if c := info.Contact; c != nil {
		if c.URL != "" && !isValidURI(c.URL) {
			return errValue("info.contact", "url", c.URL, "must be a valid URI")
		}
		if c.Email != "" && !stringutil.IsValidEmail(c.Email) {
			return errValue("info.contact", "email", c.Email, "must be a valid email address")
		}
	}
	if l := info.License; l != nil {
		if l.Name == "" {
			return errAt("info.license", "name", "is required")
		}
		if l.URL != "" && l.Identifier != "" {
			return errAt("info.license", "", "'url' and 'identifier' are mutually exclusive")
		}
		if l.URL != "" && !isValidURI(l.URL) {
			return errValue("info.license", "url", l.URL, "must be a valid URI")
		}
	}
	return nil
}
