package validator

import (
	"fmt"
	"maps"
	"slices"

	"github.com/offscale/cdd-web-ng-sub003/internal/httputil"
	"github.com/offscale/cdd-web-ng-sub003/spec"
)

// validateResponses checks response map keys and each response body.
func (v *Validator) validateResponses(location string, responses spec.Responses) error {
	for _, code := range slices.Sorted(maps.Keys(responses)) {
		if !httputil.ValidStatusKey(code) {
			return errValue(location, code, code,
				"is not a valid response key (status code, wildcard such as '2XX', or 'default')")
		}
		resp := responses[code]
		if resp == nil || resp.Ref != "" {
			continue
		}
		if err := v.validateResponse(location+"."+code, resp); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateResponse(location string, resp *spec.Response) error {
	if err := v.validateHeaders(location+".headers", resp.Headers); err != nil {
		return err
	}
	if err := v.validateContentMap(location+".content", resp.Content); err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(resp.Links)) {
		if err := v.validateLink(location+".links."+name, resp.Links[name]); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateRequestBody(location string, rb *spec.RequestBody) error {
	if rb == nil || rb.Ref != "" {
		return nil
	}
	if len(rb.Content) == 0 {
		return errAt(location, "content", "is required")
	}
	return v.validateContentMap(location+".content", rb.Content)
}

// validateContentMap checks a content map: keys must be well-formed media
// types and each media type object must be internally consistent.
func (v *Validator) validateContentMap(location string, content map[string]*spec.MediaType) error {
	for _, key := range slices.Sorted(maps.Keys(content)) {
		if !httputil.ValidMediaTypeKey(key) {
			return errValue(location, key, key, "is not a valid media type")
		}
		if mt := content[key]; mt != nil {
			if err := v.validateMediaType(location+"."+key, mt); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *Validator) validateMediaType(location string, mt *spec.MediaType) error {
	if mt.Example != nil && len(mt.Examples) > 0 {
		return errAt(location, "", "'example' and 'examples' are mutually exclusive")
	}
	if len(mt.Encoding) > 0 && (len(mt.PrefixEncoding) > 0 || mt.ItemEncoding != nil) {
		return errAt(location, "", "'encoding' cannot be combined with 'prefixEncoding' or 'itemEncoding'")
	}
	for _, name := range slices.Sorted(maps.Keys(mt.Encoding)) {
		enc := mt.Encoding[name]
		if enc == nil {
			continue
		}
		encLoc := fmt.Sprintf("%s.encoding.%s.headers", location, name)
		if err := v.validateHeaders(encLoc, enc.Headers); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateHeaders(location string, headers map[string]*spec.Header) error {
	for _, name := range slices.Sorted(maps.Keys(headers)) {
		h := headers[name]
		if h == nil || h.Ref != "" {
			continue
		}
		if err := v.validateHeader(location+"."+name, h); err != nil {
			return err
		}
	}
	return nil
}

// validateHeader checks a header object. Header objects share the parameter
// shape minus 'name', 'in', and 'allowEmptyValue'; those arrive via Extra
// when present in the source document and are rejected here.
func (v *Validator) validateHeader(location string, h *spec.Header) error {
	for _, forbidden := range []string{"name", "in", "allowEmptyValue"} {
		if value, ok := h.Extra[forbidden]; ok {
			return errValue(location, forbidden, value, "is not allowed on a header object")
		}
	}
	if h.Style != "" && h.Style != "simple" {
		return errValue(location, "style", h.Style, "headers only support 'simple' style")
	}
	if h.Example != nil && len(h.Examples) > 0 {
		return errAt(location, "", "'example' and 'examples' are mutually exclusive")
	}
	if h.Schema != nil && len(h.Content) > 0 {
		return errAt(location, "", "'schema' and 'content' are mutually exclusive")
	}
	if len(h.Content) > 1 {
		return errValue(location, "content", len(h.Content), "must contain exactly one media type entry")
	}
	return v.validateContentMap(location+".content", h.Content)
}

// validateLink checks that a link identifies its target operation in exactly
// one way.
func (v *Validator) validateLink(location string, l *spec.Link) error {
	if l == nil || l.Ref != "" {
		return nil
	}
	hasID := l.OperationID != ""
	hasRef := l.OperationRef != ""
	switch {
	case hasID && hasRef:
		return errAt(location, "", "'operationId' and 'operationRef' are mutually exclusive")
	case !hasID && !hasRef:
		return errAt(location, "", "must define either 'operationId' or 'operationRef'")
	}
	return nil
}
