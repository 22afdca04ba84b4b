package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/offscale/cdd-web-ng-sub003/spec"
)

// validateOperationIDs checks that operationId values are unique across all
// path and webhook operations, including additionalOperations.
func (v *Validator) validateOperationIDs(doc *spec.Document) error {
	seen := make(map[string]string) // operationId -> first location

	record := func(location string, op *spec.Operation) error {
		if op == nil || op.OperationID == "" {
			return nil
		}
		if prev, ok := seen[op.OperationID]; ok {
			return errValue(location, "operationId", op.OperationID,
				fmt.Sprintf("duplicate operationId '%s' also used at %s", op.OperationID, prev))
		}
		seen[op.OperationID] = location
		return nil
	}

	for _, pattern := range slices.Sorted(maps.Keys(doc.Paths)) {
		if strings.HasPrefix(pattern, "x-") {
			continue
		}
		item := doc.Paths[pattern]
		if item == nil || item.Ref != "" {
			continue
		}
		for _, entry := range item.Operations(doc.OASVersion) {
			if err := record(fmt.Sprintf("paths.%s.%s", pattern, entry.Verb), entry.Operation); err != nil {
				return err
			}
		}
	}
	for _, name := range slices.Sorted(maps.Keys(doc.Webhooks)) {
		item := doc.Webhooks[name]
		if item == nil || item.Ref != "" {
			continue
		}
		for _, entry := range item.Operations(doc.OASVersion) {
			if err := record(fmt.Sprintf("webhooks.%s.%s", name, entry.Verb), entry.Operation); err != nil {
				return err
			}
		}
	}
	return nil
}
