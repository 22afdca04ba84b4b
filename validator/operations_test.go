package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOperationIDs(t *testing.T) {
	t.Run("duplicate across paths", func(t *testing.T) {
		verr := requireViolation(t, `
openapi: 3.1.0
info: {title: T, version: "1"}
paths:
  /a:
    get:
      operationId: listThings
      responses:
        "200": {description: ok}
  /b:
    get:
      operationId: listThings
      responses:
        "200": {description: ok}
`, "duplicate operationId 'listThings'")
		assert.Contains(t, verr.Message, "paths./a.get")
		assert.Equal(t, "paths./b.get", verr.Path)
	})

	t.Run("duplicate between path and webhook", func(t *testing.T) {
		verr := requireViolation(t, `
openapi: 3.1.0
info: {title: T, version: "1"}
paths:
  /a:
    get:
      operationId: onEvent
      responses:
        "200": {description: ok}
webhooks:
  event:
    post:
      operationId: onEvent
      responses:
        "200": {description: ok}
`, "duplicate operationId 'onEvent'")
		assert.Contains(t, verr.Message, "paths./a.get")
		assert.Contains(t, verr.Path, "webhooks.event.post")
	})

	t.Run("duplicate in additionalOperations", func(t *testing.T) {
		requireViolation(t, `
openapi: 3.2.0
info: {title: T, version: "1"}
paths:
  /a:
    get:
      operationId: doThing
      responses:
        "200": {description: ok}
    additionalOperations:
      purge:
        operationId: doThing
        responses:
          "200": {description: ok}
`, "duplicate operationId 'doThing'")
	})

	t.Run("same id on different documents is fine", func(t *testing.T) {
		source := `
openapi: 3.1.0
info: {title: T, version: "1"}
paths:
  /a:
    get:
      operationId: listThings
      responses:
        "200": {description: ok}
`
		assert.NoError(t, Validate(mustParse(t, source)))
		assert.NoError(t, Validate(mustParse(t, source)))
	})
}
