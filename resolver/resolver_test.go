package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offscale/cdd-web-ng-sub003/spec"
)

func mustParse(t *testing.T, source string) *spec.Document {
	t.Helper()
	doc, err := spec.Parse([]byte(source))
	require.NoError(t, err)
	return doc
}

func mustResolver(t *testing.T, doc *spec.Document, opts ...Option) *Resolver {
	t.Helper()
	r, err := New(doc, opts...)
	require.NoError(t, err)
	return r
}

const zoo = `
openapi: 3.1.0
info: {title: Zoo, version: "1"}
paths:
  /pets/{petId}:
    get:
      operationId: getPet
      parameters:
        - name: petId
          in: path
          required: true
          schema: {type: string}
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
      $anchor: pet
      required: [id, name]
      properties:
        id: {type: integer}
        name: {type: string}
    PetAlias:
      $ref: "#/components/schemas/Pet"
    Loop:
      $ref: "#/components/schemas/Loop"
`

func TestResolveConcretePassthrough(t *testing.T) {
	r := mustResolver(t, mustParse(t, zoo))
	node := spec.ConcreteSchema(&spec.Schema{Type: "string"})
	assert.Same(t, node, r.Resolve(node))
}

func TestResolveLocalPointer(t *testing.T) {
	doc := mustParse(t, zoo)
	r := mustResolver(t, doc)

	target := r.Resolve(spec.RefTo("#/components/schemas/Pet"))
	require.NotNil(t, target)
	assert.Same(t, doc.Components.Schemas["Pet"], target)

	t.Run("identity is stable across calls", func(t *testing.T) {
		again := r.Resolve(spec.RefTo("#/components/schemas/Pet"))
		assert.Same(t, target, again)
	})

	t.Run("escaped tokens traverse paths", func(t *testing.T) {
		deep := r.Resolve(spec.RefTo("#/paths/~1pets~1{petId}/get/responses/200/content/application~1json/schema"))
		require.NotNil(t, deep)
		assert.True(t, deep.IsRef())
		assert.Equal(t, "#/components/schemas/Pet", deep.Ref())
	})

	t.Run("nested property pointer", func(t *testing.T) {
		prop := r.Resolve(spec.RefTo("#/components/schemas/Pet/properties/name"))
		require.NotNil(t, prop)
		require.NotNil(t, prop.Schema())
		assert.Equal(t, "string", prop.Schema().Type)
	})
}

func TestResolveDanglingRefIsNil(t *testing.T) {
	r := mustResolver(t, mustParse(t, zoo))
	assert.Nil(t, r.Resolve(spec.RefTo("#/components/schemas/Missing")))
	assert.Nil(t, r.Resolve(spec.RefTo("https://example.com/other.yaml#/components/schemas/Pet")))
	assert.Nil(t, r.Resolve(spec.RefTo("#nosuchanchor")))
	assert.Nil(t, r.Resolve(nil))
}

func TestResolveAnchor(t *testing.T) {
	doc := mustParse(t, zoo)
	r := mustResolver(t, doc)
	target := r.Resolve(spec.RefTo("#pet"))
	require.NotNil(t, target)
	assert.Same(t, doc.Components.Schemas["Pet"], target)
}

func TestResolveReturnsRefTargetsUnchased(t *testing.T) {
	doc := mustParse(t, zoo)
	r := mustResolver(t, doc)

	alias := r.Resolve(spec.RefTo("#/components/schemas/PetAlias"))
	require.NotNil(t, alias)
	assert.True(t, alias.IsRef(), "alias target is itself a reference")

	resolved := r.ResolveSchema(spec.RefTo("#/components/schemas/PetAlias"))
	require.NotNil(t, resolved)
	assert.Same(t, doc.Components.Schemas["Pet"].Schema(), resolved)
}

func TestResolveSchemaSelfReferenceTerminates(t *testing.T) {
	r := mustResolver(t, mustParse(t, zoo))
	assert.Nil(t, r.ResolveSchema(spec.RefTo("#/components/schemas/Loop")))
}

func TestResolveAcrossDocumentCache(t *testing.T) {
	common := mustParse(t, `
openapi: 3.1.0
info: {title: Common, version: "1"}
components:
  schemas:
    Error:
      type: object
      properties:
        message: {type: string}
`)
	cache := DocumentCache{"https://example.com/common.yaml": common}
	r := mustResolver(t, mustParse(t, zoo), WithDocumentCache(cache))

	target := r.Resolve(spec.RefTo("https://example.com/common.yaml#/components/schemas/Error"))
	require.NotNil(t, target)
	assert.Same(t, common.Components.Schemas["Error"], target)
}

func TestResolveDocumentURIRefersToRoot(t *testing.T) {
	doc := mustParse(t, zoo)
	r := mustResolver(t, doc, WithDocumentURI("https://example.com/zoo.yaml"))
	target := r.Resolve(spec.RefTo("https://example.com/zoo.yaml#/components/schemas/Pet"))
	require.NotNil(t, target)
	assert.Same(t, doc.Components.Schemas["Pet"], target)
}

func TestResolveSchemaID(t *testing.T) {
	doc := mustParse(t, `
openapi: 3.1.0
info: {title: T, version: "1"}
components:
  schemas:
    Pet:
      $id: https://example.com/schemas/pet
      type: object
`)
	r := mustResolver(t, doc)
	target := r.Resolve(spec.RefTo("https://example.com/schemas/pet"))
	require.NotNil(t, target)
	assert.Same(t, doc.Components.Schemas["Pet"], target)
}

func TestSchemasOrder(t *testing.T) {
	doc := mustParse(t, `
openapi: 3.1.0
info: {title: T, version: "1"}
paths:
  /pets:
    post:
      operationId: createPet
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                name: {type: string}
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: object
                properties:
                  id: {type: integer}
components:
  schemas:
    Zebra: {type: object}
    Ant: {type: object}
`)
	r := mustResolver(t, doc)
	var names []string
	for _, ns := range r.Schemas() {
		names = append(names, ns.Name)
	}
	assert.Equal(t, []string{"Ant", "Zebra", "CreatePetRequest", "CreatePetResponse"}, names)

	t.Run("order is stable", func(t *testing.T) {
		for range 5 {
			var again []string
			for _, ns := range r.Schemas() {
				again = append(again, ns.Name)
			}
			assert.Equal(t, names, again)
		}
	})
}

func TestSchemasSwagger20Definitions(t *testing.T) {
	doc := mustParse(t, `
swagger: "2.0"
info: {title: T, version: "1"}
paths: {}
definitions:
  Thing:
    type: object
    properties:
      id: {type: integer}
`)
	r := mustResolver(t, doc)
	schemas := r.Schemas()
	require.Len(t, schemas, 1)
	assert.Equal(t, "Thing", schemas[0].Name)

	target := r.Resolve(spec.RefTo("#/definitions/Thing"))
	require.NotNil(t, target)
	assert.Same(t, doc.Definitions["Thing"], target)
}

func TestNewRejectsNilDocument(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestUnescapeJSONPointer(t *testing.T) {
	assert.Equal(t, "/pets/{petId}", unescapeJSONPointer("~1pets~1{petId}"))
	assert.Equal(t, "a~b", unescapeJSONPointer("a~0b"))
	assert.Equal(t, "~1", unescapeJSONPointer("~01"))
}
