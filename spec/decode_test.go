package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDetectsVersion(t *testing.T) {
	doc, err := Parse([]byte(`
openapi: "3.2.0"
info:
  title: Test API
  version: "1.0"
paths: {}
`))
	require.NoError(t, err)
	assert.Equal(t, OASVersion32, doc.OASVersion)
	assert.Equal(t, "Test API", doc.Info.Title)
}

func TestParseJSONInput(t *testing.T) {
	doc, err := Parse([]byte(`{"swagger":"2.0","info":{"title":"T","version":"1"},"paths":{}}`))
	require.NoError(t, err)
	assert.Equal(t, OASVersion20, doc.OASVersion)
}

func TestParseMalformedInput(t *testing.T) {
	_, err := Parse([]byte("{unterminated"))
	require.Error(t, err)
}

func TestSchemaOrRefDecode(t *testing.T) {
	t.Run("concrete schema", func(t *testing.T) {
		doc, err := Parse([]byte(`
openapi: "3.1.0"
info: {title: T, version: "1"}
components:
  schemas:
    Pet:
      type: object
      properties:
        id: {type: string}
`))
		require.NoError(t, err)
		pet := doc.Components.Schemas["Pet"]
		require.NotNil(t, pet)
		assert.Equal(t, KindConcrete, pet.Kind())
		require.NotNil(t, pet.Schema())
		assert.Equal(t, "object", pet.Schema().Type)
		assert.Contains(t, pet.Schema().Properties, "id")
	})

	t.Run("ref wrapper", func(t *testing.T) {
		doc, err := Parse([]byte(`
openapi: "3.1.0"
info: {title: T, version: "1"}
components:
  schemas:
    PetRef:
      $ref: "#/components/schemas/Pet"
`))
		require.NoError(t, err)
		ref := doc.Components.Schemas["PetRef"]
		require.NotNil(t, ref)
		assert.Equal(t, KindRef, ref.Kind())
		assert.True(t, ref.IsRef())
		assert.Equal(t, "#/components/schemas/Pet", ref.Ref())
		assert.Nil(t, ref.Schema())
	})

	t.Run("ref wins over sibling keywords", func(t *testing.T) {
		doc, err := Parse([]byte(`
openapi: "3.1.0"
info: {title: T, version: "1"}
components:
  schemas:
    Odd:
      $ref: "#/components/schemas/Pet"
      description: ignored per resolution rules
`))
		require.NoError(t, err)
		odd := doc.Components.Schemas["Odd"]
		assert.Equal(t, KindRef, odd.Kind())
	})

	t.Run("dynamic ref wrapper", func(t *testing.T) {
		doc, err := Parse([]byte(`
openapi: "3.1.0"
info: {title: T, version: "1"}
components:
  schemas:
    Node:
      $dynamicRef: "#node"
`))
		require.NoError(t, err)
		node := doc.Components.Schemas["Node"]
		assert.Equal(t, KindDynamicRef, node.Kind())
		assert.Equal(t, "#node", node.Ref())
	})

	t.Run("boolean schemas", func(t *testing.T) {
		doc, err := Parse([]byte(`
openapi: "3.1.0"
info: {title: T, version: "1"}
components:
  schemas:
    Anything: true
    Nothing: false
`))
		require.NoError(t, err)
		anything := doc.Components.Schemas["Anything"]
		require.Equal(t, KindConcrete, anything.Kind())
		assert.Nil(t, anything.Schema().Not)
		nothing := doc.Components.Schemas["Nothing"]
		require.Equal(t, KindConcrete, nothing.Kind())
		assert.NotNil(t, nothing.Schema().Not)
	})
}

func TestSchemaOrRefConstructors(t *testing.T) {
	s := &Schema{Type: "string"}
	concrete := ConcreteSchema(s)
	assert.Equal(t, KindConcrete, concrete.Kind())
	assert.Same(t, s, concrete.Schema())
	assert.False(t, concrete.IsRef())

	ref := RefTo("#/components/schemas/A")
	assert.True(t, ref.IsRef())
	assert.Equal(t, "#/components/schemas/A", ref.Ref())

	dyn := DynamicRefTo("#meta")
	assert.Equal(t, KindDynamicRef, dyn.Kind())
	assert.True(t, dyn.IsRef())
}
