package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDoc = `{
  "openapi": "3.2.0",
  "info": {"title": "t", "version": "1.0.0"},
  "paths": {}
}`

func TestParseMinimalDocument(t *testing.T) {
	def, err := ParseString(minimalDoc)
	require.NoError(t, err)
	assert.Equal(t, "3.2.0", def.OpenAPI)
	assert.Equal(t, "t", def.Info.Title)
	assert.True(t, def.PathsExplicitEmpty)
	assert.Empty(t, def.Paths)
}

func TestParseRequiresOpenAPIAndInfo(t *testing.T) {
	_, err := ParseString(`{"info": {"title": "t", "version": "1"}}`)
	assert.Error(t, err)

	_, err = ParseString(`{"openapi": "3.2.0"}`)
	assert.Error(t, err)
}

func TestOperationIDSynthesis(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets/{petId}": {
	      "get": {"responses": {"200": {"description": "ok"}}}
	    }
	  }
	}`
	def, err := ParseString(doc)
	require.NoError(t, err)
	op := def.Paths["/pets/{petId}"].Get
	assert.False(t, op.OperationIDExplicit)
	assert.Equal(t, "get_pets_pet_id", op.OperationID)
}

func TestOperationIDExplicitPreserved(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {
	      "get": {"operationId": "listPets", "responses": {"200": {"description": "ok"}}}
	    }
	  }
	}`
	def, err := ParseString(doc)
	require.NoError(t, err)
	op := def.Paths["/pets"].Get
	assert.True(t, op.OperationIDExplicit)
	assert.Equal(t, "listPets", op.OperationID)
}

func TestReferenceWithSiblingsPreserved(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {
	      "$ref": "#/components/pathItems/Pets",
	      "summary": "overridden summary"
	    }
	  }
	}`
	def, err := ParseString(doc)
	require.NoError(t, err)
	pi := def.Paths["/pets"]
	require.NotNil(t, pi.Reference)
	assert.Equal(t, "#/components/pathItems/Pets", pi.Reference.Ref)
	assert.True(t, pi.Reference.HasSummary)
	assert.Equal(t, "overridden summary", pi.Reference.Summary)
}

func TestExtensionsPreserved(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0", "x-internal": true},
	  "paths": {},
	  "x-root-ext": "hello"
	}`
	def, err := ParseString(doc)
	require.NoError(t, err)
	require.Contains(t, def.Extensions, "x-root-ext")
	require.Contains(t, def.Info.Extensions, "x-internal")
}

func TestBooleanSchemaShorthand(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {},
	  "components": {
	    "schemas": {
	      "AnyValue": true,
	      "Never": false
	    }
	  }
	}`
	def, err := ParseString(doc)
	require.NoError(t, err)
	any := def.Components.Schemas["AnyValue"]
	require.True(t, any.IsBoolean)
	assert.True(t, any.BooleanValue)
	never := def.Components.Schemas["Never"]
	require.True(t, never.IsBoolean)
	assert.False(t, never.BooleanValue)
}

func TestSchemaCompositionParallelLists(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {},
	  "components": {
	    "schemas": {
	      "Combo": {
	        "allOf": [
	          "#/components/schemas/Base",
	          {"type": "object", "properties": {"extra": {"type": "string"}}}
	        ]
	      }
	    }
	  }
	}`
	def, err := ParseString(doc)
	require.NoError(t, err)
	combo := def.Components.Schemas["Combo"]
	require.Len(t, combo.AllOf, 2)
	assert.True(t, combo.AllOf[0].IsRef)
	assert.Equal(t, "#/components/schemas/Base", combo.AllOf[0].Ref)
	assert.False(t, combo.AllOf[1].IsRef)
	require.NotNil(t, combo.AllOf[1].Inline)
}

func TestLegacyNullableFoldsIntoTypes(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {},
	  "components": {
	    "schemas": {
	      "Maybe": {"type": "string", "nullable": true}
	    }
	  }
	}`
	def, err := ParseString(doc)
	require.NoError(t, err)
	maybe := def.Components.Schemas["Maybe"]
	assert.True(t, maybe.NullableLegacy)
	assert.Contains(t, maybe.Types, "null")
	assert.Contains(t, maybe.Types, "string")
}

func TestCustomKeywordsPreserved(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {},
	  "components": {
	    "schemas": {
	      "Weird": {"type": "string", "myVendorKeyword": 42}
	    }
	  }
	}`
	def, err := ParseString(doc)
	require.NoError(t, err)
	weird := def.Components.Schemas["Weird"]
	require.Contains(t, weird.CustomKeywords, "myVendorKeyword")
	assert.Contains(t, weird.CustomKeywordsOrder, "myVendorKeyword")
}

func TestAdditionalOperationsParsed(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/widgets": {
	      "additionalOperations": {
	        "PURGE": {"responses": {"204": {"description": "no content"}}}
	      }
	    }
	  }
	}`
	def, err := ParseString(doc)
	require.NoError(t, err)
	pi := def.Paths["/widgets"]
	require.Contains(t, pi.AdditionalOperations, "PURGE")
	ops := pi.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, "PURGE", ops[0].Verb)
}

func TestParseSchemaStringStandalone(t *testing.T) {
	s, err := ParseSchemaString(`{"type": "object", "properties": {"a": {"type": "string"}}}`)
	require.NoError(t, err)
	assert.Contains(t, s.Types, "object")
	require.Contains(t, s.Properties, "a")
}

func TestResponseRequestTypeInference(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "components": {
	    "schemas": {"Pet": {"type": "object"}}
	  },
	  "paths": {
	    "/blob": {
	      "get": {
	        "responses": {
	          "200": {"description": "ok", "content": {"application/octet-stream": {}}}
	        }
	      }
	    },
	    "/stream": {
	      "get": {
	        "responses": {
	          "200": {"description": "ok", "content": {"application/jsonl": {"itemSchema": {"type": "string"}}}}
	        }
	      }
	    },
	    "/form": {
	      "post": {
	        "requestBody": {"content": {"application/x-www-form-urlencoded": {}}},
	        "responses": {"204": {"description": "no content"}}
	      }
	    },
	    "/pet": {
	      "get": {
	        "responses": {
	          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}}}
	        }
	      }
	    }
	  }
	}`
	def, err := ParseString(doc)
	require.NoError(t, err)

	blobResp := def.Paths["/blob"].Get.Responses["200"]
	assert.Equal(t, "ByteArray", blobResp.Inline.Type)

	streamResp := def.Paths["/stream"].Get.Responses["200"]
	assert.Equal(t, "List<String>", streamResp.Inline.Type)

	formOp := def.Paths["/form"].Post
	assert.Equal(t, "String", formOp.RequestBody.Inline.Type)

	petResp := def.Paths["/pet"].Get.Responses["200"]
	assert.Equal(t, "<Pet>", petResp.Inline.Type)
}

func TestResponseTypeInferenceRanksMostSpecificMediaType(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/items": {
	      "get": {
	        "responses": {
	          "200": {
	            "description": "ok",
	            "content": {
	              "*/*": {"schema": {"type": "boolean"}},
	              "application/*": {"schema": {"type": "number"}},
	              "application/json": {"schema": {"type": "integer"}}
	            }
	          }
	        }
	      }
	    }
	  }
	}`
	def, err := ParseString(doc)
	require.NoError(t, err)
	resp := def.Paths["/items"].Get.Responses["200"]
	assert.Equal(t, "Int", resp.Inline.Type)
}

func TestHeaderTypeInference(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/items": {
	      "get": {
	        "responses": {
	          "200": {
	            "description": "ok",
	            "headers": {
	              "X-Rate-Limit": {"content": {"application/octet-stream": {}}}
	            }
	          }
	        }
	      }
	    }
	  }
	}`
	def, err := ParseString(doc)
	require.NoError(t, err)
	h := def.Paths["/items"].Get.Responses["200"].Inline.Headers["X-Rate-Limit"]
	assert.Equal(t, "ByteArray", h.Inline.Type)
}
