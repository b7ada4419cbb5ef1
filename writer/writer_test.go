package writer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelapi/oas32/parser"
)

func decode(t *testing.T, out string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	return m
}

func TestWriteJSONRoundTripsMinimalDocument(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {}
	}`)
	require.NoError(t, err)

	out, err := WriteJSON(def)
	require.NoError(t, err)

	m := decode(t, out)
	assert.Equal(t, "3.2.0", m["openapi"])
	assert.Equal(t, "t", m["info"].(map[string]any)["title"])
	assert.Equal(t, map[string]any{}, m["paths"])

	def2, err := parser.ParseString(out)
	require.NoError(t, err)
	assert.Equal(t, def.OpenAPI, def2.OpenAPI)
	assert.True(t, def2.PathsExplicitEmpty)
}

func TestWritePathsNilOmitsKey(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "components": {"schemas": {"Pet": {"type": "object"}}}
	}`)
	require.NoError(t, err)

	out, err := WriteJSON(def)
	require.NoError(t, err)
	m := decode(t, out)
	_, hasPaths := m["paths"]
	assert.False(t, hasPaths)
}

func TestWriteSecurityExplicitEmptyEmitsEmptyArray(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {},
	  "security": []
	}`)
	require.NoError(t, err)
	require.True(t, def.SecurityExplicitEmpty)

	out, err := WriteJSON(def)
	require.NoError(t, err)
	m := decode(t, out)
	assert.Equal(t, []any{}, m["security"])
}

func TestWriteOperationIDOmittedWhenNotExplicit(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets/{petId}": {
	      "get": {"responses": {"200": {"description": "ok"}}}
	    }
	  }
	}`)
	require.NoError(t, err)
	require.False(t, def.Paths["/pets/{petId}"].Get.OperationIDExplicit)

	out, err := WriteJSON(def)
	require.NoError(t, err)
	m := decode(t, out)
	op := m["paths"].(map[string]any)["/pets/{petId}"].(map[string]any)["get"].(map[string]any)
	_, hasOpID := op["operationId"]
	assert.False(t, hasOpID)
}

func TestWriteOperationIDKeptWhenExplicit(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {
	      "get": {"operationId": "listPets", "responses": {"200": {"description": "ok"}}}
	    }
	  }
	}`)
	require.NoError(t, err)

	out, err := WriteJSON(def)
	require.NoError(t, err)
	m := decode(t, out)
	op := m["paths"].(map[string]any)["/pets"].(map[string]any)["get"].(map[string]any)
	assert.Equal(t, "listPets", op["operationId"])
}

func TestWriteResponseContentPresentEmptyMapPreserved(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {
	      "get": {"responses": {"200": {"description": "ok", "content": {}}}}
	    }
	  }
	}`)
	require.NoError(t, err)
	resp := def.Paths["/pets"].Get.Responses["200"].Inline
	require.True(t, resp.ContentPresent)

	out, err := WriteJSON(def)
	require.NoError(t, err)
	m := decode(t, out)
	respOut := m["paths"].(map[string]any)["/pets"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)["200"].(map[string]any)
	content, hasContent := respOut["content"]
	require.True(t, hasContent)
	assert.Equal(t, map[string]any{}, content)
}

func TestWriteResponseContentAbsentOmitsKey(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {
	      "get": {"responses": {"200": {"description": "ok"}}}
	    }
	  }
	}`)
	require.NoError(t, err)

	out, err := WriteJSON(def)
	require.NoError(t, err)
	m := decode(t, out)
	respOut := m["paths"].(map[string]any)["/pets"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)["200"].(map[string]any)
	_, hasContent := respOut["content"]
	assert.False(t, hasContent)
}

func TestWriteResponseContentTypeHeaderOmitted(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {
	      "get": {
	        "responses": {
	          "200": {
	            "description": "ok",
	            "headers": {
	              "Content-Type": {"schema": {"type": "string"}},
	              "X-Rate-Limit": {"schema": {"type": "integer"}}
	            }
	          }
	        }
	      }
	    }
	  }
	}`)
	require.NoError(t, err)

	out, err := WriteJSON(def)
	require.NoError(t, err)
	m := decode(t, out)
	respOut := m["paths"].(map[string]any)["/pets"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)["200"].(map[string]any)
	headers := respOut["headers"].(map[string]any)
	_, hasContentType := headers["Content-Type"]
	assert.False(t, hasContentType)
	_, hasRateLimit := headers["X-Rate-Limit"]
	assert.True(t, hasRateLimit)
}

func TestWriteComponentRefAbsolutizedAgainstSelf(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "$self": "https://example.com/openapi",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {
	      "get": {
	        "responses": {
	          "200": {
	            "description": "ok",
	            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}}
	          }
	        }
	      }
	    }
	  },
	  "components": {"schemas": {"Pet": {"type": "object"}}}
	}`)
	require.NoError(t, err)

	out, err := WriteJSON(def)
	require.NoError(t, err)
	m := decode(t, out)
	schemaRef := m["paths"].(map[string]any)["/pets"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)["200"].(map[string]any)["content"].(map[string]any)["application/json"].(map[string]any)["schema"].(map[string]any)["$ref"]
	assert.Equal(t, "https://example.com/openapi#/components/schemas/Pet", schemaRef)
}

func TestWriteExtensionsPreserved(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0", "x-internal": true},
	  "paths": {},
	  "x-root-ext": "hello"
	}`)
	require.NoError(t, err)

	out, err := WriteJSON(def)
	require.NoError(t, err)
	m := decode(t, out)
	assert.Equal(t, "hello", m["x-root-ext"])
	assert.Equal(t, true, m["info"].(map[string]any)["x-internal"])
}

func TestWriteCustomKeywordsPreserved(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {},
	  "components": {
	    "schemas": {
	      "Weird": {"type": "string", "myVendorKeyword": 42}
	    }
	  }
	}`)
	require.NoError(t, err)

	out, err := WriteJSON(def)
	require.NoError(t, err)
	m := decode(t, out)
	weird := m["components"].(map[string]any)["schemas"].(map[string]any)["Weird"].(map[string]any)
	assert.Equal(t, float64(42), weird["myVendorKeyword"])
}

func TestWriteBooleanSchemaShorthand(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {},
	  "components": {
	    "schemas": {"AnyValue": true, "Never": false}
	  }
	}`)
	require.NoError(t, err)

	out, err := WriteJSON(def)
	require.NoError(t, err)
	m := decode(t, out)
	schemas := m["components"].(map[string]any)["schemas"].(map[string]any)
	assert.Equal(t, true, schemas["AnyValue"])
	assert.Equal(t, false, schemas["Never"])
}

func TestWriteCompositionPreservesRefAndInlineMembers(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {},
	  "components": {
	    "schemas": {
	      "Base": {"type": "object"},
	      "Combo": {
	        "allOf": [
	          "#/components/schemas/Base",
	          {"type": "object", "properties": {"extra": {"type": "string"}}}
	        ]
	      }
	    }
	  }
	}`)
	require.NoError(t, err)

	out, err := WriteJSON(def)
	require.NoError(t, err)
	m := decode(t, out)
	allOf := m["components"].(map[string]any)["schemas"].(map[string]any)["Combo"].(map[string]any)["allOf"].([]any)
	require.Len(t, allOf, 2)
	assert.Equal(t, map[string]any{"$ref": "#/components/schemas/Base"}, allOf[0])
	inline := allOf[1].(map[string]any)
	assert.Equal(t, "object", inline["type"])
}

func TestWriteLegacyNullableReemitted(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {},
	  "components": {
	    "schemas": {"Maybe": {"type": "string", "nullable": true}}
	  }
	}`)
	require.NoError(t, err)

	out, err := WriteJSON(def)
	require.NoError(t, err)
	m := decode(t, out)
	maybe := m["components"].(map[string]any)["schemas"].(map[string]any)["Maybe"].(map[string]any)
	assert.Equal(t, "string", maybe["type"])
	assert.Equal(t, true, maybe["nullable"])
}

func TestWriteYAMLProducesParsableDocument(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {}
	}`)
	require.NoError(t, err)

	out, err := WriteYAML(def)
	require.NoError(t, err)
	assert.Contains(t, out, "openapi:")

	def2, err := parser.ParseString(out)
	require.NoError(t, err)
	assert.Equal(t, def.OpenAPI, def2.OpenAPI)
}

func TestWriteDeterministicAcrossRuns(t *testing.T) {
	def, err := parser.ParseString(`{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0", "x-b": 1, "x-a": 2},
	  "paths": {}
	}`)
	require.NoError(t, err)

	out1, err := WriteJSON(def)
	require.NoError(t, err)
	out2, err := WriteJSON(def)
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "yaml", FormatYAML.String())
}
