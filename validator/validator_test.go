package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelapi/oas32/parser"
	"github.com/kestrelapi/oas32/registry"
)

const minimalDoc = `{
  "openapi": "3.2.0",
  "info": {"title": "t", "version": "1.0.0"},
  "paths": {}
}`

func TestValidateMinimalDocumentHasNoErrors(t *testing.T) {
	def, err := parser.ParseString(minimalDoc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	for _, is := range issues {
		assert.False(t, is.IsError(), "unexpected error: %s", is)
	}
}

func TestValidateRequiresInfoTitleAndVersion(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "", "version": ""},
	  "paths": {}
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertHasError(t, issues, "info.title")
	assertHasError(t, issues, "info.version")
}

func TestValidateRequiresAtLeastOneOfPathsWebhooksComponents(t *testing.T) {
	doc := `{"openapi": "3.2.0", "info": {"title": "t", "version": "1.0.0"}}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertHasError(t, issues, "")
}

func TestValidatePathParameterMustMatchTemplate(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets/{petId}": {
	      "get": {
	        "parameters": [{"name": "wrong", "in": "path", "required": true, "schema": {"type": "string"}}],
	        "responses": {"200": {"description": "ok"}}
	      }
	    }
	  }
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertHasError(t, issues, "paths./pets/{petId}.get")
}

func TestValidatePathParameterMatchingTemplatePasses(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets/{petId}": {
	      "get": {
	        "parameters": [{"name": "petId", "in": "path", "required": true, "schema": {"type": "string"}}],
	        "responses": {"200": {"description": "ok"}}
	      }
	    }
	  }
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	for _, is := range issues {
		assert.False(t, is.IsError(), "unexpected error: %s", is)
	}
}

// TestValidateWebhookPathParameterSkipsTemplateCheck guards the fix where
// a webhook entry (which is never matched against a "paths" template key)
// must not be flagged just because it declares a path-location parameter.
func TestValidateWebhookPathParameterSkipsTemplateCheck(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {},
	  "webhooks": {
	    "newPet": {
	      "post": {
	        "parameters": [{"name": "source", "in": "path", "required": true, "schema": {"type": "string"}}],
	        "responses": {"200": {"description": "ok"}}
	      }
	    }
	  }
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertNoError(t, issues, "path parameter")
}

func TestValidateDuplicateOperationID(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/a": {"get": {"operationId": "dup", "responses": {"200": {"description": "ok"}}}},
	    "/b": {"get": {"operationId": "dup", "responses": {"200": {"description": "ok"}}}}
	  }
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertHasError(t, issues, "paths")
}

func TestValidateTemplatedPathCollision(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets/{id}": {"get": {"responses": {"200": {"description": "ok"}}}},
	    "/pets/{key}": {"get": {"responses": {"200": {"description": "ok"}}}}
	  }
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertHasError(t, issues, "paths")
}

func TestValidatePathItemRefWithSiblingsWarns(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {"$ref": "#/components/pathItems/Pets", "summary": "override"}
	  },
	  "components": {
	    "pathItems": {
	      "Pets": {"get": {"responses": {"200": {"description": "ok"}}}}
	    }
	  }
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	var found bool
	for _, is := range issues {
		if !is.IsError() && is.Path == "paths./pets" {
			found = true
		}
	}
	assert.True(t, found, "expected a warning for path item $ref with siblings")
}

func TestValidateUnresolvedSameDocumentRefIsError(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {
	      "get": {
	        "responses": {
	          "200": {
	            "description": "ok",
	            "content": {
	              "application/json": {"schema": {"$ref": "#/components/schemas/Missing"}}
	            }
	          }
	        }
	      }
	    }
	  }
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertHasError(t, issues, "does not resolve to components.schemas")
}

func TestValidateUnknownCrossDocumentRefIsError(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {
	      "get": {
	        "responses": {
	          "200": {
	            "description": "ok",
	            "content": {
	              "application/json": {"schema": {"$ref": "https://example.com/other.json#/components/schemas/Pet"}}
	            }
	          }
	        }
	      }
	    }
	  }
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertHasError(t, issues, "does not resolve")
}

func TestValidateRegisteredCrossDocumentRefIsAccepted(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {
	      "get": {
	        "responses": {
	          "200": {
	            "description": "ok",
	            "content": {
	              "application/json": {"schema": {"$ref": "https://example.com/other.json#/components/schemas/Pet"}}
	            }
	          }
	        }
	      }
	    }
	  }
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)

	reg := registry.New()
	other, err := parser.ParseString(minimalDoc)
	require.NoError(t, err)
	require.NoError(t, reg.RegisterOpenAPI("https://example.com/other.json", other))

	issues, err := Validate(def, WithRegistry(reg))
	require.NoError(t, err)
	assertNoError(t, issues, "does not resolve")
}

func TestValidateLinkRuntimeExpressionParameter(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {
	      "get": {
	        "operationId": "listPets",
	        "responses": {
	          "200": {
	            "description": "ok",
	            "links": {
	              "self": {
	                "operationId": "listPets",
	                "parameters": {"id": "not a runtime expression but starts with $weird"}
	              }
	            }
	          }
	        }
	      }
	    }
	  }
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertHasError(t, issues, "runtime expression")
}

func TestValidateLinkWellFormedRuntimeExpressionPasses(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {
	      "get": {
	        "operationId": "listPets",
	        "responses": {
	          "200": {
	            "description": "ok",
	            "links": {
	              "self": {
	                "operationId": "listPets",
	                "parameters": {"id": "$response.body#/id"}
	              }
	            }
	          }
	        }
	      }
	    }
	  }
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertNoError(t, issues, "runtime expression")
}

func TestValidateResponseMustHaveSuccessCode(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {
	      "get": {"responses": {"404": {"description": "not found"}}}
	    }
	  }
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	var found bool
	for _, is := range issues {
		if !is.IsError() && is.Path == "paths./pets.get.responses" {
			found = true
		}
	}
	assert.True(t, found, "expected a warning about missing 2XX response")
}

func TestValidateResponseHeaderMustNotBeContentType(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {
	      "get": {
	        "responses": {
	          "200": {
	            "description": "ok",
	            "headers": {"Content-Type": {"schema": {"type": "string"}}}
	          }
	        }
	      }
	    }
	  }
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertHasError(t, issues, "must not include Content-Type")
}

func TestValidateQuerystringAndQueryMutuallyExclusive(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {
	    "/pets": {
	      "get": {
	        "parameters": [
	          {"name": "q", "in": "query", "schema": {"type": "string"}},
	          {"name": "raw", "in": "querystring", "schema": {"type": "string"}}
	        ],
	        "responses": {"200": {"description": "ok"}}
	      }
	    }
	  }
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertHasError(t, issues, "querystring and query locations may not coexist")
}

func TestValidateServerVariableDefaultMustBeInEnum(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {},
	  "servers": [
	    {"url": "https://{env}.example.com", "variables": {"env": {"enum": ["prod", "staging"], "default": "dev"}}}
	  ]
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertHasError(t, issues, "is not one of enum")
}

func TestValidateServerURLUndefinedVariable(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {},
	  "servers": [{"url": "https://{env}.example.com"}]
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertHasError(t, issues, "references undefined variable")
}

func TestValidateLicenseIdentifierAndURLMutuallyExclusive(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {
	    "title": "t", "version": "1.0.0",
	    "license": {"name": "MIT", "identifier": "MIT", "url": "https://example.com/mit"}
	  },
	  "paths": {}
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertHasError(t, issues, "must not define both identifier and url")
}

func TestValidateResultWrapsErrorsAndWarnings(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "", "version": "1.0.0"},
	  "paths": {}
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	v, err := New()
	require.NoError(t, err)
	res := v.ValidateResult(def)
	assert.False(t, res.Valid)
	assert.Greater(t, res.ErrorCount, 0)
}

func TestValidateExcludeWarnings(t *testing.T) {
	doc := `{
	  "openapi": "3.1.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "paths": {}
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	v, err := New(WithIncludeWarnings(false))
	require.NoError(t, err)
	res := v.ValidateResult(def)
	assert.Equal(t, 0, res.WarningCount)
	assert.Nil(t, res.Warnings)
}

func TestReferenceWithSiblingsEffectiveParameter(t *testing.T) {
	doc := `{
	  "openapi": "3.2.0",
	  "info": {"title": "t", "version": "1.0.0"},
	  "components": {
	    "parameters": {
	      "Shared": {"name": "q", "in": "query", "schema": {"type": "string"}}
	    }
	  },
	  "paths": {
	    "/items": {
	      "get": {
	        "parameters": [
	          {"$ref": "#/components/parameters/Shared", "allowEmptyValue": true, "in": "path"}
	        ],
	        "responses": {"200": {"description": "ok"}}
	      }
	    }
	  }
	}`
	def, err := parser.ParseString(doc)
	require.NoError(t, err)
	issues, err := Validate(def)
	require.NoError(t, err)
	assertHasError(t, issues, "allowEmptyValue is only valid on query parameters")
}

func assertHasError(t *testing.T, issues []Issue, substr string) {
	t.Helper()
	for _, is := range issues {
		if is.IsError() && (substr == "" || strings.Contains(is.Path, substr) || strings.Contains(is.Message, substr)) {
			return
		}
	}
	t.Fatalf("expected an error matching %q, got: %v", substr, issues)
}

func assertNoError(t *testing.T, issues []Issue, substr string) {
	t.Helper()
	for _, is := range issues {
		if strings.Contains(is.Path, substr) || strings.Contains(is.Message, substr) {
			t.Fatalf("unexpected issue matching %q: %s", substr, is)
		}
	}
}
