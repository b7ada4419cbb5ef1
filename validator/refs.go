package validator

import (
	"strings"

	"github.com/kestrelapi/oas32/ir"
)

// refTarget describes where a $ref points, as far as local validation
// can determine without a live registry fetch.
type refTarget struct {
	// sameDoc is true when the ref's document part is empty or exactly
	// equals $self, the configured self URI or the base URI (no URI
	// normalization is applied).
	sameDoc bool
	// unknownDoc is true when the ref's document part names neither this
	// document nor anything in the registry: existence cannot be checked.
	unknownDoc bool
	// pool/name are populated when the fragment matches
	// "/components/<pool>/<name>".
	pool, name string
	// isDefs is true when the fragment matches "/$defs/<name>" instead.
	isDefs bool
	valid  bool
}

// parseRef splits a $ref into its document part and fragment, and
// classifies the fragment shape the §4.5 rule catalog cares about.
func (c *validateCtx) parseRef(ref string) refTarget {
	docPart, fragment, hasFrag := strings.Cut(ref, "#")
	t := refTarget{valid: true}

	t.sameDoc = docPart == "" || c.sameDocument(docPart)
	if !t.sameDoc {
		if c.v.Registry == nil {
			t.unknownDoc = true
		} else if _, ok := c.v.Registry.ResolveOpenAPI(docPart); !ok {
			if _, ok2 := c.v.Registry.ResolveOpenAPI(strings.TrimSuffix(docPart, "/")); !ok2 {
				t.unknownDoc = true
			}
		}
	}

	if !hasFrag || fragment == "" || fragment == "/" {
		return t
	}
	segments := strings.Split(strings.TrimPrefix(fragment, "/"), "/")
	switch {
	case len(segments) == 3 && segments[0] == "components":
		t.pool = segments[1]
		t.name = unescapePointerToken(segments[2])
	case len(segments) == 2 && segments[0] == "$defs":
		t.isDefs = true
		t.name = unescapePointerToken(segments[1])
	}
	return t
}

func unescapePointerToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~1", "/")
	tok = strings.ReplaceAll(tok, "~0", "~")
	return tok
}

func (c *validateCtx) sameDocument(docPart string) bool {
	if docPart == c.v.SelfURI || docPart == c.v.BaseURI {
		return true
	}
	if c.def.Self != "" && docPart == c.def.Self {
		return true
	}
	return false
}

// componentPoolExists reports whether name exists in the named pool of
// def.Components. Only same-document resolution is supported; a ref into
// another registered document is not inspected, since only this document's
// structural IR is available to the validator.
func componentPoolExists(comp *ir.Components, pool, name string) bool {
	if comp == nil {
		return false
	}
	switch pool {
	case "schemas":
		_, ok := comp.Schemas[name]
		return ok
	case "responses":
		_, ok := comp.Responses[name]
		return ok
	case "parameters":
		_, ok := comp.Parameters[name]
		return ok
	case "examples":
		_, ok := comp.Examples[name]
		return ok
	case "requestBodies":
		_, ok := comp.RequestBodies[name]
		return ok
	case "headers":
		_, ok := comp.Headers[name]
		return ok
	case "securitySchemes":
		_, ok := comp.SecuritySchemes[name]
		return ok
	case "links":
		_, ok := comp.Links[name]
		return ok
	case "callbacks":
		_, ok := comp.Callbacks[name]
		return ok
	case "pathItems":
		_, ok := comp.PathItems[name]
		return ok
	case "mediaTypes":
		_, ok := comp.MediaTypes[name]
		return ok
	default:
		return false
	}
}

// resolveParameterRef returns the components.parameters entry a same-document
// $ref points to, for computing a reference-with-siblings effective view.
// Cross-document refs are not resolved here; only this document's structural
// IR is available to the validator (see componentPoolExists).
func (c *validateCtx) resolveParameterRef(ref string) (*ir.Parameter, bool) {
	t := c.parseRef(ref)
	if !t.sameDoc || t.pool != "parameters" || c.def.Components == nil {
		return nil, false
	}
	p, ok := c.def.Components.Parameters[t.name]
	return p, ok
}

// resolveHeaderRef is resolveParameterRef for components.headers.
func (c *validateCtx) resolveHeaderRef(ref string) (*ir.Header, bool) {
	t := c.parseRef(ref)
	if !t.sameDoc || t.pool != "headers" || c.def.Components == nil {
		return nil, false
	}
	h, ok := c.def.Components.Headers[t.name]
	return h, ok
}

// resolveResponseRef is resolveParameterRef for components.responses.
func (c *validateCtx) resolveResponseRef(ref string) (*ir.Response, bool) {
	t := c.parseRef(ref)
	if !t.sameDoc || t.pool != "responses" || c.def.Components == nil {
		return nil, false
	}
	r, ok := c.def.Components.Responses[t.name]
	return r, ok
}

// checkRef validates a $ref string against the rule catalog's "does not
// resolve" check. A ref whose document part matches neither this
// document nor a registry entry is reported as an explicit error rather
// than silently accepted: this validator's chosen resolution of the open
// question around an unresolved cross-document ref (see DESIGN.md) is
// "surface a validator error", not a "ref:<url>" placeholder description.
func (c *validateCtx) checkRef(path, ref string) {
	t := c.parseRef(ref)
	if t.unknownDoc {
		c.addError(path, "$ref %q does not resolve: document is not this document and is not registered", ref)
		return
	}
	if !t.sameDoc || t.pool == "" {
		return
	}
	if !componentPoolExists(c.def.Components, t.pool, t.name) {
		c.addError(path, "$ref %q does not resolve to components.%s", ref, t.pool)
	}
}
