package validator

import (
	"strings"

	"github.com/kestrelapi/oas32/internal/httoken"
	"github.com/kestrelapi/oas32/ir"
)

var pathStyles = map[string]bool{"simple": true, "label": true, "matrix": true}
var queryStyles = map[string]bool{"form": true, "spaceDelimited": true, "pipeDelimited": true, "deepObject": true}
var cookieStyles = map[string]bool{"form": true, "cookie": true}
var headerStyles = map[string]bool{"simple": true}

var sensitiveHeaderNames = map[string]bool{"accept": true, "content-type": true, "authorization": true}

// validateParameterList validates every entry of a Parameter/Reference
// list (a PathItem's or Operation's "parameters"), returning the
// (name, location) key for each so callers can check cross-list
// consistency (duplicates spanning path-item + operation, path template
// coverage, querystring/query exclusivity).
func (c *validateCtx) validateParameterList(params []*ir.ParameterOrRef, path string, schemaHint *ir.Schema) []paramKey {
	keys := make([]paramKey, 0, len(params))
	seen := map[paramKey]bool{}
	for i, pref := range params {
		entryPath := indexPath(path, i)
		if pref == nil {
			continue
		}
		if pref.Reference != nil {
			c.checkRef(entryPath, pref.Reference.Ref)
			if target, ok := c.resolveParameterRef(pref.Reference.Ref); ok {
				if effective, err := pref.Inline.Effective(target); err == nil && effective != nil {
					effective.Reference = nil
					c.validateParameter(effective, entryPath, schemaHint)
					pk := paramKey{name: effective.Name, in: effective.In}
					if seen[pk] {
						c.addError(path, "duplicate parameter (name=%q, in=%s)", effective.Name, effective.In)
					}
					seen[pk] = true
					keys = append(keys, pk)
				}
			}
			continue
		}
		p := pref.Inline
		if p == nil {
			continue
		}
		c.validateParameter(p, entryPath, schemaHint)
		pk := paramKey{name: p.Name, in: p.In}
		if seen[pk] {
			c.addError(path, "duplicate parameter (name=%q, in=%s)", p.Name, p.In)
		}
		seen[pk] = true
		keys = append(keys, pk)
	}
	return keys
}

func (c *validateCtx) validateParameter(p *ir.Parameter, path string, schemaHint *ir.Schema) {
	if p == nil {
		return
	}
	if ref := p.GetReference(); ref != nil {
		c.checkRef(path, ref.Ref)
		return
	}

	hasSchema := p.Schema != nil
	hasContent := p.ContentPresent
	switch {
	case hasSchema && hasContent:
		c.addError(path, "parameter %q must not define both schema and content", p.Name)
	case !hasSchema && !hasContent:
		c.addError(path, "parameter %q must define exactly one of schema or content", p.Name)
	}
	if hasContent && len(p.Content) != 1 {
		c.addError(path+".content", "parameter %q content must contain exactly one entry", p.Name)
	}
	for _, mt := range p.ContentOrder {
		if !isValidMediaType(mt) {
			c.addError(path+".content", "media type key %q is not valid", mt)
		}
	}

	if hasContent && (p.StyleExplicit || p.ExplodeExplicit || p.AllowReserved) {
		c.addError(path, "parameter %q using content must not also define style/explode/allowReserved", p.Name)
	}

	if p.In == ir.ParameterInQuerystring && hasSchema {
		c.addError(path, "querystring parameter %q must use content, not schema", p.Name)
	}

	if p.AllowEmptyValue && p.In != ir.ParameterInQuery {
		c.addError(path, "allowEmptyValue is only valid on query parameters")
	}

	if !httoken.IsValidToken(p.Name) && p.In == ir.ParameterInHeader {
		c.addError(path+".name", "header parameter name %q is not a valid HTTP token", p.Name)
	}

	if p.StyleExplicit && hasSchema {
		c.validateStyleLocation(path, p.In, p.Style, p.Explode, p.ExplodeExplicit, p.Schema)
	}

	if p.In == ir.ParameterInHeader && sensitiveHeaderNames[strings.ToLower(p.Name)] {
		c.addWarning(path+".name", "header parameter %q shadows a standard HTTP header and should usually not be declared explicitly", p.Name)
	}

	c.validateExampleHolder(path, p.ExamplePresent, p.Example, p.Examples, p.ExamplesOrder)
	if p.Schema != nil {
		c.validateSchema(p.Schema, path+".schema")
	}
	for _, mtKey := range p.ContentOrder {
		c.validateMediaType(p.Content[mtKey], path+".content."+mtKey)
	}
}

func (c *validateCtx) validateStyleLocation(path string, in ir.ParameterLocation, style string, explode, explodeExplicit bool, schema *ir.Schema) {
	var allowed map[string]bool
	switch in {
	case ir.ParameterInPath:
		allowed = pathStyles
	case ir.ParameterInQuery:
		allowed = queryStyles
	case ir.ParameterInCookie:
		allowed = cookieStyles
	case ir.ParameterInHeader:
		allowed = headerStyles
	case ir.ParameterInQuerystring:
		c.addError(path+".style", "querystring location does not accept a style (content only)")
		return
	default:
		return
	}
	if style != "" && !allowed[style] {
		c.addError(path+".style", "style %q is not compatible with location %q", style, in)
	}
	if style == "deepObject" {
		isObject := schema != nil && containsString(schema.Types, "object")
		if in != ir.ParameterInQuery || !isObject {
			c.addError(path+".style", "deepObject style is only applicable to query parameters with an object schema")
		}
	}
	if style == "spaceDelimited" && explodeExplicit && explode {
		c.addError(path+".explode", "spaceDelimited style does not accept explode=true")
	}
}

func (c *validateCtx) validateHeader(h *ir.Header, path string) {
	if h == nil {
		return
	}
	if ref := h.GetReference(); ref != nil {
		c.checkRef(path, ref.Ref)
		return
	}
	hasSchema := h.Schema != nil
	hasContent := h.ContentPresent
	switch {
	case hasSchema && hasContent:
		c.addError(path, "header must not define both schema and content")
	case !hasSchema && !hasContent:
		c.addError(path, "header must define exactly one of schema or content")
	}
	if hasContent && len(h.Content) != 1 {
		c.addError(path+".content", "header content must contain exactly one entry")
	}
	if h.StyleExplicit && h.Style != "" && h.Style != "simple" {
		c.addError(path+".style", "header style must be simple, got %q", h.Style)
	}
	c.validateExampleHolder(path, h.ExamplePresent, h.Example, h.Examples, h.ExamplesOrder)
	if h.Schema != nil {
		c.validateSchema(h.Schema, path+".schema")
	}
	for _, mtKey := range h.ContentOrder {
		c.validateMediaType(h.Content[mtKey], path+".content."+mtKey)
	}
}

// validateExampleHolder implements the shared "example and examples are
// mutually exclusive" rule applied at every holder that carries both
// (Parameter, Header, MediaType).
func (c *validateCtx) validateExampleHolder(path string, examplePresent bool, example any, examples map[string]*ir.ExampleOrRef, order []string) {
	if examplePresent && len(examples) > 0 {
		c.addError(path, "example and examples are mutually exclusive")
	}
	for _, key := range order {
		c.validateExampleOrRef(examples[key], path+".examples."+key)
	}
}

func (c *validateCtx) validateExampleOrRef(e *ir.ExampleOrRef, path string) {
	if e == nil {
		return
	}
	if e.Reference != nil {
		c.checkRef(path, e.Reference.Ref)
		return
	}
	c.validateExample(e.Inline, path)
}
