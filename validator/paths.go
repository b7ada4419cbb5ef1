package validator

import (
	"strings"

	"github.com/kestrelapi/oas32/internal/httoken"
	"github.com/kestrelapi/oas32/ir"
)

func (c *validateCtx) validatePaths() {
	if c.def.Paths == nil {
		return
	}
	seenOperationIDs := map[string][]string{}
	structuralShapes := map[string][]string{}

	for _, key := range c.def.PathsOrder {
		pi := c.def.Paths[key]
		path := "paths." + key
		if !strings.HasPrefix(key, "/") {
			c.addError(path, "path key %q must start with '/'", key)
		}
		if strings.ContainsAny(key, "?#") {
			c.addError(path, "path key %q must not contain '?' or '#'", key)
		}
		if !validatePathTemplate(key) {
			c.addError(path, "path key %q is not a well-formed path template", key)
		}

		shape := templateShape(key)
		structuralShapes[shape] = append(structuralShapes[shape], key)

		c.validatePathItem(key, pi, path, true)
		c.collectOperationIDs(pi, seenOperationIDs)
	}

	for _, shape := range sortedKeys(structuralShapes) {
		if keys := structuralShapes[shape]; len(keys) > 1 {
			c.addError("paths", "templated paths collide (same structure %q): %v", shape, keys)
		}
	}
	for _, id := range sortedKeys(seenOperationIDs) {
		if locations := seenOperationIDs[id]; len(locations) > 1 {
			c.addError("paths", "duplicate operationId %q used at %v", id, locations)
		}
	}
}

func (c *validateCtx) validateWebhooks() {
	if c.def.Webhooks == nil {
		return
	}
	for _, key := range c.def.WebhooksOrder {
		pi := c.def.Webhooks[key]
		c.validatePathItem(key, pi, "webhooks."+key, false)
	}
}

// templateShape normalizes a path template for collision detection: every
// {name} placeholder becomes a bare "{}" so "/a/{id}" and "/a/{key}"
// produce the same shape.
func templateShape(path string) string {
	var b strings.Builder
	inBrace := false
	for _, r := range path {
		switch {
		case r == '{':
			inBrace = true
			b.WriteString("{}")
		case r == '}':
			inBrace = false
		case inBrace:
			// swallow placeholder name
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (c *validateCtx) collectOperationIDs(pi *ir.PathItem, seen map[string][]string) {
	if pi == nil {
		return
	}
	for _, entry := range pi.Operations() {
		if entry.Op.OperationID == "" {
			continue
		}
		seen[entry.Op.OperationID] = append(seen[entry.Op.OperationID], entry.Verb)
	}
}

func (c *validateCtx) validatePathItem(key string, pi *ir.PathItem, path string, isPathEntry bool) {
	if pi == nil {
		return
	}
	if ref := pi.GetReference(); ref != nil {
		if ref.HasSummary || ref.HasDescription || pi.Summary != "" || pi.Description != "" ||
			pi.Get != nil || pi.Put != nil || pi.Post != nil || pi.Delete != nil ||
			pi.Options != nil || pi.Head != nil || pi.Patch != nil || pi.Trace != nil ||
			pi.Query != nil || len(pi.AdditionalOperations) > 0 || len(pi.Servers) > 0 || len(pi.Parameters) > 0 {
			c.addWarning(path, "path item $ref %q is used alongside sibling fields", ref.Ref)
		}
		c.checkRef(path, ref.Ref)
	}

	c.validateServers(pi.Servers, path+".servers")

	// templateNames stays nil for webhooks, components.pathItems, and
	// callback path items: none of those are matched against a literal
	// "paths" template key, so the path-parameter/template consistency
	// check in validateOperation is skipped for them.
	var templateNames map[string]bool
	if isPathEntry {
		templateNames = map[string]bool{}
		names := pathTemplateNames(key)
		unique := map[string]int{}
		for _, n := range names {
			unique[n]++
			templateNames[n] = true
		}
		for _, n := range sortedKeys(unique) {
			if unique[n] > 1 {
				c.addError(path, "path parameter %q must not appear more than once", n)
			}
		}
	}

	itemParams := c.validateParameterList(pi.Parameters, path+".parameters", nil)

	for _, verb := range pi.AdditionalOperationsOrder {
		op := pi.AdditionalOperations[verb]
		if !httoken.IsValidToken(verb) {
			c.addError(path+".additionalOperations", "additionalOperations method %q is not a valid HTTP token", verb)
		}
		c.validateOperation(op, path+".additionalOperations."+verb, templateNames, itemParams)
	}
	for _, entry := range pi.Operations() {
		if entry.Method == ir.MethodCustom {
			continue // already handled via AdditionalOperations above
		}
		c.validateOperation(entry.Op, path+"."+entry.Verb, templateNames, itemParams)
	}
}

// paramKey identifies a parameter by (name, location) for duplicate and
// combined path-item+operation consistency checks.
type paramKey struct {
	name string
	in   ir.ParameterLocation
}

func (c *validateCtx) validateOperation(op *ir.Operation, path string, templateNames map[string]bool, inherited []paramKey) {
	if op == nil {
		return
	}
	ownParams := c.validateParameterList(op.Parameters, path+".parameters", nil)

	combined := append(append([]paramKey{}, inherited...), ownParams...)
	seen := map[paramKey]bool{}
	hasQuerystring, hasQuery := false, false
	pathParamNames := map[string]bool{}
	for _, pk := range combined {
		if seen[pk] {
			c.addError(path+".parameters", "duplicate parameter (name=%q, in=%s)", pk.name, pk.in)
		}
		seen[pk] = true
		switch pk.in {
		case ir.ParameterInPath:
			pathParamNames[pk.name] = true
		case ir.ParameterInQuerystring:
			hasQuerystring = true
		case ir.ParameterInQuery:
			hasQuery = true
		}
	}
	if hasQuerystring && hasQuery {
		c.addError(path+".parameters", "querystring and query locations may not coexist on the same operation")
	}
	if templateNames != nil {
		for _, name := range sortedKeys(templateNames) {
			if !pathParamNames[name] {
				c.addError(path, "missing path parameter %q", name)
			}
		}
		for _, name := range sortedKeys(pathParamNames) {
			if !templateNames[name] {
				c.addError(path, "path parameter %q does not correspond to a template name", name)
			}
		}
	}

	if op.RequestBody != nil {
		c.validateRequestBodyOrRef(op.RequestBody, path+".requestBody")
	}
	c.validateResponses(op, path+".responses")
	for _, cbKey := range op.CallbacksOrder {
		c.validateCallback(op.Callbacks[cbKey], path+".callbacks."+cbKey)
	}
	if op.Security != nil {
		c.validateSecurityRequirements(op.Security, path+".security")
	}
	c.validateServers(op.Servers, path+".servers")
}
