package validator

import (
	"net/url"
	"strings"

	"github.com/kestrelapi/oas32/internal/runtimeexpr"
	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/tree"
)

func (c *validateCtx) validateExample(e *ir.Example, path string) {
	if e == nil {
		return
	}
	if ref := e.GetReference(); ref != nil {
		if len(e.Extensions) > 0 {
			c.addError(path, "a pure-reference example must not define extensions")
		}
		c.checkRef(path, ref.Ref)
		return
	}
	if e.ValuePresent && e.DataValuePresent {
		c.addError(path, "dataValue and legacy value are mutually exclusive on an example")
	}
	if e.ExternalValue != "" && !isValidURL(e.ExternalValue) {
		c.addError(path+".externalValue", "externalValue %q is not a valid URI", e.ExternalValue)
	}
}

func (c *validateCtx) validateLinkOrRef(l *ir.LinkOrRef, path string) {
	if l == nil {
		return
	}
	if l.Reference != nil {
		c.checkRef(path, l.Reference.Ref)
		return
	}
	c.validateLink(l.Inline, path)
}

func (c *validateCtx) validateLink(l *ir.Link, path string) {
	if l == nil {
		return
	}
	if ref := l.GetReference(); ref != nil {
		c.checkRef(path, ref.Ref)
		return
	}
	hasID, hasRef := l.OperationID != "", l.OperationRef != ""
	switch {
	case hasID && hasRef:
		c.addError(path, "link must not define both operationId and operationRef")
	case !hasID && !hasRef:
		c.addError(path, "link must define exactly one of operationId or operationRef")
	case hasID:
		if !c.knownOperationIDs()[l.OperationID] {
			c.addError(path+".operationId", "operationId %q does not match any known operation", l.OperationID)
		}
	case hasRef:
		c.validateOperationRef(l.OperationRef, path+".operationRef")
	}

	for _, name := range l.ParametersOrder {
		tv, ok := l.Parameters[name].(tree.Value)
		if !ok {
			continue
		}
		v, ok := tv.AsString()
		if !ok || !strings.HasPrefix(v, "$") {
			continue
		}
		if _, ok := runtimeexpr.Parse(v); !ok {
			c.addError(path+".parameters."+name, "runtime expression %q is not well-formed", v)
		}
	}
}

func (c *validateCtx) validateOperationRef(ref, path string) {
	if c.def.Self != "" && strings.HasPrefix(ref, c.def.Self) {
		ref = strings.TrimPrefix(ref, c.def.Self)
	} else if strings.Contains(ref, "://") {
		c.addError(path, "operationRef %q is an absolute URI that does not match self", ref)
		return
	}
	fragment := ref
	if idx := strings.IndexByte(ref, '#'); idx >= 0 {
		fragment = ref[idx+1:]
	}
	fragment, _ = url.PathUnescape(fragment)
	const prefix = "/paths/"
	if !strings.HasPrefix(fragment, prefix) {
		c.addError(path, "operationRef %q does not resolve to an operation in paths", ref)
		return
	}
	rest := fragment[len(prefix):]
	idx := strings.IndexByte(rest, '/')
	if idx < 0 {
		c.addError(path, "operationRef %q is missing a method segment", ref)
		return
	}
	pathKey := unescapePointerToken(rest[:idx])
	method := rest[idx+1:]
	pi, ok := c.def.Paths[pathKey]
	if !ok {
		c.addError(path, "operationRef %q does not resolve to a known path", ref)
		return
	}
	found := false
	for _, entry := range pi.Operations() {
		if entry.Verb == method {
			found = true
			break
		}
	}
	if !found {
		c.addError(path, "operationRef %q does not resolve to an operation in paths", ref)
	}
}

func (c *validateCtx) validateCallback(cb *ir.Callback, path string) {
	if cb == nil {
		return
	}
	if cb.IsReference() {
		c.checkRef(path, cb.Reference.Ref)
		return
	}
	for _, expr := range cb.InlineOrder {
		c.validateCallbackKey(expr, path+"."+expr)
		c.validatePathItem(expr, cb.Inline[expr], path+"."+expr, false)
	}
}

// validateCallbackKey checks a callback expression key: either a plain
// URL, or a string embedding one or more "{runtime expression}" braces.
func (c *validateCtx) validateCallbackKey(expr, path string) {
	rest := expr
	foundExpr := false
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			break
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			c.addError(path, "callback key %q has an unterminated '{'", expr)
			return
		}
		inner := rest[start+1 : start+end]
		foundExpr = true
		if _, ok := runtimeexpr.Parse(inner); !ok {
			c.addError(path, "callback key embeds an invalid runtime expression %q", inner)
		}
		rest = rest[start+end+1:]
	}
	if !foundExpr && !isValidURL(expr) && !uriTemplateParses(expr) {
		c.addWarning(path, "callback key %q is neither a plain URL nor an embedded runtime expression", expr)
	}
}

// knownOperationIDs lazily builds the set of every operationId reachable
// from paths, webhooks, components.pathItems, and callback path items.
func (c *validateCtx) knownOperationIDs() map[string]bool {
	if c.opIDCacheBuilt {
		return c.opIDCache
	}
	c.opIDCacheBuilt = true
	ids := map[string]bool{}
	var walkPathItem func(pi *ir.PathItem)
	walkPathItem = func(pi *ir.PathItem) {
		if pi == nil {
			return
		}
		for _, entry := range pi.Operations() {
			if entry.Op.OperationID != "" {
				ids[entry.Op.OperationID] = true
			}
			for _, cbKey := range entry.Op.CallbacksOrder {
				cb := entry.Op.Callbacks[cbKey]
				if cb == nil || cb.IsReference() {
					continue
				}
				for _, expr := range cb.InlineOrder {
					walkPathItem(cb.Inline[expr])
				}
			}
		}
	}
	for _, key := range c.def.PathsOrder {
		walkPathItem(c.def.Paths[key])
	}
	for _, key := range c.def.WebhooksOrder {
		walkPathItem(c.def.Webhooks[key])
	}
	if c.def.Components != nil {
		for _, pi := range c.def.Components.PathItems {
			walkPathItem(pi)
		}
	}
	c.opIDCache = ids
	return ids
}
