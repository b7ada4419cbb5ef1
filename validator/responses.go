package validator

import (
	"strings"

	"github.com/kestrelapi/oas32/internal/httoken"
	"github.com/kestrelapi/oas32/ir"
)

func (c *validateCtx) validateResponses(op *ir.Operation, path string) {
	if len(op.ResponsesOrder) == 0 {
		return
	}
	hasSuccess := false
	for _, code := range op.ResponsesOrder {
		resp := op.Responses[code]
		codePath := path + "." + code
		if !httoken.StatusCodeRange(code) {
			c.addError(codePath, "invalid response status key %q", code)
		}
		if isSuccessRange(code) {
			hasSuccess = true
		}
		c.validateResponseOrRef(resp, codePath)
	}
	if !hasSuccess {
		c.addWarning(path, "operation defines responses but none is in the 2XX success range")
	}
}

func isSuccessRange(code string) bool {
	if code == "2XX" {
		return true
	}
	if len(code) == 3 && code[0] == '2' {
		return true
	}
	return false
}

func (c *validateCtx) validateResponseOrRef(r *ir.ResponseOrRef, path string) {
	if r == nil {
		return
	}
	if r.Reference != nil {
		c.checkRef(path, r.Reference.Ref)
		if target, ok := c.resolveResponseRef(r.Reference.Ref); ok {
			if effective, err := r.Inline.Effective(target); err == nil && effective != nil {
				effective.Reference = nil
				c.validateResponse(effective, path)
			}
		}
		return
	}
	c.validateResponse(r.Inline, path)
}

func (c *validateCtx) validateResponse(r *ir.Response, path string) {
	if r == nil {
		return
	}
	if ref := r.GetReference(); ref != nil {
		c.checkRef(path, ref.Ref)
		return
	}
	if r.Description == "" {
		c.addError(path+".description", "response description is required")
	}
	for _, name := range r.HeadersOrder {
		if strings.EqualFold(name, "Content-Type") {
			c.addError(path+".headers", "response headers must not include Content-Type")
			continue
		}
		if !httoken.IsValidToken(name) {
			c.addError(path+".headers."+name, "response header name %q is not a valid HTTP token", name)
		}
		c.validateHeaderOrRef(r.Headers[name], path+".headers."+name)
	}
	for _, mtKey := range r.ContentOrder {
		c.validateMediaType(r.Content[mtKey], path+".content."+mtKey)
	}
	for _, linkKey := range r.LinksOrder {
		if !linkKeyPattern.MatchString(linkKey) {
			c.addError(path+".links", "link key %q is not a valid identifier", linkKey)
		}
		c.validateLinkOrRef(r.Links[linkKey], path+".links."+linkKey)
	}
}

func (c *validateCtx) validateHeaderOrRef(h *ir.HeaderOrRef, path string) {
	if h == nil {
		return
	}
	if h.Reference != nil {
		c.checkRef(path, h.Reference.Ref)
		if target, ok := c.resolveHeaderRef(h.Reference.Ref); ok {
			if effective, err := h.Inline.Effective(target); err == nil && effective != nil {
				effective.Reference = nil
				c.validateHeader(effective, path)
			}
		}
		return
	}
	c.validateHeader(h.Inline, path)
}

func (c *validateCtx) validateRequestBodyOrRef(rb *ir.RequestBodyOrRef, path string) {
	if rb == nil {
		return
	}
	if rb.Reference != nil {
		c.checkRef(path, rb.Reference.Ref)
		return
	}
	c.validateRequestBody(rb.Inline, path)
}

func (c *validateCtx) validateRequestBody(rb *ir.RequestBody, path string) {
	if rb == nil {
		return
	}
	if ref := rb.GetReference(); ref != nil {
		c.checkRef(path, ref.Ref)
		return
	}
	for _, mtKey := range rb.ContentOrder {
		if !isValidMediaType(mtKey) {
			c.addError(path+".content", "media type key %q is not valid", mtKey)
		}
		c.validateMediaType(rb.Content[mtKey], path+".content."+mtKey)
	}
}
