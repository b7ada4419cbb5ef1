package writer

import (
	"strings"

	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/tree"
)

func (c *writeCtx) buildPathItem(pi *ir.PathItem) tree.Value {
	if pi == nil {
		return tree.Null()
	}
	m := newMap()
	if ref := pi.GetReference(); ref != nil {
		c.setReference(m, ref)
	}
	setStr(m, "summary", pi.Summary)
	setStr(m, "description", pi.Description)
	for _, entry := range pi.Operations() {
		if entry.Method == ir.MethodCustom {
			continue
		}
		m.Set(entry.Verb, c.buildOperation(entry.Op))
	}
	if len(pi.AdditionalOperationsOrder) > 0 {
		am := newMap()
		for _, verb := range pi.AdditionalOperationsOrder {
			am.Set(verb, c.buildOperation(pi.AdditionalOperations[verb]))
		}
		m.Set("additionalOperations", tree.Map(am))
	}
	buildServerSeq(m, "servers", pi.Servers)
	if len(pi.Parameters) > 0 {
		m.Set("parameters", c.buildParameterOrRefSeq(pi.Parameters))
	}
	mergeExtensions(m, pi.Extensions)
	return tree.Map(m)
}

func (c *writeCtx) buildOperation(op *ir.Operation) tree.Value {
	if op == nil {
		return tree.Null()
	}
	m := newMap()
	setStringSeq(m, "tags", op.Tags)
	setStr(m, "summary", op.Summary)
	setStr(m, "description", op.Description)
	if op.ExternalDocs != nil {
		m.Set("externalDocs", buildExternalDocs(op.ExternalDocs))
	}
	if op.OperationIDExplicit {
		setStr(m, "operationId", op.OperationID)
	}
	if len(op.Parameters) > 0 {
		m.Set("parameters", c.buildParameterOrRefSeq(op.Parameters))
	}
	if op.RequestBody != nil {
		m.Set("requestBody", c.buildRequestBodyOrRef(op.RequestBody))
	}
	if len(op.ResponsesOrder) > 0 {
		rm := newMap()
		for _, code := range op.ResponsesOrder {
			rm.Set(code, c.buildResponseOrRef(op.Responses[code]))
		}
		m.Set("responses", tree.Map(rm))
	}
	if len(op.CallbacksOrder) > 0 {
		cbm := newMap()
		for _, key := range op.CallbacksOrder {
			cbm.Set(key, c.buildCallback(op.Callbacks[key]))
		}
		m.Set("callbacks", tree.Map(cbm))
	}
	setBoolIfTrue(m, "deprecated", op.Deprecated)
	if op.Security != nil {
		m.Set("security", buildSecurityRequirementSeq(op.Security))
	}
	buildServerSeq(m, "servers", op.Servers)
	mergeExtensions(m, op.Extensions)
	return tree.Map(m)
}

func (c *writeCtx) buildParameterOrRefSeq(params []*ir.ParameterOrRef) tree.Value {
	items := make([]tree.Value, 0, len(params))
	for _, p := range params {
		if p == nil {
			continue
		}
		if p.Inline == nil && p.Reference != nil {
			pm := newMap()
			c.setReference(pm, p.Reference)
			items = append(items, tree.Map(pm))
			continue
		}
		items = append(items, c.buildParameter(p.Inline))
	}
	return tree.Seq(items)
}

func (c *writeCtx) buildParameter(p *ir.Parameter) tree.Value {
	if p == nil {
		return tree.Null()
	}
	m := newMap()
	if ref := p.GetReference(); ref != nil {
		c.setReference(m, ref)
	}
	setStr(m, "name", p.Name)
	m.Set("in", tree.String(p.In.String()))
	setStr(m, "description", p.Description)
	setBoolIfTrue(m, "required", p.Required)
	setBoolIfTrue(m, "deprecated", p.Deprecated)
	setBoolIfTrue(m, "allowEmptyValue", p.AllowEmptyValue)
	if p.StyleExplicit {
		setStr(m, "style", p.Style)
	}
	if p.ExplodeExplicit {
		m.Set("explode", tree.Bool(p.Explode))
	}
	setBoolIfTrue(m, "allowReserved", p.AllowReserved)
	if p.Schema != nil {
		m.Set("schema", c.buildSchema(p.Schema))
	}
	if p.ContentPresent {
		m.Set("content", c.buildContentMap(p.Content, p.ContentOrder))
	}
	c.setExampleHolder(m, p.ExamplePresent, p.Example, p.Examples, p.ExamplesOrder)
	mergeExtensions(m, p.Extensions)
	return tree.Map(m)
}

func (c *writeCtx) buildHeader(h *ir.Header) tree.Value {
	if h == nil {
		return tree.Null()
	}
	m := newMap()
	if ref := h.GetReference(); ref != nil {
		c.setReference(m, ref)
	}
	setStr(m, "description", h.Description)
	setBoolIfTrue(m, "required", h.Required)
	setBoolIfTrue(m, "deprecated", h.Deprecated)
	setBoolIfTrue(m, "allowEmptyValue", h.AllowEmptyValue)
	if h.StyleExplicit {
		setStr(m, "style", h.Style)
	}
	if h.ExplodeExplicit {
		m.Set("explode", tree.Bool(h.Explode))
	}
	if h.Schema != nil {
		m.Set("schema", c.buildSchema(h.Schema))
	}
	if h.ContentPresent {
		m.Set("content", c.buildContentMap(h.Content, h.ContentOrder))
	}
	c.setExampleHolder(m, h.ExamplePresent, h.Example, h.Examples, h.ExamplesOrder)
	mergeExtensions(m, h.Extensions)
	return tree.Map(m)
}

func (c *writeCtx) buildHeaderOrRef(h *ir.HeaderOrRef) tree.Value {
	if h == nil {
		return tree.Null()
	}
	if h.Inline == nil && h.Reference != nil {
		m := newMap()
		c.setReference(m, h.Reference)
		return tree.Map(m)
	}
	return c.buildHeader(h.Inline)
}

func (c *writeCtx) buildRequestBodyOrRef(rb *ir.RequestBodyOrRef) tree.Value {
	if rb == nil {
		return tree.Null()
	}
	if rb.Reference != nil {
		m := newMap()
		c.setReference(m, rb.Reference)
		return tree.Map(m)
	}
	return c.buildRequestBody(rb.Inline)
}

func (c *writeCtx) buildRequestBody(rb *ir.RequestBody) tree.Value {
	if rb == nil {
		return tree.Null()
	}
	m := newMap()
	if ref := rb.GetReference(); ref != nil {
		c.setReference(m, ref)
	}
	setStr(m, "description", rb.Description)
	if len(rb.ContentOrder) > 0 {
		m.Set("content", c.buildContentMap(rb.Content, rb.ContentOrder))
	}
	setBoolIfTrue(m, "required", rb.Required)
	mergeExtensions(m, rb.Extensions)
	return tree.Map(m)
}

func (c *writeCtx) buildResponseOrRef(r *ir.ResponseOrRef) tree.Value {
	if r == nil {
		return tree.Null()
	}
	if r.Inline == nil && r.Reference != nil {
		m := newMap()
		c.setReference(m, r.Reference)
		return tree.Map(m)
	}
	return c.buildResponse(r.Inline)
}

func (c *writeCtx) buildResponse(r *ir.Response) tree.Value {
	if r == nil {
		return tree.Null()
	}
	m := newMap()
	if ref := r.GetReference(); ref != nil {
		c.setReference(m, ref)
	}
	setStr(m, "description", r.Description)
	if len(r.HeadersOrder) > 0 {
		hm := newMap()
		for _, name := range r.HeadersOrder {
			if strings.EqualFold(name, "Content-Type") {
				continue
			}
			hm.Set(name, c.buildHeaderOrRef(r.Headers[name]))
		}
		if hm.Len() > 0 {
			m.Set("headers", tree.Map(hm))
		}
	}
	if r.ContentPresent {
		m.Set("content", c.buildContentMap(r.Content, r.ContentOrder))
	}
	if len(r.LinksOrder) > 0 {
		lm := newMap()
		for _, key := range r.LinksOrder {
			lm.Set(key, c.buildLinkOrRef(r.Links[key]))
		}
		m.Set("links", tree.Map(lm))
	}
	mergeExtensions(m, r.Extensions)
	return tree.Map(m)
}

func (c *writeCtx) buildContentMap(content map[string]*ir.MediaType, order []string) tree.Value {
	m := newMap()
	for _, key := range order {
		m.Set(key, c.buildMediaType(content[key]))
	}
	return tree.Map(m)
}

func (c *writeCtx) buildMediaType(mt *ir.MediaType) tree.Value {
	if mt == nil {
		return tree.Null()
	}
	m := newMap()
	if ref := mt.GetReference(); ref != nil {
		c.setReference(m, ref)
	}
	if mt.Schema != nil {
		m.Set("schema", c.buildSchema(mt.Schema))
	}
	c.setExampleHolder(m, mt.ExamplePresent, mt.Example, mt.Examples, mt.ExamplesOrder)
	if len(mt.EncodingOrder) > 0 {
		em := newMap()
		for _, key := range mt.EncodingOrder {
			em.Set(key, c.buildEncoding(mt.Encoding[key]))
		}
		m.Set("encoding", tree.Map(em))
	}
	if mt.ItemSchema != nil {
		m.Set("itemSchema", c.buildSchema(mt.ItemSchema))
	}
	if mt.ItemEncoding != nil {
		m.Set("itemEncoding", c.buildEncoding(mt.ItemEncoding))
	}
	mergeExtensions(m, mt.Extensions)
	return tree.Map(m)
}

func (c *writeCtx) buildEncoding(e *ir.EncodingObject) tree.Value {
	if e == nil {
		return tree.Null()
	}
	m := newMap()
	if e.ContentTypeExplicit {
		setStr(m, "contentType", e.ContentType)
	}
	if len(e.HeadersOrder) > 0 {
		hm := newMap()
		for _, name := range e.HeadersOrder {
			hm.Set(name, c.buildHeaderOrRef(e.Headers[name]))
		}
		m.Set("headers", tree.Map(hm))
	}
	if e.StyleExplicit {
		setStr(m, "style", e.Style)
	}
	if e.ExplodeExplicit {
		m.Set("explode", tree.Bool(e.Explode))
	}
	setBoolIfTrue(m, "allowReserved", e.AllowReserved)
	if len(e.PrefixEncoding) > 0 {
		items := make([]tree.Value, len(e.PrefixEncoding))
		for i, pe := range e.PrefixEncoding {
			items[i] = c.buildEncoding(pe)
		}
		m.Set("prefixEncoding", tree.Seq(items))
	}
	mergeExtensions(m, e.Extensions)
	return tree.Map(m)
}

// setExampleHolder emits the shared example/examples pair found on
// Parameter, Header, and MediaType.
func (c *writeCtx) setExampleHolder(m *tree.OrderedMap, present bool, example any, examples map[string]*ir.ExampleOrRef, order []string) {
	if present {
		m.Set("example", rawValue(example))
	}
	if len(order) > 0 {
		em := newMap()
		for _, key := range order {
			em.Set(key, c.buildExampleOrRef(examples[key]))
		}
		m.Set("examples", tree.Map(em))
	}
}

func (c *writeCtx) buildExampleOrRef(e *ir.ExampleOrRef) tree.Value {
	if e == nil {
		return tree.Null()
	}
	if e.Reference != nil {
		m := newMap()
		c.setReference(m, e.Reference)
		return tree.Map(m)
	}
	return c.buildExample(e.Inline)
}

func (c *writeCtx) buildExample(e *ir.Example) tree.Value {
	if e == nil {
		return tree.Null()
	}
	m := newMap()
	if ref := e.GetReference(); ref != nil {
		c.setReference(m, ref)
	}
	setStr(m, "summary", e.Summary)
	setStr(m, "description", e.Description)
	if e.ValuePresent {
		m.Set("value", rawValue(e.Value))
	}
	if e.DataValuePresent {
		m.Set("dataValue", rawValue(e.DataValue))
	}
	setStr(m, "serializedValue", e.SerializedValue)
	setStr(m, "externalValue", e.ExternalValue)
	mergeExtensions(m, e.Extensions)
	return tree.Map(m)
}

func (c *writeCtx) buildLinkOrRef(l *ir.LinkOrRef) tree.Value {
	if l == nil {
		return tree.Null()
	}
	if l.Reference != nil {
		m := newMap()
		c.setReference(m, l.Reference)
		return tree.Map(m)
	}
	return c.buildLink(l.Inline)
}

func (c *writeCtx) buildLink(l *ir.Link) tree.Value {
	if l == nil {
		return tree.Null()
	}
	m := newMap()
	if ref := l.GetReference(); ref != nil {
		c.setReference(m, ref)
	}
	setStr(m, "operationRef", l.OperationRef)
	setStr(m, "operationId", l.OperationID)
	if len(l.ParametersOrder) > 0 {
		pm := newMap()
		for _, name := range l.ParametersOrder {
			pm.Set(name, rawValue(l.Parameters[name]))
		}
		m.Set("parameters", tree.Map(pm))
	}
	if l.RequestBody != nil {
		m.Set("requestBody", rawValue(l.RequestBody))
	}
	setStr(m, "description", l.Description)
	if l.Server != nil {
		m.Set("server", buildServer(l.Server))
	}
	mergeExtensions(m, l.Extensions)
	return tree.Map(m)
}

func (c *writeCtx) buildCallback(cb *ir.Callback) tree.Value {
	if cb == nil {
		return tree.Null()
	}
	if cb.IsReference() {
		m := newMap()
		c.setReference(m, cb.Reference)
		return tree.Map(m)
	}
	m := newMap()
	for _, expr := range cb.InlineOrder {
		m.Set(expr, c.buildPathItem(cb.Inline[expr]))
	}
	mergeExtensions(m, cb.Extensions)
	return tree.Map(m)
}
