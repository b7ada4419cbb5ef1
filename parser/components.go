package parser

import (
	"fmt"

	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/tree"
)

var componentsKnownKeys = map[string]bool{
	"schemas": true, "responses": true, "parameters": true, "examples": true,
	"requestBodies": true, "headers": true, "securitySchemes": true, "links": true,
	"callbacks": true, "pathItems": true, "mediaTypes": true,
}

func (ctx *parseCtx) parseComponents(m *tree.OrderedMap) (*ir.Components, error) {
	c := &ir.Components{}

	if sm, ok := getMap(m, "schemas"); ok {
		c.Schemas = make(map[string]*ir.Schema, sm.Len())
		for _, key := range sm.Keys() {
			v, _ := sm.Get(key)
			s, err := ctx.parseSchema(v)
			if err != nil {
				return nil, fmt.Errorf("schemas[%s]: %w", key, err)
			}
			c.Schemas[key] = s
		}
	}
	if rm, ok := getMap(m, "responses"); ok {
		c.Responses = make(map[string]*ir.Response, rm.Len())
		for _, key := range rm.Keys() {
			v, _ := rm.Get(key)
			r, err := ctx.parseResponse(v.Map)
			if err != nil {
				return nil, fmt.Errorf("responses[%s]: %w", key, err)
			}
			c.Responses[key] = r
		}
	}
	if pm, ok := getMap(m, "parameters"); ok {
		c.Parameters = make(map[string]*ir.Parameter, pm.Len())
		for _, key := range pm.Keys() {
			v, _ := pm.Get(key)
			p, err := ctx.parseParameter(v.Map)
			if err != nil {
				return nil, fmt.Errorf("parameters[%s]: %w", key, err)
			}
			c.Parameters[key] = p
		}
	}
	if em, ok := getMap(m, "examples"); ok {
		c.Examples = make(map[string]*ir.Example, em.Len())
		for _, key := range em.Keys() {
			v, _ := em.Get(key)
			c.Examples[key] = parseExample(v.Map)
		}
	}
	if rbm, ok := getMap(m, "requestBodies"); ok {
		c.RequestBodies = make(map[string]*ir.RequestBody, rbm.Len())
		for _, key := range rbm.Keys() {
			v, _ := rbm.Get(key)
			rb, err := ctx.parseRequestBody(v.Map)
			if err != nil {
				return nil, fmt.Errorf("requestBodies[%s]: %w", key, err)
			}
			c.RequestBodies[key] = rb
		}
	}
	if hm, ok := getMap(m, "headers"); ok {
		c.Headers = make(map[string]*ir.Header, hm.Len())
		for _, key := range hm.Keys() {
			v, _ := hm.Get(key)
			h, err := ctx.parseHeader(v.Map)
			if err != nil {
				return nil, fmt.Errorf("headers[%s]: %w", key, err)
			}
			c.Headers[key] = h
		}
	}
	if ssm, ok := getMap(m, "securitySchemes"); ok {
		c.SecuritySchemes = make(map[string]*ir.SecurityScheme, ssm.Len())
		for _, key := range ssm.Keys() {
			v, _ := ssm.Get(key)
			c.SecuritySchemes[key] = parseSecurityScheme(v.Map)
		}
	}
	if lm, ok := getMap(m, "links"); ok {
		c.Links = make(map[string]*ir.Link, lm.Len())
		for _, key := range lm.Keys() {
			v, _ := lm.Get(key)
			c.Links[key] = parseLink(v.Map)
		}
	}
	if cbm, ok := getMap(m, "callbacks"); ok {
		c.Callbacks = make(map[string]*ir.Callback, cbm.Len())
		for _, key := range cbm.Keys() {
			v, _ := cbm.Get(key)
			cb, err := ctx.parseCallback(v)
			if err != nil {
				return nil, fmt.Errorf("callbacks[%s]: %w", key, err)
			}
			c.Callbacks[key] = cb
		}
	}
	if pim, ok := getMap(m, "pathItems"); ok {
		c.PathItems = make(map[string]*ir.PathItem, pim.Len())
		for _, key := range pim.Keys() {
			v, _ := pim.Get(key)
			pi, err := ctx.parsePathItem(v)
			if err != nil {
				return nil, fmt.Errorf("pathItems[%s]: %w", key, err)
			}
			c.PathItems[key] = pi
		}
	}
	if mtm, ok := getMap(m, "mediaTypes"); ok {
		c.MediaTypes = make(map[string]*ir.MediaType, mtm.Len())
		for _, key := range mtm.Keys() {
			v, _ := mtm.Get(key)
			mt, err := ctx.parseMediaType(v.Map)
			if err != nil {
				return nil, fmt.Errorf("mediaTypes[%s]: %w", key, err)
			}
			c.MediaTypes[key] = mt
		}
	}
	c.Extensions = splitExtensions(m, componentsKnownKeys)
	return c, nil
}

// --- Parameter / Header ---

var parameterKnownKeys = map[string]bool{
	"$ref": true, "summary": true, "description": true,
	"name": true, "in": true, "required": true, "deprecated": true, "allowEmptyValue": true,
	"style": true, "explode": true, "allowReserved": true, "schema": true, "content": true,
	"example": true, "examples": true,
}

func (ctx *parseCtx) parseParameterOrRef(v tree.Value) (*ir.ParameterOrRef, error) {
	if v.Kind != tree.KindMap {
		return nil, fmt.Errorf("parameter: expected object, got %s", v.Kind)
	}
	p, err := ctx.parseParameter(v.Map)
	if err != nil {
		return nil, err
	}
	// Reference-with-siblings (3.2): a $ref alongside other recognized
	// keywords keeps both, the siblings overriding the resolved target's
	// fields at this holder site (see Parameter.Effective).
	if ref, ok := extractReference(v.Map); ok {
		p.Reference = ref
		return &ir.ParameterOrRef{Reference: ref, Inline: p}, nil
	}
	return &ir.ParameterOrRef{Inline: p}, nil
}

func (ctx *parseCtx) parseParameter(m *tree.OrderedMap) (*ir.Parameter, error) {
	p := &ir.Parameter{
		Name:            getStringDefault(m, "name", ""),
		Description:     getStringDefault(m, "description", ""),
		Required:        getBoolDefault(m, "required", false),
		Deprecated:      getBoolDefault(m, "deprecated", false),
		AllowEmptyValue: getBoolDefault(m, "allowEmptyValue", false),
		AllowReserved:   getBoolDefault(m, "allowReserved", false),
	}
	p.In = parseParameterLocation(getStringDefault(m, "in", "query"))

	if style, ok := getString(m, "style"); ok {
		p.Style = style
		p.StyleExplicit = true
	}
	if explode, ok := getBool(m, "explode"); ok {
		p.Explode = explode
		p.ExplodeExplicit = true
	}

	if v, ok := m.Get("schema"); ok {
		s, err := ctx.parseSchema(v)
		if err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}
		p.Schema = s
	}
	if cm, ok := getMap(m, "content"); ok {
		p.ContentPresent = true
		p.Content = make(map[string]*ir.MediaType, cm.Len())
		for _, key := range cm.Keys() {
			v, _ := cm.Get(key)
			mt, err := ctx.parseMediaType(v.Map)
			if err != nil {
				return nil, fmt.Errorf("content[%s]: %w", key, err)
			}
			p.Content[key] = mt
			p.ContentOrder = append(p.ContentOrder, key)
		}
	}
	parseExampleFields(m, &p.ExamplePresent, &p.Example, &p.Examples, &p.ExamplesOrder)

	p.Extensions = splitExtensions(m, parameterKnownKeys)
	return p, nil
}

func parseParameterLocation(in string) ir.ParameterLocation {
	switch in {
	case "header":
		return ir.ParameterInHeader
	case "path":
		return ir.ParameterInPath
	case "cookie":
		return ir.ParameterInCookie
	case "querystring":
		return ir.ParameterInQuerystring
	default:
		return ir.ParameterInQuery
	}
}

var headerKnownKeys = map[string]bool{
	"$ref": true, "summary": true, "description": true,
	"required": true, "deprecated": true, "allowEmptyValue": true,
	"style": true, "explode": true, "schema": true, "content": true,
	"example": true, "examples": true,
}

func (ctx *parseCtx) parseHeaderOrRef(v tree.Value) (*ir.HeaderOrRef, error) {
	if v.Kind != tree.KindMap {
		return nil, fmt.Errorf("header: expected object, got %s", v.Kind)
	}
	h, err := ctx.parseHeader(v.Map)
	if err != nil {
		return nil, err
	}
	if ref, ok := extractReference(v.Map); ok {
		h.Reference = ref
		return &ir.HeaderOrRef{Reference: ref, Inline: h}, nil
	}
	return &ir.HeaderOrRef{Inline: h}, nil
}

func (ctx *parseCtx) parseHeader(m *tree.OrderedMap) (*ir.Header, error) {
	h := &ir.Header{
		Description:     getStringDefault(m, "description", ""),
		Required:        getBoolDefault(m, "required", false),
		Deprecated:      getBoolDefault(m, "deprecated", false),
		AllowEmptyValue: getBoolDefault(m, "allowEmptyValue", false),
	}
	if style, ok := getString(m, "style"); ok {
		h.Style = style
		h.StyleExplicit = true
	}
	if explode, ok := getBool(m, "explode"); ok {
		h.Explode = explode
		h.ExplodeExplicit = true
	}
	if v, ok := m.Get("schema"); ok {
		s, err := ctx.parseSchema(v)
		if err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}
		h.Schema = s
	}
	if cm, ok := getMap(m, "content"); ok {
		h.ContentPresent = true
		h.Content = make(map[string]*ir.MediaType, cm.Len())
		for _, key := range cm.Keys() {
			v, _ := cm.Get(key)
			mt, err := ctx.parseMediaType(v.Map)
			if err != nil {
				return nil, fmt.Errorf("content[%s]: %w", key, err)
			}
			h.Content[key] = mt
			h.ContentOrder = append(h.ContentOrder, key)
		}
	}
	parseExampleFields(m, &h.ExamplePresent, &h.Example, &h.Examples, &h.ExamplesOrder)
	h.Type = inferContentType(h.Content, h.ContentOrder)
	h.Extensions = splitExtensions(m, headerKnownKeys)
	return h, nil
}

// parseExampleFields fills the shared single-example/multi-examples pair
// found on Parameter, Header, and MediaType.
func parseExampleFields(m *tree.OrderedMap, present *bool, example *any, examples *map[string]*ir.ExampleOrRef, order *[]string) {
	if v, ok := m.Get("example"); ok {
		*present = true
		*example = v
	}
	if em, ok := getMap(m, "examples"); ok {
		*examples = make(map[string]*ir.ExampleOrRef, em.Len())
		for _, key := range em.Keys() {
			v, _ := em.Get(key)
			if v.Kind != tree.KindMap {
				continue
			}
			if ref, ok := extractReference(v.Map); ok {
				(*examples)[key] = &ir.ExampleOrRef{Reference: ref}
			} else {
				(*examples)[key] = &ir.ExampleOrRef{Inline: parseExample(v.Map)}
			}
			*order = append(*order, key)
		}
	}
}

// --- RequestBody ---

var requestBodyKnownKeys = map[string]bool{"$ref": true, "summary": true, "description": true, "required": true, "content": true}

func (ctx *parseCtx) parseRequestBodyOrRef(v tree.Value) (*ir.RequestBodyOrRef, error) {
	if v.Kind != tree.KindMap {
		return nil, fmt.Errorf("requestBody: expected object, got %s", v.Kind)
	}
	if ref, ok := extractReference(v.Map); ok {
		return &ir.RequestBodyOrRef{Reference: ref}, nil
	}
	rb, err := ctx.parseRequestBody(v.Map)
	if err != nil {
		return nil, err
	}
	return &ir.RequestBodyOrRef{Inline: rb}, nil
}

func (ctx *parseCtx) parseRequestBody(m *tree.OrderedMap) (*ir.RequestBody, error) {
	rb := &ir.RequestBody{
		Description: getStringDefault(m, "description", ""),
		Required:    getBoolDefault(m, "required", false),
	}
	if cm, ok := getMap(m, "content"); ok {
		rb.Content = make(map[string]*ir.MediaType, cm.Len())
		for _, key := range cm.Keys() {
			v, _ := cm.Get(key)
			mt, err := ctx.parseMediaType(v.Map)
			if err != nil {
				return nil, fmt.Errorf("content[%s]: %w", key, err)
			}
			rb.Content[key] = mt
			rb.ContentOrder = append(rb.ContentOrder, key)
		}
	}
	rb.Type = inferContentType(rb.Content, rb.ContentOrder)
	rb.Extensions = splitExtensions(m, requestBodyKnownKeys)
	return rb, nil
}

// --- Response ---

var responseKnownKeys = map[string]bool{
	"$ref": true, "summary": true, "description": true, "headers": true, "content": true, "links": true,
}

func (ctx *parseCtx) parseResponseOrRef(v tree.Value) (*ir.ResponseOrRef, error) {
	if v.Kind != tree.KindMap {
		return nil, fmt.Errorf("response: expected object, got %s", v.Kind)
	}
	r, err := ctx.parseResponse(v.Map)
	if err != nil {
		return nil, err
	}
	if ref, ok := extractReference(v.Map); ok {
		r.Reference = ref
		return &ir.ResponseOrRef{Reference: ref, Inline: r}, nil
	}
	return &ir.ResponseOrRef{Inline: r}, nil
}

func (ctx *parseCtx) parseResponse(m *tree.OrderedMap) (*ir.Response, error) {
	r := &ir.Response{Description: getStringDefault(m, "description", "")}

	if hm, ok := getMap(m, "headers"); ok {
		r.Headers = make(map[string]*ir.HeaderOrRef, hm.Len())
		for _, key := range hm.Keys() {
			v, _ := hm.Get(key)
			h, err := ctx.parseHeaderOrRef(v)
			if err != nil {
				return nil, fmt.Errorf("headers[%s]: %w", key, err)
			}
			r.Headers[key] = h
			r.HeadersOrder = append(r.HeadersOrder, key)
		}
	}
	if cm, ok := getMap(m, "content"); ok {
		r.ContentPresent = true
		r.Content = make(map[string]*ir.MediaType, cm.Len())
		for _, key := range cm.Keys() {
			v, _ := cm.Get(key)
			mt, err := ctx.parseMediaType(v.Map)
			if err != nil {
				return nil, fmt.Errorf("content[%s]: %w", key, err)
			}
			r.Content[key] = mt
			r.ContentOrder = append(r.ContentOrder, key)
		}
	}
	if lm, ok := getMap(m, "links"); ok {
		r.Links = make(map[string]*ir.LinkOrRef, lm.Len())
		for _, key := range lm.Keys() {
			v, _ := lm.Get(key)
			if v.Kind != tree.KindMap {
				continue
			}
			if ref, ok := extractReference(v.Map); ok {
				r.Links[key] = &ir.LinkOrRef{Reference: ref}
			} else {
				r.Links[key] = &ir.LinkOrRef{Inline: parseLink(v.Map)}
			}
			r.LinksOrder = append(r.LinksOrder, key)
		}
	}
	r.Type = inferContentType(r.Content, r.ContentOrder)
	r.Extensions = splitExtensions(m, responseKnownKeys)
	return r, nil
}

// --- MediaType / Encoding ---

var mediaTypeKnownKeys = map[string]bool{
	"$ref": true, "schema": true, "example": true, "examples": true, "encoding": true,
	"itemSchema": true, "itemEncoding": true,
}

func (ctx *parseCtx) parseMediaType(m *tree.OrderedMap) (*ir.MediaType, error) {
	mt := &ir.MediaType{}
	if ref, ok := extractReference(m); ok {
		mt.Reference = ref
	}
	if v, ok := m.Get("schema"); ok {
		s, err := ctx.parseSchema(v)
		if err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}
		mt.Schema = s
	}
	parseExampleFields(m, &mt.ExamplePresent, &mt.Example, &mt.Examples, &mt.ExamplesOrder)
	if em, ok := getMap(m, "encoding"); ok {
		mt.Encoding = make(map[string]*ir.EncodingObject, em.Len())
		for _, key := range em.Keys() {
			v, _ := em.Get(key)
			enc, err := ctx.parseEncoding(v.Map)
			if err != nil {
				return nil, fmt.Errorf("encoding[%s]: %w", key, err)
			}
			mt.Encoding[key] = enc
			mt.EncodingOrder = append(mt.EncodingOrder, key)
		}
	}
	if v, ok := m.Get("itemSchema"); ok {
		s, err := ctx.parseSchema(v)
		if err != nil {
			return nil, fmt.Errorf("itemSchema: %w", err)
		}
		mt.ItemSchema = s
	}
	if ie, ok := getMap(m, "itemEncoding"); ok {
		enc, err := ctx.parseEncoding(ie)
		if err != nil {
			return nil, fmt.Errorf("itemEncoding: %w", err)
		}
		mt.ItemEncoding = enc
	}
	mt.Extensions = splitExtensions(m, mediaTypeKnownKeys)
	return mt, nil
}

var encodingKnownKeys = map[string]bool{
	"contentType": true, "headers": true, "style": true, "explode": true, "allowReserved": true, "prefixEncoding": true,
}

func (ctx *parseCtx) parseEncoding(m *tree.OrderedMap) (*ir.EncodingObject, error) {
	e := &ir.EncodingObject{
		AllowReserved: getBoolDefault(m, "allowReserved", false),
	}
	if ct, ok := getString(m, "contentType"); ok {
		e.ContentType = ct
		e.ContentTypeExplicit = true
	}
	if style, ok := getString(m, "style"); ok {
		e.Style = style
		e.StyleExplicit = true
	}
	if explode, ok := getBool(m, "explode"); ok {
		e.Explode = explode
		e.ExplodeExplicit = true
	}
	if hm, ok := getMap(m, "headers"); ok {
		e.Headers = make(map[string]*ir.HeaderOrRef, hm.Len())
		for _, key := range hm.Keys() {
			v, _ := hm.Get(key)
			h, err := ctx.parseHeaderOrRef(v)
			if err != nil {
				return nil, fmt.Errorf("headers[%s]: %w", key, err)
			}
			e.Headers[key] = h
			e.HeadersOrder = append(e.HeadersOrder, key)
		}
	}
	if seq, ok := getSeq(m, "prefixEncoding"); ok {
		for i, item := range seq {
			if item.Kind != tree.KindMap {
				continue
			}
			pe, err := ctx.parseEncoding(item.Map)
			if err != nil {
				return nil, fmt.Errorf("prefixEncoding[%d]: %w", i, err)
			}
			e.PrefixEncoding = append(e.PrefixEncoding, pe)
		}
	}
	e.Extensions = splitExtensions(m, encodingKnownKeys)
	return e, nil
}

// --- Example ---

var exampleKnownKeys = map[string]bool{
	"$ref": true, "summary": true, "description": true, "value": true,
	"dataValue": true, "serializedValue": true, "externalValue": true,
}

func parseExample(m *tree.OrderedMap) *ir.Example {
	e := &ir.Example{
		Summary:         getStringDefault(m, "summary", ""),
		Description:     getStringDefault(m, "description", ""),
		ExternalValue:   getStringDefault(m, "externalValue", ""),
		SerializedValue: getStringDefault(m, "serializedValue", ""),
	}
	if ref, ok := extractReference(m); ok {
		e.Reference = ref
	}
	if v, ok := m.Get("value"); ok {
		e.ValuePresent = true
		e.Value = v
	}
	if v, ok := m.Get("dataValue"); ok {
		e.DataValuePresent = true
		e.DataValue = v
	}
	e.Extensions = splitExtensions(m, exampleKnownKeys)
	return e
}

// --- Link ---

var linkKnownKeys = map[string]bool{
	"$ref": true, "operationRef": true, "operationId": true, "parameters": true,
	"requestBody": true, "description": true, "server": true,
}

func parseLink(m *tree.OrderedMap) *ir.Link {
	l := &ir.Link{
		OperationRef: getStringDefault(m, "operationRef", ""),
		OperationID:  getStringDefault(m, "operationId", ""),
		Description:  getStringDefault(m, "description", ""),
	}
	if ref, ok := extractReference(m); ok {
		l.Reference = ref
	}
	if pm, ok := getMap(m, "parameters"); ok {
		l.Parameters = make(map[string]any, pm.Len())
		for _, key := range pm.Keys() {
			v, _ := pm.Get(key)
			l.Parameters[key] = v
			l.ParametersOrder = append(l.ParametersOrder, key)
		}
	}
	if v, ok := m.Get("requestBody"); ok {
		l.RequestBody = v
	}
	if sm, ok := getMap(m, "server"); ok {
		l.Server = parseServer(sm)
	}
	l.Extensions = splitExtensions(m, linkKnownKeys)
	return l
}

// --- Callback ---

func (ctx *parseCtx) parseCallback(v tree.Value) (*ir.Callback, error) {
	if v.Kind != tree.KindMap {
		return nil, fmt.Errorf("callback: expected object, got %s", v.Kind)
	}
	m := v.Map
	if ref, ok := extractReference(m); ok {
		return &ir.Callback{Reference: ref}, nil
	}
	cb := &ir.Callback{Inline: make(map[string]*ir.PathItem, m.Len())}
	for _, key := range m.Keys() {
		pv, _ := m.Get(key)
		pi, err := ctx.parsePathItem(pv)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		cb.Inline[key] = pi
		cb.InlineOrder = append(cb.InlineOrder, key)
	}
	return cb, nil
}
