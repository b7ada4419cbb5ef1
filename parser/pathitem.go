package parser

import (
	"fmt"

	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/tree"
)

var pathItemKnownKeys = map[string]bool{
	"$ref": true, "summary": true, "description": true,
	"get": true, "put": true, "post": true, "delete": true, "options": true,
	"head": true, "patch": true, "trace": true, "query": true,
	"additionalOperations": true, "servers": true, "parameters": true,
}

// parsePathItem parses a path-item value, which may itself be a bare $ref
// to a components.pathItems entry (OAS 3.1+).
func (ctx *parseCtx) parsePathItem(v tree.Value) (*ir.PathItem, error) {
	if v.Kind != tree.KindMap {
		return nil, fmt.Errorf("path item: expected object, got %s", v.Kind)
	}
	m := v.Map
	pi := &ir.PathItem{}

	if ref, ok := extractReference(m); ok {
		pi.Reference = ref
	}
	pi.Summary = getStringDefault(m, "summary", "")
	pi.Description = getStringDefault(m, "description", "")

	parseOp := func(key string) (*ir.Operation, error) {
		ov, ok := m.Get(key)
		if !ok {
			return nil, nil
		}
		if ov.Kind != tree.KindMap {
			return nil, fmt.Errorf("%s: expected object, got %s", key, ov.Kind)
		}
		return ctx.parseOperation(ov.Map)
	}

	var err error
	if pi.Get, err = parseOp("get"); err != nil {
		return nil, err
	}
	if pi.Put, err = parseOp("put"); err != nil {
		return nil, err
	}
	if pi.Post, err = parseOp("post"); err != nil {
		return nil, err
	}
	if pi.Delete, err = parseOp("delete"); err != nil {
		return nil, err
	}
	if pi.Options, err = parseOp("options"); err != nil {
		return nil, err
	}
	if pi.Head, err = parseOp("head"); err != nil {
		return nil, err
	}
	if pi.Patch, err = parseOp("patch"); err != nil {
		return nil, err
	}
	if pi.Trace, err = parseOp("trace"); err != nil {
		return nil, err
	}
	if pi.Query, err = parseOp("query"); err != nil {
		return nil, err
	}

	if am, ok := getMap(m, "additionalOperations"); ok {
		pi.AdditionalOperations = make(map[string]*ir.Operation, am.Len())
		for _, verb := range am.Keys() {
			ov, _ := am.Get(verb)
			if ov.Kind != tree.KindMap {
				continue
			}
			op, err := ctx.parseOperation(ov.Map)
			if err != nil {
				return nil, fmt.Errorf("additionalOperations[%s]: %w", verb, err)
			}
			pi.AdditionalOperations[verb] = op
			pi.AdditionalOperationsOrder = append(pi.AdditionalOperationsOrder, verb)
		}
	}

	if seq, ok := getSeq(m, "servers"); ok {
		for _, item := range seq {
			if item.Kind == tree.KindMap {
				pi.Servers = append(pi.Servers, parseServer(item.Map))
			}
		}
	}
	if seq, ok := getSeq(m, "parameters"); ok {
		for i, item := range seq {
			pr, err := ctx.parseParameterOrRef(item)
			if err != nil {
				return nil, fmt.Errorf("parameters[%d]: %w", i, err)
			}
			pi.Parameters = append(pi.Parameters, pr)
		}
	}

	pi.Extensions = splitExtensions(m, pathItemKnownKeys)
	return pi, nil
}

var operationKnownKeys = map[string]bool{
	"tags": true, "summary": true, "description": true, "externalDocs": true, "operationId": true,
	"parameters": true, "requestBody": true, "responses": true, "callbacks": true,
	"deprecated": true, "security": true, "servers": true,
}

func (ctx *parseCtx) parseOperation(m *tree.OrderedMap) (*ir.Operation, error) {
	op := &ir.Operation{
		Tags:        getStringSeq(m, "tags"),
		Summary:     getStringDefault(m, "summary", ""),
		Description: getStringDefault(m, "description", ""),
		Deprecated:  getBoolDefault(m, "deprecated", false),
	}
	if em, ok := getMap(m, "externalDocs"); ok {
		op.ExternalDocs = parseExternalDocs(em)
	}
	if oid, ok := getString(m, "operationId"); ok {
		op.OperationID = oid
		op.OperationIDExplicit = true
	}

	if seq, ok := getSeq(m, "parameters"); ok {
		for i, item := range seq {
			pr, err := ctx.parseParameterOrRef(item)
			if err != nil {
				return nil, fmt.Errorf("parameters[%d]: %w", i, err)
			}
			op.Parameters = append(op.Parameters, pr)
		}
	}

	if v, ok := m.Get("requestBody"); ok {
		rb, err := ctx.parseRequestBodyOrRef(v)
		if err != nil {
			return nil, fmt.Errorf("requestBody: %w", err)
		}
		op.RequestBody = rb
	}

	if v, ok := m.Get("responses"); ok {
		rm := v.Map
		if rm == nil {
			return nil, fmt.Errorf(`"responses" must be an object`)
		}
		op.Responses = make(map[string]*ir.ResponseOrRef, rm.Len())
		for _, key := range rm.Keys() {
			rv, _ := rm.Get(key)
			if key == "$ref" {
				continue
			}
			r, err := ctx.parseResponseOrRef(rv)
			if err != nil {
				return nil, fmt.Errorf("responses[%s]: %w", key, err)
			}
			op.Responses[key] = r
			op.ResponsesOrder = append(op.ResponsesOrder, key)
		}
	}

	if cm, ok := getMap(m, "callbacks"); ok {
		op.Callbacks = make(map[string]*ir.Callback, cm.Len())
		for _, key := range cm.Keys() {
			cv, _ := cm.Get(key)
			cb, err := ctx.parseCallback(cv)
			if err != nil {
				return nil, fmt.Errorf("callbacks[%s]: %w", key, err)
			}
			op.Callbacks[key] = cb
			op.CallbacksOrder = append(op.CallbacksOrder, key)
		}
	}

	if v, ok := m.Get("security"); ok {
		op.Security = parseSecurityRequirements(v.Seq)
	}

	if seq, ok := getSeq(m, "servers"); ok {
		for _, item := range seq {
			if item.Kind == tree.KindMap {
				op.Servers = append(op.Servers, parseServer(item.Map))
			}
		}
	}

	op.Extensions = splitExtensions(m, operationKnownKeys)
	return op, nil
}
