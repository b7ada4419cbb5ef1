package parser

import (
	"fmt"
	"os"

	"github.com/kestrelapi/oas32/internal/httoken"
	"github.com/kestrelapi/oas32/internal/naming"
	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/oaserrors"
	"github.com/kestrelapi/oas32/oaslog"
	"github.com/kestrelapi/oas32/registry"
	"github.com/kestrelapi/oas32/tree"
)

// parseCtx carries the options and accumulated state for a single parse
// call. It is never shared across calls.
type parseCtx struct {
	logger   oaslog.Logger
	registry *registry.Registry
	selfURI  string
}

// Parse builds an ir.Definition from the configured input source.
func Parse(opts ...Option) (*ir.Definition, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	data, err := inputBytes(cfg)
	if err != nil {
		return nil, err
	}
	return parseDefinitionBytes(cfg, data)
}

// ParseString parses an in-memory OpenAPI document string.
func ParseString(s string, opts ...Option) (*ir.Definition, error) {
	return Parse(append(opts, WithString(s))...)
}

// ParseFile reads and parses an OpenAPI document from disk.
func ParseFile(path string, opts ...Option) (*ir.Definition, error) {
	return Parse(append(opts, WithFilePath(path))...)
}

func inputBytes(cfg *parseConfig) ([]byte, error) {
	switch {
	case cfg.filePath != nil:
		data, err := os.ReadFile(*cfg.filePath)
		if err != nil {
			return nil, &oaserrors.ParseError{Path: *cfg.filePath, Message: "failed to read file", Cause: err}
		}
		return data, nil
	case cfg.bytes != nil:
		return cfg.bytes, nil
	case cfg.str != nil:
		return []byte(*cfg.str), nil
	default:
		return nil, fmt.Errorf("parser: no input source specified")
	}
}

func parseDefinitionBytes(cfg *parseConfig, data []byte) (*ir.Definition, error) {
	root, _, err := tree.Decode(data, cfg.format)
	if err != nil {
		return nil, &oaserrors.ParseError{Message: "failed to decode input", Cause: err}
	}
	if root.Kind != tree.KindMap {
		return nil, &oaserrors.ParseError{Message: "document root must be an object"}
	}

	ctx := &parseCtx{logger: cfg.logger, registry: cfg.registry, selfURI: cfg.selfURI}
	def, err := ctx.parseDefinition(root.Map)
	if err != nil {
		return nil, err
	}
	if ctx.registry != nil {
		key := def.Self
		if key == "" {
			key = ctx.selfURI
		}
		if key != "" {
			if err := ctx.registry.RegisterOpenAPI(key, def); err != nil {
				return nil, &oaserrors.ParseError{Message: "failed to register document", Cause: err}
			}
		}
	}
	return def, nil
}

var definitionKnownKeys = map[string]bool{
	"openapi": true, "$self": true, "info": true, "jsonSchemaDialect": true, "servers": true,
	"paths": true, "webhooks": true, "components": true, "security": true, "tags": true, "externalDocs": true,
}

func (ctx *parseCtx) parseDefinition(m *tree.OrderedMap) (*ir.Definition, error) {
	openapi, ok := getString(m, "openapi")
	if !ok || openapi == "" {
		return nil, &oaserrors.ParseError{Message: `"openapi" field is required and must be a string`}
	}

	d := &ir.Definition{
		OpenAPI:           openapi,
		Self:              getStringDefault(m, "$self", ""),
		JSONSchemaDialect: getStringDefault(m, "jsonSchemaDialect", ""),
	}

	infoMap, ok := getMap(m, "info")
	if !ok {
		return nil, &oaserrors.ParseError{Message: `"info" field is required and must be an object`}
	}
	d.Info = parseInfo(infoMap)

	if seq, ok := getSeq(m, "servers"); ok {
		for _, item := range seq {
			if item.Kind != tree.KindMap {
				continue
			}
			d.Servers = append(d.Servers, parseServer(item.Map))
		}
	}

	if v, ok := m.Get("paths"); ok {
		pm := v.Map
		if pm == nil {
			return nil, &oaserrors.ParseError{Message: `"paths" must be an object`}
		}
		d.Paths = make(map[string]*ir.PathItem, pm.Len())
		d.PathsExplicitEmpty = pm.Len() == 0
		for _, key := range pm.Keys() {
			pv, _ := pm.Get(key)
			if httoken.IsExtensionKey(key) {
				if d.PathsExtensions == nil {
					d.PathsExtensions = make(map[string]any)
				}
				d.PathsExtensions[key] = pv
				continue
			}
			pi, err := ctx.parsePathItem(pv)
			if err != nil {
				return nil, fmt.Errorf("paths[%s]: %w", key, err)
			}
			d.Paths[key] = pi
			d.PathsOrder = append(d.PathsOrder, key)
		}
	}

	if v, ok := m.Get("webhooks"); ok {
		wm := v.Map
		if wm == nil {
			return nil, &oaserrors.ParseError{Message: `"webhooks" must be an object`}
		}
		d.Webhooks = make(map[string]*ir.PathItem, wm.Len())
		d.WebhooksExplicitEmpty = wm.Len() == 0
		for _, key := range wm.Keys() {
			wv, _ := wm.Get(key)
			if httoken.IsExtensionKey(key) {
				if d.WebhooksExtensions == nil {
					d.WebhooksExtensions = make(map[string]any)
				}
				d.WebhooksExtensions[key] = wv
				continue
			}
			pi, err := ctx.parsePathItem(wv)
			if err != nil {
				return nil, fmt.Errorf("webhooks[%s]: %w", key, err)
			}
			d.Webhooks[key] = pi
			d.WebhooksOrder = append(d.WebhooksOrder, key)
		}
	}

	if cm, ok := getMap(m, "components"); ok {
		comp, err := ctx.parseComponents(cm)
		if err != nil {
			return nil, fmt.Errorf("components: %w", err)
		}
		d.Components = comp
	}

	if v, ok := m.Get("security"); ok {
		d.Security = parseSecurityRequirements(v.Seq)
		d.SecurityExplicitEmpty = len(v.Seq) == 0
	}

	if seq, ok := getSeq(m, "tags"); ok {
		for _, item := range seq {
			if item.Kind != tree.KindMap {
				continue
			}
			d.Tags = append(d.Tags, parseTag(item.Map))
		}
	}

	if em, ok := getMap(m, "externalDocs"); ok {
		d.ExternalDocs = parseExternalDocs(em)
	}

	d.Extensions = splitExtensions(m, definitionKnownKeys)

	ctx.synthesizeOperationIDs(d)

	return d, nil
}

// synthesizeOperationIDs fills Operation.OperationID for every operation
// under paths that did not declare one explicitly, using the
// method+path-derived naming scheme, and leaves OperationIDExplicit false
// so the writer omits the field. Operations under webhooks,
// components.pathItems and callbacks are not given a synthesized id.
func (ctx *parseCtx) synthesizeOperationIDs(d *ir.Definition) {
	for _, path := range d.PathsOrder {
		pi := d.Paths[path]
		for _, entry := range pi.Operations() {
			if entry.Op.OperationID == "" {
				entry.Op.OperationID = naming.SynthesizeOperationID(entry.Verb, path)
			}
		}
	}
}

var infoKnownKeys = map[string]bool{
	"title": true, "summary": true, "description": true, "termsOfService": true,
	"contact": true, "license": true, "version": true,
}

func parseInfo(m *tree.OrderedMap) *ir.Info {
	info := &ir.Info{
		Title:          getStringDefault(m, "title", ""),
		Summary:        getStringDefault(m, "summary", ""),
		Description:    getStringDefault(m, "description", ""),
		TermsOfService: getStringDefault(m, "termsOfService", ""),
		Version:        getStringDefault(m, "version", ""),
	}
	if cm, ok := getMap(m, "contact"); ok {
		info.Contact = &ir.Contact{
			Name:  getStringDefault(cm, "name", ""),
			URL:   getStringDefault(cm, "url", ""),
			Email: getStringDefault(cm, "email", ""),
		}
		info.Contact.Extensions = splitExtensions(cm, map[string]bool{"name": true, "url": true, "email": true})
	}
	if lm, ok := getMap(m, "license"); ok {
		info.License = &ir.License{
			Name:       getStringDefault(lm, "name", ""),
			Identifier: getStringDefault(lm, "identifier", ""),
			URL:        getStringDefault(lm, "url", ""),
		}
		info.License.Extensions = splitExtensions(lm, map[string]bool{"name": true, "identifier": true, "url": true})
	}
	info.Extensions = splitExtensions(m, infoKnownKeys)
	return info
}

var serverKnownKeys = map[string]bool{"url": true, "name": true, "description": true, "variables": true}

func parseServer(m *tree.OrderedMap) *ir.Server {
	s := &ir.Server{
		URL:         getStringDefault(m, "url", ""),
		Name:        getStringDefault(m, "name", ""),
		Description: getStringDefault(m, "description", ""),
	}
	if vm, ok := getMap(m, "variables"); ok {
		s.Variables = make(map[string]*ir.ServerVariable, vm.Len())
		for _, key := range vm.Keys() {
			v, _ := vm.Get(key)
			if v.Kind != tree.KindMap {
				continue
			}
			s.Variables[key] = parseServerVariable(v.Map)
			s.VariablesOrder = append(s.VariablesOrder, key)
		}
	}
	s.Extensions = splitExtensions(m, serverKnownKeys)
	return s
}

var serverVariableKnownKeys = map[string]bool{"enum": true, "default": true, "description": true}

func parseServerVariable(m *tree.OrderedMap) *ir.ServerVariable {
	sv := &ir.ServerVariable{
		Enum:        getStringSeq(m, "enum"),
		Default:     getStringDefault(m, "default", ""),
		Description: getStringDefault(m, "description", ""),
	}
	sv.Extensions = splitExtensions(m, serverVariableKnownKeys)
	return sv
}

var tagKnownKeys = map[string]bool{"name": true, "description": true, "summary": true, "externalDocs": true}

func parseTag(m *tree.OrderedMap) *ir.Tag {
	t := &ir.Tag{
		Name:        getStringDefault(m, "name", ""),
		Description: getStringDefault(m, "description", ""),
		Summary:     getStringDefault(m, "summary", ""),
	}
	if em, ok := getMap(m, "externalDocs"); ok {
		t.ExternalDocs = parseExternalDocs(em)
	}
	t.Extensions = splitExtensions(m, tagKnownKeys)
	return t
}
