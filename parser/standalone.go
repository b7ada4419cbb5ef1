package parser

import (
	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/oaserrors"
	"github.com/kestrelapi/oas32/oaslog"
	"github.com/kestrelapi/oas32/tree"
)

// ParseSchemaString parses a standalone JSON Schema (2020-12 / OpenAPI
// base dialect) document, as opposed to a full OpenAPI document.
func ParseSchemaString(s string, opts ...Option) (*ir.Schema, error) {
	cfg, err := applyOptions(append(opts, WithString(s))...)
	if err != nil {
		return nil, err
	}
	data, err := inputBytes(cfg)
	if err != nil {
		return nil, err
	}
	return parseSchemaBytes(cfg, data)
}

func parseSchemaBytes(cfg *parseConfig, data []byte) (*ir.Schema, error) {
	root, _, err := tree.Decode(data, cfg.format)
	if err != nil {
		return nil, &oaserrors.ParseError{Message: "failed to decode input", Cause: err}
	}
	if root.Kind == tree.KindMap {
		if _, ok := getString(root.Map, "openapi"); ok {
			return nil, &oaserrors.ParseError{Message: "document root is an OpenAPI document, not a standalone schema"}
		}
	}
	logger := cfg.logger
	if logger == nil {
		logger = oaslog.NopLogger{}
	}
	ctx := &parseCtx{logger: logger, registry: cfg.registry, selfURI: cfg.selfURI}
	s, err := ctx.parseSchema(root)
	if err != nil {
		return nil, &oaserrors.ParseError{Message: "failed to parse schema document", Cause: err}
	}
	if ctx.registry != nil {
		key := s.ID
		if key == "" {
			key = ctx.selfURI
		}
		if key != "" {
			if err := ctx.registry.RegisterSchema(key, s); err != nil {
				return nil, &oaserrors.ParseError{Message: "failed to register schema", Cause: err}
			}
		}
	}
	return s, nil
}

// ParseDocumentString is an alias for ParseString kept for symmetry with
// ParseSchemaString at call sites that dispatch on document kind.
func ParseDocumentString(s string, opts ...Option) (*ir.Definition, error) {
	return ParseString(s, opts...)
}
