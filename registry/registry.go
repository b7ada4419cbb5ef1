// Package registry implements OpenApiDocumentRegistry: a single mapping
// from canonical document URI (no fragment) to parsed documents, used to
// resolve $ref targets that point outside the document currently being
// parsed or validated.
package registry

import (
	"fmt"
	"sync"

	"github.com/kestrelapi/oas32/ir"
)

// Registry is the document registry. The zero value is not usable; use
// New. All exported methods are safe for concurrent use even though the
// core parser/validator/writer packages are single-threaded pure
// functions, since a long-lived registry is commonly shared across
// independent Parse calls in caller code.
type Registry struct {
	mu         sync.RWMutex
	openAPI    map[string]*ir.Definition
	schemas    map[string]*ir.Schema
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		openAPI: make(map[string]*ir.Definition),
		schemas: make(map[string]*ir.Schema),
	}
}

// RegisterOpenAPI stores def under canonicalURI, overwriting any previous
// entry at that key. canonicalURI must have no fragment; the registry
// keys only on the fragment-less document identity (see GLOSSARY entry
// for "canonical URI").
func (r *Registry) RegisterOpenAPI(canonicalURI string, def *ir.Definition) error {
	if canonicalURI == "" {
		return fmt.Errorf("registry: canonical URI must not be empty")
	}
	if def == nil {
		return fmt.Errorf("registry: cannot register nil definition for %s", canonicalURI)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.openAPI[canonicalURI] = def
	return nil
}

// RegisterSchema stores schema under canonicalURI.
func (r *Registry) RegisterSchema(canonicalURI string, schema *ir.Schema) error {
	if canonicalURI == "" {
		return fmt.Errorf("registry: canonical URI must not be empty")
	}
	if schema == nil {
		return fmt.Errorf("registry: cannot register nil schema for %s", canonicalURI)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[canonicalURI] = schema
	return nil
}

// ResolveOpenAPI looks up a previously registered Definition by its
// canonical URI. The returned bool is false if nothing is registered at
// that key.
func (r *Registry) ResolveOpenAPI(canonicalURI string) (*ir.Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.openAPI[canonicalURI]
	return d, ok
}

// ResolveSchema looks up a previously registered Schema by its canonical
// URI.
func (r *Registry) ResolveSchema(canonicalURI string) (*ir.Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[canonicalURI]
	return s, ok
}

// PathItemResolver resolves a PathItem reference that targets
// components.pathItems (OAS 3.1+), either within def itself (ref
// "#/components/pathItems/Name") or in another registered document
// (ref "otherDoc.yaml#/components/pathItems/Name").
type PathItemResolver struct {
	reg *Registry
	def *ir.Definition
}

// NewPathItemResolver builds a resolver that defaults to looking up
// local-document fragment refs against def, falling back to the registry
// for anything carrying a non-empty document part.
func (r *Registry) NewPathItemResolver(def *ir.Definition) *PathItemResolver {
	return &PathItemResolver{reg: r, def: def}
}

// Resolve returns the named components.pathItems entry.
func (pr *PathItemResolver) Resolve(docURI, name string) (*ir.PathItem, bool) {
	def := pr.def
	if docURI != "" {
		d, ok := pr.reg.ResolveOpenAPI(docURI)
		if !ok {
			return nil, false
		}
		def = d
	}
	if def == nil || def.Components == nil || def.Components.PathItems == nil {
		return nil, false
	}
	pi, ok := def.Components.PathItems[name]
	return pi, ok
}

// Len reports the number of registered OpenAPI documents, for diagnostics
// and tests.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.openAPI)
}
