package writer

import (
	"github.com/kestrelapi/oas32/internal/maputil"
	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/tree"
)

// sortedKeys returns m's keys in sorted order. Component pools carry no
// source-order tracking in the IR (only paths/webhooks/content-bearing
// maps do, since pool member order is not semantically significant in
// OpenAPI the way path/content order is) so a stable, deterministic
// order is used for output instead of an arbitrary map iteration.
func sortedKeys[V any](m map[string]V) []string {
	return maputil.SortedKeys(m)
}

func (c *writeCtx) buildComponents(comp *ir.Components) tree.Value {
	m := newMap()
	if len(comp.Schemas) > 0 {
		sm := newMap()
		for _, name := range sortedKeys(comp.Schemas) {
			sm.Set(name, c.buildSchema(comp.Schemas[name]))
		}
		m.Set("schemas", tree.Map(sm))
	}
	if len(comp.Responses) > 0 {
		rm := newMap()
		for _, name := range sortedKeys(comp.Responses) {
			rm.Set(name, c.buildResponse(comp.Responses[name]))
		}
		m.Set("responses", tree.Map(rm))
	}
	if len(comp.Parameters) > 0 {
		pm := newMap()
		for _, name := range sortedKeys(comp.Parameters) {
			pm.Set(name, c.buildParameter(comp.Parameters[name]))
		}
		m.Set("parameters", tree.Map(pm))
	}
	if len(comp.Examples) > 0 {
		em := newMap()
		for _, name := range sortedKeys(comp.Examples) {
			em.Set(name, c.buildExample(comp.Examples[name]))
		}
		m.Set("examples", tree.Map(em))
	}
	if len(comp.RequestBodies) > 0 {
		rbm := newMap()
		for _, name := range sortedKeys(comp.RequestBodies) {
			rbm.Set(name, c.buildRequestBody(comp.RequestBodies[name]))
		}
		m.Set("requestBodies", tree.Map(rbm))
	}
	if len(comp.Headers) > 0 {
		hm := newMap()
		for _, name := range sortedKeys(comp.Headers) {
			hm.Set(name, c.buildHeader(comp.Headers[name]))
		}
		m.Set("headers", tree.Map(hm))
	}
	if len(comp.SecuritySchemes) > 0 {
		ssm := newMap()
		for _, name := range sortedKeys(comp.SecuritySchemes) {
			ssm.Set(name, c.buildSecurityScheme(comp.SecuritySchemes[name]))
		}
		m.Set("securitySchemes", tree.Map(ssm))
	}
	if len(comp.Links) > 0 {
		lm := newMap()
		for _, name := range sortedKeys(comp.Links) {
			lm.Set(name, c.buildLink(comp.Links[name]))
		}
		m.Set("links", tree.Map(lm))
	}
	if len(comp.Callbacks) > 0 {
		cbm := newMap()
		for _, name := range sortedKeys(comp.Callbacks) {
			cbm.Set(name, c.buildCallback(comp.Callbacks[name]))
		}
		m.Set("callbacks", tree.Map(cbm))
	}
	if len(comp.PathItems) > 0 {
		pim := newMap()
		for _, name := range sortedKeys(comp.PathItems) {
			pim.Set(name, c.buildPathItem(comp.PathItems[name]))
		}
		m.Set("pathItems", tree.Map(pim))
	}
	if len(comp.MediaTypes) > 0 {
		mtm := newMap()
		for _, name := range sortedKeys(comp.MediaTypes) {
			mtm.Set(name, c.buildMediaType(comp.MediaTypes[name]))
		}
		m.Set("mediaTypes", tree.Map(mtm))
	}
	mergeExtensions(m, comp.Extensions)
	return tree.Map(m)
}
