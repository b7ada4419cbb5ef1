package writer

import (
	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/tree"
)

// buildDefinition renders the document root in canonical field order:
// version/self/info/jsonSchemaDialect/servers/paths/webhooks/components/
// security/tags/externalDocs, then extensions.
func (c *writeCtx) buildDefinition(def *ir.Definition) tree.Value {
	m := newMap()
	setStr(m, "openapi", def.OpenAPI)
	setStr(m, "$self", def.Self)
	if def.Info != nil {
		m.Set("info", c.buildInfo(def.Info))
	}
	setStr(m, "jsonSchemaDialect", def.JSONSchemaDialect)
	buildServerSeq(m, "servers", def.Servers)

	switch {
	case def.Paths != nil:
		m.Set("paths", c.buildPathsMap(def.Paths, def.PathsOrder, def.PathsExtensions))
	case def.PathsExplicitEmpty:
		m.Set("paths", tree.Map(newMap()))
	}
	switch {
	case def.Webhooks != nil:
		m.Set("webhooks", c.buildPathsMap(def.Webhooks, def.WebhooksOrder, def.WebhooksExtensions))
	case def.WebhooksExplicitEmpty:
		m.Set("webhooks", tree.Map(newMap()))
	}

	if def.Components != nil {
		m.Set("components", c.buildComponents(def.Components))
	}

	switch {
	case def.Security != nil:
		m.Set("security", buildSecurityRequirementSeq(def.Security))
	case def.SecurityExplicitEmpty:
		m.Set("security", tree.Seq(nil))
	}

	buildTagSeq(m, def.Tags)
	if def.ExternalDocs != nil {
		m.Set("externalDocs", buildExternalDocs(def.ExternalDocs))
	}
	mergeExtensions(m, def.Extensions)
	return tree.Map(m)
}

func (c *writeCtx) buildInfo(info *ir.Info) tree.Value {
	m := newMap()
	setStr(m, "title", info.Title)
	setStr(m, "summary", info.Summary)
	setStr(m, "description", info.Description)
	setStr(m, "termsOfService", info.TermsOfService)
	if info.Contact != nil {
		cm := newMap()
		setStr(cm, "name", info.Contact.Name)
		setStr(cm, "url", info.Contact.URL)
		setStr(cm, "email", info.Contact.Email)
		mergeExtensions(cm, info.Contact.Extensions)
		m.Set("contact", tree.Map(cm))
	}
	if info.License != nil {
		lm := newMap()
		setStr(lm, "name", info.License.Name)
		setStr(lm, "identifier", info.License.Identifier)
		setStr(lm, "url", info.License.URL)
		mergeExtensions(lm, info.License.Extensions)
		m.Set("license", tree.Map(lm))
	}
	setStr(m, "version", info.Version)
	mergeExtensions(m, info.Extensions)
	return tree.Map(m)
}

func buildServerSeq(m *tree.OrderedMap, key string, servers []*ir.Server) {
	if len(servers) == 0 {
		return
	}
	items := make([]tree.Value, len(servers))
	for i, s := range servers {
		items[i] = buildServer(s)
	}
	m.Set(key, tree.Seq(items))
}

func buildServer(s *ir.Server) tree.Value {
	m := newMap()
	setStr(m, "url", s.URL)
	setStr(m, "name", s.Name)
	setStr(m, "description", s.Description)
	if len(s.VariablesOrder) > 0 {
		vm := newMap()
		for _, name := range s.VariablesOrder {
			vm.Set(name, buildServerVariable(s.Variables[name]))
		}
		m.Set("variables", tree.Map(vm))
	}
	mergeExtensions(m, s.Extensions)
	return tree.Map(m)
}

func buildServerVariable(v *ir.ServerVariable) tree.Value {
	m := newMap()
	setStringSeq(m, "enum", v.Enum)
	m.Set("default", tree.String(v.Default))
	setStr(m, "description", v.Description)
	mergeExtensions(m, v.Extensions)
	return tree.Map(m)
}

func buildTagSeq(m *tree.OrderedMap, tags []*ir.Tag) {
	if len(tags) == 0 {
		return
	}
	items := make([]tree.Value, len(tags))
	for i, t := range tags {
		tm := newMap()
		setStr(tm, "name", t.Name)
		setStr(tm, "summary", t.Summary)
		setStr(tm, "description", t.Description)
		if t.ExternalDocs != nil {
			tm.Set("externalDocs", buildExternalDocs(t.ExternalDocs))
		}
		mergeExtensions(tm, t.Extensions)
		items[i] = tree.Map(tm)
	}
	m.Set("tags", tree.Seq(items))
}

func buildExternalDocs(d *ir.ExternalDocs) tree.Value {
	m := newMap()
	setStr(m, "description", d.Description)
	setStr(m, "url", d.URL)
	mergeExtensions(m, d.Extensions)
	return tree.Map(m)
}

// buildPathsMap renders a paths/webhooks map: fixed key order plus any
// "x-…" extensions recorded directly under the keyword.
func (c *writeCtx) buildPathsMap(paths map[string]*ir.PathItem, order []string, ext map[string]any) tree.Value {
	m := newMap()
	for _, key := range order {
		m.Set(key, c.buildPathItem(paths[key]))
	}
	mergeExtensions(m, ext)
	return tree.Map(m)
}

func buildSecurityRequirementSeq(reqs []ir.SecurityRequirement) tree.Value {
	items := make([]tree.Value, len(reqs))
	for i, r := range reqs {
		rm := newMap()
		for _, name := range r.SchemesOrder {
			rm.Set(name, buildScopeSeq(r.Schemes[name]))
		}
		items[i] = tree.Map(rm)
	}
	return tree.Seq(items)
}

func buildScopeSeq(scopes []string) tree.Value {
	items := make([]tree.Value, len(scopes))
	for i, s := range scopes {
		items[i] = tree.String(s)
	}
	return tree.Seq(items)
}
