package writer

import (
	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/tree"
)

// buildSchema renders a Schema node, including the boolean shorthand and
// a bare $ref, in the teacher's keyword-group order mirrored from
// parser/schema.go's parse order.
func (c *writeCtx) buildSchema(s *ir.Schema) tree.Value {
	if s == nil {
		return tree.Null()
	}
	if s.IsBoolean {
		return tree.Bool(s.BooleanValue)
	}
	m := newMap()
	setStr(m, "$schema", s.SchemaDialect)
	setStr(m, "$id", s.ID)
	setStr(m, "$anchor", s.Anchor)
	setStr(m, "$dynamicAnchor", s.DynamicAnchor)
	setStr(m, "$dynamicRef", s.DynamicRef)
	if ref := s.GetReference(); ref != nil {
		c.setReference(m, ref)
	}
	setStr(m, "title", s.Title)
	setStr(m, "description", s.Description)

	if s.DefaultPresent {
		m.Set("default", rawValue(s.Default))
	}
	if len(s.Examples) > 0 {
		items := make([]tree.Value, len(s.Examples))
		for i, ex := range s.Examples {
			items[i] = rawValue(ex)
		}
		m.Set("examples", tree.Seq(items))
	}
	if s.ExamplePresent {
		m.Set("example", rawValue(s.Example))
	}

	setBoolIfTrue(m, "deprecated", s.Deprecated)
	setBoolIfTrue(m, "readOnly", s.ReadOnly)
	setBoolIfTrue(m, "writeOnly", s.WriteOnly)

	writeSchemaType(m, s)

	if s.EnumPresent {
		items := make([]tree.Value, len(s.Enum))
		for i, e := range s.Enum {
			items[i] = rawValue(e)
		}
		m.Set("enum", tree.Seq(items))
	}
	if s.ConstPresent {
		m.Set("const", rawValue(s.Const))
	}

	setFloatPtr(m, "multipleOf", s.MultipleOf)
	setFloatPtr(m, "maximum", s.Maximum)
	setFloatPtr(m, "exclusiveMaximum", s.ExclusiveMaximum)
	setFloatPtr(m, "minimum", s.Minimum)
	setFloatPtr(m, "exclusiveMinimum", s.ExclusiveMinimum)

	setIntPtr(m, "maxLength", s.MaxLength)
	setIntPtr(m, "minLength", s.MinLength)
	setStr(m, "pattern", s.Pattern)

	if s.Items != nil {
		m.Set("items", c.buildSchema(s.Items))
	}
	if len(s.PrefixItems) > 0 {
		items := make([]tree.Value, len(s.PrefixItems))
		for i, p := range s.PrefixItems {
			items[i] = c.buildSchema(p)
		}
		m.Set("prefixItems", tree.Seq(items))
	}
	if s.Contains != nil {
		m.Set("contains", c.buildSchema(s.Contains))
	}
	setIntPtr(m, "maxItems", s.MaxItems)
	setIntPtr(m, "minItems", s.MinItems)
	setBoolIfTrue(m, "uniqueItems", s.UniqueItems)
	setIntPtr(m, "maxContains", s.MaxContains)
	setIntPtr(m, "minContains", s.MinContains)
	if s.UnevaluatedItems != nil {
		m.Set("unevaluatedItems", c.buildSchema(s.UnevaluatedItems))
	}

	if len(s.PropertiesOrder) > 0 {
		pm := newMap()
		for _, name := range s.PropertiesOrder {
			pm.Set(name, c.buildSchema(s.Properties[name]))
		}
		m.Set("properties", tree.Map(pm))
	}
	if len(s.PatternPropertiesOrder) > 0 {
		ppm := newMap()
		for _, name := range s.PatternPropertiesOrder {
			ppm.Set(name, c.buildSchema(s.PatternProperties[name]))
		}
		m.Set("patternProperties", tree.Map(ppm))
	}
	if s.AdditionalProperties != nil {
		m.Set("additionalProperties", c.buildSchema(s.AdditionalProperties))
	}
	if s.PropertyNames != nil {
		m.Set("propertyNames", c.buildSchema(s.PropertyNames))
	}
	if s.UnevaluatedProperties != nil {
		m.Set("unevaluatedProperties", c.buildSchema(s.UnevaluatedProperties))
	}
	setIntPtr(m, "maxProperties", s.MaxProperties)
	setIntPtr(m, "minProperties", s.MinProperties)
	setStringSeq(m, "required", s.Required)
	if len(s.DependentRequiredOrder) > 0 {
		drm := newMap()
		for _, name := range s.DependentRequiredOrder {
			drm.Set(name, stringSeqValue(s.DependentRequired[name]))
		}
		m.Set("dependentRequired", tree.Map(drm))
	}
	if len(s.DependentSchemasOrder) > 0 {
		dsm := newMap()
		for _, name := range s.DependentSchemasOrder {
			dsm.Set(name, c.buildSchema(s.DependentSchemas[name]))
		}
		m.Set("dependentSchemas", tree.Map(dsm))
	}

	c.writeComposition(m, "allOf", s.AllOf)
	c.writeComposition(m, "oneOf", s.OneOf)
	c.writeComposition(m, "anyOf", s.AnyOf)
	if s.Not != nil {
		m.Set("not", c.buildSchema(s.Not))
	}

	if s.If != nil {
		m.Set("if", c.buildSchema(s.If))
	}
	if s.Then != nil {
		m.Set("then", c.buildSchema(s.Then))
	}
	if s.Else != nil {
		m.Set("else", c.buildSchema(s.Else))
	}

	setStr(m, "format", s.Format)

	setStr(m, "contentEncoding", s.ContentEncoding)
	setStr(m, "contentMediaType", s.ContentMediaType)
	if s.ContentSchema != nil {
		m.Set("contentSchema", c.buildSchema(s.ContentSchema))
	}

	if s.Discriminator != nil {
		m.Set("discriminator", buildDiscriminator(s.Discriminator))
	}
	if s.XML != nil {
		m.Set("xml", buildXML(s.XML))
	}
	if s.ExternalDocs != nil {
		m.Set("externalDocs", buildExternalDocs(s.ExternalDocs))
	}

	mergeCustomKeywords(m, s.CustomKeywords, s.CustomKeywordsOrder)
	mergeExtensions(m, s.Extensions)
	return tree.Map(m)
}

// writeSchemaType re-folds a legacy "nullable: true" back out of Types,
// mirroring the parser's fold-in, when NullableLegacy recorded that the
// source used the OAS 3.0 keyword rather than a type array entry.
func writeSchemaType(m *tree.OrderedMap, s *ir.Schema) {
	types := s.Types
	if len(types) == 0 {
		return
	}
	if s.NullableLegacy {
		filtered := make([]string, 0, len(types))
		hadNull := false
		for _, t := range types {
			if t == "null" {
				hadNull = true
				continue
			}
			filtered = append(filtered, t)
		}
		if len(filtered) == 1 {
			m.Set("type", tree.String(filtered[0]))
		} else if len(filtered) > 1 {
			m.Set("type", stringSeqValue(filtered))
		}
		if hadNull {
			m.Set("nullable", tree.Bool(true))
		}
		return
	}
	if len(types) == 1 {
		m.Set("type", tree.String(types[0]))
		return
	}
	m.Set("type", stringSeqValue(types))
}

func stringSeqValue(v []string) tree.Value {
	items := make([]tree.Value, len(v))
	for i, s := range v {
		items[i] = tree.String(s)
	}
	return tree.Seq(items)
}

// writeComposition re-interleaves a composition list's legacy $ref-string
// members and inline-schema members in their original stored order.
func (c *writeCtx) writeComposition(m *tree.OrderedMap, key string, members []ir.CompositionMember) {
	if len(members) == 0 {
		return
	}
	items := make([]tree.Value, len(members))
	for i, mem := range members {
		if mem.IsRef {
			rm := newMap()
			rm.Set("$ref", tree.String(c.absolutizeRef(mem.Ref)))
			items[i] = tree.Map(rm)
			continue
		}
		items[i] = c.buildSchema(mem.Inline)
	}
	m.Set(key, tree.Seq(items))
}

func buildDiscriminator(d *ir.Discriminator) tree.Value {
	m := newMap()
	setStr(m, "propertyName", d.PropertyName)
	if len(d.MappingOrder) > 0 {
		mm := newMap()
		for _, name := range d.MappingOrder {
			mm.Set(name, tree.String(d.Mapping[name]))
		}
		m.Set("mapping", tree.Map(mm))
	}
	if d.HasDefaultMapping {
		m.Set("defaultMapping", tree.String(d.DefaultMapping))
	}
	mergeExtensions(m, d.Extensions)
	return tree.Map(m)
}

func buildXML(x *ir.XMLObject) tree.Value {
	m := newMap()
	setStr(m, "name", x.Name)
	setStr(m, "namespace", x.Namespace)
	setStr(m, "prefix", x.Prefix)
	setBoolIfTrue(m, "attribute", x.Attribute)
	setBoolIfTrue(m, "wrapped", x.Wrapped)
	setStr(m, "nodeType", x.NodeType)
	mergeExtensions(m, x.Extensions)
	return tree.Map(m)
}
