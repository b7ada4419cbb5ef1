package parser

import (
	"fmt"

	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/tree"
)

var schemaKnownKeys = map[string]bool{
	"$schema": true, "$id": true, "$anchor": true, "$dynamicAnchor": true, "$dynamicRef": true,
	"$ref": true, "summary": true, "description": true,
	"title": true, "default": true, "examples": true, "example": true,
	"deprecated": true, "readOnly": true, "writeOnly": true,
	"type": true, "nullable": true, "x-nullable": true,
	"enum": true, "const": true,
	"multipleOf": true, "maximum": true, "exclusiveMaximum": true, "minimum": true, "exclusiveMinimum": true,
	"maxLength": true, "minLength": true, "pattern": true,
	"items": true, "prefixItems": true, "contains": true, "maxItems": true, "minItems": true,
	"uniqueItems": true, "maxContains": true, "minContains": true, "unevaluatedItems": true,
	"properties": true, "patternProperties": true, "additionalProperties": true, "propertyNames": true,
	"unevaluatedProperties": true, "maxProperties": true, "minProperties": true,
	"required": true, "dependentRequired": true, "dependentSchemas": true,
	"allOf": true, "oneOf": true, "anyOf": true, "not": true,
	"if": true, "then": true, "else": true,
	"format": true,
	"contentEncoding": true, "contentMediaType": true, "contentSchema": true,
	"discriminator": true, "xml": true, "externalDocs": true,
}

// parseSchema parses a JSON Schema node, which may be the boolean shorthand.
func (p *parseCtx) parseSchema(v tree.Value) (*ir.Schema, error) {
	switch v.Kind {
	case tree.KindBool:
		return &ir.Schema{IsBoolean: true, BooleanValue: v.Bool}, nil
	case tree.KindMap:
		return p.parseSchemaMap(v.Map)
	default:
		return nil, fmt.Errorf("schema: expected object or boolean, got %s", v.Kind)
	}
}

func (p *parseCtx) parseSchemaMap(m *tree.OrderedMap) (*ir.Schema, error) {
	s := &ir.Schema{}

	s.SchemaDialect = getStringDefault(m, "$schema", "")
	s.ID = getStringDefault(m, "$id", "")
	s.Anchor = getStringDefault(m, "$anchor", "")
	s.DynamicAnchor = getStringDefault(m, "$dynamicAnchor", "")
	s.DynamicRef = getStringDefault(m, "$dynamicRef", "")

	if ref, ok := extractReference(m); ok {
		s.Reference = ref
	}

	s.Title = getStringDefault(m, "title", "")
	s.Description = getStringDefault(m, "description", "")

	if v, ok := m.Get("default"); ok {
		s.DefaultPresent = true
		s.Default = v
	}
	if seq, ok := getSeq(m, "examples"); ok {
		for _, item := range seq {
			s.Examples = append(s.Examples, item)
		}
	}
	if v, ok := m.Get("example"); ok {
		s.ExamplePresent = true
		s.Example = v
	}

	s.Deprecated = getBoolDefault(m, "deprecated", false)
	s.ReadOnly = getBoolDefault(m, "readOnly", false)
	s.WriteOnly = getBoolDefault(m, "writeOnly", false)

	if err := p.parseSchemaType(m, s); err != nil {
		return nil, err
	}

	if seq, ok := getSeq(m, "enum"); ok {
		s.EnumPresent = true
		for _, item := range seq {
			s.Enum = append(s.Enum, item)
		}
	}
	if v, ok := m.Get("const"); ok {
		s.ConstPresent = true
		s.Const = v
	}

	s.MultipleOf = getFloatPtr(m, "multipleOf")
	s.Maximum = getFloatPtr(m, "maximum")
	s.ExclusiveMaximum = getFloatPtr(m, "exclusiveMaximum")
	s.Minimum = getFloatPtr(m, "minimum")
	s.ExclusiveMinimum = getFloatPtr(m, "exclusiveMinimum")

	s.MaxLength = getIntPtr(m, "maxLength")
	s.MinLength = getIntPtr(m, "minLength")
	s.Pattern = getStringDefault(m, "pattern", "")

	if v, ok := m.Get("items"); ok {
		items, err := p.parseSchema(v)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		s.Items = items
	}
	if seq, ok := getSeq(m, "prefixItems"); ok {
		for i, item := range seq {
			ps, err := p.parseSchema(item)
			if err != nil {
				return nil, fmt.Errorf("prefixItems[%d]: %w", i, err)
			}
			s.PrefixItems = append(s.PrefixItems, ps)
		}
	}
	if v, ok := m.Get("contains"); ok {
		c, err := p.parseSchema(v)
		if err != nil {
			return nil, fmt.Errorf("contains: %w", err)
		}
		s.Contains = c
	}
	s.MaxItems = getIntPtr(m, "maxItems")
	s.MinItems = getIntPtr(m, "minItems")
	s.UniqueItems = getBoolDefault(m, "uniqueItems", false)
	s.MaxContains = getIntPtr(m, "maxContains")
	s.MinContains = getIntPtr(m, "minContains")
	if v, ok := m.Get("unevaluatedItems"); ok {
		ui, err := p.parseSchema(v)
		if err != nil {
			return nil, fmt.Errorf("unevaluatedItems: %w", err)
		}
		s.UnevaluatedItems = ui
	}

	if pm, ok := getMap(m, "properties"); ok {
		s.Properties = make(map[string]*ir.Schema, pm.Len())
		for _, key := range pm.Keys() {
			v, _ := pm.Get(key)
			ps, err := p.parseSchema(v)
			if err != nil {
				return nil, fmt.Errorf("properties[%s]: %w", key, err)
			}
			s.Properties[key] = ps
			s.PropertiesOrder = append(s.PropertiesOrder, key)
		}
	}
	if pm, ok := getMap(m, "patternProperties"); ok {
		s.PatternProperties = make(map[string]*ir.Schema, pm.Len())
		for _, key := range pm.Keys() {
			v, _ := pm.Get(key)
			ps, err := p.parseSchema(v)
			if err != nil {
				return nil, fmt.Errorf("patternProperties[%s]: %w", key, err)
			}
			s.PatternProperties[key] = ps
			s.PatternPropertiesOrder = append(s.PatternPropertiesOrder, key)
		}
	}
	if v, ok := m.Get("additionalProperties"); ok {
		ap, err := p.parseSchema(v)
		if err != nil {
			return nil, fmt.Errorf("additionalProperties: %w", err)
		}
		s.AdditionalProperties = ap
	}
	if v, ok := m.Get("propertyNames"); ok {
		pn, err := p.parseSchema(v)
		if err != nil {
			return nil, fmt.Errorf("propertyNames: %w", err)
		}
		s.PropertyNames = pn
	}
	if v, ok := m.Get("unevaluatedProperties"); ok {
		up, err := p.parseSchema(v)
		if err != nil {
			return nil, fmt.Errorf("unevaluatedProperties: %w", err)
		}
		s.UnevaluatedProperties = up
	}
	s.MaxProperties = getIntPtr(m, "maxProperties")
	s.MinProperties = getIntPtr(m, "minProperties")
	s.Required = getStringSeq(m, "required")

	if dm, ok := getMap(m, "dependentRequired"); ok {
		s.DependentRequired = make(map[string][]string, dm.Len())
		for _, key := range dm.Keys() {
			s.DependentRequired[key] = getStringSeq(dm, key)
			s.DependentRequiredOrder = append(s.DependentRequiredOrder, key)
		}
	}
	if dm, ok := getMap(m, "dependentSchemas"); ok {
		s.DependentSchemas = make(map[string]*ir.Schema, dm.Len())
		for _, key := range dm.Keys() {
			v, _ := dm.Get(key)
			ds, err := p.parseSchema(v)
			if err != nil {
				return nil, fmt.Errorf("dependentSchemas[%s]: %w", key, err)
			}
			s.DependentSchemas[key] = ds
			s.DependentSchemasOrder = append(s.DependentSchemasOrder, key)
		}
	}

	var err error
	if s.AllOf, err = p.parseComposition(m, "allOf"); err != nil {
		return nil, err
	}
	if s.OneOf, err = p.parseComposition(m, "oneOf"); err != nil {
		return nil, err
	}
	if s.AnyOf, err = p.parseComposition(m, "anyOf"); err != nil {
		return nil, err
	}
	if v, ok := m.Get("not"); ok {
		n, err := p.parseSchema(v)
		if err != nil {
			return nil, fmt.Errorf("not: %w", err)
		}
		s.Not = n
	}
	if v, ok := m.Get("if"); ok {
		n, err := p.parseSchema(v)
		if err != nil {
			return nil, fmt.Errorf("if: %w", err)
		}
		s.If = n
	}
	if v, ok := m.Get("then"); ok {
		n, err := p.parseSchema(v)
		if err != nil {
			return nil, fmt.Errorf("then: %w", err)
		}
		s.Then = n
	}
	if v, ok := m.Get("else"); ok {
		n, err := p.parseSchema(v)
		if err != nil {
			return nil, fmt.Errorf("else: %w", err)
		}
		s.Else = n
	}

	s.Format = getStringDefault(m, "format", "")
	s.ContentEncoding = getStringDefault(m, "contentEncoding", "")
	s.ContentMediaType = getStringDefault(m, "contentMediaType", "")
	if v, ok := m.Get("contentSchema"); ok {
		cs, err := p.parseSchema(v)
		if err != nil {
			return nil, fmt.Errorf("contentSchema: %w", err)
		}
		s.ContentSchema = cs
	}

	if dm, ok := getMap(m, "discriminator"); ok {
		s.Discriminator = parseDiscriminator(dm)
	}
	if xm, ok := getMap(m, "xml"); ok {
		s.XML = parseXML(xm)
	}
	if em, ok := getMap(m, "externalDocs"); ok {
		s.ExternalDocs = parseExternalDocs(em)
	}

	s.CustomKeywords, s.CustomKeywordsOrder = customKeywords(m, schemaKnownKeys)
	s.Extensions = splitExtensions(m, schemaKnownKeys)

	return s, nil
}

// parseSchemaType normalizes the "type" keyword (string or array of
// strings) and folds the legacy OAS 3.0 "nullable"/Swagger "x-nullable"
// keyword into an added "null" type entry.
func (p *parseCtx) parseSchemaType(m *tree.OrderedMap, s *ir.Schema) error {
	if v, ok := m.Get("type"); ok {
		switch v.Kind {
		case tree.KindString:
			s.Types = []string{v.String}
		case tree.KindSeq:
			for _, item := range v.Seq {
				if item.Kind == tree.KindString {
					s.Types = append(s.Types, item.String)
				}
			}
		default:
			return fmt.Errorf(`"type" must be a string or array of strings`)
		}
	}
	nullable, okNullable := getBool(m, "nullable")
	if !okNullable {
		nullable, okNullable = getBool(m, "x-nullable")
	}
	if okNullable && nullable {
		s.NullableLegacy = true
		hasNull := false
		for _, t := range s.Types {
			if t == "null" {
				hasNull = true
			}
		}
		if !hasNull {
			s.Types = append(s.Types, "null")
		}
	}
	return nil
}

func (p *parseCtx) parseComposition(m *tree.OrderedMap, key string) ([]ir.CompositionMember, error) {
	seq, ok := getSeq(m, key)
	if !ok {
		return nil, nil
	}
	out := make([]ir.CompositionMember, 0, len(seq))
	for i, item := range seq {
		if item.Kind == tree.KindString {
			out = append(out, ir.CompositionMember{IsRef: true, Ref: item.String})
			continue
		}
		inline, err := p.parseSchema(item)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out = append(out, ir.CompositionMember{Inline: inline})
	}
	return out, nil
}

var discriminatorKnownKeys = map[string]bool{"propertyName": true, "mapping": true, "defaultMapping": true}

func parseDiscriminator(m *tree.OrderedMap) *ir.Discriminator {
	d := &ir.Discriminator{PropertyName: getStringDefault(m, "propertyName", "")}
	if mm, ok := getMap(m, "mapping"); ok {
		d.Mapping = make(map[string]string, mm.Len())
		for _, key := range mm.Keys() {
			v, _ := mm.Get(key)
			if v.Kind == tree.KindString {
				d.Mapping[key] = v.String
				d.MappingOrder = append(d.MappingOrder, key)
			}
		}
	}
	if dflt, ok := getString(m, "defaultMapping"); ok {
		d.DefaultMapping = dflt
		d.HasDefaultMapping = true
	}
	d.Extensions = splitExtensions(m, discriminatorKnownKeys)
	return d
}

var xmlKnownKeys = map[string]bool{
	"name": true, "namespace": true, "prefix": true, "attribute": true, "wrapped": true, "nodeType": true,
}

func parseXML(m *tree.OrderedMap) *ir.XMLObject {
	x := &ir.XMLObject{
		Name:      getStringDefault(m, "name", ""),
		Namespace: getStringDefault(m, "namespace", ""),
		Prefix:    getStringDefault(m, "prefix", ""),
		Attribute: getBoolDefault(m, "attribute", false),
		Wrapped:   getBoolDefault(m, "wrapped", false),
		NodeType:  getStringDefault(m, "nodeType", ""),
	}
	x.Extensions = splitExtensions(m, xmlKnownKeys)
	return x
}

var externalDocsKnownKeys = map[string]bool{"description": true, "url": true}

func parseExternalDocs(m *tree.OrderedMap) *ir.ExternalDocs {
	e := &ir.ExternalDocs{
		Description: getStringDefault(m, "description", ""),
		URL:         getStringDefault(m, "url", ""),
	}
	e.Extensions = splitExtensions(m, externalDocsKnownKeys)
	return e
}
