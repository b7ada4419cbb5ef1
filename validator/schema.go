package validator

import (
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/kestrelapi/oas32/ir"
)

const pure2020DialectURI = "https://json-schema.org/draft/2020-12/schema"

// oasOnlyKeywordPresence reports, for a single schema node, which
// OpenAPI-only keywords (not part of bare 2020-12) are populated, paired
// with their keyword name for diagnostics.
func oasOnlyKeywordPresence(s *ir.Schema) []string {
	var present []string
	if s.Discriminator != nil {
		present = append(present, "discriminator")
	}
	if s.XML != nil {
		present = append(present, "xml")
	}
	if s.ExternalDocs != nil {
		present = append(present, "externalDocs")
	}
	if s.ExamplePresent {
		present = append(present, "example")
	}
	return present
}

// validateSchema walks a single schema node (and, recursively, every
// nested schema it carries) applying the §4.5 Schemas rule catalog.
func (c *validateCtx) validateSchema(s *ir.Schema, path string) {
	if s == nil {
		return
	}
	if s.IsBoolean {
		return
	}
	if ref := s.GetReference(); ref != nil {
		c.checkRef(path, ref.Ref)
		return
	}

	dialect := s.SchemaDialect
	if dialect == "" {
		dialect = c.def.JSONSchemaDialect
	}
	if dialect == pure2020DialectURI {
		for _, kw := range oasOnlyKeywordPresence(s) {
			c.addWarning(path, "keyword %q is not in the active vocabulary under the pure 2020-12 dialect", kw)
		}
	}
	for _, kw := range s.CustomKeywordsOrder {
		c.addWarning(path+"."+kw, "unknown schema keyword %q", kw)
	}

	c.validateNumericBounds(s, path)

	if s.MinLength != nil && *s.MinLength < 0 {
		c.addError(path+".minLength", "minLength must be >= 0")
	}
	if (s.MinContains != nil || s.MaxContains != nil) && s.Contains == nil {
		c.addError(path, "minContains/maxContains require a contains schema")
	}
	if s.ContentMediaType != "" && !isValidMediaType(s.ContentMediaType) {
		c.addError(path+".contentMediaType", "contentMediaType %q is not a valid media type", s.ContentMediaType)
	}
	if s.ContentEncoding != "" && !containsString(s.Types, "string") && len(s.Types) > 0 {
		c.addError(path+".contentEncoding", "contentEncoding is only valid on a string schema")
	}

	c.validateDiscriminator(s, path)
	c.validateXML(s, path)
	c.validateDynamicRef(s, path)

	if len(s.Properties) > 0 && dialect == pure2020DialectURI {
		c.compileDialectCheck(s, path)
	}

	for _, name := range s.PropertiesOrder {
		c.validateSchema(s.Properties[name], path+".properties."+name)
	}
	for _, name := range s.PatternPropertiesOrder {
		c.validateSchema(s.PatternProperties[name], path+".patternProperties."+name)
	}
	c.validateSchema(s.AdditionalProperties, path+".additionalProperties")
	c.validateSchema(s.PropertyNames, path+".propertyNames")
	c.validateSchema(s.UnevaluatedProperties, path+".unevaluatedProperties")
	c.validateSchema(s.Items, path+".items")
	for i, p := range s.PrefixItems {
		c.validateSchema(p, indexPath(path+".prefixItems", i))
	}
	c.validateSchema(s.Contains, path+".contains")
	c.validateSchema(s.UnevaluatedItems, path+".unevaluatedItems")
	c.validateSchema(s.Not, path+".not")
	c.validateSchema(s.If, path+".if")
	c.validateSchema(s.Then, path+".then")
	c.validateSchema(s.Else, path+".else")
	c.validateSchema(s.ContentSchema, path+".contentSchema")
	for _, name := range s.DependentSchemasOrder {
		c.validateSchema(s.DependentSchemas[name], path+".dependentSchemas."+name)
	}
	c.validateComposition(s.AllOf, path+".allOf")
	c.validateComposition(s.OneOf, path+".oneOf")
	c.validateComposition(s.AnyOf, path+".anyOf")
}

func (c *validateCtx) validateComposition(members []ir.CompositionMember, path string) {
	for i, m := range members {
		if m.IsRef {
			c.checkRef(indexPath(path, i), m.Ref)
			continue
		}
		c.validateSchema(m.Inline, indexPath(path, i))
	}
}

func (c *validateCtx) validateNumericBounds(s *ir.Schema, path string) {
	checkOrder := func(min, max *int, field string) {
		if min != nil && max != nil && *min > *max {
			c.addError(path+"."+field, "min%s must be <= max%s", field, field)
		}
	}
	checkOrder(s.MinLength, s.MaxLength, "Length")
	checkOrder(s.MinItems, s.MaxItems, "Items")
	checkOrder(s.MinProperties, s.MaxProperties, "Properties")
	checkOrder(s.MinContains, s.MaxContains, "Contains")
}

func (c *validateCtx) validateDiscriminator(s *ir.Schema, path string) {
	if s.Discriminator == nil {
		return
	}
	hasComposition := len(s.OneOf) > 0 || len(s.AnyOf) > 0 || len(s.AllOf) > 0
	if !hasComposition {
		c.addError(path+".discriminator", "discriminator requires oneOf, anyOf, or allOf")
	}
	if (len(s.OneOf) > 0 || len(s.AnyOf) > 0) && !s.Discriminator.HasDefaultMapping {
		c.addError(path+".discriminator.defaultMapping", "defaultMapping is required when discriminator is used with oneOf or anyOf")
	}
}

func (c *validateCtx) validateXML(s *ir.Schema, path string) {
	if s.XML == nil {
		return
	}
	if s.XML.Attribute && s.XML.NodeType != "" {
		c.addError(path+".xml", "xml.attribute is forbidden when xml.nodeType is present")
	}
	if s.XML.Wrapped && !containsString(s.Types, "array") {
		c.addError(path+".xml.wrapped", "xml.wrapped is only valid on an array schema")
	}
}

// validateDynamicRef approximates lexical-scope resolution of a
// $dynamicRef's anchor: it checks whether any schema in the same
// components.schemas pool declares a matching $dynamicAnchor, which
// covers the common single-document case without implementing full
// lexical scope tracking (out of scope for this validator; see
// DESIGN.md).
func (c *validateCtx) validateDynamicRef(s *ir.Schema, path string) {
	if s.DynamicRef == "" {
		return
	}
	anchor := strings.TrimPrefix(s.DynamicRef, "#")
	if !c.hasDynamicAnchor(anchor) {
		c.addWarning(path+".$dynamicRef", "$dynamicRef anchor %q has no in-scope $dynamicAnchor", anchor)
	}
}

func (c *validateCtx) hasDynamicAnchor(anchor string) bool {
	if c.def.Components == nil {
		return false
	}
	var walk func(s *ir.Schema) bool
	walk = func(s *ir.Schema) bool {
		if s == nil || s.IsBoolean {
			return false
		}
		if s.DynamicAnchor == anchor {
			return true
		}
		for _, p := range s.Properties {
			if walk(p) {
				return true
			}
		}
		if walk(s.Items) {
			return true
		}
		for _, m := range s.AllOf {
			if !m.IsRef && walk(m.Inline) {
				return true
			}
		}
		for _, m := range s.OneOf {
			if !m.IsRef && walk(m.Inline) {
				return true
			}
		}
		for _, m := range s.AnyOf {
			if !m.IsRef && walk(m.Inline) {
				return true
			}
		}
		return false
	}
	for _, s := range c.def.Components.Schemas {
		if walk(s) {
			return true
		}
	}
	return false
}

// compileDialectCheck builds a shallow, pure-JSON-Schema view of s (top
// level keywords only; nested schemas are represented as "true" so they
// always compile, since their own OAS-only keywords are checked by the
// recursive walk in validateSchema instead) and compiles it through
// jsonschema/v6 to confirm the keyword combination is accepted by a real
// 2020-12 implementation. This is a compile-only check: the compiled
// schema is never evaluated against an instance.
func (c *validateCtx) compileDialectCheck(s *ir.Schema, path string) {
	var doc any = schemaToDraft2020Doc(s)
	compiler := jsonschema.NewCompiler()
	resource := "mem://" + strings.ReplaceAll(path, " ", "_")
	if err := compiler.AddResource(resource, doc); err != nil {
		c.addWarning(path, "schema does not compile under the 2020-12 dialect: %v", err)
		return
	}
	if _, err := compiler.Compile(resource); err != nil {
		c.addWarning(path, "schema does not compile under the 2020-12 dialect: %v", err)
	}
}

func schemaToDraft2020Doc(s *ir.Schema) map[string]any {
	m := map[string]any{}
	if len(s.Types) > 0 {
		if len(s.Types) == 1 {
			m["type"] = s.Types[0]
		} else {
			m["type"] = s.Types
		}
	}
	if s.Pattern != "" {
		m["pattern"] = s.Pattern
	}
	if s.Format != "" {
		m["format"] = s.Format
	}
	if s.MinLength != nil {
		m["minLength"] = *s.MinLength
	}
	if s.MaxLength != nil {
		m["maxLength"] = *s.MaxLength
	}
	if s.Minimum != nil {
		m["minimum"] = *s.Minimum
	}
	if s.Maximum != nil {
		m["maximum"] = *s.Maximum
	}
	if len(s.Properties) > 0 {
		props := map[string]any{}
		for name := range s.Properties {
			props[name] = true
		}
		m["properties"] = props
	}
	if len(s.Required) > 0 {
		m["required"] = s.Required
	}
	if len(m) == 0 {
		m["type"] = "object"
	}
	return m
}
