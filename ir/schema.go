package ir

// Schema is a JSON Schema (2020-12 / OpenAPI 3.2 base dialect) node. It
// doubles as the boolean schema shorthand ("true"/"false"): when IsBoolean
// is set, BooleanValue is the only meaningful field.
type Schema struct {
	IsBoolean    bool
	BooleanValue bool

	Reference *Reference

	SchemaDialect string // the "$schema" keyword, if present
	ID            string // "$id"
	Anchor        string // "$anchor"
	DynamicAnchor string // "$dynamicAnchor"
	DynamicRef    string // "$dynamicRef"

	Title       string
	Description string

	DefaultPresent bool
	Default        any

	Examples []any // JSON Schema "examples" (array), distinct from OAS's single "example"

	ExamplePresent bool // OAS legacy single "example" keyword
	Example        any

	Deprecated bool
	ReadOnly   bool
	WriteOnly  bool

	// Types is the normalized set of JSON Schema primitive type names
	// ("null", "boolean", "object", "array", "number", "string",
	// "integer"). A legacy OAS 3.0 "nullable: true" is folded in here as
	// an added "null" entry; NullableLegacy records that it arrived via
	// the legacy keyword rather than a type array, so the writer can
	// round-trip it back to "nullable" when the target dialect wants that.
	Types          []string
	NullableLegacy bool

	EnumPresent bool
	Enum        []any

	ConstPresent bool
	Const        any

	MultipleOf       *float64
	Maximum          *float64
	ExclusiveMaximum *float64
	Minimum          *float64
	ExclusiveMinimum *float64

	MaxLength *int
	MinLength *int
	Pattern   string

	Items                 *Schema
	PrefixItems           []*Schema
	Contains              *Schema
	MaxItems              *int
	MinItems              *int
	UniqueItems           bool
	MaxContains           *int
	MinContains           *int
	UnevaluatedItems      *Schema

	Properties               map[string]*Schema
	PropertiesOrder          []string
	PatternProperties        map[string]*Schema
	PatternPropertiesOrder   []string
	AdditionalProperties     *Schema
	PropertyNames            *Schema
	UnevaluatedProperties    *Schema
	MaxProperties            *int
	MinProperties            *int
	Required                 []string
	DependentRequired        map[string][]string
	DependentRequiredOrder   []string
	DependentSchemas         map[string]*Schema
	DependentSchemasOrder    []string

	// AllOf/OneOf/AnyOf each store composition members in source order as
	// a parallel list distinguishing a legacy bare $ref string member
	// from a fully inline schema member, so the writer can reproduce the
	// exact original interleave instead of coalescing everything into
	// inline schemas.
	AllOf []CompositionMember
	OneOf []CompositionMember
	AnyOf []CompositionMember
	Not   *Schema

	If   *Schema
	Then *Schema
	Else *Schema

	Format string

	ContentEncoding  string
	ContentMediaType string
	ContentSchema    *Schema

	Discriminator *Discriminator
	XML           *XMLObject
	ExternalDocs  *ExternalDocs

	// CustomKeywords preserves any keyword this model has no named field
	// for (vendor keywords, keywords from vocabularies not modeled here),
	// verbatim, in source order.
	CustomKeywords      map[string]any
	CustomKeywordsOrder []string

	Extensions map[string]any
}

func (s *Schema) GetReference() *Reference {
	if s == nil {
		return nil
	}
	return s.Reference
}

// CompositionMember is one entry of an allOf/oneOf/anyOf list: either a
// legacy bare $ref string or a fully inline Schema.
type CompositionMember struct {
	IsRef  bool
	Ref    string
	Inline *Schema
}

// Discriminator aids polymorphic deserialization for oneOf/anyOf schemas.
type Discriminator struct {
	PropertyName string
	Mapping      map[string]string
	MappingOrder []string
	// DefaultMapping names the schema to use when no mapping entry matches
	// the discriminator value (OAS 3.2+). HasDefaultMapping distinguishes
	// "absent" from "present but empty".
	DefaultMapping    string
	HasDefaultMapping bool
	Extensions        map[string]any
}

// XMLObject adjusts XML model representation for a schema.
type XMLObject struct {
	Name      string
	Namespace string
	Prefix    string
	Attribute bool
	Wrapped   bool
	// NodeType is the OAS 3.2+ "nodeType" keyword ("element", "attribute",
	// "text", "cdata", "none"), empty if not set.
	NodeType   string
	Extensions map[string]any
}
