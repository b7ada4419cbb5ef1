package parser

import (
	"github.com/kestrelapi/oas32/internal/httoken"
	"github.com/kestrelapi/oas32/internal/typeinfer"
	"github.com/kestrelapi/oas32/ir"
)

// inferContentType derives the type descriptor stored on Response,
// RequestBody, and Header per §4.2's "Response/request type inference":
// it picks the most specific media-type entry (typeinfer.Rank, ties
// broken by insertion order) and derives a descriptor from its schema,
// its itemSchema (for line-delimited essences), or a schema-less default.
func inferContentType(content map[string]*ir.MediaType, order []string) string {
	if len(order) == 0 {
		return ""
	}
	bestKey := ""
	bestRank := 4
	for _, key := range order {
		essence := mediaTypeEssence(key)
		if r := typeinfer.Rank(essence); r < bestRank {
			bestRank = r
			bestKey = key
		}
	}
	if bestKey == "" {
		return ""
	}
	mt := content[bestKey]
	if mt == nil {
		return ""
	}
	essence := mediaTypeEssence(bestKey)

	if mt.Schema != nil {
		if d := schemaTypeDescriptor(mt.Schema); d != "" {
			return d
		}
	}
	if mt.ItemSchema != nil && httoken.IsLineDelimitedEssence(essence) {
		return typeinfer.List(schemaTypeDescriptor(mt.ItemSchema))
	}
	switch essence {
	case typeinfer.OctetStreamEssence:
		return "ByteArray"
	case typeinfer.FormURLEncodedEssence:
		return "String"
	}
	return ""
}

// mediaTypeEssence strips parameters from a content-map key, falling back
// to the raw key (so wildcard forms like "*/*" still rank) when it isn't a
// strictly valid media type.
func mediaTypeEssence(key string) string {
	if essence, ok := httoken.ParseMediaType(key); ok {
		return essence
	}
	return key
}

// schemaTypeDescriptor derives a type descriptor from a schema's own shape:
// a $ref to a components schema yields "<Name>"; a recognized primitive
// type yields "Int"/"String"/"ByteArray"/...; an array yields "List<T>" of
// its item descriptor. Anything else (object, unconstrained, boolean
// schema) yields "", meaning no inference.
func schemaTypeDescriptor(s *ir.Schema) string {
	if s == nil {
		return ""
	}
	if s.Reference != nil && s.Reference.Ref != "" {
		if name := typeinfer.SchemaRefName(s.Reference.Ref); name != "" {
			return typeinfer.SchemaName(name)
		}
	}
	for _, t := range s.Types {
		if t == "null" {
			continue
		}
		if t == "array" {
			return typeinfer.List(schemaTypeDescriptor(s.Items))
		}
		if d := typeinfer.Primitive(t, s.Format); d != "" {
			return d
		}
	}
	return ""
}
