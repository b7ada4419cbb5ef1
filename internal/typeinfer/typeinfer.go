// Package typeinfer derives the target-language-agnostic type descriptor
// strings ("Int", "String", "ByteArray", "List<T>", "<SchemaName>") the
// parser stores on Response/RequestBody/Header objects, and ranks media
// types for selection when more than one content entry could drive the
// inference.
package typeinfer

import "strings"

// Rank scores a media-type essence by specificity for selecting among
// multiple content entries: literal "type/subtype" (0) is most specific,
// then "type/*+suffix" (1), then "type/*" (2), then "*/*" (3). Ties are
// broken by the caller using insertion order.
func Rank(essence string) int {
	typ, sub, ok := strings.Cut(essence, "/")
	if !ok {
		return 3
	}
	switch {
	case typ == "*" && sub == "*":
		return 3
	case strings.HasPrefix(sub, "*+"):
		return 1
	case sub == "*":
		return 2
	default:
		return 0
	}
}

// Primitive maps a JSON Schema primitive "type" keyword value (optionally
// refined by "format") to its descriptor string. It returns "" for a type
// this algorithm does not reduce to a bare descriptor (object, null).
func Primitive(jsonType, format string) string {
	switch jsonType {
	case "integer":
		return "Int"
	case "number":
		return "Float"
	case "boolean":
		return "Bool"
	case "string":
		if format == "byte" || format == "binary" {
			return "ByteArray"
		}
		return "String"
	default:
		return ""
	}
}

// List wraps an element descriptor as a List<T> descriptor.
func List(elem string) string {
	if elem == "" {
		elem = "Object"
	}
	return "List<" + elem + ">"
}

// SchemaRefName extracts the trailing path segment of a $ref pointing at a
// components schema, e.g. "#/components/schemas/Pet" -> "Pet". It returns
// "" when ref has no trailing segment to extract.
func SchemaRefName(ref string) string {
	i := strings.LastIndexByte(ref, '/')
	if i < 0 || i == len(ref)-1 {
		return ""
	}
	return ref[i+1:]
}

// SchemaName wraps a components schema name as a "<Name>" descriptor.
func SchemaName(name string) string {
	return "<" + name + ">"
}

const (
	// OctetStreamEssence is the schema-less default for binary payloads.
	OctetStreamEssence = "application/octet-stream"
	// FormURLEncodedEssence is the schema-less default for form-encoded payloads.
	FormURLEncodedEssence = "application/x-www-form-urlencoded"
)
