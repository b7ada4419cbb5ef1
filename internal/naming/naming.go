// Package naming provides the case-conversion and slug helpers used to
// synthesize operation identifiers when a document omits operationId.
package naming

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts s to snake_case. Uppercase runs are lowercased and
// underscore-separated; existing separators (-, ., /) become underscores.
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '-' || r == '.' || r == '/' || r == ' ':
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "_")
}

// PathSlug converts a path template ("/pets/{petId}") into a snake_case
// slug suitable for synthetic operationId construction ("pets_pet_id" or
// similar): template braces are stripped, separators become underscores.
func PathSlug(pathTemplate string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '{', '}':
			return -1
		case '/':
			return '_'
		default:
			return r
		}
	}, pathTemplate)
	slug := ToSnakeCase(cleaned)
	if slug == "" {
		return "root"
	}
	return slug
}

// SynthesizeOperationID builds the synthetic operationId used when a
// document omits one: "<method>_<path-slug>", both lowercased.
func SynthesizeOperationID(method, pathTemplate string) string {
	return strings.ToLower(method) + "_" + PathSlug(pathTemplate)
}
