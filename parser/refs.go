package parser

import (
	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/tree"
)

// extractReference looks for a "$ref" key on m and, if present, builds an
// ir.Reference capturing the OAS 3.1+ sibling "summary"/"description"
// keywords. Returns nil, false when "$ref" is absent.
func extractReference(m *tree.OrderedMap) (*ir.Reference, bool) {
	ref, ok := getString(m, "$ref")
	if !ok {
		return nil, false
	}
	r := &ir.Reference{Ref: ref}
	if s, ok := getString(m, "summary"); ok {
		r.Summary = s
		r.HasSummary = true
	}
	if d, ok := getString(m, "description"); ok {
		r.Description = d
		r.HasDescription = true
	}
	return r, true
}

var refKnownKeys = map[string]bool{"$ref": true, "summary": true, "description": true}
