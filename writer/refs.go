package writer

import (
	"strings"

	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/tree"
)

// absolutizeRef prefixes a same-document ref ("#/components/...") with
// self so that a downstream consumer without access to the enclosing
// document's URI can still treat the ref as absolute, per §4.6's
// worked example. A ref that already has a document part, or a document
// with no self, is left untouched.
func (c *writeCtx) absolutizeRef(ref string) string {
	if c.self == "" || ref == "" {
		return ref
	}
	if !strings.HasPrefix(ref, "#") {
		return ref
	}
	return c.self + ref
}

// setReference emits $ref plus its optional summary/description siblings
// onto m. It never emits sibling fields declared directly on the holder
// itself — those are written by the caller alongside this call, since the
// Reference type only carries the reference object's own siblings.
func (c *writeCtx) setReference(m *tree.OrderedMap, ref *ir.Reference) {
	if ref == nil {
		return
	}
	m.Set("$ref", tree.String(c.absolutizeRef(ref.Ref)))
	if ref.HasSummary {
		m.Set("summary", tree.String(ref.Summary))
	}
	if ref.HasDescription {
		m.Set("description", tree.String(ref.Description))
	}
}
