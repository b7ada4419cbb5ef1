package ir

// Callback is a tagged union: either an inline map of runtime expression to
// PathItem, or a bare $ref to a reusable components.callbacks entry.
type Callback struct {
	Reference *Reference

	// Inline holds the expression -> PathItem map when Reference is nil.
	Inline      map[string]*PathItem
	InlineOrder []string

	Extensions map[string]any
}

func (c *Callback) GetReference() *Reference { return c.Reference }

// IsReference reports whether this Callback is a bare $ref rather than an
// inline expression map.
func (c *Callback) IsReference() bool {
	return c != nil && c.Reference != nil
}
