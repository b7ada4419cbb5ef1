package writer

import (
	"github.com/kestrelapi/oas32/tree"
)

// newMap is a small convenience constructor so build* functions read as a
// sequence of ordered Set calls.
func newMap() *tree.OrderedMap {
	return tree.NewOrderedMap()
}

func setStr(m *tree.OrderedMap, key, v string) {
	if v != "" {
		m.Set(key, tree.String(v))
	}
}

func setBoolIfTrue(m *tree.OrderedMap, key string, v bool) {
	if v {
		m.Set(key, tree.Bool(v))
	}
}

func setIntPtr(m *tree.OrderedMap, key string, v *int) {
	if v != nil {
		m.Set(key, tree.Int(int64(*v)))
	}
}

func setFloatPtr(m *tree.OrderedMap, key string, v *float64) {
	if v != nil {
		m.Set(key, tree.Float(*v))
	}
}

func setStringSeq(m *tree.OrderedMap, key string, v []string) {
	if len(v) == 0 {
		return
	}
	items := make([]tree.Value, len(v))
	for i, s := range v {
		items[i] = tree.String(s)
	}
	m.Set(key, tree.Seq(items))
}

// rawValue unwraps an IR "any" field back to the tree.Value the parser
// originally stored there. Every such field (schema default/example/const,
// enum entries, extensions, customKeywords, link parameters/requestBody)
// is populated exclusively by the parser with the raw tree.Value it read,
// never a converted native Go value, so the type assertion is total over
// every value the parser can produce; a non-conforming caller-constructed
// IR degrades to null rather than panicking.
func rawValue(a any) tree.Value {
	if a == nil {
		return tree.Null()
	}
	if v, ok := a.(tree.Value); ok {
		return v
	}
	return tree.Null()
}

// mergeExtensions appends every "x-…" key from ext as raw tree.Value
// entries, sorted by key: the IR keeps no per-holder extension order
// slice, and a plain map range would make writer output nondeterministic
// across runs for any document with more than one extension.
func mergeExtensions(m *tree.OrderedMap, ext map[string]any) {
	for _, k := range sortedKeys(ext) {
		m.Set(k, rawValue(ext[k]))
	}
}

// mergeCustomKeywords appends schema keywords this model has no named
// field for, in their original source order.
func mergeCustomKeywords(m *tree.OrderedMap, kw map[string]any, order []string) {
	for _, k := range order {
		m.Set(k, rawValue(kw[k]))
	}
}

