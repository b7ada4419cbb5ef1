// Package tree implements the tagged value tree that sits between raw
// bytes and the typed IR: null, bool, int, float, string, an ordered
// sequence, and an ordered mapping, plus an opaque byte blob for YAML
// !!binary scalars. Every downstream stage (parser, writer) consumes only
// this tagged variant, never a specific JSON/YAML library's AST.
package tree

// Kind tags which alternative a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBlob
	KindSeq
	KindMap
)

// Value is the tagged union every tree node is represented as. Exactly one
// of the typed fields is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Bool   bool
	Int    int64
	Float  float64
	String string
	Blob   []byte

	Seq []Value
	Map *OrderedMap
}

// Null returns the null Value.
func Null() Value { return Value{Kind: KindNull} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{Kind: KindInt, Int: i} }

// Float returns a floating-point Value.
func Float(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// String returns a string Value.
func String(s string) Value { return Value{Kind: KindString, String: s} }

// Blob returns an opaque byte-blob Value (decoded from YAML !!binary).
func Blob(b []byte) Value { return Value{Kind: KindBlob, Blob: b} }

// Seq returns a sequence Value.
func Seq(items []Value) Value { return Value{Kind: KindSeq, Seq: items} }

// Map returns a mapping Value.
func Map(m *OrderedMap) Value { return Value{Kind: KindMap, Map: m} }

// IsNull reports whether v is the null value (or the zero Value).
func (v Value) IsNull() bool { return v.Kind == KindNull }

// AsBool returns the boolean content and whether Kind was KindBool.
func (v Value) AsBool() (bool, bool) { return v.Bool, v.Kind == KindBool }

// AsString returns the string content and whether Kind was KindString.
func (v Value) AsString() (string, bool) { return v.String, v.Kind == KindString }

// AsMap returns the mapping and whether Kind was KindMap.
func (v Value) AsMap() (*OrderedMap, bool) {
	if v.Kind != KindMap {
		return nil, false
	}
	return v.Map, true
}

// AsSeq returns the sequence and whether Kind was KindSeq.
func (v Value) AsSeq() ([]Value, bool) {
	if v.Kind != KindSeq {
		return nil, false
	}
	return v.Seq, true
}

// OrderedMap is an insertion-ordered string-keyed map, required because
// both JSON Schema and OpenAPI treat member order as semantically
// significant (composition alternatives, custom-keyword round-trip, and
// stable writer output).
type OrderedMap struct {
	keys   []string
	values map[string]Value
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]Value)}
}

// Set inserts or updates key, appending it to the key order on first
// insertion and leaving the order unchanged on update.
func (m *OrderedMap) Set(key string, v Value) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value for key and whether it was present.
func (m *OrderedMap) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Delete removes key, preserving the order of the remaining keys.
func (m *OrderedMap) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Range calls fn for each entry in insertion order, stopping early if fn
// returns false.
func (m *OrderedMap) Range(fn func(key string, v Value) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}
