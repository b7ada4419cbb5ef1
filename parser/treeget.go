package parser

import (
	"strconv"

	"github.com/kestrelapi/oas32/internal/httoken"
	"github.com/kestrelapi/oas32/tree"
)

func getString(m *tree.OrderedMap, key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok || v.Kind != tree.KindString {
		return "", false
	}
	return v.String, true
}

func getStringDefault(m *tree.OrderedMap, key, def string) string {
	if s, ok := getString(m, key); ok {
		return s
	}
	return def
}

func getBool(m *tree.OrderedMap, key string) (bool, bool) {
	v, ok := m.Get(key)
	if !ok || v.Kind != tree.KindBool {
		return false, false
	}
	return v.Bool, true
}

func getBoolDefault(m *tree.OrderedMap, key string, def bool) bool {
	if b, ok := getBool(m, key); ok {
		return b
	}
	return def
}

func getInt(m *tree.OrderedMap, key string) (int, bool) {
	v, ok := m.Get(key)
	if !ok {
		return 0, false
	}
	switch v.Kind {
	case tree.KindInt:
		return int(v.Int), true
	case tree.KindFloat:
		return int(v.Float), true
	}
	return 0, false
}

func getIntPtr(m *tree.OrderedMap, key string) *int {
	if i, ok := getInt(m, key); ok {
		return &i
	}
	return nil
}

func getFloat(m *tree.OrderedMap, key string) (float64, bool) {
	v, ok := m.Get(key)
	if !ok {
		return 0, false
	}
	switch v.Kind {
	case tree.KindFloat:
		return v.Float, true
	case tree.KindInt:
		return float64(v.Int), true
	}
	return 0, false
}

func getFloatPtr(m *tree.OrderedMap, key string) *float64 {
	if f, ok := getFloat(m, key); ok {
		return &f
	}
	return nil
}

func getMap(m *tree.OrderedMap, key string) (*tree.OrderedMap, bool) {
	v, ok := m.Get(key)
	if !ok || v.Kind != tree.KindMap {
		return nil, false
	}
	return v.Map, true
}

func getSeq(m *tree.OrderedMap, key string) ([]tree.Value, bool) {
	v, ok := m.Get(key)
	if !ok || v.Kind != tree.KindSeq {
		return nil, false
	}
	return v.Seq, true
}

func getStringSeq(m *tree.OrderedMap, key string) []string {
	seq, ok := getSeq(m, key)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(seq))
	for _, item := range seq {
		if item.Kind == tree.KindString {
			out = append(out, item.String)
		}
	}
	return out
}

// splitExtensions partitions m's keys into (known, extensions), where
// known is the set of keyword names this caller already consumed, and
// the returned map holds every remaining "x-" key verbatim as tree.Value.
// Returns nil if there are no extension keys, matching the IR convention
// that an absent Extensions map means "none present".
func splitExtensions(m *tree.OrderedMap, known map[string]bool) map[string]any {
	var ext map[string]any
	for _, key := range m.Keys() {
		if known[key] {
			continue
		}
		if !httoken.IsExtensionKey(key) {
			continue
		}
		if ext == nil {
			ext = make(map[string]any)
		}
		v, _ := m.Get(key)
		ext[key] = v
	}
	return ext
}

// customKeywords partitions m's keys into (known, customKeywords),
// capturing every key that is neither a consumed keyword nor an "x-"
// extension, in source order.
func customKeywords(m *tree.OrderedMap, known map[string]bool) (map[string]any, []string) {
	var kw map[string]any
	var order []string
	for _, key := range m.Keys() {
		if known[key] || httoken.IsExtensionKey(key) {
			continue
		}
		if kw == nil {
			kw = make(map[string]any)
		}
		v, _ := m.Get(key)
		kw[key] = v
		order = append(order, key)
	}
	return kw, order
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
