// Package maputil collects small generic helpers shared by any package
// that needs deterministic output over a Go map.
package maputil

// SortedKeys returns m's keys in sorted order. Used wherever a map has
// no side-channel order slice of its own (component pools, extension
// maps) but the caller still needs a stable iteration order across runs.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}
