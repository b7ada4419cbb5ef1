// Package optioncheck provides shared validation helpers for the functional
// option configs used by the parser, validator, and writer packages.
package optioncheck

import "fmt"

// ExactlyOneInputSource ensures exactly one of the given input-source flags
// is set, returning a configuration error otherwise.
func ExactlyOneInputSource(noneMsg, manyMsg string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}
	if count == 0 {
		return fmt.Errorf("%s", noneMsg)
	}
	if count > 1 {
		return fmt.Errorf("%s", manyMsg)
	}
	return nil
}
