// Package writer implements deterministic emission of the IR back to
// JSON or YAML: the mirror image of package parser. Each holder emits
// its recognized keywords in a fixed canonical order, then extensions;
// presence flags control whether a field is emitted at all.
package writer

import (
	"fmt"
	"os"

	"github.com/kestrelapi/oas32/internal/fileutil"
	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/tree"
)

// Format selects the serialized form write/writeToFile produce.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// writeCtx carries the self URI used to absolutize component $refs, per
// §4.6: a ref written within a document that declares self is prefixed
// with it so downstream consumers can treat it as absolute.
type writeCtx struct {
	self string
}

// WriteJSON renders def as a JSON document indented with two spaces.
func WriteJSON(def *ir.Definition) (string, error) {
	v := (&writeCtx{self: def.Self}).buildDefinition(def)
	b, err := tree.EncodeJSONIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("writer: encode json: %w", err)
	}
	return string(b), nil
}

// WriteYAML renders def as a YAML document.
func WriteYAML(def *ir.Definition) (string, error) {
	v := (&writeCtx{self: def.Self}).buildDefinition(def)
	b, err := tree.EncodeYAML(v)
	if err != nil {
		return "", fmt.Errorf("writer: encode yaml: %w", err)
	}
	return string(b), nil
}

// Write renders def in the requested format.
func Write(def *ir.Definition, format Format) (string, error) {
	switch format {
	case FormatYAML:
		return WriteYAML(def)
	default:
		return WriteJSON(def)
	}
}

// WriteToFile renders def in the requested format and writes it to path,
// creating or truncating the file with owner-only permissions.
func WriteToFile(def *ir.Definition, path string, format Format) error {
	out, err := Write(def, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writer: write file %s: %w", path, err)
	}
	return nil
}
