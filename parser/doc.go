// Package parser builds an ir.Definition (or standalone ir.Schema) from
// raw JSON or YAML bytes. Parsing never mutates global state; repeated
// calls with the same input and options produce an identical IR.
//
// Opaque values inside the IR (extension values, example values, schema
// defaults/consts/enum entries, link parameter values) are retained as
// tree.Value rather than being converted to native Go maps/slices, so
// that the writer can re-emit them exactly as read without a lossy
// round-trip through map[string]any.
package parser
