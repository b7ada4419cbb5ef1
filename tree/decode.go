package tree

import "fmt"

// Decode parses data according to format (resolving FormatAuto by
// sniffing) into a tagged Value tree.
func Decode(data []byte, format Format) (Value, Format, error) {
	resolved := Resolve(format, data)
	switch resolved {
	case FormatJSON:
		v, err := DecodeJSON(data)
		return v, resolved, err
	case FormatYAML:
		v, err := DecodeYAML(data)
		return v, resolved, err
	default:
		return Value{}, resolved, fmt.Errorf("unknown format %v", resolved)
	}
}
