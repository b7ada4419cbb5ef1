package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// DecodeJSON parses data as JSON into a tagged Value tree, preserving
// object member order (encoding/json's token stream is already ordered;
// we just don't lose it by going through map[string]any first).
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return Value{}, err
	}
	// Ensure no trailing garbage beyond the single top-level value.
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return Value{}, fmt.Errorf("unexpected trailing content after JSON document")
		}
		return Value{}, fmt.Errorf("unexpected trailing content after JSON document: %w", err)
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return numberValue(t), nil
	case json.Delim:
		switch t {
		case '{':
			m := NewOrderedMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("expected string object key, got %T", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				m.Set(key, val)
			}
			// Consume the closing '}'.
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Map(m), nil
		case '[':
			var items []Value
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, val)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Seq(items), nil
		default:
			return Value{}, fmt.Errorf("unexpected JSON delimiter %q", t)
		}
	default:
		return Value{}, fmt.Errorf("unexpected JSON token %T", t)
	}
}

// numberValue distinguishes integer from floating-point JSON numbers, as
// the IR needs to tell "1" from "1.0" for §4.1 ("Numbers are split into
// integer vs floating-point tags").
func numberValue(n json.Number) Value {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return Int(i)
	}
	f, _ := n.Float64()
	return Float(f)
}
