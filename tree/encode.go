package tree

import (
	"bytes"
	"encoding/base64"
	"strconv"

	segjson "github.com/segmentio/encoding/json"
	"go.yaml.in/yaml/v4"
)

// EncodeJSON renders a Value tree as JSON, walking the tree directly so
// that OrderedMap key order is preserved (map[string]any round-trips
// through both encoding/json and segmentio/encoding/json would sort keys
// alphabetically, which loses the order the writer package works hard to
// reconstruct). Scalar leaves are encoded with segmentio/encoding/json for
// correct string/number escaping.
func EncodeJSON(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJSONIndent renders v as indented JSON.
func EncodeJSONIndent(v Value, prefix, indent string) ([]byte, error) {
	compact, err := EncodeJSON(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := segjson.Indent(&buf, compact, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSONValue(buf *bytes.Buffer, v Value) error {
	switch v.Kind {
	case KindNull:
		buf.WriteString("null")
		return nil
	case KindBool:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.Int, 10))
		return nil
	case KindFloat:
		buf.WriteString(strconv.FormatFloat(v.Float, 'g', -1, 64))
		return nil
	case KindString:
		encoded, err := segjson.Marshal(v.String)
		if err != nil {
			return err
		}
		buf.Write(encoded)
		return nil
	case KindBlob:
		encoded, err := segjson.Marshal(v.Blob)
		if err != nil {
			return err
		}
		buf.Write(encoded)
		return nil
	case KindSeq:
		buf.WriteByte('[')
		for i, item := range v.Seq {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case KindMap:
		buf.WriteByte('{')
		first := true
		v.Map.Range(func(key string, val Value) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			keyJSON, _ := segjson.Marshal(key)
			buf.Write(keyJSON)
			buf.WriteByte(':')
			_ = writeJSONValue(buf, val)
			return true
		})
		buf.WriteByte('}')
		return nil
	default:
		buf.WriteString("null")
		return nil
	}
}

// EncodeYAML renders a Value tree as YAML by building an equivalent
// yaml.Node tree (preserving OrderedMap order) and marshaling it.
func EncodeYAML(v Value) ([]byte, error) {
	node := valueToNode(v)
	return yaml.Marshal(node)
}

func valueToNode(v Value) *yaml.Node {
	switch v.Kind {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.Bool)}
	case KindInt:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v.Int, 10)}
	case KindFloat:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(v.Float, 'g', -1, 64)}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.String}
	case KindBlob:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!binary", Value: base64.StdEncoding.EncodeToString(v.Blob)}
	case KindSeq:
		n := &yaml.Node{Kind: yaml.SequenceNode, Content: make([]*yaml.Node, 0, len(v.Seq))}
		for _, item := range v.Seq {
			n.Content = append(n.Content, valueToNode(item))
		}
		return n
	case KindMap:
		n := &yaml.Node{Kind: yaml.MappingNode, Content: make([]*yaml.Node, 0, v.Map.Len()*2)}
		v.Map.Range(func(key string, val Value) bool {
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, valueToNode(val))
			return true
		})
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
