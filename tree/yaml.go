package tree

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// DecodeYAML parses data as YAML into a tagged Value tree, walking the
// yaml.Node AST directly (rather than Unmarshaling into map[string]any)
// so that mapping-key order and the int/float/binary distinctions survive.
func DecodeYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, err
	}
	if doc.Kind == 0 {
		return Null(), nil
	}
	return nodeToValue(&doc)
}

func nodeToValue(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return nodeToValue(n.Content[0])

	case yaml.MappingNode:
		m := NewOrderedMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			val, err := nodeToValue(valNode)
			if err != nil {
				return Value{}, err
			}
			m.Set(keyNode.Value, val)
		}
		return Map(m), nil

	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, child := range n.Content {
			val, err := nodeToValue(child)
			if err != nil {
				return Value{}, err
			}
			items = append(items, val)
		}
		return Seq(items), nil

	case yaml.ScalarNode:
		return scalarNodeToValue(n)

	case yaml.AliasNode:
		if n.Alias != nil {
			return nodeToValue(n.Alias)
		}
		return Null(), nil

	default:
		return Value{}, fmt.Errorf("unsupported YAML node kind %d", n.Kind)
	}
}

func scalarNodeToValue(n *yaml.Node) (Value, error) {
	switch n.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Int(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case "!!binary":
		decoded, err := base64.StdEncoding.DecodeString(n.Value)
		if err != nil {
			return Value{}, err
		}
		return Blob(decoded), nil
	default:
		return String(n.Value), nil
	}
}
