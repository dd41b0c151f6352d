package parse

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/localekit/locsync/ir"
)

// parseYAML decodes through goccy's ordered maps so mapping key order
// survives the round trip.
func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return yamlNode(v)
}

func yamlNode(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		return ir.FromNumber(strconv.FormatUint(t, 10)), nil
	case float64:
		return ir.FromFloat(t), nil
	case yaml.MapSlice:
		node := ir.Object()
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprintf("%v", item.Key)
			}
			val, err := yamlNode(item.Value)
			if err != nil {
				return nil, err
			}
			node.Set(key, val)
		}
		return node, nil
	case []any:
		node := &ir.Node{Type: ir.ArrayType}
		for _, item := range t {
			val, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			node.Values = append(node.Values, val)
		}
		return node, nil
	}
	return nil, fmt.Errorf("unsupported yaml value of type %T", v)
}
