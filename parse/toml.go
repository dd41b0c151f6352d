package parse

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/localekit/locsync/ir"
)

// parseTOML decodes into generic maps. TOML decoding does not expose
// source order, so object fields come out sorted; documents in this
// format get canonical key order instead of round tripped order.
func parseTOML(d []byte) (*ir.Node, error) {
	var v map[string]any
	if err := toml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return tomlNode(v)
}

func tomlNode(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int64:
		return ir.FromInt(t), nil
	case float64:
		return ir.FromFloat(t), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(t))
		for k, item := range t {
			val, err := tomlNode(item)
			if err != nil {
				return nil, err
			}
			m[k] = val
		}
		return ir.FromMap(m), nil
	case []any:
		node := &ir.Node{Type: ir.ArrayType}
		for _, item := range t {
			val, err := tomlNode(item)
			if err != nil {
				return nil, err
			}
			node.Values = append(node.Values, val)
		}
		return node, nil
	case fmt.Stringer:
		// toml.LocalDate and friends
		return ir.FromString(t.String()), nil
	}
	return nil, fmt.Errorf("unsupported toml value of type %T", v)
}
