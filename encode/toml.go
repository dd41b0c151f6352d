package encode

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/localekit/locsync/ir"
)

func encodeTOML(node *ir.Node, w io.Writer) error {
	if node == nil || node.Type != ir.ObjectType {
		return fmt.Errorf("%w: toml document root must be an object", ErrEncoding)
	}
	d, err := toml.Marshal(tomlValue(node))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

// tomlValue converts to the shapes go-toml marshals. TOML has no
// null, so null leaves come out as empty strings; map keys are
// emitted sorted, matching what parsing a TOML document produces.
func tomlValue(node *ir.Node) any {
	switch node.Type {
	case ir.NullType:
		return ""
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case ir.StringType:
		return node.String
	case ir.ArrayType:
		vs := make([]any, len(node.Values))
		for i, v := range node.Values {
			vs[i] = tomlValue(v)
		}
		return vs
	case ir.ObjectType:
		m := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			m[f] = tomlValue(node.Values[i])
		}
		return m
	}
	return nil
}
