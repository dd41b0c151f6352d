package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/localekit/locsync/ir"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	d, err := yaml.MarshalWithOptions(
		yamlValue(node),
		yaml.Indent(es.indent),
		yaml.IndentSequence(true),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

// yamlValue converts to the shapes goccy marshals, using MapSlice for
// objects to keep field order.
func yamlValue(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.NullType:
		return nil
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
			vs[i] = yamlValue(v)
		}
		return vs
	case ir.ObjectType:
		ms := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			ms[i] = yaml.MapItem{Key: f, Value: yamlValue(node.Values[i])}
		}
		return ms
	}
	return nil
}
