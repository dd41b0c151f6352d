package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/localekit/locsync/ir"
)

// parseJSON decodes with a token walk rather than unmarshalling into
// maps, so object key order survives.
func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := jsonValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after document")
	}
	return node, nil
}

func jsonValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %v", v)
	case string:
		return ir.FromString(v), nil
	case json.Number:
		return ir.FromNumber(v.String()), nil
	case bool:
		return ir.FromBool(v), nil
	case nil:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func jsonObject(dec *json.Decoder) (*ir.Node, error) {
	node := ir.Object()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", keyTok)
		}
		val, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		node.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return node, nil
}

func jsonArray(dec *json.Decoder) (*ir.Node, error) {
	node := &ir.Node{Type: ir.ArrayType}
	for dec.More() {
		val, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		node.Values = append(node.Values, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return node, nil
}
