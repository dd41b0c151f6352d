// Package encode writes ir trees back out as locale documents.
package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/localekit/locsync/format"
	"github.com/localekit/locsync/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	compact       bool
	format        format.Format
}

// Encode writes node to w in the configured format. Non compact
// output always ends with a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		format: format.JSONFormat,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		if err := encodeJSON(node, w, es); err != nil {
			return err
		}
		if es.compact {
			return nil
		}
		return writeString(w, "\n")
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	case format.TOMLFormat:
		return encodeTOML(node, w)
	}
	return fmt.Errorf("%w: %v", format.ErrBadFormat, es.format)
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return writeString(w, "null")
	}
	switch node.Type {
	case ir.NullType:
		return writeString(w, "null")
	case ir.BoolType:
		return writeString(w, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		return writeString(w, numberText(node))
	case ir.StringType:
		return writeString(w, quoteJSON(node.String))
	case ir.ArrayType:
		return encodeJSONArray(node, w, es)
	case ir.ObjectType:
		return encodeJSONObject(node, w, es)
	}
	return fmt.Errorf("%w: cannot encode type %v", ErrEncoding, node.Type)
}

func encodeJSONObject(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Len() == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	for i, f := range node.Fields {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeString(w, quoteJSON(f)+es.keySep()); err != nil {
			return err
		}
		if err := encodeJSON(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "}")
}

func encodeJSONArray(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Len() == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "]")
}

func (es *EncState) keySep() string {
	if es.compact {
		return ":"
	}
	return ": "
}

func writeNL(w io.Writer, es *EncState) error {
	if es.compact {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// numberText renders a number from its source text when present. The
// fallbacks only fire for hand built nodes that bypassed the
// constructors.
func numberText(node *ir.Node) string {
	if node.Number != "" {
		return node.Number
	}
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 != nil {
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	}
	return "0"
}

// quoteJSON escapes like encoding/json but leaves <, > and & alone;
// locale strings carry markup that should stay readable in the files.
func quoteJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
