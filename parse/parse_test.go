package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/localekit/locsync/format"
	"github.com/localekit/locsync/ir"
)

func TestParseJSONOrder(t *testing.T) {
	doc := []byte(`{"zz": "1", "aa": {"m": "2", "b": "3"}, "mm": "4"}`)
	node, err := Parse(doc, ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"zz", "aa", "mm"}, node.Fields); d != "" {
		t.Errorf("top level order (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"m", "b"}, node.Get("aa").Fields); d != "" {
		t.Errorf("nested order (-want +got):\n%s", d)
	}
}

func TestParseJSONValues(t *testing.T) {
	doc := []byte(`{
		"s": "hello",
		"i": 42,
		"f": 1.5,
		"b": true,
		"z": null,
		"arr": ["one", 2, {"k": "v"}],
		"obj": {}
	}`)
	node, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Get("s"); got.Type != ir.StringType || got.String != "hello" {
		t.Errorf("s = %+v", got)
	}
	i := node.Get("i")
	if i.Type != ir.NumberType || i.Int64 == nil || *i.Int64 != 42 {
		t.Errorf("i = %+v", i)
	}
	if i.Number != "42" {
		t.Errorf("i.Number = %q, want source text", i.Number)
	}
	f := node.Get("f")
	if f.Float64 == nil || *f.Float64 != 1.5 {
		t.Errorf("f = %+v", f)
	}
	if got := node.Get("b"); got.Type != ir.BoolType || !got.Bool {
		t.Errorf("b = %+v", got)
	}
	if got := node.Get("z"); got.Type != ir.NullType {
		t.Errorf("z = %+v", got)
	}
	arr := node.Get("arr")
	if arr.Type != ir.ArrayType || arr.Len() != 3 {
		t.Fatalf("arr = %+v", arr)
	}
	if got := arr.Values[2].Get("k"); got == nil || got.String != "v" {
		t.Errorf("arr[2].k = %+v", got)
	}
	obj := node.Get("obj")
	if obj.Type != ir.ObjectType || obj.Len() != 0 {
		t.Errorf("obj = %+v", obj)
	}
}

func TestParseJSONMalformed(t *testing.T) {
	for _, doc := range []string{
		``,
		`{`,
		`{"a": }`,
		`{"a": "b"} trailing`,
		`[1, 2`,
		`{"a" "b"}`,
	} {
		_, err := Parse([]byte(doc))
		if err == nil {
			t.Errorf("Parse(%q): expected error", doc)
			continue
		}
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q): error %v does not wrap ErrMalformed", doc, err)
		}
	}
}

func TestParseYAMLOrder(t *testing.T) {
	doc := []byte("zz: one\naa:\n  m: two\n  b: three\nmm: four\n")
	node, err := Parse(doc, ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"zz", "aa", "mm"}, node.Fields); d != "" {
		t.Errorf("top level order (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"m", "b"}, node.Get("aa").Fields); d != "" {
		t.Errorf("nested order (-want +got):\n%s", d)
	}
}

func TestParseYAMLValues(t *testing.T) {
	doc := []byte("s: hello\nn: 42\nneg: -3\nf: 1.5\nb: true\narr:\n  - one\n  - two\n")
	node, err := Parse(doc, ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Get("s"); got.Type != ir.StringType || got.String != "hello" {
		t.Errorf("s = %+v", got)
	}
	if got := node.Get("n"); got.Type != ir.NumberType || got.Number != "42" {
		t.Errorf("n = %+v", got)
	}
	if got := node.Get("neg"); got.Type != ir.NumberType || got.Number != "-3" {
		t.Errorf("neg = %+v", got)
	}
	if got := node.Get("f"); got.Type != ir.NumberType || got.Float64 == nil || *got.Float64 != 1.5 {
		t.Errorf("f = %+v", got)
	}
	if got := node.Get("b"); got.Type != ir.BoolType || !got.Bool {
		t.Errorf("b = %+v", got)
	}
	if got := node.Get("arr"); got.Type != ir.ArrayType || got.Len() != 2 {
		t.Errorf("arr = %+v", got)
	}
}

func TestParseYAMLMalformed(t *testing.T) {
	_, err := Parse([]byte("a: b\n  bad\nindent: x\n"), ParseYAML())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("error %v does not wrap ErrMalformed", err)
	}
}

func TestParseTOML(t *testing.T) {
	doc := []byte("zz = \"one\"\naa = \"two\"\n[sec]\nk = 7\n")
	node, err := Parse(doc, ParseFormat(format.TOMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	// TOML loses source order; fields come out sorted.
	if d := cmp.Diff([]string{"aa", "sec", "zz"}, node.Fields); d != "" {
		t.Errorf("field order (-want +got):\n%s", d)
	}
	k := node.Get("sec").Get("k")
	if k == nil || k.Int64 == nil || *k.Int64 != 7 {
		t.Errorf("sec.k = %+v", k)
	}
}

func TestParseTOMLMalformed(t *testing.T) {
	_, err := Parse([]byte("= nope\n"), ParseTOML())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("error %v does not wrap ErrMalformed", err)
	}
}
