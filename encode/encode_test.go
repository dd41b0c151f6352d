package encode

import (
	"bytes"
	"testing"

	"github.com/localekit/locsync/format"
	"github.com/localekit/locsync/ir"
	"github.com/localekit/locsync/parse"
)

func doc(t *testing.T, src string, opts ...parse.ParseOption) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(src), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestEncodeJSON(t *testing.T) {
	node := doc(t, `{"b": "two", "a": {"x": 1, "y": [true, null]}, "empty": {}}`)
	var buf bytes.Buffer
	if err := Encode(node, &buf); err != nil {
		t.Fatal(err)
	}
	want := `{
  "b": "two",
  "a": {
    "x": 1,
    "y": [
      true,
      null
    ]
  },
  "empty": {}
}
`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeJSONIndent(t *testing.T) {
	node := doc(t, `{"a": {"b": "c"}}`)
	var buf bytes.Buffer
	if err := Encode(node, &buf, Indent(4)); err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"a\": {\n        \"b\": \"c\"\n    }\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestEncodeJSONEscapes(t *testing.T) {
	node := ir.FromMap(map[string]*ir.Node{
		"html": ir.FromString(`<b>bold</b> & "quoted"`),
		"ctl":  ir.FromString("a\tb\nc"),
	})
	var buf bytes.Buffer
	if err := Encode(node, &buf, Compact(true)); err != nil {
		t.Fatal(err)
	}
	want := `{"ctl":"a\tb\nc","html":"<b>bold</b> & \"quoted\""}`
	if got := buf.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestMustString(t *testing.T) {
	tests := []struct {
		node *ir.Node
		want string
	}{
		{ir.FromString("x"), `"x"`},
		{ir.FromInt(3), "3"},
		{ir.Null(), "null"},
		{ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("a")}), `[1,"a"]`},
	}
	for _, tc := range tests {
		if got := MustString(tc.node); got != tc.want {
			t.Errorf("MustString = %s, want %s", got, tc.want)
		}
	}
}

func TestRoundTripJSON(t *testing.T) {
	src := `{"greeting": "hi", "menu": {"file": {"save": "Save", "n": 3}}, "tags": ["a", "b"]}`
	node := doc(t, src)
	var buf bytes.Buffer
	if err := Encode(node, &buf); err != nil {
		t.Fatal(err)
	}
	again := doc(t, buf.String())
	if !ir.Equal(node, again) {
		t.Errorf("round trip changed document:\n%s", buf.String())
	}
}

func TestRoundTripYAML(t *testing.T) {
	src := "greeting: hi\nmenu:\n  file:\n    save: Save\n    n: 3\ntags:\n  - a\n  - b\n"
	node := doc(t, src, parse.ParseYAML())
	var buf bytes.Buffer
	if err := Encode(node, &buf, EncodeYAML()); err != nil {
		t.Fatal(err)
	}
	again := doc(t, buf.String(), parse.ParseYAML())
	if !ir.Equal(node, again) {
		t.Errorf("round trip changed document:\n%s", buf.String())
	}
	if got := buf.String(); got != src {
		t.Errorf("got:\n%s\nwant:\n%s", got, src)
	}
}

func TestRoundTripTOML(t *testing.T) {
	src := "greeting = \"hi\"\n\n[menu]\nopen = \"Open\"\nsave = \"Save\"\n"
	node := doc(t, src, parse.ParseTOML())
	var buf bytes.Buffer
	if err := Encode(node, &buf, EncodeFormat(format.TOMLFormat)); err != nil {
		t.Fatal(err)
	}
	again := doc(t, buf.String(), parse.ParseTOML())
	if !ir.Equal(node, again) {
		t.Errorf("round trip changed document:\n%s", buf.String())
	}
}

func TestEncodeTOMLRootError(t *testing.T) {
	if err := Encode(ir.FromString("x"), &bytes.Buffer{}, EncodeTOML()); err == nil {
		t.Fatal("expected error for non object toml root")
	}
}
