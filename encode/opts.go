package encode

import "github.com/localekit/locsync/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeJSON() EncodeOption {
	return EncodeFormat(format.JSONFormat)
}
func EncodeYAML() EncodeOption {
	return EncodeFormat(format.YAMLFormat)
}
func EncodeTOML() EncodeOption {
	return EncodeFormat(format.TOMLFormat)
}

// Indent sets the number of spaces per nesting level for JSON and
// YAML output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Compact selects single line JSON output with no newline, for
// embedding values in messages rather than writing files.
func Compact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}
