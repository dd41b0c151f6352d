package parse

import "github.com/localekit/locsync/format"

type parseOpts struct {
	format format.Format
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseTOML() ParseOption {
	return ParseFormat(format.TOMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}
