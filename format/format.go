// Package format identifies the document formats locale files may use.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
	TOMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
		"t":    TOMLFormat,
		"toml": TOMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromExtension maps a file name to its format by extension. The
// second result is false for unrecognized extensions.
func FromExtension(name string) (Format, bool) {
	switch filepath.Ext(name) {
	case ".json":
		return JSONFormat, true
	case ".yaml", ".yml":
		return YAMLFormat, true
	case ".toml":
		return TOMLFormat, true
	default:
		return 0, false
	}
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case TOMLFormat:
		return []byte("toml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }
func (f Format) IsTOML() bool { return f == TOMLFormat }

// Suffix returns the canonical file extension for this format,
// including the dot.
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case TOMLFormat:
		return ".toml"
	default:
		return ""
	}
}

// Suffixes returns every extension recognized for this format.
func (f Format) Suffixes() []string {
	switch f {
	case JSONFormat:
		return []string{".json"}
	case YAMLFormat:
		return []string{".yaml", ".yml"}
	case TOMLFormat:
		return []string{".toml"}
	default:
		return nil
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, YAMLFormat, TOMLFormat}
}
