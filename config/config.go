// Package config resolves tool settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/localekit/locsync/format"
)

const (
	EnvDir         = "LOCSYNC_DIR"
	EnvReference   = "LOCSYNC_REFERENCE"
	EnvFormat      = "LOCSYNC_FORMAT"
	EnvPlaceholder = "LOCSYNC_PLACEHOLDER"
	EnvIndent      = "LOCSYNC_INDENT"
)

type Config struct {
	// Dir holds the locale documents.
	Dir string
	// Reference is the stem of the document the others sync against.
	Reference string
	// Format selects which documents Dir holds.
	Format format.Format
	// Placeholder prefixes injected values; empty selects the
	// built in prefix.
	Placeholder string
	// Indent is the number of spaces per nesting level when
	// documents are written back.
	Indent int
}

func Default() *Config {
	return &Config{
		Dir:       "locales",
		Reference: "en",
		Format:    format.JSONFormat,
		Indent:    2,
	}
}

// FromEnv loads a .env file when one is present, then overlays the
// LOCSYNC_* variables onto the defaults. Command line flags overlay
// the result afterwards.
func FromEnv() (*Config, error) {
	// a missing .env is the normal case
	_ = godotenv.Load()
	cfg := Default()
	if v := os.Getenv(EnvDir); v != "" {
		cfg.Dir = v
	}
	if v := os.Getenv(EnvReference); v != "" {
		cfg.Reference = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvFormat, err)
		}
		cfg.Format = f
	}
	if v := os.Getenv(EnvPlaceholder); v != "" {
		cfg.Placeholder = v
	}
	if v := os.Getenv(EnvIndent); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s: bad indent %q", EnvIndent, v)
		}
		cfg.Indent = n
	}
	return cfg, nil
}

// Validate rejects configurations no run can use.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("locale directory not set")
	}
	if c.Reference == "" {
		return fmt.Errorf("reference locale not set")
	}
	if c.Indent < 0 {
		return fmt.Errorf("negative indent %d", c.Indent)
	}
	return nil
}
