package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/localekit/locsync/config"
	"github.com/localekit/locsync/format"
	"github.com/localekit/locsync/keyrule"
	"github.com/localekit/locsync/report"
)

type MainConfig struct {
	Fix    bool `cli:"name=fix aliases=f desc='inject placeholders for missing keys'"`
	DryRun bool `cli:"name=n aliases=dry-run desc='compute everything, write nothing'"`
	Diff   bool `cli:"name=diff desc='show a line diff of each changed document'"`
	Patch  bool `cli:"name=patch desc='write a merge patch beside each changed document'"`
	Color  bool `cli:"name=color desc='report in color'"`

	Dir         string `cli:"name=dir aliases=d desc='locale directory'"`
	Reference   string `cli:"name=ref aliases=r desc='reference locale'"`
	Placeholder string `cli:"name=placeholder desc='prefix for injected placeholder values'"`
	IgnoreFile  string `cli:"name=ignore-file desc='file of ignore rules, one per line'"`

	Format *format.Format
	Indent *int
	Ignore []string

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) indentFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: indent must be a non-negative integer, got %q", cli.ErrUsage, v)
		}
		cfg.Indent = &n
		return n, nil
	})
}

func ignoreOptTypeFunc(cfg *MainConfig) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		// reject bad rules at flag time, compile the set once later
		if _, err := keyrule.Compile(a); err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		cfg.Ignore = append(cfg.Ignore, a)
		return len(cfg.Ignore), nil
	}
}

// resolve overlays the command line onto the environment configuration.
func (cfg *MainConfig) resolve() (*config.Config, error) {
	c, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	if cfg.Dir != "" {
		c.Dir = cfg.Dir
	}
	if cfg.Reference != "" {
		c.Reference = cfg.Reference
	}
	if cfg.Placeholder != "" {
		c.Placeholder = cfg.Placeholder
	}
	if cfg.Format != nil {
		c.Format = *cfg.Format
	}
	if cfg.Indent != nil {
		c.Indent = *cfg.Indent
	}
	return c, nil
}

func (cfg *MainConfig) rules() (*keyrule.Set, error) {
	var srcs []string
	if cfg.IgnoreFile != "" {
		lines, err := keyrule.ReadLines(cfg.IgnoreFile)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, lines...)
	}
	srcs = append(srcs, cfg.Ignore...)
	if len(srcs) == 0 {
		return nil, nil
	}
	return keyrule.CompileAll(srcs)
}

func (cfg *MainConfig) palette(w io.Writer) *report.Palette {
	if cfg.Color {
		return report.ColorPalette()
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return report.MonoPalette()
	}
	f, ok := w.(*os.File)
	if !ok {
		return report.MonoPalette()
	}
	if isatty.IsTerminal(f.Fd()) {
		return report.ColorPalette()
	}
	return report.MonoPalette()
}

type LocalesConfig struct {
	*MainConfig

	Locales *cli.Command
}
