package main

import (
	"fmt"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/localekit/locsync/dirsync"
)

func locales(cfg *LocalesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Locales.Parse(cc, args)
	if err != nil {
		cfg.Locales.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: locales takes no arguments", cli.ErrUsage)
	}
	c, err := cfg.resolve()
	if err != nil {
		return err
	}
	d, err := dirsync.Open(c)
	if err != nil {
		return err
	}
	infos, err := d.List()
	if err != nil {
		return lookupErr(err)
	}
	for _, info := range infos {
		fmt.Fprintf(cc.Out, "%s: %s%s\n", filepath.Base(info.Path), describe(info), mark(info))
	}
	return nil
}

func describe(info *dirsync.LocaleInfo) string {
	n := "keys"
	if info.KeyCount == 1 {
		n = "key"
	}
	return fmt.Sprintf("%d %s", info.KeyCount, n)
}

func mark(info *dirsync.LocaleInfo) string {
	switch {
	case info.Reference && info.Tag != "":
		return fmt.Sprintf(" (%s, reference)", info.Tag)
	case info.Reference:
		return " (reference)"
	case info.Tag != "":
		return fmt.Sprintf(" (%s)", info.Tag)
	}
	return ""
}
