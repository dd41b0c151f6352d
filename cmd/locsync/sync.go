package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/localekit/locsync/dirsync"
	"github.com/localekit/locsync/report"
	"github.com/localekit/locsync/syncop"
)

func runSync(cfg *MainConfig, cc *cli.Context, locale string) error {
	c, err := cfg.resolve()
	if err != nil {
		return err
	}
	rules, err := cfg.rules()
	if err != nil {
		return err
	}
	d, err := dirsync.Open(c)
	if err != nil {
		return err
	}
	opts := &dirsync.Options{Fix: cfg.Fix, DryRun: cfg.DryRun, Rules: rules}
	pal := cfg.palette(cc.Out)
	pr := report.NewPrinter(cc.Out, pal)

	if locale != "" {
		out, err := d.SyncLocale(locale, opts)
		if err != nil {
			return lookupErr(err)
		}
		pr.Outcome(out)
		return afterSync(cfg, cc, d, out, pal)
	}

	sum, err := d.SyncAll(opts)
	if err != nil {
		return lookupErr(err)
	}
	pr.Reference(sum.Reference)
	for _, out := range sum.Outcomes {
		pr.Outcome(out)
		if err := afterSync(cfg, cc, d, out, pal); err != nil {
			return err
		}
	}
	pr.Summary(sum)
	return nil
}

// afterSync emits the optional per-document artifacts: the -diff
// preview and the -patch merge patch. Both work from the in memory
// trees, so they also cover dry runs.
func afterSync(cfg *MainConfig, cc *cli.Context, d *dirsync.Dir, out *dirsync.Outcome, pal *report.Palette) error {
	if !out.Changed() {
		return nil
	}
	if cfg.Diff {
		before, err := d.Render(out.Before)
		if err != nil {
			return fmt.Errorf("render %s: %w", out.Path, err)
		}
		after, err := d.Render(out.After)
		if err != nil {
			return fmt.Errorf("render %s: %w", out.Path, err)
		}
		fmt.Fprint(cc.Out, report.TextDiff(string(before), string(after), pal))
	}
	if cfg.Patch {
		patch, err := syncop.MergePatch(out.Before, out.After)
		if err != nil {
			return fmt.Errorf("patch %s: %w", out.Path, err)
		}
		if err := os.WriteFile(out.Path+".patch", append(patch, '\n'), 0644); err != nil {
			return fmt.Errorf("patch %s: %w", out.Path, err)
		}
	}
	return nil
}
