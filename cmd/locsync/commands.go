package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "format",
			Aliases:     []string{"fmt"},
			Description: "document format: json/j, yaml/y, toml/t",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.Format), "(format)"),
		},
		&cli.Opt{
			Name:        "indent",
			Description: "indent width for written documents",
			Type:        cli.NamedFuncOpt(cfg.indentFunc(), "(n)"),
		},
		&cli.Opt{
			Name:        "ignore",
			Aliases:     []string{"i"},
			Description: "skip keys matching an expression, repeatable",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(ignoreOptTypeFunc(cfg)), "(expr)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "locsync").
		WithSynopsis("locsync [opts] [locale]").
		WithDescription("locsync keeps a directory of locale documents in sync with its reference document.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return locsyncMain(cfg, cc, args)
		}).
		WithSubs(
			LocalesCommand(cfg))
}

func LocalesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LocalesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Locales, "locales").
		WithAliases("ls").
		WithSynopsis("locales").
		WithDescription("list the discovered locale documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return locales(cfg, cc, args)
		})
}
