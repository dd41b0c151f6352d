package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/localekit/locsync/dirsync"
)

func locsyncMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			err := sub.Run(cc, args[1:])
			if errors.Is(err, cli.ErrUsage) {
				sub.Usage(cc, err)
				os.Exit(sub.Exit(cc, err))
			}
			return err
		}
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: at most one locale argument, got %v", cli.ErrUsage, args)
	}
	locale := ""
	if len(args) == 1 {
		locale = args[0]
	}
	return runSync(cfg, cc, locale)
}

// lookupErr pins the exit code for the two not-found conditions;
// everything else keeps its message and the framework's default code.
func lookupErr(err error) error {
	if errors.Is(err, dirsync.ErrNoReference) || errors.Is(err, dirsync.ErrNoLocale) {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitCodeErr(1)
	}
	return err
}
