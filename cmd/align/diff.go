package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/go-align/encode"
	"github.com/signadot/tony-format/go-align/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := textArg(cc, args[0], cfg.String)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	to, err := textArg(cc, args[1], cfg.String)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[1], err)
	}
	a := libdiff.DiffStrings(from, to)
	if cfg.Reverse {
		a = a.Swap()
	}
	theLog.Debug("diff", "pairs", a.Len(), "left", len(from), "right", len(to))
	if err := encode.EncodeAlignment(a, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	if from != to {
		return cli.ExitCodeErr(1)
	}
	return nil
}
