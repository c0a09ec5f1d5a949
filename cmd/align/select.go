package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/go-align/encode"
	"github.com/signadot/tony-format/go-align/eval"
)

func selectPairs(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: select requires -e <expr>", cli.ErrUsage)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: select takes at most 1 file, got %v", cli.ErrUsage, args)
	}
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	p, err := eval.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	a, err := cfg.readAlignment(cc, path)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	if cfg.Filter {
		res, err := eval.Filter(a, p)
		if err != nil {
			return err
		}
		return encode.EncodeAlignment(res, cc.Out, cfg.encOpts(cc.Out)...)
	}
	ms, err := eval.Select(a, p)
	if err != nil {
		return err
	}
	theLog.Debug("select", "expr", p.String(), "pairs", a.Len(), "matches", len(ms))
	for _, m := range ms {
		if _, err := fmt.Fprintln(cc.Out, m.String()); err != nil {
			return err
		}
	}
	return nil
}
