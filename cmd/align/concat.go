package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/go-align/encode"
)

func concat(cfg *ConcatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Concat.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: concat requires at least 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Detached {
		return joinDetached(cfg, cc, args)
	}
	res, err := cfg.readAlignment(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	for _, path := range args[1:] {
		a, err := cfg.readAlignment(cc, path)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", path, err)
		}
		res = res.Concat(a)
	}
	return encode.EncodeAlignment(res, cc.Out, cfg.encOpts(cc.Out)...)
}

func joinDetached(cfg *ConcatConfig, cc *cli.Context, args []string) error {
	res, err := cfg.readDetached(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	for _, path := range args[1:] {
		d, err := cfg.readDetached(cc, path)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", path, err)
		}
		res, err = res.Join(d)
		if err != nil {
			return fmt.Errorf("error joining %s: %w", path, err)
		}
	}
	return encode.EncodeDetached(res, cc.Out, cfg.encOpts(cc.Out)...)
}
