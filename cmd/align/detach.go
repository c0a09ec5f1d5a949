package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/go-align/encode"
)

func detach(cfg *DetachConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Detach.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: detach takes at most 1 arg, got %v", cli.ErrUsage, args)
	}
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	a, err := cfg.readAlignment(cc, path)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	d := a.DetachLeft()
	if cfg.Right {
		d = a.DetachRight()
	}
	theLog.Debug("detach", "right", cfg.Right, "intervals", d.Len(), "range", d.Range().String())
	return encode.EncodeDetached(d, cc.Out, cfg.encOpts(cc.Out)...)
}
