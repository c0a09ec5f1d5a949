package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	align "github.com/signadot/tony-format/go-align"
	"github.com/signadot/tony-format/go-align/encode"
)

func attach(cfg *AttachConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Attach.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: attach requires 2 args, got %v", cli.ErrUsage, args)
	}
	d, err := cfg.readDetached(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	satellite, err := textArg(cc, args[1], cfg.String)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[1], err)
	}
	var a align.Alignment[rune, rune]
	if cfg.Right {
		a, err = align.AttachRight(d, []rune(satellite))
	} else {
		a, err = align.AttachLeft(d, []rune(satellite))
	}
	if err != nil {
		return err
	}
	return encode.EncodeAlignment(a, cc.Out, cfg.encOpts(cc.Out)...)
}
