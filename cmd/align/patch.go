package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/go-align/libdiff"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.readAlignment(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	text, err := textArg(cc, args[1], cfg.String)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[1], err)
	}
	if text != string(a.Left()) {
		theLog.Warn("text differs from the left side of the alignment, patching approximately", "file", args[1])
	}
	res, err := libdiff.Patch(a, text)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cc.Out, res)
	return err
}
