package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/go-align/encode"
)

func swap(cfg *SwapConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Swap.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readDocs(cc, args)
	if err != nil {
		return err
	}
	w := cc.Out
	for i, doc := range docs {
		a, err := cfg.decodeAlignment(doc)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if err := encode.EncodeAlignment(a.Swap(), w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		if err := writeSep(w, i, len(docs)); err != nil {
			return err
		}
	}
	return nil
}
