package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/go-align/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readDocs(cc, args)
	if err != nil {
		return err
	}
	w := cc.Out
	for i, doc := range docs {
		if err := viewDoc(cfg, w, doc); err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
		if err := writeSep(w, i, len(docs)); err != nil {
			return fmt.Errorf("error writing document %d: %w", i, err)
		}
	}
	return nil
}

func viewDoc(cfg *ViewConfig, w io.Writer, doc []byte) error {
	opts := cfg.encOpts(w)
	if cfg.Detached {
		d, err := cfg.decodeDetached(doc)
		if err != nil {
			return err
		}
		return encode.EncodeDetached(d, w, opts...)
	}
	a, err := cfg.decodeAlignment(doc)
	if err != nil {
		return err
	}
	return encode.EncodeAlignment(a, w, opts...)
}
