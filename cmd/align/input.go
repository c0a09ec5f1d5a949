package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	align "github.com/signadot/tony-format/go-align"
	"github.com/signadot/tony-format/go-align/encode"
)

var docSep = []byte("\n---\n")

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// readDocs reads the documents of the files named in args, or of stdin
// when there are none.
func readDocs(cc *cli.Context, args []string) ([][]byte, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var res [][]byte
	for _, path := range args {
		d, err := readFile(cc, path)
		if err != nil {
			return nil, err
		}
		for _, doc := range bytes.Split(d, docSep) {
			if len(bytes.TrimSpace(doc)) == 0 {
				continue
			}
			res = append(res, doc)
		}
	}
	return res, nil
}

func (cfg *MainConfig) readAlignment(cc *cli.Context, path string) (align.Alignment[rune, rune], error) {
	d, err := readFile(cc, path)
	if err != nil {
		return align.Alignment[rune, rune]{}, err
	}
	return cfg.decodeAlignment(d)
}

func (cfg *MainConfig) decodeAlignment(d []byte) (align.Alignment[rune, rune], error) {
	opts, err := cfg.decOpts()
	if err != nil {
		return align.Alignment[rune, rune]{}, err
	}
	return encode.DecodeAlignment(d, opts...)
}

func (cfg *MainConfig) readDetached(cc *cli.Context, path string) (align.Detached[rune], error) {
	d, err := readFile(cc, path)
	if err != nil {
		return align.Detached[rune]{}, err
	}
	return cfg.decodeDetached(d)
}

func (cfg *MainConfig) decodeDetached(d []byte) (align.Detached[rune], error) {
	opts, err := cfg.decOpts()
	if err != nil {
		return align.Detached[rune]{}, err
	}
	return encode.DecodeDetached(d, opts...)
}

// textArg returns arg itself when asString is set, otherwise the contents
// of the file it names.
func textArg(cc *cli.Context, arg string, asString bool) (string, error) {
	if asString {
		return arg, nil
	}
	d, err := readFile(cc, arg)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func writeSep(w io.Writer, i, n int) error {
	if i >= n-1 {
		return nil
	}
	_, err := w.Write(docSep[1:])
	return err
}
