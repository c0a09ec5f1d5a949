package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/signadot/tony-format/go-align/encode"
	"github.com/signadot/tony-format/go-align/format"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render text with color'"`

	T bool `cli:"name=t aliases=text desc='output text'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) decOpts() ([]encode.DecodeOption, error) {
	fmat := format.YAMLFormat
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	if !fmat.Decodable() {
		return nil, fmt.Errorf("%w: cannot read %s input", cli.ErrUsage, fmat)
	}
	return []encode.DecodeOption{encode.DecodeFormat(fmat)}, nil
}

// encOpts defaults to text output, in color when w is a terminal and
// -color was not given.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := format.TextFormat
	switch {
	case cfg.T:
		fmat = format.TextFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
	}
	if !fmat.IsText() {
		return res
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DiffConfig struct {
	*MainConfig
	String  bool `cli:"name=s desc='diff the arguments as strings'"`
	Reverse bool `cli:"name=r desc='swap the sides of the result'"`

	Diff *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Detached bool `cli:"name=d desc='documents are detached alignments'"`

	View *cli.Command
}

type DetachConfig struct {
	*MainConfig
	Right bool `cli:"name=right desc='detach the right side onto the left'"`

	Detach *cli.Command
}

type AttachConfig struct {
	*MainConfig
	Right  bool `cli:"name=right desc='the detached side is the right side'"`
	String bool `cli:"name=s desc='satellite argument is a string'"`

	Attach *cli.Command
}

type ConcatConfig struct {
	*MainConfig
	Detached bool `cli:"name=d desc='join detached alignments'"`

	Concat *cli.Command
}

type SwapConfig struct {
	*MainConfig

	Swap *cli.Command
}

type SelectConfig struct {
	*MainConfig
	Expr   string `cli:"name=e desc='expression selecting pairs'"`
	Filter bool   `cli:"name=f desc='output the alignment of the selected pairs'"`

	Select *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}
