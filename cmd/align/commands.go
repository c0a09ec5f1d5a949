package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "align").
		WithSynopsis("align [opts] command [opts]").
		WithDescription("align is a tool for working with sequence alignments.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return alignMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			ViewCommand(cfg),
			DetachCommand(cfg),
			AttachCommand(cfg),
			ConcatCommand(cfg),
			SwapCommand(cfg),
			SelectCommand(cfg),
			PatchCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-s] a b").
		WithDescription("align the characters of two files or strings").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-d] [files]").
		WithDescription("view alignment documents, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DetachCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DetachConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Detach, "detach").
		WithAliases("de").
		WithOpts(opts...).
		WithSynopsis("detach [-right] [file]").
		WithDescription("detach one side of an alignment onto the other").
		WithRun(func(cc *cli.Context, args []string) error {
			return detach(cfg, cc, args)
		})
}

func AttachCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AttachConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Attach, "attach").
		WithAliases("a", "at").
		WithOpts(opts...).
		WithSynopsis("attach [-right] [-s] <detached> <satellite>").
		WithDescription("attach a detached alignment to the sequence it is anchored on").
		WithRun(func(cc *cli.Context, args []string) error {
			return attach(cfg, cc, args)
		})
}

func ConcatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConcatConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Concat, "concat").
		WithAliases("c", "cat").
		WithOpts(opts...).
		WithSynopsis("concat [-d] a b [more...]").
		WithDescription("concatenate alignments, or join detached alignments").
		WithRun(func(cc *cli.Context, args []string) error {
			return concat(cfg, cc, args)
		})
}

func SwapCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SwapConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Swap, "swap").
		WithAliases("s").
		WithSynopsis("swap [files]").
		WithDescription("exchange the sides of alignments").
		WithRun(func(cc *cli.Context, args []string) error {
			return swap(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("sel").
		WithOpts(opts...).
		WithSynopsis("select -e <expr> [-f] [file]").
		WithDescription(selectDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return selectPairs(cfg, cc, args)
		})
}

const selectDescription = `select prints the pairs of an alignment for which an expression holds.

The expression sees these variables:

  index       position of the pair
  kind        equal, replace, insert or delete
  left        left span, as a string
  right       right span, as a string
  leftStart   offset of the left span
  rightStart  offset of the right span
  leftLen     length of the left span
  rightLen    length of the right span

and the functions text(span), blank(span) and getenv(name).

With -f, select outputs the alignment made of the selected pairs.`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithOpts(opts...).
		WithSynopsis("patch [-s] <alignment> <text>").
		WithDescription("apply the edits of an alignment to text resembling its left side").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
