package main

import (
	"fmt"

	"github.com/jdoc-format/go-jdoc"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := cfg.readArg(args[0])
	if err != nil {
		return err
	}
	to, err := cfg.readArg(args[1])
	if err != nil {
		return err
	}
	return cfg.writeNode(cc.Out, jdoc.Diff(from, to))
}
