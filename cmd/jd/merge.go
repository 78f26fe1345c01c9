package main

import (
	"fmt"

	"github.com/jdoc-format/go-jdoc"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires a base and at least one overlay", cli.ErrUsage)
	}
	res, err := cfg.readArg(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		over, err := cfg.readArg(arg)
		if err != nil {
			return err
		}
		jdoc.Merge(res, over)
	}
	return cfg.writeNode(cc.Out, res)
}
