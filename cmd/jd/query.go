package main

import (
	"fmt"

	"github.com/jdoc-format/go-jdoc/eval"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	expr := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := cfg.readArg(arg)
		if err != nil {
			return err
		}
		res, err := eval.EvalNode(expr, doc)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		if err := cfg.writeNode(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
