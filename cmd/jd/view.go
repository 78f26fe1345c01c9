package main

import (
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		doc, err := cfg.readArg(arg)
		if err != nil {
			return err
		}
		if i != 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := cfg.writeNode(cc.Out, doc); err != nil {
			return err
		}
	}
	return nil
}
