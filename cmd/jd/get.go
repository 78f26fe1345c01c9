package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a pointer argument", cli.ErrUsage)
	}
	pointer := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := cfg.readArg(arg)
		if err != nil {
			return err
		}
		res, err := doc.ResolvePointer(pointer)
		if err != nil {
			return fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		if res.IsNull() {
			// nothing there, don't encode and don't yell either
			continue
		}
		if err := cfg.writeNode(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
