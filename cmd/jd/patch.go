package main

import (
	"fmt"

	"github.com/jdoc-format/go-jdoc"
	"github.com/jdoc-format/go-jdoc/node"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a document and a patch", cli.ErrUsage)
	}
	doc, err := cfg.readArg(args[0])
	if err != nil {
		return err
	}
	p, err := cfg.readArg(args[1])
	if err != nil {
		return err
	}
	var res *node.Node
	if cfg.MergePatch {
		res, err = jdoc.ApplyMergePatch(doc, p)
	} else {
		res, err = jdoc.ApplyPatch(doc, p)
	}
	if err != nil {
		return err
	}
	return cfg.writeNode(cc.Out, res)
}
