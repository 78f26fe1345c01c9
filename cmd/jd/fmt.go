package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jdoc-format/go-jdoc/encode"

	"github.com/scott-cotton/cli"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := cfg.readArg(arg)
		if err != nil {
			return err
		}
		if !cfg.Write {
			if err := cfg.writeNode(cc.Out, doc); err != nil {
				return err
			}
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(doc, buf, encode.Compact(cfg.Compact), encode.Comments(!cfg.NoComments)); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		buf.WriteByte('\n')
		if err := os.WriteFile(arg, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("could not rewrite %q: %w", arg, err)
		}
	}
	return nil
}
