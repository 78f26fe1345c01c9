package main

import (
	"fmt"

	"github.com/jdoc-format/go-jdoc"
	"github.com/jdoc-format/go-jdoc/encode"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	switch cfg.To {
	case "jdoc", "yaml":
	case "":
		return fmt.Errorf("%w: convert requires -to jdoc|yaml", cli.ErrUsage)
	default:
		return fmt.Errorf("%w: unknown target format %q", cli.ErrUsage, cfg.To)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := cfg.readArg(arg)
		if err != nil {
			return err
		}
		if cfg.To == "yaml" {
			d, err := jdoc.ToYAML(doc)
			if err != nil {
				return fmt.Errorf("error converting %s: %w", arg, err)
			}
			if _, err := cc.Out.Write(d); err != nil {
				return err
			}
			continue
		}
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
