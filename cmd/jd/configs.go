package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jdoc-format/go-jdoc"
	"github.com/jdoc-format/go-jdoc/encode"
	"github.com/jdoc-format/go-jdoc/node"
	"github.com/jdoc-format/go-jdoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Compact    bool `cli:"name=c aliases=compact desc='render compact subtrees on one line'"`
	Wire       bool `cli:"name=wire desc='machine-readable output: compact, no comments'"`
	Color      bool `cli:"name=color desc='encode with color'"`
	NoComments bool `cli:"name=nc aliases=no-comments desc='drop annotation comments'"`

	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Wire {
		return []encode.EncodeOption{
			encode.Compact(true),
			encode.Comments(false),
		}
	}
	res := []encode.EncodeOption{
		encode.Compact(cfg.Compact),
		encode.Comments(!cfg.NoComments),
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

// readArg parses one input argument, "-" meaning stdin.
func (cfg *MainConfig) readArg(arg string) (*node.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	if cfg.Y {
		doc, err := jdoc.FromYAML(d)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
		return doc, nil
	}
	doc, err := parse.Parse(d, parse.Source(arg))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return doc, nil
}

func (cfg *MainConfig) writeNode(w io.Writer, n *node.Node) error {
	if cfg.Y {
		d, err := jdoc.ToYAML(n)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	if err := encode.Encode(n, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err := w.Write([]byte("\n"))
	return err
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='rewrite files in place'"`

	Fmt *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	MergePatch bool `cli:"name=m aliases=merge desc='treat the patch as a merge patch'"`

	Patch *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	To string `cli:"name=to desc='target format: jdoc or yaml'"`

	Convert *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}
