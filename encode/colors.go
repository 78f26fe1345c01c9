package encode

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/jdoc-format/go-jdoc/node"
)

type Colorable struct {
	Kind node.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	FieldColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range node.Kinds() {
		able := Colorable{Kind: k, Attr: CommentColor}
		colors.Map[able] = color.BlueString
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = node.KindInteger
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = node.KindFloat
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = node.KindNull
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = node.KindBool
	colors.Map[able] = color.CyanString

	able.Kind = node.KindString
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = node.KindMap
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	return colors
}

func (c *Colors) Color(k node.Kind, attr ColorAttr, v string) string {
	fn, ok := c.Map[Colorable{Kind: k, Attr: attr}]
	if !ok {
		fn = c.Default
	}
	return fn("%s", v)
}

func colorDefault(f string, args ...any) string {
	return fmt.Sprintf(f, args...)
}

func (es *encState) color(k node.Kind, attr ColorAttr, v string) string {
	if es.colors == nil {
		return v
	}
	return es.colors.Color(k, attr, v)
}
