package encode

import (
	"strings"

	"github.com/fatih/color"

	align "github.com/signadot/tony-format/go-align"
)

type ColorAttr int

const (
	MarkColor ColorAttr = iota
	LeftColor
	RightColor
	SepColor
)

type Colorable struct {
	Kind align.Kind
	Attr ColorAttr
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	kinds := []align.Kind{align.Equal, align.Replace, align.Insert, align.Delete}
	for _, k := range kinds {
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = color.RGB(96, 96, 96).SprintfFunc()
	}
	able := Colorable{Kind: align.Equal}
	able.Attr = MarkColor
	colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()

	able.Kind = align.Replace
	able.Attr = MarkColor
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	able.Attr = LeftColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = RightColor
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = align.Insert
	able.Attr = MarkColor
	colors.Map[able] = color.GreenString
	able.Attr = RightColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = align.Delete
	able.Attr = MarkColor
	colors.Map[able] = color.RedString
	able.Attr = LeftColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k align.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k align.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
