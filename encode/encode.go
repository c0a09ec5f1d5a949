package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"

	align "github.com/signadot/tony-format/go-align"
	"github.com/signadot/tony-format/go-align/format"
)

type EncState struct {
	indent int
	format format.Format
	Color  func(align.Kind, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) color(k align.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func EncodeAlignment(a align.Alignment[rune, rune], w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if es.format.IsText() {
		return writeString(w, es.alignmentText(a))
	}
	return es.document(FromAlignment(a), w)
}

func EncodeDetached(d align.Detached[rune], w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if es.format.IsText() {
		return writeString(w, es.detachedText(d))
	}
	return es.document(FromDetached(d), w)
}

// MustString renders a in text, without color.
func MustString(a align.Alignment[rune, rune]) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeAlignment(a, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

func (es *EncState) document(doc any, w io.Writer) error {
	var (
		d   []byte
		err error
	)
	switch es.format {
	case format.YAMLFormat:
		d, err = yaml.Marshal(doc)
	case format.JSONFormat:
		d, err = json.MarshalIndent(doc, "", strings.Repeat(" ", es.indent))
		d = append(d, '\n')
	default:
		return fmt.Errorf("%w: cannot encode %s", format.ErrBadFormat, es.format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func (es *EncState) alignmentText(a align.Alignment[rune, rune]) string {
	pairs := a.Pairs()
	width := 0
	for _, p := range pairs {
		width = max(width, utf8.RuneCountInString(Span(p.Left).quote()))
	}
	buf := &strings.Builder{}
	for _, p := range pairs {
		k := p.Kind()
		left, right := "", ""
		if len(p.Left) != 0 {
			left = Span(p.Left).quote()
		}
		if len(p.Right) != 0 {
			right = Span(p.Right).quote()
		}
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(left))
		fmt.Fprintf(buf, "%s %s%s %s %s\n",
			es.color(k, MarkColor, kindMark(k)),
			es.color(k, LeftColor, left), pad,
			es.color(k, SepColor, "|"),
			es.color(k, RightColor, right))
	}
	return buf.String()
}

func (es *EncState) detachedText(d align.Detached[rune]) string {
	buf := &strings.Builder{}
	for _, iv := range d.Intervals() {
		k := align.Equal
		switch {
		case iv.Length() == 0:
			k = align.Insert
		case len(iv.Value()) == 0:
			k = align.Delete
		}
		fmt.Fprintf(buf, "%s %s\n",
			es.color(k, MarkColor, iv.Range().String()),
			es.color(k, RightColor, Span(iv.Value()).quote()))
	}
	return buf.String()
}

func kindMark(k align.Kind) string {
	switch k {
	case align.Equal:
		return "="
	case align.Replace:
		return "~"
	case align.Insert:
		return "+"
	case align.Delete:
		return "-"
	default:
		return "?"
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
