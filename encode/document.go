package encode

import (
	"fmt"

	align "github.com/signadot/tony-format/go-align"
	"github.com/signadot/tony-format/go-align/interval"
)

type PairDoc struct {
	Left  Span `json:"left" yaml:"left"`
	Right Span `json:"right" yaml:"right"`
}

type AlignmentDoc struct {
	Pairs []PairDoc `json:"pairs" yaml:"pairs"`
}

type IntervalDoc struct {
	Start  int  `json:"start" yaml:"start"`
	Length int  `json:"length" yaml:"length"`
	Value  Span `json:"value" yaml:"value"`
}

type DetachedDoc struct {
	Intervals []IntervalDoc `json:"intervals" yaml:"intervals"`
}

func FromAlignment(a align.Alignment[rune, rune]) *AlignmentDoc {
	doc := &AlignmentDoc{Pairs: []PairDoc{}}
	for _, p := range a.Pairs() {
		doc.Pairs = append(doc.Pairs, PairDoc{Left: append(Span{}, p.Left...), Right: append(Span{}, p.Right...)})
	}
	return doc
}

// Alignment rebuilds the alignment, squeezing pairs that were written
// unsqueezed.
func (doc *AlignmentDoc) Alignment() align.Alignment[rune, rune] {
	pairs := make([]align.Pair[rune, rune], len(doc.Pairs))
	for i, p := range doc.Pairs {
		pairs[i] = align.Pair[rune, rune]{Left: p.Left, Right: p.Right}
	}
	return align.New(pairs)
}

func FromDetached(d align.Detached[rune]) *DetachedDoc {
	doc := &DetachedDoc{Intervals: []IntervalDoc{}}
	for _, iv := range d.Intervals() {
		doc.Intervals = append(doc.Intervals, IntervalDoc{
			Start:  iv.Start(),
			Length: iv.Length(),
			Value:  append(Span{}, iv.Value()...),
		})
	}
	return doc
}

func (doc *DetachedDoc) Detached() (align.Detached[rune], error) {
	ivs := make([]interval.Of[[]rune], len(doc.Intervals))
	for i, d := range doc.Intervals {
		iv, err := interval.NewOf(d.Start, d.Length, []rune(d.Value))
		if err != nil {
			return align.Detached[rune]{}, fmt.Errorf("interval %d: %w", i, err)
		}
		ivs[i] = iv
	}
	return align.NewDetached(ivs)
}
