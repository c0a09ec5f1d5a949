package align

import (
	"slices"
	"strings"

	"github.com/signadot/tony-format/go-align/debug"
	"github.com/signadot/tony-format/go-align/interval"
	"github.com/signadot/tony-format/go-align/squeeze"
)

// Alignment is an ordered list of pairs. Position in the list is the only
// correspondence between the two sides.
//
// No pair of an Alignment is empty on both sides, and no two neighbouring
// pairs are both empty on the left or both empty on the right.
type Alignment[L, R comparable] struct {
	pairs []Pair[L, R]
}

// New builds an Alignment from pairs. Pairs empty on both sides are dropped;
// runs of pairs with an empty left side are merged into one pair, as are runs
// with an empty right side. Pairs with both sides present are kept as they
// are.
func New[L, R comparable](pairs []Pair[L, R]) Alignment[L, R] {
	res := squeeze.Collect(nonEmpty(pairs), classifyPair[L, R], ConcatPairs[L, R])
	return Alignment[L, R]{pairs: res}
}

func nonEmpty[L, R comparable](pairs []Pair[L, R]) []Pair[L, R] {
	res := make([]Pair[L, R], 0, len(pairs))
	for _, p := range pairs {
		if p.IsEmpty() {
			continue
		}
		res = append(res, p.clone())
	}
	return res
}

// classifyPair tags a pair the way NewDetached tags the interval the pair
// becomes under DetachLeft.
func classifyPair[L, R comparable](p Pair[L, R]) squeeze.Tag {
	switch {
	case len(p.Left) == 0:
		return squeeze.Filler
	case len(p.Right) == 0:
		return squeeze.Boundary
	default:
		return squeeze.Standalone
	}
}

func (a Alignment[L, R]) Len() int {
	return len(a.pairs)
}

// Pairs returns a copy of the pairs of a.
func (a Alignment[L, R]) Pairs() []Pair[L, R] {
	res := make([]Pair[L, R], len(a.pairs))
	for i, p := range a.pairs {
		res[i] = p.clone()
	}
	return res
}

// Left returns the left sequence.
func (a Alignment[L, R]) Left() []L {
	var res []L
	for _, p := range a.pairs {
		res = append(res, p.Left...)
	}
	return res
}

// Right returns the right sequence.
func (a Alignment[L, R]) Right() []R {
	var res []R
	for _, p := range a.pairs {
		res = append(res, p.Right...)
	}
	return res
}

// Swap exchanges the sides of every pair.
func (a Alignment[L, R]) Swap() Alignment[R, L] {
	res := make([]Pair[R, L], len(a.pairs))
	for i, p := range a.pairs {
		res[i] = p.Swap()
	}
	return Alignment[R, L]{pairs: res}
}

// Concat appends o to a. One sided pairs meeting at the junction are merged
// as in New.
func (a Alignment[L, R]) Concat(o Alignment[L, R]) Alignment[L, R] {
	return New(slices.Concat(a.pairs, o.pairs))
}

// PairSpan locates one pair in both sequences.
type PairSpan struct {
	Left, Right interval.Interval
}

// Spans returns, for each pair, the interval its left span occupies in the
// left sequence and the interval its right span occupies in the right
// sequence.
func (a Alignment[L, R]) Spans() []PairSpan {
	res := make([]PairSpan, len(a.pairs))
	li, ri := 0, 0
	for i, p := range a.pairs {
		res[i] = PairSpan{
			Left:  interval.Must(li, len(p.Left)),
			Right: interval.Must(ri, len(p.Right)),
		}
		li += len(p.Left)
		ri += len(p.Right)
	}
	return res
}

// DetachLeft anchors each left span on the right axis: the interval of pair
// i starts at the total right length of the pairs before it and is as long
// as the right span of pair i.
func (a Alignment[L, R]) DetachLeft() Detached[L] {
	spans := a.Spans()
	ivs := make([]interval.Of[[]L], len(a.pairs))
	for i, p := range a.pairs {
		ivs[i] = interval.WithValue(spans[i].Right, slices.Clone(p.Left))
	}
	if debug.Detach() {
		debug.Logf("detach left: %d pairs\n", len(ivs))
	}
	return Detached[L]{ivs: ivs}
}

// DetachRight anchors each right span on the left axis.
func (a Alignment[L, R]) DetachRight() Detached[R] {
	return a.Swap().DetachLeft()
}

func (a Alignment[L, R]) Equal(o Alignment[L, R]) bool {
	return slices.EqualFunc(a.pairs, o.pairs, Pair[L, R].Equal)
}

func (a Alignment[L, R]) String() string {
	b := &strings.Builder{}
	b.WriteByte('[')
	for i, p := range a.pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(']')
	return b.String()
}
