package align

import (
	"fmt"
	"slices"
)

// Pair is one unit of an alignment: a left span and the right span it
// corresponds to.
type Pair[L, R comparable] struct {
	Left  []L
	Right []R
}

// Kind describes what a pair does to turn its left span into its right span.
type Kind int

const (
	// None is the kind of a pair with both sides empty.
	None Kind = iota
	Equal
	Replace
	// Insert pairs have an empty left side.
	Insert
	// Delete pairs have an empty right side.
	Delete
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Equal:
		return "equal"
	case Replace:
		return "replace"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "kind(?)"
	}
}

func (p Pair[L, R]) IsEmpty() bool {
	return len(p.Left) == 0 && len(p.Right) == 0
}

func (p Pair[L, R]) Kind() Kind {
	switch {
	case p.IsEmpty():
		return None
	case len(p.Left) == 0:
		return Insert
	case len(p.Right) == 0:
		return Delete
	}
	if len(p.Left) != len(p.Right) {
		return Replace
	}
	for i := range p.Left {
		if any(p.Left[i]) != any(p.Right[i]) {
			return Replace
		}
	}
	return Equal
}

func (p Pair[L, R]) Swap() Pair[R, L] {
	return Pair[R, L]{Left: p.Right, Right: p.Left}
}

func (p Pair[L, R]) Equal(o Pair[L, R]) bool {
	return slices.Equal(p.Left, o.Left) && slices.Equal(p.Right, o.Right)
}

func (p Pair[L, R]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}

func (p Pair[L, R]) clone() Pair[L, R] {
	return Pair[L, R]{Left: slices.Clone(p.Left), Right: slices.Clone(p.Right)}
}

// ConcatPairs merges ps into one pair holding the concatenated left spans
// and the concatenated right spans.
func ConcatPairs[L, R comparable](ps []Pair[L, R]) Pair[L, R] {
	var res Pair[L, R]
	for _, p := range ps {
		res.Left = append(res.Left, p.Left...)
		res.Right = append(res.Right, p.Right...)
	}
	return res
}
