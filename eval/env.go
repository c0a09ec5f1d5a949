package eval

import (
	align "github.com/signadot/tony-format/go-align"
)

// PairEnv is the environment an expression is evaluated in.
type PairEnv struct {
	Index      int    `expr:"index"`
	Kind       string `expr:"kind"`
	Left       any    `expr:"left"`
	Right      any    `expr:"right"`
	LeftStart  int    `expr:"leftStart"`
	RightStart int    `expr:"rightStart"`
	LeftLen    int    `expr:"leftLen"`
	RightLen   int    `expr:"rightLen"`
}

func NewPairEnv[L, R comparable](i int, p align.Pair[L, R], span align.PairSpan) PairEnv {
	return PairEnv{
		Index:      i,
		Kind:       p.Kind().String(),
		Left:       sideValue(p.Left),
		Right:      sideValue(p.Right),
		LeftStart:  span.Left.Start(),
		RightStart: span.Right.Start(),
		LeftLen:    span.Left.Length(),
		RightLen:   span.Right.Length(),
	}
}

func sideValue[E comparable](xs []E) any {
	if rs, ok := any(xs).([]rune); ok {
		return string(rs)
	}
	res := make([]any, len(xs))
	for i, x := range xs {
		res[i] = x
	}
	return res
}
