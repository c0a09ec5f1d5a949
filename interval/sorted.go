package interval

import (
	"cmp"
	"iter"
	"slices"
)

// Sorted is a sequence of intervals in ascending start order. Intervals
// sharing a start are ordered by length, shortest first, and otherwise keep
// their input order.
//
// Sorted does not require its elements to be disjoint; use HasOverlaps to
// check.
type Sorted[T any] struct {
	ivs []Of[T]
}

// Sort copies ivs into a new Sorted.
func Sort[T any](ivs []Of[T]) *Sorted[T] {
	res := slices.Clone(ivs)
	slices.SortStableFunc(res, compareOf[T])
	return &Sorted[T]{ivs: res}
}

func compareOf[T any](a, b Of[T]) int {
	if c := cmp.Compare(a.iv.start, b.iv.start); c != 0 {
		return c
	}
	return cmp.Compare(a.iv.length, b.iv.length)
}

func (s *Sorted[T]) Len() int {
	return len(s.ivs)
}

func (s *Sorted[T]) At(i int) Of[T] {
	return s.ivs[i]
}

// Intervals returns a copy of the underlying intervals.
func (s *Sorted[T]) Intervals() []Of[T] {
	return slices.Clone(s.ivs)
}

func (s *Sorted[T]) All() iter.Seq[Of[T]] {
	return func(yield func(Of[T]) bool) {
		for _, iv := range s.ivs {
			if !yield(iv) {
				return
			}
		}
	}
}

func (s *Sorted[T]) HasOverlaps() bool {
	_, _, ok := s.FirstOverlap()
	return ok
}

// FirstOverlap returns the first pair of neighbours where next starts
// strictly before prev ends.
func (s *Sorted[T]) FirstOverlap() (prev, next Interval, ok bool) {
	for i := 1; i < len(s.ivs); i++ {
		p, n := s.ivs[i-1].iv, s.ivs[i].iv
		if p.End() > n.start {
			return p, n, true
		}
	}
	return Interval{}, Interval{}, false
}

// Complete returns a copy of s with a filler interval inserted into every
// gap between neighbours. fill supplies the value of each filler from the
// gap it covers.
func (s *Sorted[T]) Complete(fill func(Interval) T) *Sorted[T] {
	res := make([]Of[T], 0, len(s.ivs))
	for i, iv := range s.ivs {
		if i > 0 {
			if last := s.ivs[i-1].iv.End(); last < iv.iv.start {
				gap := span(last, iv.iv.start)
				res = append(res, Of[T]{iv: gap, value: fill(gap)})
			}
		}
		res = append(res, iv)
	}
	return &Sorted[T]{ivs: res}
}

func (s *Sorted[T]) Translate(off int) *Sorted[T] {
	res := make([]Of[T], len(s.ivs))
	for i, iv := range s.ivs {
		res[i] = iv.Translate(off)
	}
	return &Sorted[T]{ivs: res}
}
