package interval

import (
	"slices"
)

// Ranger is anything that projects onto a plain Interval.
type Ranger interface {
	Range() Interval
}

// Mode selects whether touching endpoints count for a relation.
type Mode int

const (
	NonStrict Mode = iota
	Strict
)

// IsBefore reports whether a ends before b starts. In NonStrict mode a may
// end exactly where b starts.
func IsBefore(a, b Ranger, mode Mode) bool {
	s, o := a.Range(), b.Range()
	if mode == Strict {
		return s.End() < o.start
	}
	return s.End() <= o.start
}

// IsAfter reports whether a starts after b ends.
func IsAfter(a, b Ranger, mode Mode) bool {
	s, o := a.Range(), b.Range()
	if mode == Strict {
		return s.start > o.End()
	}
	return s.start >= o.End()
}

// Meets reports whether a ends exactly where b starts.
func Meets(a, b Ranger) bool {
	return a.Range().End() == b.Range().start
}

// Starts reports whether a is a proper prefix of b.
func Starts(a, b Ranger) bool {
	s, o := a.Range(), b.Range()
	return s.start == o.start && s.End() < o.End()
}

// Finishes reports whether a is a proper suffix of b.
func Finishes(a, b Ranger) bool {
	s, o := a.Range(), b.Range()
	return s.start > o.start && s.End() == o.End()
}

// Coincides reports whether a and b cover the same range.
func Coincides(a, b Ranger) bool {
	return a.Range() == b.Range()
}

// Contains reports whether b lies within a. In Strict mode neither endpoint
// may be shared.
func Contains(a, b Ranger, mode Mode) bool {
	s, o := a.Range(), b.Range()
	if mode == Strict {
		return s.start < o.start && o.End() < s.End()
	}
	return s.start <= o.start && o.End() <= s.End()
}

// ContainsIndex reports whether index lies within a, endpoints included
// unless mode is Strict.
func ContainsIndex(a Ranger, index int, mode Mode) bool {
	s := a.Range()
	if mode == Strict {
		return s.start < index && index < s.End()
	}
	return s.start <= index && index <= s.End()
}

// Cover returns the smallest interval containing every element of rs. It
// returns false when rs is empty.
func Cover[R Ranger](rs []R) (Interval, bool) {
	if len(rs) == 0 {
		return Interval{}, false
	}
	first := rs[0].Range()
	start, end := first.start, first.End()
	for _, r := range rs[1:] {
		iv := r.Range()
		start = min(start, iv.start)
		end = max(end, iv.End())
	}
	return span(start, end), true
}

// Boundaries returns the distinct start and end points of rs in ascending
// order.
func Boundaries[R Ranger](rs []R) []int {
	res := make([]int, 0, 2*len(rs))
	for _, r := range rs {
		iv := r.Range()
		res = append(res, iv.start, iv.End())
	}
	slices.Sort(res)
	return slices.Compact(res)
}

// Slice returns the elements of xs addressed by r. The range must lie within
// xs.
func Slice[E any](r Ranger, xs []E) []E {
	iv := r.Range()
	return xs[iv.start:iv.End():iv.End()]
}

// SliceString is Slice for byte offsets into a string.
func SliceString(r Ranger, s string) string {
	iv := r.Range()
	return s[iv.start:iv.End()]
}
