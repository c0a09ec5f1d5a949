package align

import (
	"slices"
	"strings"

	"github.com/signadot/tony-format/go-align/debug"
	"github.com/signadot/tony-format/go-align/interval"
	"github.com/signadot/tony-format/go-align/squeeze"
)

// Detached is one side of an alignment: a contiguous run of intervals, each
// carrying the span of this side that corresponds to the interval's range
// in the other side.
//
// Neighbouring intervals always meet. No two neighbours both carry an empty
// span, and no two neighbours are both zero length.
type Detached[E comparable] struct {
	ivs []interval.Of[[]E]
}

// NewDetached builds a Detached from ivs in any order.
//
// Intervals that are zero length and carry an empty span are dropped. The
// rest are sorted by start, shorter first on ties. Overlapping
// intervals are an error. Gaps are filled with intervals carrying an empty
// span, then runs of empty spans and runs of zero length intervals are each
// merged into one interval.
func NewDetached[E comparable](ivs []interval.Of[[]E]) (Detached[E], error) {
	sorted := interval.Sort(slices.DeleteFunc(slices.Clone(ivs), isVoid[E]))
	if prev, next, ok := sorted.FirstOverlap(); ok {
		return Detached[E]{}, &OverlapError{Prev: prev, Next: next}
	}
	return Detached[E]{ivs: squeezeDetached(sorted)}, nil
}

// NewDetachedString is NewDetached for string valued intervals, each string
// split into runes.
func NewDetachedString(ivs []interval.Of[string]) (Detached[rune], error) {
	runes := make([]interval.Of[[]rune], len(ivs))
	for i, iv := range ivs {
		runes[i] = interval.Map(iv, func(s string) []rune { return []rune(s) })
	}
	return NewDetached(runes)
}

// isVoid reports whether iv covers nothing and carries nothing. Such an
// interval has no pair to become under attach.
func isVoid[E comparable](iv interval.Of[[]E]) bool {
	return iv.Length() == 0 && len(iv.Value()) == 0
}

func squeezeDetached[E comparable](sorted *interval.Sorted[[]E]) []interval.Of[[]E] {
	completed := sorted.Complete(func(interval.Interval) []E { return []E{} })
	return slices.Collect(squeeze.Reduce(completed.All(), classifyInterval[E], concatIntervals[E]))
}

func classifyInterval[E comparable](iv interval.Of[[]E]) squeeze.Tag {
	switch {
	case len(iv.Value()) == 0:
		return squeeze.Filler
	case iv.Length() == 0:
		return squeeze.Boundary
	default:
		return squeeze.Standalone
	}
}

// concatIntervals merges a contiguous group into one interval covering it.
func concatIntervals[E comparable](group []interval.Of[[]E]) interval.Of[[]E] {
	cover, _ := interval.Cover(group)
	value := []E{}
	for _, iv := range group {
		value = append(value, iv.Value()...)
	}
	return interval.WithValue(cover, value)
}

// Len returns the number of intervals.
func (d Detached[E]) Len() int {
	return len(d.ivs)
}

// Intervals returns a copy of the intervals of d.
func (d Detached[E]) Intervals() []interval.Of[[]E] {
	res := make([]interval.Of[[]E], len(d.ivs))
	for i, iv := range d.ivs {
		res[i] = interval.Map(iv, slices.Clone[[]E])
	}
	return res
}

func (d Detached[E]) Start() int {
	if len(d.ivs) == 0 {
		return 0
	}
	return d.ivs[0].Start()
}

func (d Detached[E]) End() int {
	if len(d.ivs) == 0 {
		return 0
	}
	return d.ivs[len(d.ivs)-1].End()
}

func (d Detached[E]) Length() int {
	return d.End() - d.Start()
}

// Range implements interval.Ranger.
func (d Detached[E]) Range() interval.Interval {
	return interval.Must(d.Start(), d.Length())
}

// Value returns the concatenated spans, which is the whole sequence of this
// side.
func (d Detached[E]) Value() []E {
	res := []E{}
	for _, iv := range d.ivs {
		res = append(res, iv.Value()...)
	}
	return res
}

// ToInterval returns the covered range carrying Value.
func (d Detached[E]) ToInterval() interval.Of[[]E] {
	return interval.WithValue(d.Range(), d.Value())
}

// Join appends o, which must not start before d ends. A gap between the two
// is filled, and empty spans or zero length intervals meeting at the
// junction are merged.
func (d Detached[E]) Join(o Detached[E]) (Detached[E], error) {
	if len(d.ivs) == 0 {
		return o, nil
	}
	if len(o.ivs) == 0 {
		return d, nil
	}
	if d.End() > o.Start() {
		return Detached[E]{}, &OverlapError{Prev: d.Range(), Next: o.Range()}
	}
	if debug.Detach() {
		debug.Logf("join %s with %s\n", d.Range(), o.Range())
	}
	sorted := interval.Sort(slices.Concat(d.ivs, o.ivs))
	return Detached[E]{ivs: squeezeDetached(sorted)}, nil
}

// Concat is Join.
func (d Detached[E]) Concat(o Detached[E]) (Detached[E], error) {
	return d.Join(o)
}

// Translate shifts every interval by off.
func (d Detached[E]) Translate(off int) Detached[E] {
	res := make([]interval.Of[[]E], len(d.ivs))
	for i, iv := range d.ivs {
		res[i] = iv.Translate(off)
	}
	return Detached[E]{ivs: res}
}

func (d Detached[E]) Equal(o Detached[E]) bool {
	return slices.EqualFunc(d.ivs, o.ivs, interval.EqualSlices[E])
}

func (d Detached[E]) String() string {
	b := &strings.Builder{}
	b.WriteByte('[')
	for i, iv := range d.ivs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(iv.String())
	}
	b.WriteByte(']')
	return b.String()
}
