// Package align models correspondences between two independently indexed
// sequences.
//
// An [Alignment] is the paired view: an ordered list of [Pair]s, each
// holding a span of the left sequence and the span of the right sequence it
// corresponds to. Either span may be empty, never both. Concatenating the
// left spans in order gives back the whole left sequence, and likewise for
// the right.
//
// A [Detached] alignment is the single sided view: one sequence's spans as
// a gap free, overlap free run of intervals anchored at offsets of the
// other sequence.
//
//	a := align.New([]align.Pair[rune, rune]{
//		{Left: []rune("ab"), Right: []rune("ab")},
//		{Left: []rune("c")},
//		{Right: []rune("xy")},
//	})
//	d := a.DetachLeft()                     // left spans anchored on the right axis
//	b, err := align.AttachLeft(d, a.Right()) // b.Equal(a)
//
// Values are immutable; every operation returns a new value.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/go-align/interval - ranges and sorted interval runs
//   - github.com/signadot/tony-format/go-align/squeeze - run compression used by New and NewDetached
//   - github.com/signadot/tony-format/go-align/libdiff - alignments from edit scripts
package align
