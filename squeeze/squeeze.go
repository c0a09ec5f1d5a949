package squeeze

import (
	"iter"
	"slices"

	"github.com/signadot/tony-format/go-align/debug"
)

// Reduce lazily groups runs of seq and yields reduce applied to each group.
//
// A group is a maximal run of consecutive elements with the same
// non-Standalone tag; a Standalone element forms a group by itself. The
// returned sequence may be iterated more than once if seq may.
func Reduce[T, U any](seq iter.Seq[T], classify func(T) Tag, reduce func([]T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		var (
			group []T
			last  = Standalone
		)
		flush := func() bool {
			if len(group) == 0 {
				return true
			}
			if debug.Squeeze() {
				debug.Logf("squeeze: %s group of %d\n", last, len(group))
			}
			g := group
			group = nil
			return yield(reduce(g))
		}
		for t := range seq {
			tag := classify(t)
			if tag != Standalone && tag == last {
				group = append(group, t)
				continue
			}
			if !flush() {
				return
			}
			last = tag
			if tag == Standalone {
				if !yield(reduce([]T{t})) {
					return
				}
				continue
			}
			group = append(group, t)
		}
		flush()
	}
}

// Collect applies Reduce to a slice and collects the results.
func Collect[T, U any](ts []T, classify func(T) Tag, reduce func([]T) U) []U {
	return slices.Collect(Reduce(slices.Values(ts), classify, reduce))
}
