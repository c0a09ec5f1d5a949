package align

import (
	"fmt"

	"github.com/signadot/tony-format/go-align/debug"
	"github.com/signadot/tony-format/go-align/interval"
)

// AttachLeft pairs the spans of d, a left side detached onto the right axis,
// with the slices of right addressed by each interval.
//
// d must lie within right.
func AttachLeft[L, R comparable](d Detached[L], right []R) (Alignment[L, R], error) {
	if err := d.checkCovers(len(right)); err != nil {
		return Alignment[L, R]{}, err
	}
	pairs := make([]Pair[L, R], len(d.ivs))
	for i, iv := range d.ivs {
		pairs[i] = Pair[L, R]{Left: iv.Value(), Right: interval.Slice(iv, right)}
	}
	if debug.Attach() {
		debug.Logf("attach left: %d intervals over %d elements\n", len(pairs), len(right))
	}
	return New(pairs), nil
}

// AttachRight pairs the spans of d, a right side detached onto the left
// axis, with the slices of left addressed by each interval.
func AttachRight[L, R comparable](d Detached[R], left []L) (Alignment[L, R], error) {
	a, err := AttachLeft(d, left)
	if err != nil {
		return Alignment[L, R]{}, err
	}
	return a.Swap(), nil
}

func (d Detached[E]) checkCovers(n int) error {
	start, end := d.Start(), d.End()
	if start < 0 || start > n || end < 0 || end > n {
		return fmt.Errorf("%w: %s outside sequence of length %d", ErrLengthMismatch, d.Range(), n)
	}
	return nil
}
