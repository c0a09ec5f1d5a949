package align

import (
	"errors"
	"fmt"

	"github.com/signadot/tony-format/go-align/interval"
)

var (
	ErrOverlap         = errors.New("interval overlap")
	ErrLengthMismatch  = errors.New("length mismatch")
	ErrInvalidInterval = interval.ErrInvalid
)

// OverlapError reports two neighbouring intervals where Next starts before
// Prev ends.
type OverlapError struct {
	Prev, Next interval.Interval
}

func (e *OverlapError) Unwrap() error {
	return ErrOverlap
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s: %s and %s", ErrOverlap.Error(), e.Prev, e.Next)
}
