package interval

import (
	"fmt"
)

// Interval is the half-open range [Start, Start+Length).
//
// The zero value is the empty interval at 0.
type Interval struct {
	start  int
	length int
}

func New(start, length int) (Interval, error) {
	if length < 0 {
		return Interval{}, fmt.Errorf("%w: length %d < 0", ErrInvalid, length)
	}
	return Interval{start: start, length: length}, nil
}

// Must is like New but panics on a negative length.
func Must(start, length int) Interval {
	iv, err := New(start, length)
	if err != nil {
		panic(err)
	}
	return iv
}

// span builds the interval [start, end). end >= start is the caller's invariant.
func span(start, end int) Interval {
	return Interval{start: start, length: end - start}
}

func (i Interval) Start() int  { return i.start }
func (i Interval) Length() int { return i.length }
func (i Interval) End() int    { return i.start + i.length }

func (i Interval) IsEmpty() bool {
	return i.length == 0
}

// Range implements Ranger.
func (i Interval) Range() Interval {
	return i
}

func (i Interval) Translate(off int) Interval {
	return Interval{start: i.start + off, length: i.length}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d)", i.start, i.End())
}
