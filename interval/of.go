package interval

import (
	"fmt"
	"slices"
)

// Of is an Interval carrying a value of type T.
type Of[T any] struct {
	iv    Interval
	value T
}

func NewOf[T any](start, length int, v T) (Of[T], error) {
	iv, err := New(start, length)
	if err != nil {
		return Of[T]{}, err
	}
	return Of[T]{iv: iv, value: v}, nil
}

// MustOf is like NewOf but panics on a negative length.
func MustOf[T any](start, length int, v T) Of[T] {
	return Of[T]{iv: Must(start, length), value: v}
}

// WithValue attaches v to the range of r.
func WithValue[T any](r Ranger, v T) Of[T] {
	return Of[T]{iv: r.Range(), value: v}
}

// Map returns an interval over the same range with f applied to the value.
func Map[T, U any](o Of[T], f func(T) U) Of[U] {
	return Of[U]{iv: o.iv, value: f(o.value)}
}

func (o Of[T]) Start() int  { return o.iv.start }
func (o Of[T]) Length() int { return o.iv.length }
func (o Of[T]) End() int    { return o.iv.End() }
func (o Of[T]) Value() T    { return o.value }

// Range implements Ranger, dropping the value.
func (o Of[T]) Range() Interval {
	return o.iv
}

func (o Of[T]) Translate(off int) Of[T] {
	return Of[T]{iv: o.iv.Translate(off), value: o.value}
}

func (o Of[T]) String() string {
	return fmt.Sprintf("%s=%v", o.iv, o.value)
}

// Equal reports whether a and b cover the same range and eq holds for
// their values.
func Equal[T any](a, b Of[T], eq func(T, T) bool) bool {
	return a.iv == b.iv && eq(a.value, b.value)
}

// EqualSlices compares slice-valued intervals element by element.
func EqualSlices[E comparable](a, b Of[[]E]) bool {
	return Equal(a, b, slices.Equal[[]E])
}
