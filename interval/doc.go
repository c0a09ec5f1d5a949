// Package interval provides half-open integer ranges over an implicit index
// axis, optionally carrying a payload.
//
// # Usage
//
//	iv, err := interval.New(2, 3)        // [2,5)
//	v := interval.MustOf(0, 5, "hello")  // [0,5) carrying "hello"
//	s := interval.Sort(ivs).Complete(fill)
//
// An [Interval] is the range-only projection used for comparisons and slicing.
// [Of] wraps a range together with a value. Both implement [Ranger], so the
// relations in this package accept either.
//
// [Sorted] keeps a collection ordered by start and supplies overlap detection
// and gap completion.
package interval
