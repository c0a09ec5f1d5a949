// Package libdiff computes alignments with the diff-match-patch algorithm
// and converts between alignments and edit scripts.
//
// Runs of equal elements become one pair per element. Runs of deletions and
// insertions between two equal runs become a single pair.
//
// # Usage
//
//	a := libdiff.DiffStrings("kitten", "sitting")
//	diffs := libdiff.ToDiffs(a)
//	out, err := libdiff.Patch(a, "kitten")
//
// # Related Packages
//
//   - github.com/sergi/go-diff/diffmatchpatch - the underlying diff
//   - github.com/signadot/tony-format/go-align - Alignment
package libdiff
