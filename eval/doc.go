// Package eval selects the pairs of an alignment with expr-lang
// expressions.
//
// An expression sees one pair at a time through [PairEnv]:
//
//	kind == "replace" && leftLen > 1
//	left contains "x" || index < 3
//
// Character spans are strings; spans of other element types are lists.
//
// # Related Packages
//
//   - github.com/expr-lang/expr - the expression language
//   - github.com/signadot/tony-format/go-align - Alignment
package eval
