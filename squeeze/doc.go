// Package squeeze implements run compression over sequences.
//
// Each element is classified with a [Tag]. Consecutive elements carrying the
// same non-Standalone tag form a group which is folded into one result by a
// caller supplied reducer. Standalone elements are never grouped; each is
// reduced on its own.
//
//	tags:    F F S B B S F
//	groups: [F F] [S] [B B] [S] [F]
package squeeze
