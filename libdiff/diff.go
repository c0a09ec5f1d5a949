package libdiff

import (
	"fmt"
	"strings"
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	align "github.com/signadot/tony-format/go-align"
	"github.com/signadot/tony-format/go-align/debug"
)

// DiffStrings aligns the characters of from with those of to.
func DiffStrings(from, to string) align.Alignment[rune, rune] {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	a, err := fromDiffs(diffs, []rune(from), []rune(to))
	if err != nil {
		// diffs of from and to always span them
		panic(err)
	}
	return a
}

// DiffLines aligns the lines of from with those of to. Lines keep their
// trailing newline.
func DiffLines(from, to string) align.Alignment[string, string] {
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(from, to)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	a, err := fromDiffs(diffs, lookup(lines, fromRunes), lookup(lines, toRunes))
	if err != nil {
		panic(err)
	}
	return a
}

func lookup(lines []string, rs []rune) []string {
	res := make([]string, len(rs))
	for i, r := range rs {
		res[i] = lines[r]
	}
	return res
}

// DiffSlices aligns two sequences of comparable elements.
func DiffSlices[E comparable](from, to []E) align.Alignment[E, E] {
	m := map[E]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	a, err := fromDiffs(diffs, from, to)
	if err != nil {
		panic(err)
	}
	return a
}

// mapValues gives every distinct element a rune so that the sequences can
// be diffed as text.
func mapValues[E comparable](m map[E]rune, xs []E) []rune {
	rs := make([]rune, len(xs))
	for i, x := range xs {
		r, ok := m[x]
		if !ok {
			r = rune(len(m))
			m[x] = r
		}
		rs[i] = r
	}
	return rs
}

// FromDiffs builds the character alignment described by an edit script.
func FromDiffs(diffs []diffpatch.Diff) align.Alignment[rune, rune] {
	diffCfg := diffpatch.New()
	from := []rune(diffCfg.DiffText1(diffs))
	to := []rune(diffCfg.DiffText2(diffs))
	a, err := fromDiffs(diffs, from, to)
	if err != nil {
		panic(err)
	}
	return a
}

func fromDiffs[L, R comparable](diffs []diffpatch.Diff, from []L, to []R) (align.Alignment[L, R], error) {
	var (
		pairs  []align.Pair[L, R]
		fi, ti int
		// pending collects deletions and insertions up to the next equal run.
		pending align.Pair[L, R]
	)
	flush := func() {
		if !pending.IsEmpty() {
			pairs = append(pairs, pending)
		}
		pending = align.Pair[L, R]{}
	}
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffDelete:
			if fi+n > len(from) {
				return align.Alignment[L, R]{}, fmt.Errorf("%w: delete past end of source", ErrEditScript)
			}
			pending.Left = append(pending.Left, from[fi:fi+n]...)
			fi += n
		case diffpatch.DiffInsert:
			if ti+n > len(to) {
				return align.Alignment[L, R]{}, fmt.Errorf("%w: insert past end of target", ErrEditScript)
			}
			// insert after delete -> make replace
			pending.Right = append(pending.Right, to[ti:ti+n]...)
			ti += n
		case diffpatch.DiffEqual:
			flush()
			if fi+n > len(from) || ti+n > len(to) {
				return align.Alignment[L, R]{}, fmt.Errorf("%w: equal run past end", ErrEditScript)
			}
			for j := range n {
				pairs = append(pairs, align.Pair[L, R]{
					Left:  from[fi+j : fi+j+1],
					Right: to[ti+j : ti+j+1],
				})
			}
			fi += n
			ti += n
		}
	}
	flush()
	if fi != len(from) || ti != len(to) {
		return align.Alignment[L, R]{}, fmt.Errorf("%w: consumed %d/%d and %d/%d", ErrEditScript, fi, len(from), ti, len(to))
	}
	if debug.Diff() {
		debug.Logf("diff: %d ops, %d pairs\n", len(diffs), len(pairs))
		debug.LogAny(diffs)
	}
	return align.New(pairs), nil
}

// ToDiffs turns a character alignment into an edit script.
func ToDiffs(a align.Alignment[rune, rune]) []diffpatch.Diff {
	diffs := []diffpatch.Diff{}
	for _, p := range a.Pairs() {
		if p.Kind() == align.Equal {
			diffs = append(diffs, diffpatch.Diff{Type: diffpatch.DiffEqual, Text: string(p.Left)})
			continue
		}
		if len(p.Left) != 0 {
			diffs = append(diffs, diffpatch.Diff{Type: diffpatch.DiffDelete, Text: string(p.Left)})
		}
		if len(p.Right) != 0 {
			diffs = append(diffs, diffpatch.Diff{Type: diffpatch.DiffInsert, Text: string(p.Right)})
		}
	}
	return diffpatch.New().DiffCleanupMerge(diffs)
}

// Patch applies the edits of a to text, which need only resemble the left
// side of a.
func Patch(a align.Alignment[rune, rune], text string) (string, error) {
	diffCfg := diffpatch.New()
	patches := diffCfg.PatchMake(string(a.Left()), ToDiffs(a))
	res, applied := diffCfg.PatchApply(patches, text)
	for i, ok := range applied {
		if !ok {
			return "", fmt.Errorf("%w: hunk %d: %s", ErrPatch, i, strings.TrimSpace(patches[i].String()))
		}
	}
	if debug.Diff() {
		debug.Logf("patch: applied %d hunks\n", len(patches))
	}
	return res, nil
}
