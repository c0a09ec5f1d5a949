package align

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/tony-format/go-align/interval"
)

type rv = interval.Of[[]rune]

func iv(start, length int, s string) rv {
	return interval.MustOf(start, length, []rune(s))
}

var cmpRuneIntervals = cmp.Comparer(interval.EqualSlices[rune])

type detachedTest struct {
	name string
	in   []rv
	want []rv
}

var detachedTests = []detachedTest{
	{
		name: "already complete",
		in:   []rv{iv(0, 3, "A"), iv(3, 5, "B"), iv(8, 0, "C"), iv(8, 3, "D")},
		want: []rv{iv(0, 3, "A"), iv(3, 5, "B"), iv(8, 0, "C"), iv(8, 3, "D")},
	},
	{
		name: "zero length first",
		in:   []rv{iv(0, 0, "A"), iv(0, 5, "B"), iv(5, 3, "C"), iv(8, 3, "D")},
		want: []rv{iv(0, 0, "A"), iv(0, 5, "B"), iv(5, 3, "C"), iv(8, 3, "D")},
	},
	{
		name: "zero length last",
		in:   []rv{iv(0, 3, "A"), iv(3, 2, "B"), iv(5, 5, "C"), iv(10, 0, "D")},
		want: []rv{iv(0, 3, "A"), iv(3, 2, "B"), iv(5, 5, "C"), iv(10, 0, "D")},
	},
	{
		name: "zero length given after its neighbour",
		in:   []rv{iv(0, 5, "B"), iv(5, 3, "C"), iv(0, 0, "A")},
		want: []rv{iv(0, 0, "A"), iv(0, 5, "B"), iv(5, 3, "C")},
	},
	{
		name: "consecutive empty values",
		in:   []rv{iv(0, 3, "AB"), iv(3, 2, ""), iv(5, 3, ""), iv(8, 1, "CD")},
		want: []rv{iv(0, 3, "AB"), iv(3, 5, ""), iv(8, 1, "CD")},
	},
	{
		name: "consecutive zero length",
		in:   []rv{iv(0, 5, "A"), iv(5, 0, "B"), iv(5, 0, "C"), iv(5, 3, "D")},
		want: []rv{iv(0, 5, "A"), iv(5, 0, "BC"), iv(5, 3, "D")},
	},
	{
		name: "gap between intervals",
		in:   []rv{iv(0, 5, "A"), iv(7, 5, "B"), iv(12, 2, "C")},
		want: []rv{iv(0, 5, "A"), iv(5, 2, ""), iv(7, 5, "B"), iv(12, 2, "C")},
	},
	{
		name: "gap merges with empty value",
		in:   []rv{iv(0, 5, "A"), iv(7, 3, ""), iv(10, 2, "C")},
		want: []rv{iv(0, 5, "A"), iv(5, 5, ""), iv(10, 2, "C")},
	},
	{
		name: "empty",
		in:   nil,
		want: []rv{},
	},
}

func TestNewDetached(t *testing.T) {
	for _, tt := range detachedTests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDetached(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, d.Intervals(), cmpRuneIntervals); diff != "" {
				t.Errorf("Intervals mismatch (-want +got):\n%s", diff)
			}
			assertDetachedInvariants(t, d)
		})
	}
}

func assertDetachedInvariants[E comparable](t *testing.T, d Detached[E]) {
	t.Helper()
	for i := 1; i < len(d.ivs); i++ {
		p, n := d.ivs[i-1], d.ivs[i]
		if p.End() != n.Start() {
			t.Errorf("intervals %s and %s do not meet", p, n)
		}
		if len(p.Value()) == 0 && len(n.Value()) == 0 {
			t.Errorf("intervals %s and %s both carry nothing", p, n)
		}
		if p.Length() == 0 && n.Length() == 0 {
			t.Errorf("intervals %s and %s are both zero length", p, n)
		}
	}
}

func TestNewDetachedString(t *testing.T) {
	d, err := NewDetachedString([]interval.Of[string]{
		interval.MustOf(0, 3, "ABC"),
		interval.MustOf(3, 5, "DE"),
		interval.MustOf(8, 3, "GH"),
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []rv{iv(0, 3, "ABC"), iv(3, 5, "DE"), iv(8, 3, "GH")}
	if diff := cmp.Diff(want, d.Intervals(), cmpRuneIntervals); diff != "" {
		t.Errorf("Intervals mismatch (-want +got):\n%s", diff)
	}
}

func TestNewDetachedOverlap(t *testing.T) {
	_, err := NewDetached([]rv{iv(0, 5, "A"), iv(5, 5, "B"), iv(8, 5, "C")})
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}
	var oe *OverlapError
	if !errors.As(err, &oe) {
		t.Fatalf("expected *OverlapError, got %T", err)
	}
	if oe.Prev != interval.Must(5, 5) || oe.Next != interval.Must(8, 5) {
		t.Errorf("got %s %s", oe.Prev, oe.Next)
	}
	if _, err := NewDetached([]rv{iv(0, 5, "A"), iv(2, 0, "B")}); !errors.Is(err, ErrOverlap) {
		t.Errorf("zero length interval inside another: expected ErrOverlap, got %v", err)
	}
}

func TestValueAndToInterval(t *testing.T) {
	d, err := NewDetached([]rv{
		iv(-2, 0, "X"),
		iv(-2, 3, "AB"),
		iv(3, 0, "C"),
		iv(3, 5, ""),
		iv(8, 2, "D"),
		iv(12, 0, "E"),
		iv(12, 3, "FG"),
		iv(15, 0, "H"),
	})
	if err != nil {
		t.Fatal(err)
	}
	wantValue := runes("XABCDEFGH")
	if diff := cmp.Diff(wantValue, d.Value()); diff != "" {
		t.Errorf("Value mismatch (-want +got):\n%s", diff)
	}
	if got, want := d.ToInterval(), iv(-2, 17, "XABCDEFGH"); !interval.EqualSlices(got, want) {
		t.Errorf("ToInterval() = %s, want %s", got, want)
	}
	if d.Range() != interval.Must(-2, 17) {
		t.Errorf("Range() = %s", d.Range())
	}
	assertDetachedInvariants(t, d)
}

func mustDetached(t *testing.T, ivs ...rv) Detached[rune] {
	t.Helper()
	d, err := NewDetached(ivs)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestJoinEndsMeet(t *testing.T) {
	left := mustDetached(t, iv(0, 5, "A"), iv(7, 5, "B"), iv(12, 2, "C"))
	right := mustDetached(t, iv(14, 5, "D"), iv(19, 2, "E"), iv(21, 4, "F"))
	got, err := left.Join(right)
	if err != nil {
		t.Fatal(err)
	}
	want := append(left.Intervals(), right.Intervals()...)
	if diff := cmp.Diff(want, got.Intervals(), cmpRuneIntervals); diff != "" {
		t.Errorf("Join mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinConsecutiveZeroLength(t *testing.T) {
	left := mustDetached(t, iv(0, 7, "A"), iv(7, 5, "B"), iv(12, 0, "C"))
	right := mustDetached(t, iv(12, 0, "D"), iv(12, 2, "E"), iv(14, 4, "F"))
	want := Detached[rune]{ivs: []rv{
		iv(0, 7, "A"),
		iv(7, 5, "B"),
		iv(12, 0, "CD"),
		iv(12, 2, "E"),
		iv(14, 4, "F"),
	}}
	got, err := left.Join(right)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestJoinGap(t *testing.T) {
	left := mustDetached(t, iv(0, 5, "A"), iv(7, 5, "B"), iv(12, 2, "C"))
	right := mustDetached(t, iv(15, 0, "D"), iv(15, 2, "E"), iv(17, 4, "F"))
	got, err := left.Concat(right)
	if err != nil {
		t.Fatal(err)
	}
	want := append(left.Intervals(), iv(14, 1, ""))
	want = append(want, right.Intervals()...)
	if diff := cmp.Diff(want, got.Intervals(), cmpRuneIntervals); diff != "" {
		t.Errorf("Join mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinOverlap(t *testing.T) {
	left := mustDetached(t, iv(0, 5, "A"), iv(7, 5, "B"), iv(12, 4, "C"))
	right := mustDetached(t, iv(15, 0, "D"), iv(15, 2, "E"), iv(17, 4, "F"))
	if _, err := left.Join(right); !errors.Is(err, ErrOverlap) {
		t.Errorf("expected ErrOverlap, got %v", err)
	}
}

func TestJoinEmpty(t *testing.T) {
	d := mustDetached(t, iv(3, 2, "A"))
	var empty Detached[rune]
	for _, got := range []func() (Detached[rune], error){
		func() (Detached[rune], error) { return d.Join(empty) },
		func() (Detached[rune], error) { return empty.Join(d) },
	} {
		j, err := got()
		if err != nil {
			t.Fatal(err)
		}
		if !j.Equal(d) {
			t.Errorf("got %s want %s", j, d)
		}
	}
}

func TestTranslate(t *testing.T) {
	d := mustDetached(t, iv(0, 2, "A"), iv(2, 0, "B"), iv(2, 3, ""))
	got := d.Translate(10)
	want := []rv{iv(10, 2, "A"), iv(12, 0, "B"), iv(12, 3, "")}
	if diff := cmp.Diff(want, got.Intervals(), cmpRuneIntervals); diff != "" {
		t.Errorf("Translate mismatch (-want +got):\n%s", diff)
	}
	if d.Start() != 0 {
		t.Errorf("Translate modified its receiver")
	}
}

func TestAttachWholeSequence(t *testing.T) {
	want := Alignment[rune, int]{pairs: []Pair[rune, int]{
		{Left: runes("A")},
		{Left: runes("BC"), Right: []int{1, 2, 3}},
		{Left: runes("D"), Right: []int{4, 5, 6}},
		{Left: runes("EFG"), Right: []int{7}},
		{Right: []int{8, 9}},
		{Left: runes("H"), Right: []int{10}},
	}}

	leftSide := mustDetached(t,
		iv(0, 0, "A"),
		iv(0, 3, "BC"),
		iv(3, 3, "D"),
		iv(6, 1, "EFG"),
		iv(7, 2, ""),
		iv(9, 1, "H"),
	)
	right := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	got, err := AttachLeft(leftSide, right)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("AttachLeft:\ngot  %s\nwant %s", got, want)
	}

	rightSide, err := NewDetached([]interval.Of[[]int]{
		interval.MustOf(0, 1, []int{}),
		interval.MustOf(1, 2, []int{1, 2, 3}),
		interval.MustOf(3, 1, []int{4, 5, 6}),
		interval.MustOf(4, 3, []int{7}),
		interval.MustOf(7, 0, []int{8, 9}),
		interval.MustOf(7, 1, []int{10}),
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err = AttachRight(rightSide, runes("ABCDEFGH"))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("AttachRight:\ngot  %s\nwant %s", got, want)
	}
}

func TestAttachPartOfSequence(t *testing.T) {
	want := Alignment[rune, int]{pairs: []Pair[rune, int]{
		{Left: runes("D"), Right: []int{4, 5, 6}},
		{Left: runes("EFG"), Right: []int{7}},
		{Right: []int{8, 9}},
	}}
	leftSide := mustDetached(t, iv(3, 3, "D"), iv(6, 1, "EFG"), iv(7, 2, ""))
	got, err := AttachLeft(leftSide, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("AttachLeft:\ngot  %s\nwant %s", got, want)
	}

	rightSide, err := NewDetached([]interval.Of[[]int]{
		interval.MustOf(3, 1, []int{4, 5, 6}),
		interval.MustOf(4, 3, []int{7}),
		interval.MustOf(7, 0, []int{8, 9}),
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err = AttachRight(rightSide, runes("ABCDEFGH"))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("AttachRight:\ngot  %s\nwant %s", got, want)
	}
}

func TestAttachOutOfBounds(t *testing.T) {
	seq := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for _, d := range []Detached[rune]{
		mustDetached(t, iv(-2, 3, "D"), iv(1, 2, "EFG"), iv(3, 5, "")),
		mustDetached(t, iv(1, 3, "D"), iv(4, 2, "EFG"), iv(6, 5, "")),
	} {
		if _, err := AttachLeft(d, seq); !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("AttachLeft(%s): expected ErrLengthMismatch, got %v", d, err)
		}
		if _, err := AttachRight(d, seq); !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("AttachRight(%s): expected ErrLengthMismatch, got %v", d, err)
		}
	}
}

func TestDropVoidIntervals(t *testing.T) {
	d, err := NewDetached([]rv{iv(0, 2, "ab"), iv(2, 0, ""), iv(2, 2, "cd")})
	if err != nil {
		t.Fatal(err)
	}
	want := []rv{iv(0, 2, "ab"), iv(2, 2, "cd")}
	if diff := cmp.Diff(want, d.Intervals(), cmpRuneIntervals); diff != "" {
		t.Errorf("Intervals mismatch (-want +got):\n%s", diff)
	}
	a, err := AttachLeft(d, runes("wxyz"))
	if err != nil {
		t.Fatal(err)
	}
	if again := a.DetachLeft(); !again.Equal(d) {
		t.Errorf("attach/detach gives %s, want %s", again, d)
	}

	lone, err := NewDetached([]rv{iv(5, 0, "")})
	if err != nil {
		t.Fatal(err)
	}
	if lone.Len() != 0 {
		t.Errorf("got %s, want empty", lone)
	}
}
