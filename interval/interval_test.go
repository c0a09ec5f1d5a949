package interval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	iv, err := New(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if iv.Start() != 2 || iv.Length() != 3 || iv.End() != 5 {
		t.Errorf("got %s", iv)
	}
	if iv.String() != "[2,5)" {
		t.Errorf("String() = %q", iv.String())
	}
	if _, err := New(2, -1); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
	if _, err := NewOf(0, -3, "x"); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	Must(0, -1)
}

func TestSlice(t *testing.T) {
	xs := []int{0, 1, 2, 3, 4, 5}
	got := Slice(Must(2, 3), xs)
	if diff := cmp.Diff([]int{2, 3, 4}, got); diff != "" {
		t.Errorf("Slice mismatch (-want +got):\n%s", diff)
	}
	if got := SliceString(MustOf(1, 3, 0), "abcdef"); got != "bcd" {
		t.Errorf("SliceString = %q", got)
	}
	if got := Slice(Must(6, 0), xs); len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
}

func TestMapAndTranslate(t *testing.T) {
	o := MustOf(3, 2, "ab")
	m := Map(o, func(s string) []rune { return []rune(s) })
	if !EqualSlices(m, MustOf(3, 2, []rune{'a', 'b'})) {
		t.Errorf("Map = %s", m)
	}
	tr := o.Translate(-5)
	if tr.Start() != -2 || tr.End() != 0 || tr.Value() != "ab" {
		t.Errorf("Translate = %s", tr)
	}
	if o.Range() != Must(3, 2) {
		t.Errorf("Range = %s", o.Range())
	}
}

type relTest struct {
	name string
	a, b Interval
	f    func(a, b Ranger) bool
	want bool
}

var relTests = []relTest{
	{"before touching", Must(0, 2), Must(2, 3), nonStrict(IsBefore), true},
	{"before touching strict", Must(0, 2), Must(2, 3), strict(IsBefore), false},
	{"before gap strict", Must(0, 2), Must(3, 3), strict(IsBefore), true},
	{"after touching", Must(2, 3), Must(0, 2), nonStrict(IsAfter), true},
	{"after touching strict", Must(2, 3), Must(0, 2), strict(IsAfter), false},
	{"meets", Must(0, 2), Must(2, 0), Meets, true},
	{"meets not", Must(0, 2), Must(3, 1), Meets, false},
	{"starts", Must(1, 2), Must(1, 4), Starts, true},
	{"starts equal", Must(1, 4), Must(1, 4), Starts, false},
	{"finishes", Must(3, 2), Must(1, 4), Finishes, true},
	{"coincides", MustOf(1, 4, 0).Range(), Must(1, 4), Coincides, true},
	{"contains", Must(0, 10), Must(0, 4), nonStrict(Contains), true},
	{"contains strict shared start", Must(0, 10), Must(0, 4), strict(Contains), false},
	{"contains strict", Must(0, 10), Must(1, 4), strict(Contains), true},
	{"contains not", Must(0, 3), Must(1, 4), nonStrict(Contains), false},
}

func nonStrict(f func(a, b Ranger, m Mode) bool) func(a, b Ranger) bool {
	return func(a, b Ranger) bool { return f(a, b, NonStrict) }
}

func strict(f func(a, b Ranger, m Mode) bool) func(a, b Ranger) bool {
	return func(a, b Ranger) bool { return f(a, b, Strict) }
}

func TestRelations(t *testing.T) {
	for _, tt := range relTests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f(tt.a, tt.b); got != tt.want {
				t.Errorf("%s, %s: got %t want %t", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestContainsIndex(t *testing.T) {
	iv := Must(2, 3)
	if !ContainsIndex(iv, 5, NonStrict) {
		t.Errorf("5 should be within %s non strictly", iv)
	}
	if ContainsIndex(iv, 5, Strict) {
		t.Errorf("5 should not be strictly within %s", iv)
	}
	if ContainsIndex(iv, 1, NonStrict) {
		t.Errorf("1 should not be within %s", iv)
	}
}

func TestCoverAndBoundaries(t *testing.T) {
	ivs := []Interval{Must(4, 2), Must(-1, 3), Must(2, 0), Must(5, 4)}
	cover, ok := Cover(ivs)
	if !ok || cover != Must(-1, 10) {
		t.Errorf("Cover = %s, %t", cover, ok)
	}
	if _, ok := Cover([]Interval(nil)); ok {
		t.Errorf("Cover of nothing should fail")
	}
	want := []int{-1, 2, 4, 5, 6, 9}
	if diff := cmp.Diff(want, Boundaries(ivs)); diff != "" {
		t.Errorf("Boundaries mismatch (-want +got):\n%s", diff)
	}
}
