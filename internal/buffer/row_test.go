package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newRow(s string) *Row {
	r := &Row{chars: []byte(s)}
	r.update(SelectSyntax("x.c"), false)
	return r
}

func TestRender(t *testing.T) {
	testcases := []struct{ desc, input, want string }{
		{"no tabs", "abc", "abc"},
		{"tab after one char", "a\tb", "a       b"},
		{"leading tab", "\tx", "        x"},
		{"tab at tab stop", "12345678\tx", "12345678        x"},
		{"two tabs", "\t\t", "                "},
		{"empty", "", ""},
	}

	for _, tcase := range testcases {
		t.Run(tcase.desc, func(t *testing.T) {
			r := newRow(tcase.input)
			if got := string(r.Render()); got != tcase.want {
				t.Errorf("want %q, got %q", tcase.want, got)
			}
			if len(r.Render()) != len(r.Highlights()) {
				t.Errorf("render has %d bytes, highlights %d", len(r.Render()), len(r.Highlights()))
			}
		})
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	r := newRow("\tif (x) { return 1.5; } /* c")
	hl, render, open := r.SaveHighlights(), append([]byte(nil), r.Render()...), r.OpenComment()

	r.update(SelectSyntax("x.c"), false)
	if diff := cmp.Diff(hl, r.Highlights()); diff != "" {
		t.Errorf("highlights changed (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(render, r.Render()); diff != "" {
		t.Errorf("render changed (-before +after):\n%s", diff)
	}
	if open != r.OpenComment() {
		t.Error("open comment state changed")
	}
}

func TestCxToRx(t *testing.T) {
	r := newRow("a\tb\t\tc")
	want := []int{0, 1, 8, 9, 16, 24, 25}
	for cx, rx := range want {
		if got := r.CxToRx(cx); got != rx {
			t.Errorf("CxToRx(%d): want %d, got %d", cx, rx, got)
		}
	}
	if got := r.CxToRx(100); got != 25 {
		t.Errorf("CxToRx past end: want 25, got %d", got)
	}
}

func TestRxToCxIsInverse(t *testing.T) {
	for _, s := range []string{"plain text", "a\tb", "\t\tx\ty", "12345678\t", ""} {
		r := newRow(s)
		for cx := 0; cx <= r.Len(); cx++ {
			if got := r.RxToCx(r.CxToRx(cx)); got != cx {
				t.Errorf("%q: RxToCx(CxToRx(%d)) = %d", s, cx, got)
			}
		}
	}

	r := newRow("plain")
	for rx := 0; rx <= r.Len(); rx++ {
		if got := r.CxToRx(r.RxToCx(rx)); got != rx {
			t.Errorf("CxToRx(RxToCx(%d)) = %d", rx, got)
		}
	}
}

func TestRxToCxInsideTab(t *testing.T) {
	r := newRow("a\tb")
	for rx := 1; rx < 8; rx++ {
		if got := r.RxToCx(rx); got != 1 {
			t.Errorf("RxToCx(%d): want 1, got %d", rx, got)
		}
	}
}

func TestMarkAndRestore(t *testing.T) {
	r := newRow("x = 12")
	saved := r.SaveHighlights()
	r.Mark(0, 1, Match)
	r.Mark(4, 100, Match)

	want := []Highlight{Match, Normal, Normal, Normal, Match, Match}
	if diff := cmp.Diff(want, r.Highlights()); diff != "" {
		t.Errorf("mark mismatch (-want +got):\n%s", diff)
	}

	r.RestoreHighlights(saved)
	want = []Highlight{Normal, Normal, Normal, Normal, Number, Number}
	if diff := cmp.Diff(want, r.Highlights()); diff != "" {
		t.Errorf("restore mismatch (-want +got):\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	r := newRow("\tfoo")
	if got := r.Find([]byte("foo")); got != 8 {
		t.Errorf("want rendered index 8, got %d", got)
	}
	if got := r.Find([]byte("bar")); got != -1 {
		t.Errorf("want -1, got %d", got)
	}
}
