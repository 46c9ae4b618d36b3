package key

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

var errDone = errors.New("input done")

// script returns a reader that yields input and then fails with errDone,
// so that decoding past the input stops instead of waiting for more.
func script(input string) io.Reader {
	return io.MultiReader(iotest.OneByteReader(strings.NewReader(input)), iotest.ErrReader(errDone))
}

// readAll decodes keys until the input is exhausted.
func readAll(t *testing.T, r io.Reader) []Key {
	t.Helper()
	d := NewDecoder(r)
	var keys []Key
	for {
		k, err := d.ReadKey()
		if errors.Is(err, errDone) {
			return keys
		}
		if err != nil {
			t.Fatal(err)
		}
		keys = append(keys, k)
	}
}

func TestReadKey(t *testing.T) {
	testcases := []struct {
		desc  string
		input string
		want  []Key
	}{
		{"plain bytes", "ab\r", []Key{'a', 'b', Enter}},
		{"control chars", "\x11\x13\x7f", []Key{Ctrl('q'), Ctrl('s'), Backspace}},
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []Key{ArrowUp, ArrowDown, ArrowRight, ArrowLeft}},
		{"home and end letters", "\x1b[H\x1b[F\x1bOH\x1bOF", []Key{Home, End, Home, End}},
		{"tilde sequences", "\x1b[1~\x1b[3~\x1b[4~\x1b[5~\x1b[6~\x1b[7~\x1b[8~", []Key{Home, Delete, End, PageUp, PageDown, Home, End}},
		{"unknown tilde sequence", "\x1b[2~x", []Key{Escape, 'x'}},
		{"unknown letter", "\x1b[Zx", []Key{Escape, 'x'}},
		{"missing tilde", "\x1b[5xy", []Key{Escape, 'y'}},
		{"lone escape", "\x1b", []Key{Escape}},
		{"truncated sequence", "\x1b[", []Key{Escape}},
		{"truncated tilde sequence", "\x1b[3", []Key{Escape}},
		{"high bytes", "\xe9\xff", []Key{0xe9, 0xff}},
	}

	for _, tcase := range testcases {
		t.Run(tcase.desc, func(t *testing.T) {
			got := readAll(t, script(tcase.input))
			if diff := cmp.Diff(tcase.want, got); diff != "" {
				t.Errorf("keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// timeoutReader simulates a raw mode terminal: every other read times out.
type timeoutReader struct {
	r      io.Reader
	toggle bool
}

func (tr *timeoutReader) Read(p []byte) (int, error) {
	tr.toggle = !tr.toggle
	if tr.toggle {
		return 0, io.EOF
	}
	return tr.r.Read(p[:1])
}

func TestReadKeyRetriesOnTimeout(t *testing.T) {
	d := NewDecoder(&timeoutReader{r: strings.NewReader("x")})
	k, err := d.ReadKey()
	if err != nil {
		t.Fatal(err)
	}
	if k != 'x' {
		t.Errorf("want 'x', got %v", k)
	}
}

func TestReadKeyTimeoutInsideSequence(t *testing.T) {
	// "\x1b" then a timeout: the rest of the sequence is too late.
	d := NewDecoder(&timeoutReader{r: strings.NewReader("\x1b\x1b[A")})
	var got []Key
	for i := 0; i < 2; i++ {
		k, err := d.ReadKey()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, k)
	}
	want := []Key{Escape, Escape}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestReadKeyError(t *testing.T) {
	d := NewDecoder(iotest.ErrReader(errDone))
	if _, err := d.ReadKey(); !errors.Is(err, errDone) {
		t.Errorf("want errDone, got %v", err)
	}
}

func TestKeyString(t *testing.T) {
	testcases := []struct {
		k    Key
		want string
	}{
		{'a', "a"},
		{Ctrl('q'), "Ctrl-Q"},
		{Enter, "Enter"},
		{PageDown, "PageDown"},
		{0xe9, "Key(233)"},
	}
	for _, tcase := range testcases {
		if got := tcase.k.String(); got != tcase.want {
			t.Errorf("want %q, got %q", tcase.want, got)
		}
	}
}
