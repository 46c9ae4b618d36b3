// Package key decodes the raw terminal input stream into logical keys.
package key

import (
	"errors"
	"fmt"
	"io"
)

// Key is a logical key. Plain bytes are represented by their value,
// named keys lie outside of the byte range.
type Key int

// Ctrl returns the equivalent of CTRL-<c>, where c is an ASCII char.
func Ctrl(c byte) Key { return Key(c & 0x1f) }

const (
	Enter     Key = '\r'
	Escape    Key = '\x1b'
	Backspace Key = 127
)

const (
	ArrowLeft Key = 1000 + iota
	ArrowRight
	ArrowUp
	ArrowDown
	Delete
	Home
	End
	PageUp
	PageDown
)

var names = map[Key]string{
	Enter:      "Enter",
	Escape:     "Esc",
	Backspace:  "Backspace",
	ArrowLeft:  "Left",
	ArrowRight: "Right",
	ArrowUp:    "Up",
	ArrowDown:  "Down",
	Delete:     "Delete",
	Home:       "Home",
	End:        "End",
	PageUp:     "PageUp",
	PageDown:   "PageDown",
}

func (k Key) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	if k >= 0 && k < 0x20 {
		return "Ctrl-" + string(rune(k|0x40))
	}
	if k > 0x20 && k < 0x7f {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// IsPrintable reports whether k is a printable ASCII character.
func (k Key) IsPrintable() bool { return k >= 0x20 && k < 0x7f }

// VT100 sequences: "\x1b[<digit>~"
var tildeSeq = map[byte]Key{
	'1': Home,
	'3': Delete,
	'4': End,
	'5': PageUp,
	'6': PageDown,
	'7': Home,
	'8': End,
}

// VT100 sequences: "\x1b[<letter>"
var bracketSeq = map[byte]Key{
	'A': ArrowUp,
	'B': ArrowDown,
	'C': ArrowRight,
	'D': ArrowLeft,
	'H': Home,
	'F': End,
}

// Sequences "\x1bO<letter>"
var ss3Seq = map[byte]Key{
	'H': Home,
	'F': End,
}

// Decoder reads keys from an input stream set up by term.EnableRawMode.
type Decoder struct {
	r io.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// readByte reads one byte. An empty read is reported as ok == false with a nil error.
func (d *Decoder) readByte() (c byte, ok bool, err error) {
	var buf [1]byte
	n, err := d.r.Read(buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		// The raw mode read timed out without any input
		return 0, false, nil
	}
	return 0, false, err
}

// ReadKey blocks until a key is available and returns it.
//
// Escape sequences must follow the ESC byte without delay; a sequence that
// is incomplete or unknown is returned as Escape.
func (d *Decoder) ReadKey() (Key, error) {
	var c byte
	for {
		var ok bool
		var err error
		c, ok, err = d.readByte()
		if err != nil {
			return 0, fmt.Errorf("read key: %w", err)
		}
		if ok {
			break
		}
	}

	if c != '\x1b' {
		return Key(c), nil
	}
	return d.readEscape(), nil
}

// readEscape decodes the rest of a sequence starting with ESC.
func (d *Decoder) readEscape() Key {
	seq0, ok, err := d.readByte()
	if !ok || err != nil {
		return Escape
	}
	seq1, ok, err := d.readByte()
	if !ok || err != nil {
		return Escape
	}

	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, ok, err := d.readByte()
			if !ok || err != nil || seq2 != '~' {
				return Escape
			}
			if k, ok := tildeSeq[seq1]; ok {
				return k
			}
			return Escape
		}
		if k, ok := bracketSeq[seq1]; ok {
			return k
		}
	case 'O':
		if k, ok := ss3Seq[seq1]; ok {
			return k
		}
	}
	return Escape
}
