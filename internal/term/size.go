package term

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// WindowSize returns the number of rows and columns of the terminal behind f.
//
// When the size can't be asked from the OS, the cursor is moved to the bottom
// right corner and its position is queried with VT100 sequences over in and out.
func WindowSize(f *os.File, in io.Reader, out io.Writer) (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(f.Fd()))
	if err == nil && cols > 0 {
		return rows, cols, nil
	}

	// move cursor to bottom right
	if _, err := io.WriteString(out, "\x1b[999C\x1b[999B"); err != nil {
		return 0, 0, fmt.Errorf("window size: %w", err)
	}
	rows, cols, err = CursorPosition(in, out)
	if err != nil {
		return 0, 0, fmt.Errorf("window size: %w", err)
	}
	return rows, cols, nil
}

var errBadReply = errors.New("malformed cursor position reply")

// CursorPosition queries the terminal for the cursor position.
// The reply "\x1b[<rows>;<cols>R" is read from in, one byte at a time.
func CursorPosition(in io.Reader, out io.Writer) (rows, cols int, err error) {
	if _, err = io.WriteString(out, "\x1b[6n"); err != nil {
		return 0, 0, err
	}

	var reply bytes.Buffer
	var c [1]byte
	for reply.Len() < 32 {
		n, err := in.Read(c[:])
		if n != 1 || err != nil {
			break
		}
		if c[0] == 'R' {
			break
		}
		reply.WriteByte(c[0])
	}

	if _, err = fmt.Sscanf(reply.String(), "\x1b[%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("%w %q", errBadReply, reply.String())
	}
	return rows, cols, nil
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
