package editor

import (
	"github.com/jupj/rawpad/internal/key"
)

// ProcessKeypress reads one key and acts on it.
// It reports quit == true when the editor should exit.
func (e *Editor) ProcessKeypress() (quit bool, err error) {
	c, err := e.keys.ReadKey()
	if err != nil {
		return false, err
	}
	e.log.Printf("key %v", c)

	switch c {
	case key.Enter:
		e.insertNewline()

	case key.Ctrl('q'):
		if e.buf.Dirty() && e.quitTimes > 1 {
			e.quitTimes--
			e.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
			return false, nil
		}
		return true, nil

	case key.Ctrl('s'):
		err = e.Save()

	case key.Ctrl('f'):
		err = e.Find()

	case key.Home:
		e.cx = 0

	case key.End:
		if e.cy < e.buf.NumRows() {
			e.cx = e.buf.RowLen(e.cy)
		}

	case key.Backspace, key.Ctrl('h'), key.Delete:
		if c == key.Delete {
			e.moveCursor(key.ArrowRight)
		}
		e.delChar()

	case key.PageUp, key.PageDown:
		dir := key.ArrowUp
		if c == key.PageUp {
			e.cy = e.rowoff
		} else {
			dir = key.ArrowDown
			e.cy = e.rowoff + e.screenRows - 1
			if e.cy > e.buf.NumRows() {
				e.cy = e.buf.NumRows()
			}
		}
		for i := 0; i < e.screenRows; i++ {
			e.moveCursor(dir)
		}

	case key.ArrowUp, key.ArrowDown, key.ArrowLeft, key.ArrowRight:
		e.moveCursor(c)

	case key.Ctrl('l'), key.Escape:

	default:
		e.insertChar(c)
	}

	e.quitTimes = quitTimes
	return false, err
}

func (e *Editor) insertChar(c key.Key) {
	if c < 0 || c > 0xff {
		return
	}
	e.cx = e.buf.InsertChar(e.cy, e.cx, byte(c))
}

func (e *Editor) insertNewline() {
	e.buf.InsertNewline(e.cy, e.cx)
	e.cy++
	e.cx = 0
}

func (e *Editor) delChar() {
	e.cy, e.cx = e.buf.DeleteChar(e.cy, e.cx)
}

func (e *Editor) moveCursor(k key.Key) {
	row := e.buf.Row(e.cy)

	switch k {
	case key.ArrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.buf.RowLen(e.cy)
		}
	case key.ArrowRight:
		if row != nil && e.cx < row.Len() {
			e.cx++
		} else if row != nil && e.cx == row.Len() {
			e.cy++
			e.cx = 0
		}
	case key.ArrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case key.ArrowDown:
		if e.cy < e.buf.NumRows() {
			e.cy++
		}
	}

	// Snap to the end of the new row
	if rowLen := e.buf.RowLen(e.cy); e.cx > rowLen {
		e.cx = rowLen
	}
}
