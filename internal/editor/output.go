package editor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jupj/rawpad/internal/buffer"
)

// Scroll moves the row and col offsets so that the cursor is visible.
func (e *Editor) Scroll() {
	e.rx = 0
	if row := e.buf.Row(e.cy); row != nil {
		e.rx = row.CxToRx(e.cx)
	}

	if e.cy < e.rowoff {
		// Scroll upwards
		e.rowoff = e.cy
	}
	if e.cy >= e.rowoff+e.screenRows {
		// Scroll downwards
		e.rowoff = e.cy - e.screenRows + 1
	}
	if e.rx < e.coloff {
		// Scroll left
		e.coloff = e.rx
	}
	if e.rx >= e.coloff+e.screenCols {
		// Scroll right
		e.coloff = e.rx - e.screenCols + 1
	}
}

// RefreshScreen draws the whole screen with a single write.
func (e *Editor) RefreshScreen() error {
	e.Scroll()

	var ab bytes.Buffer
	ab.WriteString("\x1b[?25l") // hide cursor
	ab.WriteString("\x1b[H")    // move cursor to top left

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	fmt.Fprintf(&ab, "\x1b[%d;%dH", e.cy-e.rowoff+1, e.rx-e.coloff+1) // move cursor to rx,cy
	ab.WriteString("\x1b[?25h")                                      // show cursor

	_, err := e.out.Write(ab.Bytes())
	if err != nil {
		return fmt.Errorf("refresh screen: %w", err)
	}
	return nil
}

func (e *Editor) drawRows(ab *bytes.Buffer) {
	numRows := e.buf.NumRows()
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowoff
		if filerow >= numRows {
			if numRows == 0 && y == e.screenRows/3 {
				e.drawWelcome(ab)
			} else {
				ab.WriteByte('~')
			}
		} else {
			row := e.buf.Row(filerow)
			e.drawRow(ab, row.Render(), row.Highlights())
		}

		ab.WriteString("\x1b[K") // erase line to the right of cursor
		ab.WriteString("\r\n")
	}
}

func (e *Editor) drawWelcome(ab *bytes.Buffer) {
	welcome := fmt.Sprintf("rawpad editor -- version %s", Version)
	if len(welcome) > e.screenCols {
		welcome = welcome[:e.screenCols]
	}
	padding := (e.screenCols - len(welcome)) / 2
	if padding > 0 {
		ab.WriteByte('~')
		padding--
	}
	ab.WriteString(strings.Repeat(" ", padding))
	ab.WriteString(welcome)
}

// drawRow writes the visible part of a rendered row. Color sequences are
// only written where the highlight changes.
func (e *Editor) drawRow(ab *bytes.Buffer, render []byte, hl []buffer.Highlight) {
	start := clamp(e.coloff, 0, len(render))
	end := clamp(e.coloff+e.screenCols, start, len(render))

	currentColor := -1
	for i := start; i < end; i++ {
		c := render[i]
		switch {
		case c < 0x20 || c == 0x7f:
			sym := byte('?')
			if c <= 26 {
				sym = '@' + c
			}
			// print character with reversed colors
			ab.WriteString("\x1b[7m")
			ab.WriteByte(sym)
			ab.WriteString("\x1b[m")
			if currentColor != -1 {
				fmt.Fprintf(ab, "\x1b[%dm", currentColor)
			}
		case hl[i] == buffer.Normal:
			if currentColor != -1 {
				ab.WriteString("\x1b[39m")
				currentColor = -1
			}
			ab.WriteByte(c)
		default:
			if color := hl[i].Color(); color != currentColor {
				currentColor = color
				fmt.Fprintf(ab, "\x1b[%dm", color) // set syntax highlight color
			}
			ab.WriteByte(c)
		}
	}
	ab.WriteString("\x1b[39m") // default color
}

func (e *Editor) drawStatusBar(ab *bytes.Buffer) {
	ab.WriteString("\x1b[7m") // invert colors

	filename := e.filename
	if filename == "" {
		filename = "[No Name]"
	}
	dirtyStr := ""
	if e.buf.Dirty() {
		dirtyStr = "(modified)"
	}
	ftStr := "no ft"
	if s := e.buf.Syntax(); s != nil {
		ftStr = s.FileType
	}

	status := fmt.Sprintf("%.20s - %d lines %s", filename, e.buf.NumRows(), dirtyStr)
	rstatus := fmt.Sprintf("%s | %d/%d", ftStr, e.cy+1, e.buf.NumRows())

	if len(status) > e.screenCols {
		status = status[:e.screenCols]
	}
	ab.WriteString(status)

	for length := len(status); length < e.screenCols; length++ {
		if e.screenCols-length == len(rstatus) {
			ab.WriteString(rstatus)
			break
		}
		ab.WriteByte(' ')
	}
	ab.WriteString("\x1b[m") // switch back to normal formatting
	ab.WriteString("\r\n")
}

func (e *Editor) drawMessageBar(ab *bytes.Buffer) {
	ab.WriteString("\x1b[K") // erase line to the right of cursor
	msg := e.statusmsg
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	if msg != "" && e.now().Sub(e.statusmsgTime) < messageTimeout {
		ab.WriteString(msg)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
