package editor

import (
	"github.com/jupj/rawpad/internal/buffer"
	"github.com/jupj/rawpad/internal/key"
)

// searcher moves the cursor to the next match while the query is typed.
type searcher struct {
	e         *Editor
	lastMatch int
	direction int

	// highlights of the row with the current match, before it was marked
	savedHlLine int
	savedHl     []buffer.Highlight
}

func (s *searcher) OnPromptKey(query string, k key.Key) {
	buf := s.e.buf

	if s.savedHl != nil {
		if row := buf.Row(s.savedHlLine); row != nil {
			row.RestoreHighlights(s.savedHl)
		}
		s.savedHl = nil
	}

	switch k {
	case key.Enter, key.Escape:
		s.lastMatch = -1
		s.direction = 1
		return
	case key.ArrowRight, key.ArrowDown:
		s.direction = 1
	case key.ArrowLeft, key.ArrowUp:
		s.direction = -1
	default:
		s.lastMatch = -1
		s.direction = 1
	}

	if s.lastMatch == -1 {
		s.direction = 1
	}
	if query == "" {
		return
	}

	numRows := buf.NumRows()
	current := s.lastMatch
	for i := 0; i < numRows; i++ {
		current += s.direction
		if current == -1 {
			current = numRows - 1
		} else if current == numRows {
			current = 0
		}

		row := buf.Row(current)
		rx := row.Find([]byte(query))
		if rx < 0 {
			continue
		}

		s.lastMatch = current
		s.e.cy = current
		s.e.cx = row.RxToCx(rx)
		// Scroll so the match is on the top row
		s.e.rowoff = numRows

		s.savedHlLine = current
		s.savedHl = row.SaveHighlights()
		row.Mark(rx, rx+len(query), buffer.Match)
		return
	}
}

// Find searches incrementally while the query is typed. The arrow keys
// move to the next or previous match. Escape returns the cursor to where
// the search started.
func (e *Editor) Find() error {
	savedCx, savedCy := e.cx, e.cy
	savedColoff, savedRowoff := e.coloff, e.rowoff

	s := &searcher{e: e, lastMatch: -1, direction: 1}
	query, err := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", s)
	if err != nil {
		return err
	}

	if query == "" {
		e.cx, e.cy = savedCx, savedCy
		e.coloff, e.rowoff = savedColoff, savedRowoff
	}
	return nil
}
