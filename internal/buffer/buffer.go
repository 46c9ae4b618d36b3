package buffer

// Buffer is the ordered sequence of rows of the edited file.
type Buffer struct {
	rows   []*Row
	dirty  int
	syntax *Syntax
}

// New returns an empty buffer.
func New() *Buffer { return &Buffer{} }

// NumRows returns the number of rows.
func (b *Buffer) NumRows() int { return len(b.rows) }

// Row returns the row at index at, or nil if there is none.
func (b *Buffer) Row(at int) *Row {
	if at < 0 || at >= len(b.rows) {
		return nil
	}
	return b.rows[at]
}

// RowLen returns the number of raw bytes of the row at index at,
// zero if there is none.
func (b *Buffer) RowLen(at int) int {
	if row := b.Row(at); row != nil {
		return row.Len()
	}
	return 0
}

// Dirty reports whether the buffer has been modified since it was opened or saved.
func (b *Buffer) Dirty() bool { return b.dirty > 0 }

// MarkClean resets the modification count, after a successful save.
func (b *Buffer) MarkClean() { b.dirty = 0 }

// Syntax returns the active syntax, or nil.
func (b *Buffer) Syntax() *Syntax { return b.syntax }

// SetSyntax changes the active syntax and highlights every row again.
func (b *Buffer) SetSyntax(s *Syntax) {
	b.syntax = s
	for i, row := range b.rows {
		row.updateSyntax(b.syntax, b.openCommentBefore(i))
	}
}

func (b *Buffer) openCommentBefore(at int) bool {
	return at > 0 && b.rows[at-1].openComment
}

// updateRow renders the row at index at and highlights it. Following rows
// are highlighted again for as long as the comment state they start with changes.
func (b *Buffer) updateRow(at int) {
	b.rows[at].update(b.syntax, b.openCommentBefore(at))
	b.propagate(at + 1)
}

func (b *Buffer) propagate(at int) {
	for i := at; i < len(b.rows); i++ {
		inComment := b.openCommentBefore(i)
		if b.rows[i].startsInComment == inComment {
			return
		}
		b.rows[i].updateSyntax(b.syntax, inComment)
	}
}

func (b *Buffer) reindex(from int) {
	for i := from; i < len(b.rows); i++ {
		b.rows[i].idx = i
	}
}

// InsertRow inserts a row with the chars s at index at.
// Nothing happens if at is outside [0, NumRows()].
func (b *Buffer) InsertRow(at int, s []byte) {
	if at < 0 || at > len(b.rows) {
		return
	}

	row := &Row{chars: append([]byte(nil), s...)}
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = row
	b.reindex(at)

	b.updateRow(at)
	b.dirty++
}

// DeleteRow removes the row at index at.
// Nothing happens if at is out of range.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}

	copy(b.rows[at:], b.rows[at+1:])
	b.rows[len(b.rows)-1] = nil
	b.rows = b.rows[:len(b.rows)-1]
	b.reindex(at)

	b.propagate(at)
	b.dirty++
}

// InsertChar inserts c into the row at index row, before column col.
// A row past the end of the buffer is appended first. It returns the
// column after the inserted char.
func (b *Buffer) InsertChar(row, col int, c byte) int {
	if row < 0 || row > len(b.rows) {
		return col
	}
	if row == len(b.rows) {
		b.InsertRow(row, nil)
	}

	r := b.rows[row]
	col = clamp(col, 0, r.Len())
	r.insertChar(col, c)
	b.updateRow(row)
	b.dirty++
	return col + 1
}

// DeleteChar deletes the char left of column col in the row at index row.
// At column 0 the row is joined onto the previous row. It returns the
// position of the cursor after the deletion.
func (b *Buffer) DeleteChar(row, col int) (newRow, newCol int) {
	if row < 0 || row >= len(b.rows) {
		return row, col
	}
	if col == 0 && row == 0 {
		return row, col
	}

	r := b.rows[row]
	if col > 0 {
		col = clamp(col, 0, r.Len())
		r.delChar(col - 1)
		b.updateRow(row)
		b.dirty++
		return row, col - 1
	}

	prev := b.rows[row-1]
	joinAt := prev.Len()
	prev.chars = append(prev.chars, r.chars...)
	b.updateRow(row - 1)
	b.dirty++
	b.DeleteRow(row)
	return row - 1, joinAt
}

// InsertNewline splits the row at index row at column col.
// At column 0 an empty row is inserted above.
func (b *Buffer) InsertNewline(row, col int) {
	if row < 0 || row > len(b.rows) {
		return
	}
	if col <= 0 || row == len(b.rows) {
		b.InsertRow(row, nil)
		return
	}

	r := b.rows[row]
	col = clamp(col, 0, r.Len())
	b.InsertRow(row+1, r.chars[col:])
	r.chars = r.chars[:col]
	b.updateRow(row)
}
