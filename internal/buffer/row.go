package buffer

import "bytes"

// TabStop is the distance between tab stops in the rendered form.
const TabStop = 8

// Row is one line of text.
type Row struct {
	idx   int
	chars []byte

	render []byte
	hl     []Highlight
	// startsInComment is the state the row was highlighted with,
	// openComment the state it leaves for the next row.
	startsInComment bool
	openComment     bool
}

// Index returns the position of the row in the buffer.
func (r *Row) Index() int { return r.idx }

// Len returns the number of raw bytes.
func (r *Row) Len() int { return len(r.chars) }

// Chars returns the raw bytes. The slice must not be modified.
func (r *Row) Chars() []byte { return r.chars }

// Render returns the rendered bytes. The slice must not be modified.
func (r *Row) Render() []byte { return r.render }

// Highlights returns one highlight per rendered byte.
func (r *Row) Highlights() []Highlight { return r.hl }

// OpenComment reports whether a multi-line comment is open at the end of the row.
func (r *Row) OpenComment() bool { return r.openComment }

// Mark sets the highlight of the rendered bytes [from, to) to h.
// It is used for transient overlays like search matches; the next
// update of the row discards it.
func (r *Row) Mark(from, to int, h Highlight) {
	from, to = clamp(from, 0, len(r.hl)), clamp(to, 0, len(r.hl))
	if from < to {
		fill(r.hl[from:to], h)
	}
}

// SaveHighlights returns a copy of the highlights.
func (r *Row) SaveHighlights() []Highlight {
	return append([]Highlight(nil), r.hl...)
}

// RestoreHighlights puts back highlights returned by SaveHighlights.
// Saved highlights that no longer fit the rendered row are ignored.
func (r *Row) RestoreHighlights(hl []Highlight) {
	if len(hl) == len(r.hl) {
		copy(r.hl, hl)
	}
}

// CxToRx converts char-x to rendered-x.
func (r *Row) CxToRx(cx int) int {
	cx = clamp(cx, 0, len(r.chars))
	rx := 0
	for _, c := range r.chars[:cx] {
		if c == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// RxToCx converts rendered-x to char-x.
func (r *Row) RxToCx(rx int) int {
	curRx := 0
	for cx, c := range r.chars {
		if c == '\t' {
			curRx += (TabStop - 1) - (curRx % TabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return len(r.chars)
}

// Find returns the rendered-x of the first occurrence of query, or -1.
func (r *Row) Find(query []byte) int {
	return bytes.Index(r.render, query)
}

func renderTabs(chars []byte) []byte {
	tabs := bytes.Count(chars, []byte{'\t'})
	render := make([]byte, 0, len(chars)+tabs*(TabStop-1))
	for _, c := range chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%TabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	return render
}

// update recomputes the rendered form and the highlights from scratch.
func (r *Row) update(syntax *Syntax, inComment bool) {
	r.render = renderTabs(r.chars)
	r.updateSyntax(syntax, inComment)
}

func (r *Row) updateSyntax(syntax *Syntax, inComment bool) {
	r.startsInComment = inComment
	r.hl, r.openComment = highlight(r.render, syntax, inComment)
}

func (r *Row) insertChar(at int, c byte) {
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:])
	r.chars[at] = c
}

func (r *Row) delChar(at int) {
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
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
