package buffer

import (
	"bytes"
	"strings"
)

const separators = ",.()+-/*=~%<>[];"

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	}
	return strings.IndexByte(separators, c) >= 0
}

// separatorAt reports whether render[i] is a separator.
// The end of the row counts as a separator.
func separatorAt(render []byte, i int) bool {
	return i >= len(render) || isSeparator(render[i])
}

// highlight returns the highlights for the rendered row.
// inComment tells if the row starts inside a multi-line comment,
// open tells if a multi-line comment is still open at the end of the row.
func highlight(render []byte, syntax *Syntax, inComment bool) (hl []Highlight, open bool) {
	hl = make([]Highlight, len(render))
	if syntax == nil {
		return hl, false
	}

	scs := []byte(syntax.SingleLineComment)
	mcs := []byte(syntax.MultiLineStart)
	mce := []byte(syntax.MultiLineEnd)

	prevSep := true
	var inString byte

	i := 0
	for i < len(render) {
		c := render[i]
		prevHl := Normal
		if i > 0 {
			prevHl = hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(render[i:], scs) {
				fill(hl[i:], Comment)
				break
			}
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				hl[i] = MLComment
				if bytes.HasPrefix(render[i:], mce) {
					fill(hl[i:i+len(mce)], MLComment)
					i += len(mce)
					inComment = false
					prevSep = true
				} else {
					i++
				}
				continue
			} else if bytes.HasPrefix(render[i:], mcs) {
				fill(hl[i:i+len(mcs)], MLComment)
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if syntax.Flags&HighlightStrings != 0 {
			if inString != 0 {
				hl[i] = String
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = String
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				hl[i] = String
				i++
				continue
			}
		}

		if syntax.Flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevHl == Number)) || (c == '.' && prevHl == Number) {
				hl[i] = Number
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, kwHl := matchKeyword(render[i:], syntax.Keywords); n > 0 {
				fill(hl[i:i+n], kwHl)
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	return hl, inComment
}

// matchKeyword returns the length and highlight of the longest keyword
// at the start of s that is followed by a separator.
func matchKeyword(s []byte, keywords []string) (n int, hl Highlight) {
	for _, kw := range keywords {
		kwHl := Keyword1
		if strings.HasSuffix(kw, "|") {
			kw, kwHl = kw[:len(kw)-1], Keyword2
		}
		if len(kw) <= n || !bytes.HasPrefix(s, []byte(kw)) || !separatorAt(s, len(kw)) {
			continue
		}
		n, hl = len(kw), kwHl
	}
	return n, hl
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func fill(hl []Highlight, h Highlight) {
	for i := range hl {
		hl[i] = h
	}
}
