package buffer

import (
	"path/filepath"
	"strings"
)

// Highlight classifies one rendered byte.
type Highlight byte

const (
	Normal Highlight = iota
	Comment
	MLComment
	Keyword1
	Keyword2
	String
	Number
	Match
)

const defaultColor = 37

var highlightToColor = map[Highlight]int{
	Comment:   36,
	MLComment: 36,
	Keyword1:  33,
	Keyword2:  32,
	String:    35,
	Number:    31,
	Match:     34,
}

// Color returns the SGR foreground color for h.
func (h Highlight) Color() int {
	if color, ok := highlightToColor[h]; ok {
		return color
	}
	return defaultColor
}

// Flags for Syntax.Flags.
const (
	HighlightNumbers = 1 << iota
	HighlightStrings
)

// Syntax describes how files of one type are highlighted.
type Syntax struct {
	FileType string
	// FileMatch entries starting with '.' match the file extension,
	// other entries match anywhere in the file name.
	FileMatch []string
	// Keywords ending with '|' are highlighted as Keyword2.
	Keywords          []string
	SingleLineComment string
	MultiLineStart    string
	MultiLineEnd      string
	Flags             int
}

var hlDB = []Syntax{
	{
		FileType:  "c",
		FileMatch: []string{".c", ".h", ".cpp"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",

			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
			"void|",
		},
		SingleLineComment: "//",
		MultiLineStart:    "/*",
		MultiLineEnd:      "*/",
		Flags:             HighlightNumbers | HighlightStrings,
	},
	{
		FileType:  "go",
		FileMatch: []string{".go"},
		Keywords: []string{
			"break", "default", "func", "interface", "select",
			"case", "defer", "go", "map", "struct",
			"chan", "else", "goto", "package", "switch",
			"const", "fallthrough", "if", "range", "type",
			"continue", "for", "import", "return", "var",

			// Types:
			"bool|", "byte|", "complex64|", "complex128|", "error|", "float32|", "float64|",
			"int|", "int8|", "int16|", "int32|", "int64|", "rune|", "string|",
			"uint|", "uint8|", "uint16|", "uint32|", "uint64|", "uintptr|",

			// Constants:
			"true|", "false|", "iota|", "nil|",
		},
		SingleLineComment: "//",
		MultiLineStart:    "/*",
		MultiLineEnd:      "*/",
		Flags:             HighlightNumbers | HighlightStrings,
	},
}

// SelectSyntax returns the syntax for filename, or nil if there is none.
func SelectSyntax(filename string) *Syntax {
	if filename == "" {
		return nil
	}
	ext := filepath.Ext(filename)
	for i := range hlDB {
		s := &hlDB[i]
		for _, filematch := range s.FileMatch {
			isExt := strings.HasPrefix(filematch, ".")
			if (isExt && ext == filematch) || (!isExt && strings.Contains(filename, filematch)) {
				return s
			}
		}
	}
	return nil
}
