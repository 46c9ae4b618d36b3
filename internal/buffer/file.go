package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

const newline = '\n'

// Read returns a buffer with one row per line of r.
// Trailing CR and LF bytes are stripped from every line.
func Read(r io.Reader) (*Buffer, error) {
	b := New()
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes(newline)
		if len(line) > 0 {
			b.InsertRow(len(b.rows), bytes.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	// Mark non-dirty after inserting all rows
	b.dirty = 0
	return b, nil
}

// Open reads the file at path and selects the syntax from its name.
func Open(path string) (*Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	b, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	b.SetSyntax(SelectSyntax(path))
	return b, nil
}

// Bytes returns the contents of the buffer, every row terminated by a newline.
func (b *Buffer) Bytes() []byte {
	size := 0
	for _, row := range b.rows {
		size += row.Len() + 1
	}
	buf := make([]byte, 0, size)
	for _, row := range b.rows {
		buf = append(buf, row.chars...)
		buf = append(buf, newline)
	}
	return buf
}

// Save writes the contents of b to the file at path and marks b clean.
// The number of bytes written is returned also on failure.
func (b *Buffer) Save(path string) (n int64, err error) {
	if path == "" {
		return 0, errors.New("no filename specified")
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	buf := b.Bytes()
	if err := file.Truncate(int64(len(buf))); err != nil {
		return 0, err
	}
	nn, err := file.Write(buf)
	if err != nil {
		return int64(nn), err
	}
	if err := file.Close(); err != nil {
		return int64(nn), err
	}

	b.MarkClean()
	return int64(nn), nil
}
