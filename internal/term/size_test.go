package term

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCursorPosition(t *testing.T) {
	testcases := []struct {
		desc       string
		reply      string
		rows, cols int
		wantErr    bool
	}{
		{"regular reply", "\x1b[24;80R", 24, 80, false},
		{"trailing input is not consumed", "\x1b[50;132Rxyz", 50, 132, false},
		{"missing prefix", "24;80R", 0, 0, true},
		{"no reply", "", 0, 0, true},
		{"garbage", "\x1b[;R", 0, 0, true},
	}

	for _, tcase := range testcases {
		t.Run(tcase.desc, func(t *testing.T) {
			var out bytes.Buffer
			in := strings.NewReader(tcase.reply)
			rows, cols, err := CursorPosition(in, &out)

			if got := out.String(); got != "\x1b[6n" {
				t.Errorf("query: want %q, got %q", "\x1b[6n", got)
			}
			if tcase.wantErr {
				if !errors.Is(err, errBadReply) {
					t.Errorf("want errBadReply, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if rows != tcase.rows || cols != tcase.cols {
				t.Errorf("want %dx%d, got %dx%d", tcase.rows, tcase.cols, rows, cols)
			}
		})
	}
}

func TestCursorPositionReadsAtMost32Bytes(t *testing.T) {
	in := strings.NewReader("\x1b[" + strings.Repeat("1", 64) + ";1R")
	if _, _, err := CursorPosition(in, &bytes.Buffer{}); err == nil {
		t.Fatal("want error for overlong reply")
	}
	if in.Len() != 64+len("\x1b[;1R")-32 {
		t.Errorf("want 32 bytes consumed, %d bytes left", in.Len())
	}
}
