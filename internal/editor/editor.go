// Package editor ties the buffer to the terminal: it reads keys, applies
// them to the buffer or the cursor and redraws the screen after every key.
package editor

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/jupj/rawpad/internal/buffer"
	"github.com/jupj/rawpad/internal/key"
)

const (
	Version = "0.1"

	// quitTimes is the number of consecutive Ctrl-Q presses needed to
	// quit with unsaved changes.
	quitTimes = 3
	// messageTimeout is how long a status message is shown.
	messageTimeout = 5 * time.Second
)

// Editor is the state of one editing session.
type Editor struct {
	keys *key.Decoder
	out  io.Writer
	log  *log.Logger
	now  func() time.Time

	buf      *buffer.Buffer
	filename string

	// cursor: cx indexes the raw row, rx the rendered row
	cx, cy int
	rx     int
	// row and col offset
	rowoff, coloff int
	// screen size, without status and message bars
	screenRows, screenCols int

	statusmsg     string
	statusmsgTime time.Time
	quitTimes     int
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger for debug output.
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithClock sets the clock used to expire status messages.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

// New returns an editor with an empty buffer, reading keys from in and
// drawing a screen of rows x cols to out.
func New(in io.Reader, out io.Writer, rows, cols int, opts ...Option) *Editor {
	e := &Editor{
		keys:       key.NewDecoder(in),
		out:        out,
		log:        log.New(io.Discard, "", 0),
		now:        time.Now,
		buf:        buffer.New(),
		screenRows: rows - 2,
		screenCols: cols,
		quitTimes:  quitTimes,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.screenRows < 1 {
		e.screenRows = 1
	}
	return e
}

// Open replaces the buffer with the contents of the file at path.
func (e *Editor) Open(path string) error {
	buf, err := buffer.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	e.buf = buf
	e.filename = path
	e.cx, e.cy, e.rowoff, e.coloff = 0, 0, 0, 0

	ft := "none"
	if s := buf.Syntax(); s != nil {
		ft = s.FileType
	}
	e.log.Printf("opened %s: %d rows, filetype %s", path, buf.NumRows(), ft)
	return nil
}

// SetStatusMessage shows a message in the message bar.
func (e *Editor) SetStatusMessage(format string, a ...interface{}) {
	e.statusmsg = fmt.Sprintf(format, a...)
	e.statusmsgTime = e.now()
}

// Run redraws the screen and processes keys until the user quits.
// Only failures to read input or to write the screen end it with an error.
func (e *Editor) Run() error {
	for {
		if err := e.RefreshScreen(); err != nil {
			return err
		}
		quit, err := e.ProcessKeypress()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
