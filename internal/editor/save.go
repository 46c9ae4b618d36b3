package editor

import "github.com/jupj/rawpad/internal/buffer"

// Save writes the buffer to its file, asking for a file name first if the
// buffer has none. Failing to write is reported in the message bar; the
// returned error is only set if reading the file name failed.
func (e *Editor) Save() error {
	if e.filename == "" {
		name, err := e.Prompt("Save as: %s (ESC to cancel)", NoCallback)
		if err != nil {
			return err
		}
		if name == "" {
			e.SetStatusMessage("Save aborted")
			return nil
		}
		e.filename = name
		e.buf.SetSyntax(buffer.SelectSyntax(name))
	}

	n, err := e.buf.Save(e.filename)
	if err != nil {
		e.log.Printf("save %s: %v", e.filename, err)
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return nil
	}
	e.log.Printf("saved %s: %d bytes", e.filename, n)
	e.SetStatusMessage("%d bytes written to disk", n)
	return nil
}
