package editor

import "github.com/jupj/rawpad/internal/key"

// PromptCallback is notified of every key typed into a prompt,
// together with the input after the key was applied.
type PromptCallback interface {
	OnPromptKey(input string, k key.Key)
}

// PromptFunc adapts a function to a PromptCallback.
type PromptFunc func(input string, k key.Key)

func (f PromptFunc) OnPromptKey(input string, k key.Key) { f(input, k) }

type noCallback struct{}

func (noCallback) OnPromptKey(string, key.Key) {}

// NoCallback is a PromptCallback that ignores all keys.
var NoCallback PromptCallback = noCallback{}

// Prompt reads a line of input in the message bar. format must contain one
// %s verb, which shows the input. Enter confirms a non-empty input,
// Escape cancels the prompt and returns an empty string.
func (e *Editor) Prompt(format string, cb PromptCallback) (string, error) {
	var buf []byte
	for {
		e.SetStatusMessage(format, buf)
		if err := e.RefreshScreen(); err != nil {
			return "", err
		}

		c, err := e.keys.ReadKey()
		if err != nil {
			return "", err
		}

		switch {
		case c == key.Delete || c == key.Ctrl('h') || c == key.Backspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case c == key.Escape:
			e.SetStatusMessage("")
			cb.OnPromptKey(string(buf), c)
			return "", nil
		case c == key.Enter:
			if len(buf) > 0 {
				e.SetStatusMessage("")
				cb.OnPromptKey(string(buf), c)
				return string(buf), nil
			}
		case c.IsPrintable():
			buf = append(buf, byte(c))
		}

		cb.OnPromptKey(string(buf), c)
	}
}
