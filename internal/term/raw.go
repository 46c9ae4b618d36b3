//go:build !windows

package term

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// EnableRawMode sets the terminal behind f into raw mode and returns a restore function.
// If err == nil, restore will restore the terminal to it's previous mode.
//
// Reads from f return after at most 100ms, even if no input is available.
func EnableRawMode(f *os.File) (restore func() error, err error) {
	fd := f.Fd()

	var orig unix.Termios
	if err := termios.Tcgetattr(fd, &orig); err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}

	raw := orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := termios.Tcsetattr(fd, termios.TCSAFLUSH, &raw); err != nil {
		return nil, fmt.Errorf("tcsetattr: %w", err)
	}

	return func() error {
		if err := termios.Tcsetattr(fd, termios.TCSAFLUSH, &orig); err != nil {
			return fmt.Errorf("tcsetattr: %w", err)
		}
		return nil
	}, nil
}
