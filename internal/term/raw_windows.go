package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// setMode configures console mode flags for fd and returns a restore function.
// If err == nil, restore will restore fd to it's previous mode.
func setMode(fd uintptr, disabledFlags, enabledFlags uint32) (restore func() error, err error) {
	handle := windows.Handle(fd)
	var oldMode uint32
	if err := windows.GetConsoleMode(handle, &oldMode); err != nil {
		return nil, fmt.Errorf("get console mode: %w", err)
	}

	if err := windows.SetConsoleMode(handle, oldMode&^disabledFlags|enabledFlags); err != nil {
		return nil, fmt.Errorf("set console mode: %w", err)
	}

	return func() error {
		return windows.SetConsoleMode(handle, oldMode)
	}, nil
}

// EnableRawMode sets the console into raw mode and returns a restore function.
// If err == nil, restore will restore the console to it's previous mode.
//
// Output is always written to os.Stdout, so its mode is switched to VT
// processing together with f.
func EnableRawMode(f *os.File) (restore func() error, err error) {
	resetIn, err := setMode(f.Fd(), windows.ENABLE_ECHO_INPUT|windows.ENABLE_PROCESSED_INPUT|windows.ENABLE_LINE_INPUT|windows.ENABLE_PROCESSED_OUTPUT, windows.ENABLE_VIRTUAL_TERMINAL_INPUT)
	if err != nil {
		return nil, err
	}

	resetOut, err := setMode(os.Stdout.Fd(), 0, windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	if err != nil {
		resetIn()
		return nil, err
	}

	return func() error {
		errOut := resetOut()
		errIn := resetIn()
		if errOut != nil {
			return errOut
		}
		return errIn
	}, nil
}
