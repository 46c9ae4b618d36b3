// Command rawpad is a small text editor for VT100 compatible terminals.
//
// Usage:
//
//	rawpad [-debug logfile] [file]
//
// Keys: Ctrl-S saves, Ctrl-Q quits, Ctrl-F searches.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jupj/rawpad/internal/editor"
	"github.com/jupj/rawpad/internal/term"
)

var errNotTerminal = errors.New("stdin is not a terminal")

func run(args ...string) error {
	fs := flag.NewFlagSet("rawpad", flag.ContinueOnError)
	debug := fs.String("debug", "", "append debug log to `file`")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if *debug != "" {
		f, err := os.OpenFile(*debug, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
		logger = log.New(f, "rawpad: ", log.LstdFlags|log.Lmicroseconds)
	}

	if !term.IsTerminal(os.Stdin) {
		return errNotTerminal
	}

	disableRawMode, err := term.EnableRawMode(os.Stdin)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		// Clean up screen and disable raw mode
		fmt.Print("\x1b[2J") // clear screen
		fmt.Print("\x1b[H")  // move cursor to top left
		if err := disableRawMode(); err != nil {
			logger.Printf("disable raw mode: %v", err)
		}
	}()

	rows, cols, err := term.WindowSize(os.Stdout, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	logger.Printf("window size %dx%d", rows, cols)

	e := editor.New(os.Stdin, os.Stdout, rows, cols, editor.WithLogger(logger))
	if fs.NArg() > 0 {
		if err := e.Open(fs.Arg(0)); err != nil {
			return err
		}
	}

	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")
	return e.Run()
}

func main() {
	if err := run(os.Args[1:]...); err != nil {
		fmt.Fprintf(os.Stderr, "Exit with error: %v\n", err)
		os.Exit(1)
	}
}
