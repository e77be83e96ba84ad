// Package console reads operator input line by line and turns Ctrl+C into
// an ErrInterrupted result at the read boundary.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ErrInterrupted is returned by ReadLine when the operator cancels with
// Ctrl+C or the process receives SIGINT or SIGTERM.
var ErrInterrupted = errors.New("interrupted")

// Console reads one line of operator input at a time.
type Console interface {
	// ReadLine shows prompt and blocks until a line is entered. It returns
	// ErrInterrupted on cancellation and io.EOF when input is exhausted.
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Modes select the console implementation.
const (
	ModeAuto = "auto"
	ModeTUI  = "tui"
	ModeLine = "line"
)

// Signals subscribes to SIGINT and SIGTERM. Signals that arrive while no
// read is in progress are kept until the next read. Call stop to restore
// the default behavior.
func Signals() (ch <-chan os.Signal, stop func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	return c, func() { signal.Stop(c) }
}

// New returns the console for mode. The auto mode uses the interactive
// prompt when in is a terminal and the line reader otherwise.
func New(mode string, in *os.File, out io.Writer, signals <-chan os.Signal) (Console, error) {
	switch mode {
	case ModeLine:
		return NewLine(in, out, signals), nil
	case ModeTUI:
		return NewPrompt(in, out, signals), nil
	case ModeAuto, "":
		if IsTerminal(in) {
			return NewPrompt(in, out, signals), nil
		}
		return NewLine(in, out, signals), nil
	}
	return nil, fmt.Errorf("unknown console mode %q", mode)
}

// IsTerminal reports whether f is a character device.
func IsTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// pending reports whether a signal is already waiting.
func pending(signals <-chan os.Signal) bool {
	select {
	case <-signals:
		return true
	default:
		return false
	}
}
