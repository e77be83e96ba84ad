package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

type lineResult struct {
	text string
	err  error
}

// Line reads newline-terminated input from a reader. It works with pipes
// and files as well as terminals in cooked mode.
type Line struct {
	in      *bufio.Reader
	out     io.Writer
	signals <-chan os.Signal

	once  sync.Once
	lines chan lineResult
}

// NewLine returns a Line console. signals may be nil.
func NewLine(in io.Reader, out io.Writer, signals <-chan os.Signal) *Line {
	return &Line{
		in:      bufio.NewReader(in),
		out:     out,
		signals: signals,
		lines:   make(chan lineResult),
	}
}

func (l *Line) ReadLine(ctx context.Context, prompt string) (string, error) {
	if pending(l.signals) {
		fmt.Fprintln(l.out)
		return "", ErrInterrupted
	}
	fmt.Fprint(l.out, prompt)

	// Reads happen on a goroutine so a signal can interrupt a blocked read.
	l.once.Do(func() { go l.readLoop() })

	select {
	case r, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return r.text, r.err
	case <-l.signals:
		fmt.Fprintln(l.out)
		return "", ErrInterrupted
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (l *Line) readLoop() {
	defer close(l.lines)
	for {
		s, err := l.in.ReadString('\n')
		if err == io.EOF && s != "" {
			// Last line without a trailing newline.
			err = nil
		}
		l.lines <- lineResult{text: strings.TrimRight(s, "\r\n"), err: err}
		if err != nil {
			return
		}
	}
}
