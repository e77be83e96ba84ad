package console

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_ReadsLines(t *testing.T) {
	var out bytes.Buffer
	l := NewLine(strings.NewReader("hello\r\nworld\nlast"), &out, nil)
	ctx := context.Background()

	for _, want := range []string{"hello", "world", "last"} {
		got, err := l.ReadLine(ctx, "> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := l.ReadLine(ctx, "> ")
	assert.ErrorIs(t, err, io.EOF)
	_, err = l.ReadLine(ctx, "> ")
	assert.ErrorIs(t, err, io.EOF, "EOF is sticky")

	assert.Equal(t, strings.Repeat("> ", 5), out.String())
}

func TestLine_PendingSignalInterrupts(t *testing.T) {
	signals := make(chan os.Signal, 1)
	signals <- syscall.SIGINT

	l := NewLine(strings.NewReader("ignored\n"), io.Discard, signals)
	_, err := l.ReadLine(context.Background(), "> ")
	assert.ErrorIs(t, err, ErrInterrupted)

	// The signal is consumed; the next read proceeds.
	got, err := l.ReadLine(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "ignored", got)
}

func TestLine_SignalDuringBlockedRead(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	signals := make(chan os.Signal, 1)
	l := NewLine(pr, io.Discard, signals)

	go func() {
		time.Sleep(20 * time.Millisecond)
		signals <- syscall.SIGINT
	}()

	_, err := l.ReadLine(context.Background(), "> ")
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestLine_ContextCanceled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLine(pr, io.Discard, nil).ReadLine(ctx, "> ")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_Modes(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "in")
	require.NoError(t, err)
	defer f.Close()

	c, err := New(ModeAuto, f, io.Discard, nil)
	require.NoError(t, err)
	assert.IsType(t, &Line{}, c, "regular files are not terminals")

	c, err = New(ModeTUI, f, io.Discard, nil)
	require.NoError(t, err)
	assert.IsType(t, &Prompt{}, c)

	_, err = New("gui", f, io.Discard, nil)
	assert.Error(t, err)
}

func press(m promptModel, msgs ...tea.Msg) promptModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(promptModel)
	}
	return m
}

func TestPromptModel_Submit(t *testing.T) {
	m := press(newPromptModel("> "),
		tea.KeyPressMsg{Code: 'c', Text: "c"},
		tea.KeyPressMsg{Code: 'a', Text: "a"},
		tea.KeyPressMsg{Code: 't', Text: "t"},
		tea.KeyPressMsg{Code: tea.KeyEnter},
	)
	assert.Equal(t, resultSubmitted, m.result)
	assert.Equal(t, "cat", m.input.Value())
}

func TestPromptModel_Interrupt(t *testing.T) {
	m := press(newPromptModel("> "), tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	assert.Equal(t, resultInterrupted, m.result)

	m = press(newPromptModel("> "), tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, resultInterrupted, m.result)
}

func TestPromptModel_CtrlDOnEmptyLine(t *testing.T) {
	m := press(newPromptModel("> "), tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl})
	assert.Equal(t, resultEOF, m.result)
}

func TestWatchSignals_ConsumesSignal(t *testing.T) {
	signals := make(chan os.Signal, 1)
	stop := make(chan struct{})
	interrupted := make(chan struct{})

	caught := watchSignals(signals, stop, func() { close(interrupted) })
	signals <- syscall.SIGTERM

	select {
	case <-interrupted:
	case <-time.After(time.Second):
		t.Fatal("interrupt was not called")
	}
	close(stop)
	assert.True(t, <-caught)
	assert.Empty(t, signals, "signal must not be left for the next read")
	assert.False(t, pending(signals))
}

func TestWatchSignals_Stopped(t *testing.T) {
	signals := make(chan os.Signal, 1)
	stop := make(chan struct{})
	called := false

	caught := watchSignals(signals, stop, func() { called = true })
	close(stop)
	assert.False(t, <-caught)
	assert.False(t, called)

	// A later signal stays queued for the next prompt.
	signals <- syscall.SIGINT
	assert.True(t, pending(signals))
}

func TestWatchSignals_NilChannel(t *testing.T) {
	stop := make(chan struct{})
	caught := watchSignals(nil, stop, func() { t.Error("unexpected interrupt") })
	close(stop)
	assert.False(t, <-caught)
}
