package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/spellz/internal/ui/theme"
)

// Prompt reads each line with a small Bubble Tea program around a text
// input, giving line editing on terminals.
type Prompt struct {
	in      io.Reader
	out     io.Writer
	signals <-chan os.Signal
}

// NewPrompt returns a Prompt console. signals may be nil.
func NewPrompt(in io.Reader, out io.Writer, signals <-chan os.Signal) *Prompt {
	return &Prompt{in: in, out: out, signals: signals}
}

func (p *Prompt) ReadLine(ctx context.Context, prompt string) (string, error) {
	if pending(p.signals) {
		fmt.Fprintln(p.out)
		return "", ErrInterrupted
	}

	// Signals arrive on p.signals only, so one Ctrl+C is handled once.
	prog := tea.NewProgram(newPromptModel(prompt),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithoutSignalHandler(),
	)
	stop := make(chan struct{})
	caught := watchSignals(p.signals, stop, func() { prog.Send(tea.Interrupt()) })
	final, err := prog.Run()
	close(stop)
	interrupted := <-caught

	switch {
	case interrupted || errors.Is(err, tea.ErrInterrupted):
		return "", ErrInterrupted
	case ctx.Err() != nil:
		return "", ctx.Err()
	case err != nil:
		return "", fmt.Errorf("read input: %w", err)
	}

	m := final.(promptModel)
	switch m.result {
	case resultInterrupted:
		return "", ErrInterrupted
	case resultEOF:
		return "", io.EOF
	}
	return m.input.Value(), nil
}

// watchSignals calls interrupt for the first signal that arrives before stop
// is closed. The returned channel yields once, reporting whether a signal was
// consumed.
func watchSignals(signals <-chan os.Signal, stop <-chan struct{}, interrupt func()) <-chan bool {
	caught := make(chan bool, 1)
	go func() {
		select {
		case <-signals:
			interrupt()
			caught <- true
		case <-stop:
			caught <- false
		}
	}()
	return caught
}

type promptResult int

const (
	resultPending promptResult = iota
	resultSubmitted
	resultInterrupted
	resultEOF
)

type promptModel struct {
	input  textinput.Model
	result promptResult
}

func newPromptModel(prompt string) promptModel {
	ti := textinput.New()
	ti.Prompt = theme.Prompt.Render(prompt)
	ti.Focus()
	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			m.result = resultSubmitted
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.result = resultInterrupted
			return m, tea.Quit
		case "ctrl+d":
			if m.input.Value() == "" {
				m.result = resultEOF
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() tea.View {
	if m.result != resultPending {
		// Leave the submitted line on screen.
		return tea.NewView(m.input.Prompt + m.input.Value() + "\n")
	}
	return tea.NewView(m.input.View())
}
