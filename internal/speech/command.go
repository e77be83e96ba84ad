package speech

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Command speaks by running an external program with the text as its
// last argument.
type Command struct {
	name string
	args []string
}

// NewCommand returns a Speaker that runs name with args followed by the text.
func NewCommand(name string, args ...string) *Command {
	return &Command{name: name, args: args}
}

func (c *Command) Speak(ctx context.Context, text string) error {
	return run(ctx, c.name, append(append([]string{}, c.args...), text)...)
}

// run executes a command, waiting for it to exit. Its stderr is included
// in the error on failure.
func run(ctx context.Context, name string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
