package share

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

// Command shares by running an external program with the message on stdin
// and the title in $GRATITUDE_SHARE_TITLE.
type Command struct {
	Name string
	Args []string

	lookPath func(string) (string, error)
}

// NewCommand parses a command line such as "termux-share -a send". It returns
// nil for a blank line.
func NewCommand(line string) *Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	return &Command{Name: fields[0], Args: fields[1:], lookPath: exec.LookPath}
}

func (c *Command) Available() bool {
	if c == nil || c.Name == "" {
		return false
	}
	look := c.lookPath
	if look == nil {
		look = exec.LookPath
	}
	_, err := look(c.Name)
	return err == nil
}

func (c *Command) Share(ctx context.Context, title, text string) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Env = append(os.Environ(), "GRATITUDE_SHARE_TITLE="+title)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", c.Name, err, msg)
		}
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	return nil
}

// Clipboard copies the message to the system clipboard.
type Clipboard struct {
	write func(string) error
}

// NewClipboard uses the system clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll}
}

func (c *Clipboard) Available() bool {
	return c.write != nil && !clipboard.Unsupported
}

func (c *Clipboard) Share(_ context.Context, _, text string) error {
	return c.write(text)
}
