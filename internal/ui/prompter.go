package ui

import (
	"io"

	"github.com/chzyer/readline"
	"github.com/cockroachdb/errors"
)

// ErrInputCancelled is returned when the user interrupts a prompt or input ends
var ErrInputCancelled = errors.New("input cancelled")

// Prompter reads one line of user input per call
type Prompter interface {
	Prompt(label string) (string, error)
	Close() error
}

// ReadlinePrompter reads from the terminal with line editing
type ReadlinePrompter struct {
	rl *readline.Instance
}

// NewReadlinePrompter creates a prompter writing prompts to out
func NewReadlinePrompter(out io.Writer) (*ReadlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdout:                 out,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize terminal input")
	}
	return &ReadlinePrompter{rl: rl}, nil
}

// Prompt shows label and returns the entered line without its newline
func (p *ReadlinePrompter) Prompt(label string) (string, error) {
	p.rl.SetPrompt(label)
	line, err := p.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", ErrInputCancelled
		}
		return "", errors.Wrap(err, "failed to read input")
	}
	return line, nil
}

// Close releases the terminal
func (p *ReadlinePrompter) Close() error {
	return p.rl.Close()
}
