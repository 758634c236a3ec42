// Package prompt collects missing project metadata on the terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/accelerator-pr/internal/project"
)

var ErrCanceled = errors.New("prompt canceled")

// Terminal implements project.Prompter with one bubbletea program per field.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

var _ project.Prompter = (*Terminal)(nil)

// NewTerminal returns a prompter reading from in and drawing to out. Nil
// values mean the process's stdin and stdout.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

func (t *Terminal) Text(label string, maxLen int) (string, error) {
	return t.run(newTextModel(label, maxLen))
}

func (t *Terminal) Choice(label string, choices []string, defaultIdx int) (string, error) {
	if len(choices) == 0 || defaultIdx < 0 || defaultIdx >= len(choices) {
		return "", fmt.Errorf("invalid choice prompt %q: %d choices, default %d", label, len(choices), defaultIdx)
	}
	return t.run(newChoiceModel(label, choices, defaultIdx))
}

func (t *Terminal) run(m *model) (string, error) {
	var opts []tea.ProgramOption
	if t.in != nil {
		opts = append(opts, tea.WithInput(t.in))
	}
	if t.out != nil {
		opts = append(opts, tea.WithOutput(t.out))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return "", fmt.Errorf("prompt %q failed: %w", m.label, err)
	}
	fm, ok := final.(*model)
	if !ok || fm.canceled || !fm.done {
		return "", fmt.Errorf("%w: %s", ErrCanceled, m.label)
	}
	return fm.value, nil
}
