package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/accelerator-pr/internal/project"
)

// model asks for a single value. With choices set it accepts a 1-based
// number, an empty answer for the default, or free text.
type model struct {
	styles styles
	input  textinput.Model

	label      string
	maxLen     int
	choices    []string
	defaultIdx int

	value    string
	err      error
	done     bool
	canceled bool
}

func newTextModel(label string, maxLen int) *model {
	m := newModel(label)
	m.maxLen = maxLen
	m.input.CharLimit = maxLen
	m.input.Placeholder = fmt.Sprintf("max %d characters", maxLen)
	return m
}

func newChoiceModel(label string, choices []string, defaultIdx int) *model {
	m := newModel(label)
	m.choices = choices
	m.defaultIdx = defaultIdx
	m.input.Placeholder = fmt.Sprintf("1 to %d, or a new name", len(choices))
	return m
}

func newModel(label string) *model {
	s := newStyles(defaultPalette)
	ti := textinput.New()
	ti.Prompt = s.prompt.Render("► ")
	ti.Focus()
	return &model{styles: s, input: ti, label: label}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter:
			value, err := m.resolve(m.input.Value())
			if err != nil {
				m.err = err
				m.input.Reset()
				return m, nil
			}
			m.value = value
			m.err = nil
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) resolve(raw string) (string, error) {
	if m.choices == nil {
		if err := project.CheckText(m.label, raw, m.maxLen); err != nil {
			return "", err
		}
		return raw, nil
	}
	return resolveChoice(raw, m.choices, m.defaultIdx)
}

func resolveChoice(raw string, choices []string, defaultIdx int) (string, error) {
	answer := strings.TrimSpace(raw)
	if answer == "" {
		return choices[defaultIdx], nil
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return answer, nil
	}
	if n <= 0 || n > len(choices) {
		return "", fmt.Errorf("number %d is not between 1 to %d", n, len(choices))
	}
	return choices[n-1], nil
}

func (m *model) View() string {
	var b strings.Builder
	if m.done {
		fmt.Fprintf(&b, "%s %s\n", m.styles.label.Render(m.label+":"), m.styles.answered.Render(m.value))
		return b.String()
	}

	b.WriteString(m.styles.label.Render(m.label))
	if m.choices != nil {
		b.WriteString(m.styles.hint.Render(fmt.Sprintf(" (type 1 to %d or enter a new name)", len(m.choices))))
		b.WriteString("\n")
		for i, c := range m.choices {
			line := fmt.Sprintf("%d. %s", i+1, c)
			if i == m.defaultIdx {
				line += m.styles.def.Render(" (default)")
			}
			b.WriteString(m.styles.choice.Render(line))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(m.styles.hint.Render(fmt.Sprintf(" (max %d characters)", m.maxLen)))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.error.Render("⚠ " + m.err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}
