package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var colors = []string{"Red", "Green", "Blue"}

func typeAndEnter(m *model, text string) *model {
	if text != "" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func TestResolveChoice(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "", want: "Blue"},
		{raw: "  ", want: "Blue"},
		{raw: "1", want: "Red"},
		{raw: "3", want: "Blue"},
		{raw: "Purple", want: "Purple"},
		{raw: "0", wantErr: true},
		{raw: "4", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := resolveChoice(tt.raw, colors, 2)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModel_Choice(t *testing.T) {
	m := typeAndEnter(newChoiceModel("Color", colors, 0), "2")
	assert.True(t, m.done)
	assert.Equal(t, "Green", m.value)

	m = typeAndEnter(newChoiceModel("Color", colors, 0), "")
	assert.True(t, m.done)
	assert.Equal(t, "Red", m.value)
}

func TestModel_ChoiceOutOfRangeStaysOpen(t *testing.T) {
	m := typeAndEnter(newChoiceModel("Color", colors, 0), "9")
	assert.False(t, m.done)
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "between 1 to 3")

	typeAndEnter(m, "3")
	assert.True(t, m.done)
	assert.Equal(t, "Blue", m.value)
	assert.NoError(t, m.err)
}

func TestModel_Text(t *testing.T) {
	m := typeAndEnter(newTextModel("Project title", 40), "")
	assert.False(t, m.done)
	assert.Error(t, m.err)

	typeAndEnter(m, "Keyword spotting")
	assert.True(t, m.done)
	assert.Equal(t, "Keyword spotting", m.value)
	assert.Contains(t, m.View(), "Keyword spotting")
}

func TestModel_TextCharLimit(t *testing.T) {
	m := typeAndEnter(newTextModel("Project title", 5), "abcdefgh")
	assert.True(t, m.done)
	assert.Equal(t, "abcde", m.value)
}

func TestModel_Cancel(t *testing.T) {
	m := newChoiceModel("Color", colors, 0)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.canceled)
	assert.NotNil(t, cmd)
}

func TestModel_ViewListsChoices(t *testing.T) {
	view := newChoiceModel("Color", colors, 1).View()
	assert.Contains(t, view, "1. Red")
	assert.Contains(t, view, "2. Green")
	assert.Contains(t, view, "(default)")
}

func TestTerminal_ChoiceRejectsBadDefault(t *testing.T) {
	_, err := NewTerminal(nil, nil).Choice("Color", colors, 5)
	assert.Error(t, err)
}
