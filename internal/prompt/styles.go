package prompt

import "github.com/charmbracelet/lipgloss"

type styles struct {
	label    lipgloss.Style
	choice   lipgloss.Style
	def      lipgloss.Style
	hint     lipgloss.Style
	error    lipgloss.Style
	prompt   lipgloss.Style
	answered lipgloss.Style
}

type palette struct {
	Primary  lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Error    lipgloss.Color
	Inactive lipgloss.Color
}

var defaultPalette = palette{
	Primary:  lipgloss.Color("51"),
	Success:  lipgloss.Color("46"),
	Warning:  lipgloss.Color("226"),
	Error:    lipgloss.Color("196"),
	Inactive: lipgloss.Color("240"),
}

func newStyles(p palette) styles {
	return styles{
		label:    lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		choice:   lipgloss.NewStyle().PaddingLeft(2),
		def:      lipgloss.NewStyle().Foreground(p.Success),
		hint:     lipgloss.NewStyle().Foreground(p.Inactive).Italic(true),
		error:    lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		prompt:   lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		answered: lipgloss.NewStyle().Foreground(p.Inactive),
	}
}
