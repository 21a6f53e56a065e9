package engine

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text        lipgloss.Style
	Markup      lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style

	Toolbar          lipgloss.Style
	ToolbarSeparator lipgloss.Style
	Widget           lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:           gutter,
		LineNum:          gutter,
		LineNumActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:             lipgloss.NewStyle(),
		Markup:           lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Cursor:           lipgloss.NewStyle().Reverse(true),
		Placeholder:      lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
		Toolbar:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		ToolbarSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("236")),
		Widget:           lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
