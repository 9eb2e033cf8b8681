package render

import "github.com/charmbracelet/lipgloss"

// Theme styles the text output.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Body     lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultTheme wraps long texts and highlights headings. Colour is only
// emitted when the output is a terminal.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Label:    lipgloss.NewStyle().Bold(true),
		Body:     lipgloss.NewStyle().Width(78),
		Footer:   lipgloss.NewStyle().Faint(true).Italic(true).Width(78),
	}
}

// PlainTheme leaves every string untouched.
func PlainTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle(),
		Subtitle: lipgloss.NewStyle(),
		Label:    lipgloss.NewStyle(),
		Body:     lipgloss.NewStyle(),
		Footer:   lipgloss.NewStyle(),
	}
}
