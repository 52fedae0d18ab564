package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Value    lipgloss.Style
	Error    lipgloss.Style
	Note     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Value: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Note:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
	}
}
