package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/gratitude/pkg/calendar"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Calendar calendar.Options
	Header   HeaderTheme
	Panel    PanelTheme
	Footer   FooterTheme
}

// HeaderTheme styles the title and the quote of the day.
type HeaderTheme struct {
	Title lipgloss.Style
	Quote lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame       lipgloss.Style
	FocusFrame  lipgloss.Style
	Title       lipgloss.Style
	Body        lipgloss.Style
	Placeholder lipgloss.Style
	StatValue   lipgloss.Style
	StatLabel   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help  lipgloss.Style
	Saved lipgloss.Style
	Toast lipgloss.Style
	Error lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Theme{
		Calendar: calendar.DefaultOptions(),
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Foreground(accent).Bold(true),
			Quote: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		},
		Panel: PanelTheme{
			Frame:       frame,
			FocusFrame:  frame.BorderForeground(accent),
			Title:       lipgloss.NewStyle().Bold(true),
			Body:        lipgloss.NewStyle(),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			StatValue:   lipgloss.NewStyle().Foreground(accent).Bold(true),
			StatLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Footer: FooterTheme{
			Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Saved: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(accent).Padding(0, 1),
			Error: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		},
	}
}
