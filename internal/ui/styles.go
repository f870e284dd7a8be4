// Package ui holds the lipgloss styles for console output.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles is the style set used by the command summaries.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Good  lipgloss.Style
	Warn  lipgloss.Style
	Muted lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			PaddingTop(1).
			PaddingBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#737373")),

		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")),

		Good: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")),

		Warn: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5F87")),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#737373")).
			Italic(true),
	}
}
