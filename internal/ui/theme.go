package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title   lipgloss.Style
	Clock   lipgloss.Style
	Summary lipgloss.Style
	Cursor  lipgloss.Style
	Name    lipgloss.Style
	Running lipgloss.Style
	Time    lipgloss.Style
	Hint    lipgloss.Style
	Danger  lipgloss.Style
}

var darkTheme = Theme{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Clock:   lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Summary: lipgloss.NewStyle().Foreground(lipgloss.Color("#CBA6F7")),
	Cursor:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
	Name:    lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
	Running: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Time:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	Hint:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#6C7086")),
	Danger:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
}

var lightTheme = Theme{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#40A02B")),
	Clock:   lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#1E66F5")),
	Summary: lipgloss.NewStyle().Foreground(lipgloss.Color("#8839EF")),
	Cursor:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DF8E1D")),
	Name:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4C4F69")),
	Running: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#40A02B")),
	Time:    lipgloss.NewStyle().Foreground(lipgloss.Color("#DD7878")),
	Hint:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#9CA0B0")),
	Danger:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D20F39")),
}

// themeByName maps a stored preference to a palette. Anything unknown
// reads as dark.
func themeByName(name string) Theme {
	if name == "light" {
		return lightTheme
	}
	return darkTheme
}

// nextTheme is the toggle order for the t key.
func nextTheme(name string) string {
	if name == "light" {
		return "dark"
	}
	return "light"
}

// normalizeTheme collapses any stored value onto the two known names.
func normalizeTheme(name string) string {
	if name == "light" {
		return "light"
	}
	return "dark"
}
