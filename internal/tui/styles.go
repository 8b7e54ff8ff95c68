package tui

import "charm.land/lipgloss/v2"

var (
	colorAccent = lipgloss.Color("141")
	colorUser   = lipgloss.Color("117")
	colorText   = lipgloss.Color("252")
	colorMuted  = lipgloss.Color("245")
	colorError  = lipgloss.Color("196")
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	tagStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	userStyle      = lipgloss.NewStyle().Foreground(colorUser)
	assistantStyle = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle     = lipgloss.NewStyle().Foreground(colorError)
)
