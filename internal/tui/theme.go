package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, study-friendly
var (
	colorPrimary = lipgloss.Color("#38BDF8") // Sky Blue
	colorAccent  = lipgloss.Color("#FBBF24") // Amber
	colorSuccess = lipgloss.Color("#34D399") // Emerald
	colorError   = lipgloss.Color("#FB7185") // Rose
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorTextDim = lipgloss.Color("#94A3B8") // Slate
	colorBgCard  = lipgloss.Color("#1E293B") // Dark Slate
	colorBorder  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Align(lipgloss.Center)

	styleBody = lipgloss.NewStyle().
			Foreground(colorText)

	styleHint = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Italic(true)

	styleCorrect = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleIncorrect = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleCard = lipgloss.NewStyle().
			Background(colorBgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)
)
