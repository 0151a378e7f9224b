package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// progressBar renders a horizontal progress bar.
type progressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func (p progressBar) View() string {
	var result string

	if p.Label != "" {
		result += styleBody.Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(colorPrimary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(colorBorder).
		Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += styleHint.Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}
