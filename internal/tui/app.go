package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const (
	minWidth  = 70
	minHeight = 20
)

// appModel is the root Bubble Tea model wrapping the screen stack.
type appModel struct {
	router *router
	width  int
	height int
}

func (m appModel) Init() tea.Cmd {
	return m.router.active().Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.update(msg)
	return m, cmd
}

func (m appModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if m.width < minWidth || m.height < minHeight {
		v.SetContent(renderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	header := renderHeader(title, m.width)

	hints := []KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if hp, ok := active.(KeyHintProvider); ok {
		if custom := hp.KeyHints(); len(custom) > 0 {
			hints = append(custom, hints...)
		}
	}
	footer := renderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Render(m.router.view(m.width, contentHeight))

	v.SetContent(header + "\n" + content + "\n" + footer)
	return v
}

// Run starts the Bubble Tea program with the given initial screen.
func Run(initial Screen) error {
	p := tea.NewProgram(appModel{router: newRouter(initial)})
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func renderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(colorText).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			minWidth, minHeight, width, height,
		))
}

func renderHeader(title string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("  Wordling")

	center := lipgloss.NewStyle().
		Foreground(colorText).
		Render(title)

	innerWidth := width - 4
	if innerWidth < 0 {
		innerWidth = 0
	}
	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	gap := (innerWidth-centerLen)/2 - leftLen
	if gap < 1 {
		gap = 1
	}

	content := left + strings.Repeat(" ", gap) + center

	return lipgloss.NewStyle().
		Width(width).
		Background(colorBgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Render(content)
}

func renderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(colorText).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(colorTextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")

	return lipgloss.NewStyle().
		Width(width).
		Background(colorBgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Render(content)
}
