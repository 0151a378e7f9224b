package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// multiChoice is a four-option selector component.
type multiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

func newMultiChoice(question string, options []string, correctIndex int) multiChoice {
	return multiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation and selection.
func (m multiChoice) Update(msg tea.Msg) (multiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "1", "2", "3", "4":
		i := int(kmsg.String()[0] - '1')
		if i < len(m.Options) {
			m.Selected = i
			m.Submitted = true
			m.ChosenIndex = i
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

func (m multiChoice) View() string {
	s := styleBody.Bold(true).Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case m.Submitted && i == m.CorrectIndex:
			s += styleCorrect.Render(line) + "\n"
		case m.Submitted && i == m.ChosenIndex:
			s += styleIncorrect.Render(line) + "\n"
		case m.Submitted:
			s += styleHint.Render(line) + "\n"
		case i == m.Selected:
			s += styleSelected.Render(line) + "\n"
		default:
			s += styleBody.Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect reports whether the chosen option is the correct one.
func (m multiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
