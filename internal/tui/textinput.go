package tui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// answerInput wraps bubbles/textinput for typed answers.
type answerInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

func newAnswerInput(placeholder string, charLimit int) answerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return answerInput{Model: ti}
}

func (t answerInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t answerInput) Update(msg tea.Msg) (answerInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t answerInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + styleCorrect.Render("✓")
		} else {
			view += " " + styleIncorrect.Render("✗")
		}
	}
	return view
}

func (t answerInput) Value() string {
	return t.Model.Value()
}

// Submit marks the input as submitted with a validation result.
func (t *answerInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
