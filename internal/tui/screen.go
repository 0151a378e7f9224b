package tui

import (
	tea "charm.land/bubbletea/v2"
)

// Screen is one view in the quiz flow.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen plus a command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHint is a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// KeyHintProvider is an optional interface screens implement to provide
// custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []KeyHint
}

// pushScreenMsg requests the router to push a new screen onto the stack.
type pushScreenMsg struct {
	screen Screen
}

// popScreenMsg requests the router to pop the current screen off the stack.
type popScreenMsg struct{}

// router manages a stack of screens.
type router struct {
	stack []Screen
}

func newRouter(initial Screen) *router {
	return &router{stack: []Screen{initial}}
}

func (r *router) push(s Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// pop removes the top screen. No-op if stack depth would become 0.
func (r *router) pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

func (r *router) active() Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *router) depth() int {
	return len(r.stack)
}

// update forwards a message to the active screen and handles navigation.
func (r *router) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pushScreenMsg:
		return r.push(msg.screen)
	case popScreenMsg:
		return r.pop()
	}

	active := r.active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

func (r *router) view(width, height int) string {
	active := r.active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
