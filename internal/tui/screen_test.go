package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string             { return s.title }
func (s *stubScreen) Title() string                    { return s.title }

func TestRouterPush(t *testing.T) {
	s1 := &stubScreen{title: "quiz"}
	r := newRouter(s1)

	s2 := &stubScreen{title: "summary"}
	r.push(s2)

	if r.depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.depth())
	}
	if r.active().Title() != "summary" {
		t.Errorf("expected active 'summary', got %q", r.active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestRouterPop(t *testing.T) {
	s1 := &stubScreen{title: "quiz"}
	r := newRouter(s1)
	r.push(&stubScreen{title: "summary"})
	r.pop()

	if r.depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.depth())
	}
	if r.active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.active().Title())
	}
}

func TestRouterPopNoopAtBottom(t *testing.T) {
	r := newRouter(&stubScreen{title: "quiz"})
	r.pop()

	if r.depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.depth())
	}
}

func TestRouterPushMsg(t *testing.T) {
	r := newRouter(&stubScreen{title: "quiz"})
	s2 := &stubScreen{title: "summary"}
	r.update(pushScreenMsg{screen: s2})

	if r.active().Title() != "summary" {
		t.Errorf("expected active 'summary', got %q", r.active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via pushScreenMsg")
	}
}

func TestMultiChoiceNavigation(t *testing.T) {
	mc := newMultiChoice("Pick", []string{"a", "b", "c", "d"}, 2)

	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if mc.Selected != 2 {
		t.Errorf("Selected = %d, want 2", mc.Selected)
	}

	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !mc.Submitted {
		t.Fatal("not submitted after enter")
	}
	if !mc.IsCorrect() {
		t.Error("choosing the correct index should report correct")
	}
}

func TestMultiChoiceFrozenAfterSubmit(t *testing.T) {
	mc := newMultiChoice("Pick", []string{"a", "b", "c", "d"}, 0)
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	before := mc.ChosenIndex

	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if mc.ChosenIndex != before {
		t.Error("submitted choice changed after submission")
	}
}
