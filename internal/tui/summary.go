package tui

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wordling/wordling/internal/mastery"
	"github.com/wordling/wordling/internal/quiz"
)

// SummaryScreen shows the finished session's score and the review list of
// missed words. Marking a word reviewed removes one occurrence and forces
// its status to learning.
type SummaryScreen struct {
	session *quiz.Session
	mastery *mastery.Service

	cursor int
	errMsg string
}

var _ Screen = (*SummaryScreen)(nil)
var _ KeyHintProvider = (*SummaryScreen)(nil)

// NewSummaryScreen creates the summary for a finished session.
func NewSummaryScreen(session *quiz.Session, masterySvc *mastery.Service) *SummaryScreen {
	return &SummaryScreen{session: session, mastery: masterySvc}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) KeyHints() []KeyHint {
	if len(s.session.ReviewWords) > 0 {
		return []KeyHint{
			{Key: "Enter", Description: "Mark reviewed"},
			{Key: "A", Description: "Mark all"},
			{Key: "Q", Description: "Done"},
		}
	}
	return []KeyHint{{Key: "Q", Description: "Done"}}
}

func (s *SummaryScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "q", "esc", "ctrl+c":
		return s, tea.Quit

	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}

	case "down", "j":
		if s.cursor < len(s.session.ReviewWords)-1 {
			s.cursor++
		}

	case "enter":
		if len(s.session.ReviewWords) == 0 {
			return s, tea.Quit
		}
		w := s.session.ReviewWords[s.cursor]
		if err := s.session.MarkReviewed(context.Background(), s.mastery, w.ID); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		if s.cursor >= len(s.session.ReviewWords) && s.cursor > 0 {
			s.cursor--
		}

	case "a", "A":
		if err := s.session.MarkAllReviewed(context.Background(), s.mastery); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.cursor = 0
	}

	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sess := s.session
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(colorPrimary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	total := len(sess.Questions)
	accuracy := 0.0
	if total > 0 {
		accuracy = float64(sess.CorrectAnswers) / float64(total)
	}
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		total, sess.CorrectAnswers, accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(colorText).
		Render(statsLine))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			styleIncorrect.Render(s.errMsg)))
		b.WriteString("\n\n")
	}

	if len(sess.ReviewWords) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			styleCorrect.Render("Nothing left to review — well done!")))
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(colorBorder).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		styleHint.Render("Words to review")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for i, w := range sess.ReviewWords {
		line := "  " + w.Text
		if w.Translation != "" {
			line += "  —  " + w.Translation
		}
		style := styleBody
		if i == s.cursor {
			line = "▸" + line[1:]
			style = styleSelected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
