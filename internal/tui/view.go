package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wordling/wordling/internal/quiz"
)

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, height, s.errMsg)
	case s.session == nil:
		return centered(width, height, styleHint.Render("Generating your quiz..."))
	case s.showingQuit:
		return centered(width, height, styleCard.Render(
			styleBody.Bold(true).Render("End this quiz?")+"\n\n"+
				styleHint.Render("Progress from an unfinished quiz is not saved.")))
	case s.showingFeedback:
		return s.renderFeedback(width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	q := s.session.CurrentQuestion()
	if q == nil {
		return ""
	}

	bar := progressBar{
		Label:       fmt.Sprintf("Question %d/%d", s.session.CurrentIndex+1, len(s.session.Questions)),
		Percent:     s.session.Progress(),
		ShowPercent: true,
		Width:       width - 8,
	}

	var body string
	switch q.Kind {
	case quiz.KindMultipleChoice:
		body = s.mc.View()

	case quiz.KindFillInBlank:
		body = styleBody.Render(q.Sentence) + "\n\n" + s.mc.View()

	case quiz.KindDragAndDrop:
		body = s.renderMatch(q)

	case quiz.KindAudio:
		body = styleTitle.Render("🔊  "+q.AudioText) + "\n\n" +
			styleBody.Bold(true).Render(q.Prompt) + "\n\n" +
			s.input.View()
	}

	content := bar.View() + "\n\n" + styleCard.Width(width-8).Render(body)
	return lipgloss.NewStyle().Padding(1, 4).Render(content)
}

// renderMatch shows the current term and the remaining definitions.
func (s *QuizScreen) renderMatch(q *quiz.Question) string {
	if s.matchTermIdx >= len(q.Terms) {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleBody.Bold(true).Render(q.Prompt) + "\n\n")
	b.WriteString(styleBody.Render("Match: ") + styleSelected.Render(q.Terms[s.matchTermIdx]) + "\n\n")

	free := freeDefinitions(q.Definitions, s.matchUsed)
	for i, defIdx := range free {
		prefix := "  "
		line := q.Definitions[defIdx]
		if i == s.matchDefSel {
			prefix = "▸ "
			b.WriteString(styleSelected.Render(prefix+line) + "\n")
			continue
		}
		b.WriteString(styleBody.Render(prefix+line) + "\n")
	}

	b.WriteString("\n" + styleHint.Render(
		fmt.Sprintf("%d of %d matched", s.matchTermIdx, len(q.Terms))))
	return b.String()
}

func (s *QuizScreen) renderFeedback(width, height int) string {
	q := &s.session.Questions[s.session.CurrentIndex-1]

	var headline, detail string
	if s.lastCorrect {
		headline = styleCorrect.Render("Correct!")
		detail = styleBody.Render(q.CorrectAnswer)
	} else {
		headline = styleIncorrect.Render("Not quite.")
		detail = styleBody.Render("The answer was: ") + styleCorrect.Render(q.CorrectAnswer)
	}

	card := styleCard.Render(headline + "\n\n" + detail + "\n\n" +
		styleHint.Render("Press any key to continue"))
	return centered(width, height, card)
}

func renderError(width, height int, msg string) string {
	card := styleCard.Render(
		styleIncorrect.Render("Something went wrong") + "\n\n" +
			styleBody.Render(msg) + "\n\n" +
			styleHint.Render("Press any key to exit"))
	return centered(width, height, card)
}

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
