package tui

import "github.com/wordling/wordling/internal/quiz"

// quizReadyMsg carries a started session after generation and building.
type quizReadyMsg struct {
	session *quiz.Session
}

// quizFailedMsg reports that quiz generation or building failed.
type quizFailedMsg struct {
	err error
}

// feedbackDoneMsg dismisses the per-question feedback overlay.
type feedbackDoneMsg struct{}

// quizFinishedMsg reports that the session outcome has been persisted.
type quizFinishedMsg struct {
	err error
}
