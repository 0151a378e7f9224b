package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/wordling/wordling/internal/mastery"
	"github.com/wordling/wordling/internal/progress"
	"github.com/wordling/wordling/internal/quiz"
	"github.com/wordling/wordling/internal/quizgen"
	"github.com/wordling/wordling/internal/vocab"
)

// QuizScreen drives one quiz session: generate, ask, persist, summarize.
type QuizScreen struct {
	generator quizgen.Generator
	builder   *quiz.Builder
	mastery   *mastery.Service
	tracker   *progress.Tracker

	words    []vocab.Word
	quizType quiz.Type
	language string

	session *quiz.Session

	mc    multiChoice
	input answerInput

	// drag-and-drop state: match each shuffled term to a definition.
	matchTermIdx int
	matchDefSel  int
	matchUsed    map[int]bool
	matchAllOK   bool

	showingFeedback bool
	lastCorrect     bool
	showingQuit     bool
	errMsg          string
}

var _ Screen = (*QuizScreen)(nil)
var _ KeyHintProvider = (*QuizScreen)(nil)

// NewQuizScreen creates the quiz flow screen with injected collaborators.
func NewQuizScreen(
	generator quizgen.Generator,
	builder *quiz.Builder,
	masterySvc *mastery.Service,
	tracker *progress.Tracker,
	words []vocab.Word,
	quizType quiz.Type,
	language string,
) *QuizScreen {
	return &QuizScreen{
		generator: generator,
		builder:   builder,
		mastery:   masterySvc,
		tracker:   tracker,
		words:     words,
		quizType:  quizType,
		language:  language,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.loadQuiz()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []KeyHint {
	switch {
	case s.showingQuit:
		return []KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showingFeedback:
		return []KeyHint{{Key: "any key", Description: "Continue"}}
	case s.session != nil:
		return []KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return nil
}

// loadQuiz generates and builds the question set asynchronously.
func (s *QuizScreen) loadQuiz() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		raw, err := s.generator.GenerateQuiz(ctx, s.words, s.quizType, s.language)
		if err != nil {
			return quizFailedMsg{err: err}
		}
		questions := s.builder.Build(raw, s.words)
		session, err := quiz.NewSession(questions)
		if err != nil {
			if errors.Is(err, quiz.ErrNoQuestions) {
				return quizFailedMsg{err: errors.New("no usable questions were generated, try again")}
			}
			return quizFailedMsg{err: err}
		}
		return quizReadyMsg{session: session}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		s.session = msg.session
		s.setupQuestion()
		return s, s.input.Init()

	case quizFailedMsg:
		s.errMsg = msg.err.Error()
		return s, nil

	case feedbackDoneMsg:
		s.showingFeedback = false
		if s.session.IsComplete() {
			return s, s.finishQuiz()
		}
		s.setupQuestion()
		return s, s.input.Init()

	case quizFinishedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		summary := NewSummaryScreen(s.session, s.mastery)
		return s, func() tea.Msg { return pushScreenMsg{screen: summary} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// setupQuestion resets per-question component state for the current question.
func (s *QuizScreen) setupQuestion() {
	q := s.session.CurrentQuestion()
	if q == nil {
		return
	}

	switch q.Kind {
	case quiz.KindMultipleChoice, quiz.KindFillInBlank:
		s.mc = newMultiChoice(q.Prompt, q.Options, indexOf(q.Options, q.CorrectAnswer))

	case quiz.KindDragAndDrop:
		s.matchTermIdx = 0
		s.matchDefSel = 0
		s.matchUsed = make(map[int]bool, len(q.Definitions))
		s.matchAllOK = true

	case quiz.KindAudio:
		s.input = newAnswerInput("Type what you hear...", 60)
	}
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, tea.Quit
	}
	if s.session == nil {
		return s, nil
	}

	if s.showingQuit {
		switch key {
		case "y", "Y":
			// Abandoned sessions leave no trace.
			return s, tea.Quit
		case "n", "N", "esc":
			s.showingQuit = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if key == "esc" {
		s.showingQuit = true
		return s, nil
	}

	q := s.session.CurrentQuestion()
	if q == nil {
		return s, nil
	}

	switch q.Kind {
	case quiz.KindMultipleChoice, quiz.KindFillInBlank:
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			return s.submitAnswer(s.mc.IsCorrect())
		}
		return s, cmd

	case quiz.KindDragAndDrop:
		return s.handleMatchKey(key, q)

	case quiz.KindAudio:
		if key == "enter" {
			answer := strings.TrimSpace(s.input.Value())
			if answer == "" {
				return s, nil
			}
			correct := strings.EqualFold(answer, q.CorrectAnswer)
			s.input.Submit(correct)
			return s.submitAnswer(correct)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// handleMatchKey advances the term-by-term matching flow. The question is
// correct only if every term got its own definition.
func (s *QuizScreen) handleMatchKey(key string, q *quiz.Question) (Screen, tea.Cmd) {
	free := freeDefinitions(q.Definitions, s.matchUsed)
	if len(free) == 0 {
		return s.submitAnswer(s.matchAllOK)
	}

	switch key {
	case "up", "k":
		if s.matchDefSel > 0 {
			s.matchDefSel--
		}
	case "down", "j":
		if s.matchDefSel < len(free)-1 {
			s.matchDefSel++
		}
	case "enter":
		chosen := free[s.matchDefSel]
		s.matchUsed[chosen] = true

		term := q.Terms[s.matchTermIdx]
		if definitionFor(q.Pairs, term) != q.Definitions[chosen] {
			s.matchAllOK = false
		}

		s.matchTermIdx++
		s.matchDefSel = 0
		if s.matchTermIdx >= len(q.Terms) {
			return s.submitAnswer(s.matchAllOK)
		}
	}
	return s, nil
}

func (s *QuizScreen) submitAnswer(correct bool) (Screen, tea.Cmd) {
	if err := s.session.Answer(correct); err != nil {
		return s, nil
	}
	s.lastCorrect = correct
	s.showingFeedback = true
	return s, nil
}

// finishQuiz persists the session outcome asynchronously.
func (s *QuizScreen) finishQuiz() tea.Cmd {
	session := s.session
	return func() tea.Msg {
		err := session.Finish(context.Background(), s.mastery, s.tracker, time.Now())
		return quizFinishedMsg{err: err}
	}
}

func indexOf(options []string, answer string) int {
	for i, o := range options {
		if o == answer {
			return i
		}
	}
	return -1
}

func freeDefinitions(definitions []string, used map[int]bool) []int {
	free := make([]int, 0, len(definitions))
	for i := range definitions {
		if !used[i] {
			free = append(free, i)
		}
	}
	return free
}

func definitionFor(pairs []quiz.MatchPair, term string) string {
	for _, p := range pairs {
		if p.Term == term {
			return p.Definition
		}
	}
	return ""
}
