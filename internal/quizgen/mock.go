package quizgen

import (
	"context"
	"fmt"

	"github.com/wordling/wordling/internal/quiz"
	"github.com/wordling/wordling/internal/vocab"
)

// MockGenerator is a deterministic Generator that synthesizes content from
// the input words without calling any LLM. It backs the mock provider path
// so the full quiz flow can run offline.
type MockGenerator struct{}

// NewMockGenerator creates a MockGenerator.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// GenerateQuiz produces one multiple-choice question per word, with the other
// words' texts as distractors.
func (m *MockGenerator) GenerateQuiz(_ context.Context, words []vocab.Word, _ quiz.Type, _ string) ([]quiz.RawQuestion, error) {
	if len(words) < quiz.MinWords {
		return nil, fmt.Errorf("need at least %d words to generate a quiz, have %d", quiz.MinWords, len(words))
	}

	raw := make([]quiz.RawQuestion, 0, len(words))
	for i, w := range words {
		options := make([]string, 0, quiz.OptionCount)
		options = append(options, w.Text)
		for j := 1; len(options) < quiz.OptionCount; j++ {
			other := words[(i+j)%len(words)]
			if other.ID == w.ID {
				options = append(options, fmt.Sprintf("%s (%d)", w.Text, j))
				continue
			}
			options = append(options, other.Text)
		}
		raw = append(raw, quiz.RawQuestion{
			Type:          string(quiz.KindMultipleChoice),
			Question:      fmt.Sprintf("Which word means %q?", definitionFor(w)),
			CorrectAnswer: w.Text,
			Options:       options,
		})
	}
	return raw, nil
}

// GenerateSentences produces placeholder sentences using the word.
func (m *MockGenerator) GenerateSentences(_ context.Context, word vocab.Word, _ GroupContext) ([]Sentence, error) {
	return []Sentence{
		{Text: fmt.Sprintf("This sentence uses the word %s.", word.Text), Translation: word.Translation},
		{Text: fmt.Sprintf("Another example with %s in context.", word.Text), Translation: word.Translation},
	}, nil
}

// Translate echoes the input text.
func (m *MockGenerator) Translate(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

// WordInfo returns a placeholder enrichment.
func (m *MockGenerator) WordInfo(_ context.Context, word string, _ string) (*WordInfo, error) {
	return &WordInfo{Type: string(vocab.WordTypeOther), Translation: word, Note: "No information available offline."}, nil
}

func definitionFor(w vocab.Word) string {
	if w.Translation != "" {
		return w.Translation
	}
	if w.Note != "" {
		return w.Note
	}
	return w.Text
}
