package quizgen

import (
	"context"

	"github.com/wordling/wordling/internal/quiz"
	"github.com/wordling/wordling/internal/vocab"
)

// Generator produces quiz and study content from a word set.
//
// Implementations return raw, untrusted payloads; the quiz.Builder owns
// validation and filtering of quiz questions.
type Generator interface {
	// GenerateQuiz produces raw quiz questions covering the given words.
	GenerateQuiz(ctx context.Context, words []vocab.Word, quizType quiz.Type, language string) ([]quiz.RawQuestion, error)

	// GenerateSentences produces example sentences for one word.
	GenerateSentences(ctx context.Context, word vocab.Word, group GroupContext) ([]Sentence, error)

	// Translate renders text into the target language.
	Translate(ctx context.Context, text, targetLanguage string) (string, error)

	// WordInfo produces enrichment metadata for a word.
	WordInfo(ctx context.Context, word string, targetLanguage string) (*WordInfo, error)
}
