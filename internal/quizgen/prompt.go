package quizgen

import (
	"fmt"
	"strings"

	"github.com/wordling/wordling/internal/quiz"
	"github.com/wordling/wordling/internal/vocab"
)

const quizSystemPrompt = `You are a language tutor creating vocabulary quiz questions.

Rules:
- Generate questions that test understanding of the given words, in the given language.
- Each question must target exactly one word from the list.
- For multipleChoice and fillInBlank questions, provide exactly 4 options where exactly one equals correctAnswer character for character. Distractors should be plausible, not random.
- For fillInBlank, the sentence must contain a blank marked with underscores and correctAnswer must be one of the listed words.
- For dragAndDrop, matchPairs must pair each word (term) with its definition or translation.
- For audio, audioText is the text to be spoken aloud; correctAnswer is what the learner should identify.
- Questions should be varied: meaning, usage in context, translation.
- Never reuse the same phrasing across questions in one quiz.`

const sentenceSystemPrompt = `You are a language tutor writing example sentences for vocabulary study.

Rules:
- Each sentence must use the given word naturally, in the given language.
- Sentences should vary in register and context so the learner sees different usages.
- Provide a translation of each sentence into the learner's language.
- Keep sentences short enough to memorize: at most 15 words.`

const translateSystemPrompt = `You are a precise translator. Translate the given text into the target language. Return only the translation, no commentary.`

const wordInfoSystemPrompt = `You are a dictionary assistant. For the given word, determine its part of speech, its translation into the target language, and a one-sentence usage note.

The type must be one of: noun, verb, adjective, adverb, other.`

// kindsFor maps a requested quiz type to the question kinds the prompt asks
// for. Mixed leaves the choice to the generator.
func kindsFor(t quiz.Type) string {
	switch t {
	case quiz.TypeFillInBlank:
		return "fillInBlank"
	case quiz.TypeDragAndDrop:
		return "dragAndDrop"
	case quiz.TypeAudio:
		return "audio"
	case quiz.TypeMixed:
		return "a varied mix of multipleChoice, fillInBlank, dragAndDrop and audio"
	default:
		return "multipleChoice"
	}
}

// buildQuizMessage constructs the user message for quiz generation.
func buildQuizMessage(words []vocab.Word, quizType quiz.Type, language string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Language: %s\n", language)
	fmt.Fprintf(&b, "Question type: %s\n", kindsFor(quizType))
	fmt.Fprintf(&b, "Number of questions: %d\n", cfg.QuestionCount)

	b.WriteString("\nWords to quiz:\n")
	for i, w := range words {
		fmt.Fprintf(&b, "%d. %s", i+1, w.Text)
		if w.Type != "" {
			fmt.Fprintf(&b, " (%s)", w.Type)
		}
		if w.Translation != "" {
			fmt.Fprintf(&b, " — translation: %s", w.Translation)
		}
		if w.Note != "" {
			fmt.Fprintf(&b, " — note: %s", w.Note)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// buildSentenceMessage constructs the user message for sentence generation.
func buildSentenceMessage(word vocab.Word, group GroupContext, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Word: %s\n", word.Text)
	if word.Type != "" {
		fmt.Fprintf(&b, "Part of speech: %s\n", word.Type)
	}
	if word.Translation != "" {
		fmt.Fprintf(&b, "Known translation: %s\n", word.Translation)
	}
	fmt.Fprintf(&b, "Number of sentences: %d\n", cfg.SentenceCount)

	if group.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n", group.Language)
	}
	if group.Name != "" {
		fmt.Fprintf(&b, "Collection: %s\n", group.Name)
	}
	if group.Description != "" {
		fmt.Fprintf(&b, "Collection theme: %s\n", group.Description)
	}

	return b.String()
}

func buildTranslateMessage(text, targetLanguage string) string {
	return fmt.Sprintf("Target language: %s\n\nText:\n%s", targetLanguage, text)
}

func buildWordInfoMessage(word, targetLanguage string) string {
	return fmt.Sprintf("Word: %s\nTarget language: %s", word, targetLanguage)
}
