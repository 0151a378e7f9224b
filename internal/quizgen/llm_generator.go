package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wordling/wordling/internal/llm"
	"github.com/wordling/wordling/internal/quiz"
	"github.com/wordling/wordling/internal/vocab"
)

// LLMGenerator implements Generator on top of an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// GenerateQuiz produces raw quiz questions for the given words. The payload
// is returned unvalidated; quiz.Builder filters malformed entries.
func (g *LLMGenerator) GenerateQuiz(ctx context.Context, words []vocab.Word, quizType quiz.Type, language string) ([]quiz.RawQuestion, error) {
	if len(words) < quiz.MinWords {
		return nil, fmt.Errorf("need at least %d words to generate a quiz, have %d", quiz.MinWords, len(words))
	}
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizMessage(words, quizType, language, g.config)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var payload struct {
		Questions []quiz.RawQuestion `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse quiz response: %w", err)
	}
	return payload.Questions, nil
}

// GenerateSentences produces example sentences for one word.
func (g *LLMGenerator) GenerateSentences(ctx context.Context, word vocab.Word, group GroupContext) ([]Sentence, error) {
	ctx = llm.WithPurpose(ctx, "sentence-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: sentenceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSentenceMessage(word, group, g.config)},
		},
		Schema:      SentencesSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("sentence generation failed: %w", err)
	}

	var payload struct {
		Sentences []Sentence `json:"sentences"`
	}
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse sentence response: %w", err)
	}
	return payload.Sentences, nil
}

// Translate renders text into the target language.
func (g *LLMGenerator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	ctx = llm.WithPurpose(ctx, "translate")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: translateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTranslateMessage(text, targetLanguage)},
		},
		Schema:    TranslationSchema,
		MaxTokens: g.config.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}

	var payload struct {
		Translation string `json:"translation"`
	}
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return "", fmt.Errorf("failed to parse translation response: %w", err)
	}
	return payload.Translation, nil
}

// WordInfo produces part-of-speech, translation and note enrichment for a word.
func (g *LLMGenerator) WordInfo(ctx context.Context, word string, targetLanguage string) (*WordInfo, error) {
	ctx = llm.WithPurpose(ctx, "word-info")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: wordInfoSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildWordInfoMessage(word, targetLanguage)},
		},
		Schema:    WordInfoSchema,
		MaxTokens: g.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("word info failed: %w", err)
	}

	var info WordInfo
	if err := json.Unmarshal(resp.Content, &info); err != nil {
		return nil, fmt.Errorf("failed to parse word info response: %w", err)
	}
	return &info, nil
}
