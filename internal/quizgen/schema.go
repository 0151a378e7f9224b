package quizgen

import "github.com/wordling/wordling/internal/llm"

// QuizSchema defines the JSON schema for quiz generation responses.
// It mirrors the quiz.RawQuestion wire shape.
var QuizSchema = &llm.Schema{
	Name:        "vocab-quiz",
	Description: "A set of vocabulary quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"multipleChoice", "fillInBlank", "dragAndDrop", "audio"},
							"description": "How the question is presented and answered",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "The correct answer. For choice types it must match one option exactly.",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options for multipleChoice and fillInBlank. Empty otherwise.",
						},
						"sentence": map[string]any{
							"type":        "string",
							"description": "For fillInBlank: the sentence with the blank marked by underscores",
						},
						"matchPairs": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"term":       map[string]any{"type": "string"},
									"definition": map[string]any{"type": "string"},
								},
								"required":             []any{"term", "definition"},
								"additionalProperties": false,
							},
							"description": "For dragAndDrop: the term/definition pairs to match",
						},
						"audioText": map[string]any{
							"type":        "string",
							"description": "For audio: the text to be spoken aloud",
						},
					},
					"required":             []any{"type", "question", "correctAnswer", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// SentencesSchema defines the JSON schema for sentence generation responses.
var SentencesSchema = &llm.Schema{
	Name:        "example-sentences",
	Description: "Example sentences for one vocabulary word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentences": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The sentence in the word's language",
						},
						"translation": map[string]any{
							"type":        "string",
							"description": "The sentence in the learner's language",
						},
					},
					"required":             []any{"text", "translation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"sentences"},
		"additionalProperties": false,
	},
}

// TranslationSchema defines the JSON schema for translation responses.
var TranslationSchema = &llm.Schema{
	Name:        "translation",
	Description: "A translation of the given text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"translation": map[string]any{
				"type":        "string",
				"description": "The translated text, nothing else",
			},
		},
		"required":             []any{"translation"},
		"additionalProperties": false,
	},
}

// WordInfoSchema defines the JSON schema for word enrichment responses.
var WordInfoSchema = &llm.Schema{
	Name:        "word-info",
	Description: "Part of speech, translation and usage note for a word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type":        "string",
				"enum":        []any{"noun", "verb", "adjective", "adverb", "other"},
				"description": "The word's part of speech",
			},
			"translation": map[string]any{
				"type":        "string",
				"description": "The word in the learner's language",
			},
			"note": map[string]any{
				"type":        "string",
				"description": "A one-sentence usage or nuance note",
			},
		},
		"required":             []any{"type", "translation", "note"},
		"additionalProperties": false,
	},
}
