package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// QuestionCount is the number of questions requested per quiz.
	// The builder may drop malformed entries, so fewer can survive.
	QuestionCount int

	// SentenceCount is the number of example sentences requested per word.
	SentenceCount int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended generation defaults.
func DefaultConfig() Config {
	return Config{
		QuestionCount: 10,
		SentenceCount: 3,
		MaxTokens:     4096,
		Temperature:   0.7,
	}
}
