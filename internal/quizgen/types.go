package quizgen

// Sentence is one generated example sentence for a word.
type Sentence struct {
	// Text is the sentence in the word's quiz language.
	Text string `json:"text"`

	// Translation is the sentence rendered in the learner's language.
	Translation string `json:"translation"`
}

// WordInfo is the generated enrichment for a newly added word:
// part of speech, translation, and a short usage note.
type WordInfo struct {
	// Type is the part-of-speech tag: noun, verb, adjective, adverb, other.
	Type string `json:"type"`

	// Translation renders the word in the learner's language.
	Translation string `json:"translation"`

	// Note is a one-sentence usage or nuance note.
	Note string `json:"note"`
}

// GroupContext carries the group metadata included in generation prompts
// so questions match the collection's theme and language.
type GroupContext struct {
	Name        string
	Description string
	Language    string
}
