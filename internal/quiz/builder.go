package quiz

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wordling/wordling/internal/vocab"
)

// OptionCount is the required number of options for choice-type questions.
const OptionCount = 4

// Builder converts raw generated payloads into validated Questions.
// It is stateless apart from its random source and safe to use from any
// single goroutine; each Build call is independent.
type Builder struct {
	rng *rand.Rand
}

// NewBuilder creates a builder. A nil rng gets a time-seeded source; tests
// inject a fixed seed for deterministic shuffles.
func NewBuilder(rng *rand.Rand) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Builder{rng: rng}
}

// Build filters and converts raw questions. Malformed entries are dropped
// silently — generated content is inherently unreliable, and a short quiz
// beats a failed one. Never returns an error.
func (b *Builder) Build(raw []RawQuestion, candidates []vocab.Word) []Question {
	if len(candidates) == 0 {
		return nil
	}

	questions := make([]Question, 0, len(raw))
	for _, r := range raw {
		q, ok := b.build(r, candidates)
		if ok {
			questions = append(questions, q)
		}
	}
	return questions
}

func (b *Builder) build(r RawQuestion, candidates []vocab.Word) (Question, bool) {
	kind := ParseKind(r.Type)

	q := Question{
		ID:            uuid.New(),
		Kind:          kind,
		Prompt:        r.Question,
		CorrectAnswer: r.CorrectAnswer,
		AudioText:     r.AudioText,
		Word:          matchWord(r, kind, candidates),
	}

	switch kind {
	case KindMultipleChoice, KindFillInBlank:
		if len(r.Options) != OptionCount || !containsExact(r.Options, r.CorrectAnswer) {
			return Question{}, false
		}
		q.Options = r.Options
		if kind == KindFillInBlank {
			q.Sentence = r.Sentence
			q.BlankPos = strings.IndexRune(r.Sentence, '_')
		}

	case KindDragAndDrop:
		pairs := parsePairs(r.MatchPairs)
		if len(pairs) == 0 {
			return Question{}, false
		}
		q.Pairs = pairs
		q.Terms, q.Definitions = b.shufflePairs(pairs)

	case KindAudio:
		if r.AudioText == "" {
			q.AudioText = r.CorrectAnswer
		}
	}

	return q, true
}

// shufflePairs produces two independent permutations of the pair sides.
// Two separate shuffles, so matching index i of terms to index i of
// definitions carries no signal.
func (b *Builder) shufflePairs(pairs []MatchPair) (terms, definitions []string) {
	terms = make([]string, len(pairs))
	definitions = make([]string, len(pairs))
	for i, p := range pairs {
		terms[i] = p.Term
		definitions[i] = p.Definition
	}
	b.rng.Shuffle(len(terms), func(i, j int) {
		terms[i], terms[j] = terms[j], terms[i]
	})
	b.rng.Shuffle(len(definitions), func(i, j int) {
		definitions[i], definitions[j] = definitions[j], definitions[i]
	})
	return terms, definitions
}

func parsePairs(raw []map[string]string) []MatchPair {
	pairs := make([]MatchPair, 0, len(raw))
	for _, m := range raw {
		term, definition := m["term"], m["definition"]
		if term == "" || definition == "" {
			continue
		}
		pairs = append(pairs, MatchPair{Term: term, Definition: definition})
	}
	return pairs
}

// matchWord attaches the owning word: case-insensitive substring match of
// the word text against the correct answer or the prompt, with an exact
// answer match for fill-in-blank. Falling back to the first candidate is
// deliberate — an unmatched question still charges some word rather than
// being lost.
func matchWord(r RawQuestion, kind Kind, candidates []vocab.Word) vocab.Word {
	answer := strings.ToLower(r.CorrectAnswer)
	prompt := strings.ToLower(r.Question)

	for _, w := range candidates {
		text := strings.ToLower(w.Text)
		if text == "" {
			continue
		}
		if strings.Contains(answer, text) || strings.Contains(prompt, text) {
			return w
		}
		if kind == KindFillInBlank && answer == text {
			return w
		}
	}
	return candidates[0]
}

func containsExact(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
