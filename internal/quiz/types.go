package quiz

import (
	"strings"

	"github.com/google/uuid"

	"github.com/wordling/wordling/internal/vocab"
)

// Kind identifies how a question is presented and answered.
type Kind string

const (
	KindMultipleChoice Kind = "multipleChoice"
	KindFillInBlank    Kind = "fillInBlank"
	KindDragAndDrop    Kind = "dragAndDrop"
	KindAudio          Kind = "audio"
)

// ParseKind resolves a generator type tag to a Kind. Unknown tags default
// to multiple choice rather than failing: the tag comes from generated
// content and is not trusted.
func ParseKind(tag string) Kind {
	switch strings.ToLower(tag) {
	case "fillinblank":
		return KindFillInBlank
	case "draganddrop":
		return KindDragAndDrop
	case "audio":
		return KindAudio
	default:
		return KindMultipleChoice
	}
}

// Type selects the flavor of quiz requested from the generator.
type Type string

const (
	TypeStandard    Type = "standard"
	TypeFillInBlank Type = "fill"
	TypeDragAndDrop Type = "match"
	TypeAudio       Type = "audio"
	TypeMixed       Type = "mixed"
)

// ParseType resolves a CLI flag value to a quiz Type, defaulting to standard.
func ParseType(s string) Type {
	switch Type(s) {
	case TypeFillInBlank, TypeDragAndDrop, TypeAudio, TypeMixed:
		return Type(s)
	default:
		return TypeStandard
	}
}

// MatchPair is one term/definition pairing in a drag-and-drop question.
type MatchPair struct {
	Term       string
	Definition string
}

// Question is a validated, typed quiz question bound to its owning word.
//
// For choice kinds, Options holds exactly OptionCount entries, one of which
// equals CorrectAnswer. For drag-and-drop, Terms and Definitions are two
// independently shuffled permutations of the pair sides, so position alone
// never reveals a correct pairing.
type Question struct {
	ID            uuid.UUID
	Kind          Kind
	Prompt        string
	CorrectAnswer string
	Options       []string
	Sentence      string
	BlankPos      int
	Pairs         []MatchPair
	Terms         []string
	Definitions   []string
	AudioText     string
	Word          vocab.Word
}

// RawQuestion is the external generator's JSON payload shape. Every field is
// untrusted; the Builder filters out entries that fail integrity checks.
type RawQuestion struct {
	Type          string              `json:"type"`
	Question      string              `json:"question"`
	CorrectAnswer string              `json:"correctAnswer"`
	Options       []string            `json:"options"`
	Sentence      string              `json:"sentence,omitempty"`
	MatchPairs    []map[string]string `json:"matchPairs,omitempty"`
	AudioText     string              `json:"audioText,omitempty"`
}
