package vocab

import (
	"time"

	"github.com/google/uuid"
)

// ColorOptions is the palette of named colors a group can carry.
var ColorOptions = []string{"blue", "green", "red", "orange", "purple", "pink", "teal"}

// DefaultLanguage is assumed when no group provides a language context.
const DefaultLanguage = "en"

// Group is a named, single-language collection of words, used as quiz scope
// and generation context.
type Group struct {
	ID          uuid.UUID
	Name        string
	Description string
	Color       string
	Language    string
	CreatedAt   time.Time
}

// QuizLanguage resolves the language for a quiz over the given words.
//
// The single-language-per-word assumption is a soft convention, not a model
// invariant: the language comes from the first language-bearing group of the
// first word, falling back to DefaultLanguage. Callers that quiz across
// mixed-language groups get the first group's language.
func QuizLanguage(words []Word, groups map[uuid.UUID]Group) string {
	for _, w := range words {
		for _, gid := range w.GroupIDs {
			if g, ok := groups[gid]; ok && g.Language != "" {
				return g.Language
			}
		}
	}
	return DefaultLanguage
}
