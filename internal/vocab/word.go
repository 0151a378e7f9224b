package vocab

import (
	"time"

	"github.com/google/uuid"
)

// WordType tags a word's part of speech.
type WordType string

const (
	WordTypeNoun      WordType = "noun"
	WordTypeVerb      WordType = "verb"
	WordTypeAdjective WordType = "adjective"
	WordTypeAdverb    WordType = "adverb"
	WordTypeOther     WordType = "other"
)

// ParseWordType maps a free-form tag to a WordType, defaulting to "other".
func ParseWordType(s string) WordType {
	switch WordType(s) {
	case WordTypeNoun, WordTypeVerb, WordTypeAdjective, WordTypeAdverb:
		return WordType(s)
	default:
		return WordTypeOther
	}
}

// Word is a vocabulary entry tracked by the learner.
//
// A word's effective language is inherited from its groups; a word with no
// group has no language context. Group membership is owned by the word side:
// GroupIDs is the source of truth, and a group's member list is the reverse
// index computed by the store.
type Word struct {
	ID          uuid.UUID
	Text        string
	Type        WordType
	Note        string
	Translation string
	CreatedAt   time.Time
	GroupIDs    []uuid.UUID
}

// InGroup reports whether the word belongs to the given group.
func (w *Word) InGroup(groupID uuid.UUID) bool {
	for _, id := range w.GroupIDs {
		if id == groupID {
			return true
		}
	}
	return false
}

// AddToGroup records membership. No-op if already a member.
func (w *Word) AddToGroup(groupID uuid.UUID) {
	if !w.InGroup(groupID) {
		w.GroupIDs = append(w.GroupIDs, groupID)
	}
}

// RemoveFromGroup removes membership. No-op if not a member.
func (w *Word) RemoveFromGroup(groupID uuid.UUID) {
	for i, id := range w.GroupIDs {
		if id == groupID {
			w.GroupIDs = append(w.GroupIDs[:i], w.GroupIDs[i+1:]...)
			return
		}
	}
}
