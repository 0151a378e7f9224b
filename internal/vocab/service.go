package vocab

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a word or group does not exist.
var ErrNotFound = errors.New("not found")

// WordRepo is the persistence surface for words.
type WordRepo interface {
	Insert(ctx context.Context, w *Word) error
	Update(ctx context.Context, w *Word) error
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*Word, error)
	List(ctx context.Context) ([]Word, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]Word, error)
	SetGroups(ctx context.Context, wordID uuid.UUID, groupIDs []uuid.UUID) error
}

// GroupRepo is the persistence surface for groups.
type GroupRepo interface {
	Insert(ctx context.Context, g *Group) error
	Update(ctx context.Context, g *Group) error
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*Group, error)
	GetByName(ctx context.Context, name string) (*Group, error)
	List(ctx context.Context) ([]Group, error)
}

// LearnerData purges per-word learner state (quiz results, cached status,
// cached sentences, favorite flag) when a word is deleted.
type LearnerData interface {
	PurgeWord(ctx context.Context, wordID uuid.UUID) error
}

// Flags is the ad hoc key-value surface for per-word boolean flags.
type Flags interface {
	SetFlag(ctx context.Context, key string, value bool) error
	GetFlag(ctx context.Context, key string) (bool, error)
}

// Service owns registry operations and the cascade rules between words,
// groups, and learner data.
type Service struct {
	words   WordRepo
	groups  GroupRepo
	learner LearnerData
	flags   Flags
}

// NewService wires a registry service from its repositories.
func NewService(words WordRepo, groups GroupRepo, learner LearnerData, flags Flags) *Service {
	return &Service{words: words, groups: groups, learner: learner, flags: flags}
}

// AddWord creates a word, optionally placing it in a group.
func (s *Service) AddWord(ctx context.Context, text string, typ WordType, note, translation string, groupID *uuid.UUID) (*Word, error) {
	w := &Word{
		ID:          uuid.New(),
		Text:        text,
		Type:        typ,
		Note:        note,
		Translation: translation,
		CreatedAt:   time.Now(),
	}
	if groupID != nil {
		if _, err := s.groups.Get(ctx, *groupID); err != nil {
			return nil, fmt.Errorf("resolve group: %w", err)
		}
		w.GroupIDs = []uuid.UUID{*groupID}
	}
	if err := s.words.Insert(ctx, w); err != nil {
		return nil, fmt.Errorf("insert word: %w", err)
	}
	return w, nil
}

// UpdateWord persists changes to a word's attributes and memberships.
func (s *Service) UpdateWord(ctx context.Context, w *Word) error {
	if err := s.words.Update(ctx, w); err != nil {
		return fmt.Errorf("update word: %w", err)
	}
	return nil
}

// DeleteWord removes a word and cascades removal of its cached sentences,
// quiz results, and status.
func (s *Service) DeleteWord(ctx context.Context, id uuid.UUID) error {
	if err := s.learner.PurgeWord(ctx, id); err != nil {
		return fmt.Errorf("purge learner data: %w", err)
	}
	if err := s.words.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	return nil
}

// AddGroup creates a group. Color defaults to the first palette entry and
// language to DefaultLanguage when left empty.
func (s *Service) AddGroup(ctx context.Context, name, description, color, language string) (*Group, error) {
	if color == "" {
		color = ColorOptions[0]
	}
	if language == "" {
		language = DefaultLanguage
	}
	g := &Group{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Color:       color,
		Language:    language,
		CreatedAt:   time.Now(),
	}
	if err := s.groups.Insert(ctx, g); err != nil {
		return nil, fmt.Errorf("insert group: %w", err)
	}
	return g, nil
}

// UpdateGroup persists changes to a group's attributes.
func (s *Service) UpdateGroup(ctx context.Context, g *Group) error {
	if err := s.groups.Update(ctx, g); err != nil {
		return fmt.Errorf("update group: %w", err)
	}
	return nil
}

// DeleteGroup removes a group. A word whose sole group was the deleted one
// is deleted too; words with other memberships survive orphaned.
func (s *Service) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	members, err := s.words.ListByGroup(ctx, id)
	if err != nil {
		return fmt.Errorf("list group members: %w", err)
	}
	for i := range members {
		w := &members[i]
		if len(w.GroupIDs) == 1 && w.GroupIDs[0] == id {
			if err := s.DeleteWord(ctx, w.ID); err != nil {
				return err
			}
			continue
		}
		w.RemoveFromGroup(id)
		if err := s.words.SetGroups(ctx, w.ID, w.GroupIDs); err != nil {
			return fmt.Errorf("detach word %s: %w", w.ID, err)
		}
	}
	if err := s.groups.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}

// Assign adds a word to a group.
func (s *Service) Assign(ctx context.Context, wordID, groupID uuid.UUID) error {
	w, err := s.words.Get(ctx, wordID)
	if err != nil {
		return fmt.Errorf("resolve word: %w", err)
	}
	if _, err := s.groups.Get(ctx, groupID); err != nil {
		return fmt.Errorf("resolve group: %w", err)
	}
	w.AddToGroup(groupID)
	return s.words.SetGroups(ctx, w.ID, w.GroupIDs)
}

// Unassign removes a word from a group.
func (s *Service) Unassign(ctx context.Context, wordID, groupID uuid.UUID) error {
	w, err := s.words.Get(ctx, wordID)
	if err != nil {
		return fmt.Errorf("resolve word: %w", err)
	}
	w.RemoveFromGroup(groupID)
	return s.words.SetGroups(ctx, w.ID, w.GroupIDs)
}

// SetFavorite toggles the favorite flag for a word.
func (s *Service) SetFavorite(ctx context.Context, wordID uuid.UUID, fav bool) error {
	return s.flags.SetFlag(ctx, FavoriteKey(wordID), fav)
}

// IsFavorite reads the favorite flag for a word.
func (s *Service) IsFavorite(ctx context.Context, wordID uuid.UUID) (bool, error) {
	return s.flags.GetFlag(ctx, FavoriteKey(wordID))
}

// FavoriteKey is the flag key holding a word's favorite marker. The store's
// purge path deletes by the same key, so the two must never drift.
func FavoriteKey(wordID uuid.UUID) string {
	return "favorite_" + wordID.String()
}
