package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wordling/wordling/internal/llm"
	"github.com/wordling/wordling/internal/mastery"
	"github.com/wordling/wordling/internal/progress"
	"github.com/wordling/wordling/internal/vocab"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestWordRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	g := &vocab.Group{ID: uuid.New(), Name: "Travel", Language: "en", CreatedAt: time.Now()}
	if err := s.Groups().Insert(ctx, g); err != nil {
		t.Fatalf("insert group: %v", err)
	}

	w := &vocab.Word{
		ID:          uuid.New(),
		Text:        "serendipity",
		Type:        vocab.WordTypeNoun,
		Translation: "Zufallsglück",
		CreatedAt:   time.Now(),
		GroupIDs:    []uuid.UUID{g.ID},
	}
	if err := s.Words().Insert(ctx, w); err != nil {
		t.Fatalf("insert word: %v", err)
	}

	got, err := s.Words().Get(ctx, w.ID)
	if err != nil {
		t.Fatalf("get word: %v", err)
	}
	if got.Text != "serendipity" || got.Type != vocab.WordTypeNoun {
		t.Errorf("got %+v", got)
	}
	if len(got.GroupIDs) != 1 || got.GroupIDs[0] != g.ID {
		t.Errorf("group ids = %v, want [%v]", got.GroupIDs, g.ID)
	}

	got.Note = "a happy accident"
	if err := s.Words().Update(ctx, got); err != nil {
		t.Fatalf("update word: %v", err)
	}
	again, err := s.Words().Get(ctx, w.ID)
	if err != nil {
		t.Fatalf("get word: %v", err)
	}
	if again.Note != "a happy accident" {
		t.Errorf("Note = %q", again.Note)
	}

	members, err := s.Words().ListByGroup(ctx, g.ID)
	if err != nil {
		t.Fatalf("list by group: %v", err)
	}
	if len(members) != 1 || members[0].ID != w.ID {
		t.Errorf("members = %+v", members)
	}
}

func TestWordRepo_NotFound(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if _, err := s.Words().Get(ctx, uuid.New()); err != vocab.ErrNotFound {
		t.Errorf("Get missing = %v, want ErrNotFound", err)
	}
	if err := s.Words().Delete(ctx, uuid.New()); err != vocab.ErrNotFound {
		t.Errorf("Delete missing = %v, want ErrNotFound", err)
	}
	if _, err := s.Groups().GetByName(ctx, "nope"); err != vocab.ErrNotFound {
		t.Errorf("GetByName missing = %v, want ErrNotFound", err)
	}
}

func TestWordRepo_SetGroups(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	g1 := &vocab.Group{ID: uuid.New(), Name: "A", Language: "en", CreatedAt: time.Now()}
	g2 := &vocab.Group{ID: uuid.New(), Name: "B", Language: "en", CreatedAt: time.Now()}
	s.Groups().Insert(ctx, g1)
	s.Groups().Insert(ctx, g2)

	w := &vocab.Word{ID: uuid.New(), Text: "word", CreatedAt: time.Now(), GroupIDs: []uuid.UUID{g1.ID}}
	if err := s.Words().Insert(ctx, w); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := s.Words().SetGroups(ctx, w.ID, []uuid.UUID{g2.ID, g1.ID}); err != nil {
		t.Fatalf("set groups: %v", err)
	}
	got, _ := s.Words().Get(ctx, w.ID)
	if len(got.GroupIDs) != 2 || got.GroupIDs[0] != g2.ID {
		t.Errorf("group ids = %v, want ordered [%v %v]", got.GroupIDs, g2.ID, g1.ID)
	}
}

func TestResultRepo_AppendOrder(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	wordID := uuid.New()
	base := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	for i, correct := range []bool{true, false, true} {
		err := s.Results().Append(ctx, mastery.Result{
			WordID:  wordID,
			Correct: correct,
			At:      base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	history, err := s.Results().ForWord(ctx, wordID)
	if err != nil {
		t.Fatalf("for word: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history = %d entries, want 3", len(history))
	}
	if history[0].Correct != true || history[1].Correct != false || history[2].Correct != true {
		t.Errorf("order not preserved: %+v", history)
	}
}

func TestStatusRepo(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	wordID := uuid.New()

	status, err := s.Statuses().Get(ctx, wordID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if status != mastery.StatusNew {
		t.Errorf("absent status = %s, want new", status)
	}

	if err := s.Statuses().Set(ctx, wordID, mastery.StatusLearning); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Statuses().Set(ctx, wordID, mastery.StatusMastered); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	status, _ = s.Statuses().Get(ctx, wordID)
	if status != mastery.StatusMastered {
		t.Errorf("status = %s, want mastered", status)
	}

	counts, err := s.Statuses().CountByStatus(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[mastery.StatusMastered] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestProgressRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	absent, err := s.Progress().GetDay(ctx, "2025-06-10")
	if err != nil {
		t.Fatalf("get absent day: %v", err)
	}
	if absent != nil {
		t.Errorf("absent day = %+v, want nil", absent)
	}

	for _, key := range []string{"2025-06-11", "2025-06-10"} {
		date, _ := time.ParseInLocation(progress.DayKeyFormat, key, time.Local)
		err := s.Progress().PutDay(ctx, &progress.DailyProgress{
			DayKey: key, Date: date, QuizzesTaken: 1, CorrectAnswers: 5,
		})
		if err != nil {
			t.Fatalf("put %s: %v", key, err)
		}
	}

	history, err := s.Progress().History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 || history[0].DayKey != "2025-06-10" {
		t.Errorf("history = %+v, want ascending day keys", history)
	}

	day, err := s.Progress().GetDay(ctx, "2025-06-10")
	if err != nil {
		t.Fatalf("get day: %v", err)
	}
	if day.CorrectAnswers != 5 {
		t.Errorf("day = %+v", day)
	}
}

func TestKVRepo_Flags(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	fav, err := s.KV().GetFlag(ctx, "favorite_x")
	if err != nil || fav {
		t.Errorf("absent flag = (%v, %v), want (false, nil)", fav, err)
	}
	s.KV().SetFlag(ctx, "favorite_x", true)
	if fav, _ = s.KV().GetFlag(ctx, "favorite_x"); !fav {
		t.Error("flag not set")
	}
	s.KV().SetFlag(ctx, "favorite_x", false)
	if fav, _ = s.KV().GetFlag(ctx, "favorite_x"); fav {
		t.Error("flag not cleared")
	}
}

func TestKVRepo_JSON(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	type sentence struct {
		Text string `json:"text"`
	}
	in := []sentence{{Text: "a"}, {Text: "b"}}
	key := SentencesKey(uuid.New())
	if err := s.KV().SetJSON(ctx, key, in); err != nil {
		t.Fatalf("set json: %v", err)
	}
	var out []sentence
	ok, err := s.KV().GetJSON(ctx, key, &out)
	if err != nil || !ok {
		t.Fatalf("get json: ok=%v err=%v", ok, err)
	}
	if len(out) != 2 || out[0].Text != "a" {
		t.Errorf("out = %+v", out)
	}
}

func TestLearnerRepo_PurgeWord(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	wordID := uuid.New()

	s.Results().Append(ctx, mastery.Result{WordID: wordID, Correct: true, At: time.Now()})
	s.Statuses().Set(ctx, wordID, mastery.StatusLearning)
	s.KV().Set(ctx, SentencesKey(wordID), "[]")
	s.KV().SetFlag(ctx, vocab.FavoriteKey(wordID), true)

	if err := s.Learner().PurgeWord(ctx, wordID); err != nil {
		t.Fatalf("purge: %v", err)
	}

	history, _ := s.Results().ForWord(ctx, wordID)
	if len(history) != 0 {
		t.Errorf("results survived purge: %d", len(history))
	}
	status, _ := s.Statuses().Get(ctx, wordID)
	if status != mastery.StatusNew {
		t.Errorf("status survived purge: %s", status)
	}
	if _, ok, _ := s.KV().Get(ctx, SentencesKey(wordID)); ok {
		t.Error("sentences survived purge")
	}
	if fav, _ := s.KV().GetFlag(ctx, vocab.FavoriteKey(wordID)); fav {
		t.Error("favorite flag survived purge")
	}
}

func TestLLMLogRepo(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	rec := llm.RequestRecord{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "quiz-gen",
		LatencyMs:    12,
		Success:      true,
		InputTokens:  100,
		OutputTokens: 50,
		RequestBody:  "[user]\nhello",
		ResponseBody: `{"questions":[]}`,
	}
	if err := s.LLMLog().AppendRequest(ctx, rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	recent, err := s.LLMLog().Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].Purpose != "quiz-gen" {
		t.Errorf("recent = %+v", recent)
	}

	in, out, err := s.LLMLog().TotalUsage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if in != 100 || out != 50 {
		t.Errorf("usage = (%d, %d), want (100, 50)", in, out)
	}
}

func TestStore_Reset(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	g := &vocab.Group{ID: uuid.New(), Name: "G", Language: "en", CreatedAt: time.Now()}
	s.Groups().Insert(ctx, g)
	w := &vocab.Word{ID: uuid.New(), Text: "w", CreatedAt: time.Now(), GroupIDs: []uuid.UUID{g.ID}}
	s.Words().Insert(ctx, w)
	s.Results().Append(ctx, mastery.Result{WordID: w.ID, Correct: true, At: time.Now()})

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	words, _ := s.Words().List(ctx)
	if len(words) != 0 {
		t.Errorf("words survived reset: %d", len(words))
	}
	groups, _ := s.Groups().List(ctx)
	if len(groups) != 0 {
		t.Errorf("groups survived reset: %d", len(groups))
	}
	all, _ := s.Results().All(ctx)
	if len(all) != 0 {
		t.Errorf("results survived reset: %d", len(all))
	}
}
