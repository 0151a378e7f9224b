package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wordling/wordling/internal/llm"
	"github.com/wordling/wordling/internal/mastery"
	"github.com/wordling/wordling/internal/progress"
	"github.com/wordling/wordling/internal/quiz"
	"github.com/wordling/wordling/internal/quizgen"
	"github.com/wordling/wordling/internal/store"
	"github.com/wordling/wordling/internal/tui"
	"github.com/wordling/wordling/internal/vocab"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Start a quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz(cmd)
	},
}

func init() {
	quizCmd.Flags().StringP("group", "g", "", "Quiz only words from this group")
	quizCmd.Flags().StringP("type", "t", "standard", "Quiz type: standard, fill, match, audio, mixed")
	quizCmd.Flags().StringP("status", "s", "", "Quiz only words with this status: new, learning, mastered")
	quizCmd.Flags().IntP("count", "n", 0, "Number of questions to generate")
}

// runQuiz opens the store, selects the word set, builds dependencies, and
// launches the TUI. Also backs the bare `wordling` invocation.
func runQuiz(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	groupName, _ := cmd.Flags().GetString("group")
	statusFilter, _ := cmd.Flags().GetString("status")
	typeFlag, _ := cmd.Flags().GetString("type")
	count, _ := cmd.Flags().GetInt("count")

	words, groupsByID, err := selectWords(ctx, st, groupName, statusFilter)
	if err != nil {
		return err
	}
	if len(words) < quiz.MinWords {
		return fmt.Errorf("need at least %d words to start a quiz, have %d (add some with `wordling words add`)",
			quiz.MinWords, len(words))
	}

	masterySvc := mastery.NewService(st.Results(), st.Statuses())
	tracker := progress.NewTracker(st.Progress())

	genCfg := quizgen.DefaultConfig()
	if count > 0 {
		genCfg.QuestionCount = count
	}

	var generator quizgen.Generator
	provider, err := buildProvider(ctx, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to offline question generation.")
		generator = quizgen.NewMockGenerator()
	} else {
		generator = quizgen.New(provider, genCfg)
	}

	builder := quiz.NewBuilder(rand.New(rand.NewSource(time.Now().UnixNano())))
	language := vocab.QuizLanguage(words, groupsByID)

	screen := tui.NewQuizScreen(
		generator, builder, masterySvc, tracker,
		words, quiz.ParseType(typeFlag), language,
	)
	return tui.Run(screen)
}

// selectWords loads the word set for a quiz, optionally narrowed to one
// group and one mastery status.
func selectWords(ctx context.Context, st *store.Store, groupName, statusFilter string) ([]vocab.Word, map[uuid.UUID]vocab.Group, error) {
	var words []vocab.Word
	var err error

	if groupName != "" {
		g, err := st.Groups().GetByName(ctx, groupName)
		if err != nil {
			return nil, nil, fmt.Errorf("group %q: %w", groupName, err)
		}
		words, err = st.Words().ListByGroup(ctx, g.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("list words in %q: %w", groupName, err)
		}
	} else {
		words, err = st.Words().List(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("list words: %w", err)
		}
	}

	if statusFilter != "" {
		want := mastery.ParseStatus(statusFilter)
		filtered := words[:0]
		for _, w := range words {
			status, err := st.Statuses().Get(ctx, w.ID)
			if err != nil {
				return nil, nil, fmt.Errorf("status for %q: %w", w.Text, err)
			}
			if status == want {
				filtered = append(filtered, w)
			}
		}
		words = filtered
	}

	groups, err := st.Groups().List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list groups: %w", err)
	}
	groupsByID := make(map[uuid.UUID]vocab.Group, len(groups))
	for _, g := range groups {
		groupsByID[g.ID] = g
	}

	return words, groupsByID, nil
}

// buildProvider assembles the configured LLM provider with request logging.
// Explicit WORDLING_* configuration wins; otherwise standard API key env
// vars are probed.
func buildProvider(ctx context.Context, st *store.Store) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, st.LLMLog())
}
