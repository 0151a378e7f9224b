package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wordling/wordling/internal/mastery"
	"github.com/wordling/wordling/internal/quizgen"
	"github.com/wordling/wordling/internal/store"
	"github.com/wordling/wordling/internal/vocab"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage vocabulary words",
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typeFlag, _ := cmd.Flags().GetString("type")
		note, _ := cmd.Flags().GetString("note")
		translation, _ := cmd.Flags().GetString("translation")
		groupName, _ := cmd.Flags().GetString("group")
		enrich, _ := cmd.Flags().GetBool("enrich")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		svc := newVocabService(st)

		var groupID *uuid.UUID
		if groupName != "" {
			g, err := st.Groups().GetByName(ctx, groupName)
			if err != nil {
				return fmt.Errorf("group %q: %w", groupName, err)
			}
			groupID = &g.ID
		}

		// Enrichment fills in what the flags left empty.
		if enrich {
			provider, err := buildProvider(ctx, st)
			if err != nil {
				return fmt.Errorf("--enrich needs an LLM provider: %w", err)
			}
			generator := quizgen.New(provider, quizgen.DefaultConfig())
			info, err := generator.WordInfo(ctx, args[0], vocab.DefaultLanguage)
			if err != nil {
				return fmt.Errorf("enrich word: %w", err)
			}
			if typeFlag == "" || typeFlag == "other" {
				typeFlag = info.Type
			}
			if translation == "" {
				translation = info.Translation
			}
			if note == "" {
				note = info.Note
			}
		}

		w, err := svc.AddWord(ctx, args[0], vocab.ParseWordType(typeFlag), note, translation, groupID)
		if err != nil {
			return fmt.Errorf("add word: %w", err)
		}

		fmt.Printf("Added %q (%s)\n", w.Text, w.Type)
		return nil
	},
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List words",
	RunE: func(cmd *cobra.Command, args []string) error {
		groupName, _ := cmd.Flags().GetString("group")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()

		var words []vocab.Word
		if groupName != "" {
			g, err := st.Groups().GetByName(ctx, groupName)
			if err != nil {
				return fmt.Errorf("group %q: %w", groupName, err)
			}
			words, err = st.Words().ListByGroup(ctx, g.ID)
			if err != nil {
				return fmt.Errorf("list words: %w", err)
			}
		} else {
			words, err = st.Words().List(ctx)
			if err != nil {
				return fmt.Errorf("list words: %w", err)
			}
		}

		if len(words) == 0 {
			fmt.Println("No words yet. Add one with `wordling words add`.")
			return nil
		}

		fmt.Printf("%-20s  %-10s  %-20s  %-10s  %s\n",
			"Word", "Type", "Translation", "Status", "Note")
		fmt.Println(strings.Repeat("─", 80))

		for _, w := range words {
			status, err := st.Statuses().Get(ctx, w.ID)
			if err != nil {
				return fmt.Errorf("status for %q: %w", w.Text, err)
			}
			fmt.Printf("%-20s  %-10s  %-20s  %-10s  %s\n",
				truncate(w.Text, 20), w.Type, truncate(w.Translation, 20),
				status, truncate(w.Note, 24))
		}
		return nil
	},
}

var wordsDeleteCmd = &cobra.Command{
	Use:   "delete <text>",
	Short: "Delete a word and its learner data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		w, err := findWord(ctx, st, args[0])
		if err != nil {
			return err
		}

		if err := newVocabService(st).DeleteWord(ctx, w.ID); err != nil {
			return fmt.Errorf("delete word: %w", err)
		}
		fmt.Printf("Deleted %q\n", w.Text)
		return nil
	},
}

var wordsFavoriteCmd = &cobra.Command{
	Use:   "favorite <text>",
	Short: "Toggle a word's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		svc := newVocabService(st)

		w, err := findWord(ctx, st, args[0])
		if err != nil {
			return err
		}

		fav, err := svc.IsFavorite(ctx, w.ID)
		if err != nil {
			return fmt.Errorf("load favorite flag: %w", err)
		}
		if err := svc.SetFavorite(ctx, w.ID, !fav); err != nil {
			return fmt.Errorf("set favorite flag: %w", err)
		}

		if fav {
			fmt.Printf("Removed %q from favorites\n", w.Text)
		} else {
			fmt.Printf("Added %q to favorites\n", w.Text)
		}
		return nil
	},
}

var wordsStatusCmd = &cobra.Command{
	Use:   "status <text> [new|learning|mastered]",
	Short: "Show or override a word's mastery status",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		w, err := findWord(ctx, st, args[0])
		if err != nil {
			return err
		}

		masterySvc := mastery.NewService(st.Results(), st.Statuses())
		if len(args) == 2 {
			status := mastery.ParseStatus(args[1])
			if err := masterySvc.Override(ctx, w.ID, status); err != nil {
				return fmt.Errorf("override status: %w", err)
			}
			fmt.Printf("%s: %s\n", w.Text, status.DisplayName())
			return nil
		}

		status, err := masterySvc.Status(ctx, w.ID)
		if err != nil {
			return fmt.Errorf("load status: %w", err)
		}
		fmt.Printf("%s: %s\n", w.Text, status.DisplayName())
		return nil
	},
}

// findWord resolves a word by its text, case-insensitively.
func findWord(ctx context.Context, st *store.Store, text string) (*vocab.Word, error) {
	words, err := st.Words().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	for i := range words {
		if strings.EqualFold(words[i].Text, text) {
			return &words[i], nil
		}
	}
	return nil, fmt.Errorf("word %q not found", text)
}

func newVocabService(st *store.Store) *vocab.Service {
	return vocab.NewService(st.Words(), st.Groups(), st.Learner(), st.KV())
}

func init() {
	wordsAddCmd.Flags().StringP("type", "t", "other", "Word type: noun, verb, adjective, adverb, other")
	wordsAddCmd.Flags().String("note", "", "Free-form note")
	wordsAddCmd.Flags().String("translation", "", "Translation in your language")
	wordsAddCmd.Flags().StringP("group", "g", "", "Group to add the word to")
	wordsAddCmd.Flags().Bool("enrich", false, "Fill missing type/translation/note via the LLM")

	wordsListCmd.Flags().StringP("group", "g", "", "List only words in this group")

	wordsCmd.AddCommand(wordsAddCmd)
	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsDeleteCmd)
	wordsCmd.AddCommand(wordsFavoriteCmd)
	wordsCmd.AddCommand(wordsStatusCmd)
}
