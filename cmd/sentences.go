package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wordling/wordling/internal/quizgen"
	"github.com/wordling/wordling/internal/store"
)

var sentencesCmd = &cobra.Command{
	Use:   "sentences <word>",
	Short: "Show example sentences for a word",
	Long: "Shows example sentences for a word, generating and caching them on " +
		"first use. Pass --refresh to regenerate.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		refresh, _ := cmd.Flags().GetBool("refresh")

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

		key := store.SentencesKey(w.ID)
		var sentences []quizgen.Sentence

		if !refresh {
			found, err := st.KV().GetJSON(ctx, key, &sentences)
			if err != nil {
				return fmt.Errorf("load cached sentences: %w", err)
			}
			if found {
				printSentences(w.Text, sentences)
				return nil
			}
		}

		provider, err := buildProvider(ctx, st)
		if err != nil {
			return fmt.Errorf("sentence generation needs an LLM provider: %w", err)
		}
		generator := quizgen.New(provider, quizgen.DefaultConfig())

		groupCtx, err := groupContextFor(ctx, st, w.GroupIDs)
		if err != nil {
			return err
		}

		sentences, err = generator.GenerateSentences(ctx, *w, groupCtx)
		if err != nil {
			return fmt.Errorf("generate sentences: %w", err)
		}
		if err := st.KV().SetJSON(ctx, key, sentences); err != nil {
			return fmt.Errorf("cache sentences: %w", err)
		}

		printSentences(w.Text, sentences)
		return nil
	},
}

// groupContextFor builds the generation context from the word's first group.
func groupContextFor(ctx context.Context, st *store.Store, groupIDs []uuid.UUID) (quizgen.GroupContext, error) {
	if len(groupIDs) == 0 {
		return quizgen.GroupContext{}, nil
	}
	g, err := st.Groups().Get(ctx, groupIDs[0])
	if err != nil {
		return quizgen.GroupContext{}, fmt.Errorf("load group: %w", err)
	}
	return quizgen.GroupContext{
		Name:        g.Name,
		Description: g.Description,
		Language:    g.Language,
	}, nil
}

func printSentences(word string, sentences []quizgen.Sentence) {
	fmt.Printf("Example sentences for %q:\n\n", word)
	for i, s := range sentences {
		fmt.Printf("%d. %s\n", i+1, s.Text)
		if s.Translation != "" {
			fmt.Printf("   %s\n", s.Translation)
		}
	}
}

func init() {
	sentencesCmd.Flags().Bool("refresh", false, "Regenerate sentences even if cached")
}
