package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordling/wordling/internal/quizgen"
	"github.com/wordling/wordling/internal/vocab"
)

var translateCmd = &cobra.Command{
	Use:   "translate <text>...",
	Short: "Translate text into a target language",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("to")
		if target == "" {
			target = vocab.DefaultLanguage
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		provider, err := buildProvider(ctx, st)
		if err != nil {
			return fmt.Errorf("translation needs an LLM provider: %w", err)
		}
		generator := quizgen.New(provider, quizgen.DefaultConfig())

		translation, err := generator.Translate(ctx, strings.Join(args, " "), target)
		if err != nil {
			return fmt.Errorf("translate: %w", err)
		}

		fmt.Println(translation)
		return nil
	},
}

func init() {
	translateCmd.Flags().String("to", "", "Target language (default \"en\")")
}
