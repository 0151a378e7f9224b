package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wordling/wordling/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		words, err := st.Words().List(ctx)
		if err != nil {
			return fmt.Errorf("list words: %w", err)
		}

		tracker := progress.NewTracker(st.Progress())
		stats, err := tracker.Statistics(ctx, time.Now(), len(words), st.Statuses(), st.Results())
		if err != nil {
			return fmt.Errorf("compute statistics: %w", err)
		}

		fmt.Println("Vocabulary")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("  Total words:    %d\n", stats.TotalWords)
		fmt.Printf("  New:            %d\n", stats.NewWords)
		fmt.Printf("  Learning:       %d\n", stats.LearningWords)
		fmt.Printf("  Mastered:       %d\n", stats.MasteredWords)

		fmt.Println()
		fmt.Println("Quizzes")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("  Quizzes taken:  %d\n", stats.TotalQuizzes)
		fmt.Printf("  Answers:        %d correct / %d incorrect\n",
			stats.CorrectAnswers, stats.IncorrectAnswers)
		fmt.Printf("  Success rate:   %.0f%%\n", stats.SuccessRate*100)

		fmt.Println()
		fmt.Println("Today")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("  Quizzes:        %d\n", stats.Today.QuizzesTaken)
		fmt.Printf("  Words reviewed: %d\n", stats.Today.WordsReviewed)
		fmt.Printf("  Answers:        %d correct / %d incorrect\n",
			stats.Today.CorrectAnswers, stats.Today.IncorrectAnswers)

		history := stats.History
		if days > 0 && len(history) > days {
			history = history[len(history)-days:]
		}
		if len(history) > 0 {
			fmt.Println()
			fmt.Printf("History (last %d days)\n", len(history))
			fmt.Println(strings.Repeat("─", 48))
			fmt.Printf("  %-12s  %7s  %8s  %9s\n", "Day", "Quizzes", "Reviewed", "Correct")
			for _, d := range history {
				fmt.Printf("  %-12s  %7d  %8d  %9d\n",
					d.DayKey, d.QuizzesTaken, d.WordsReviewed, d.CorrectAnswers)
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().Int("days", 14, "Number of history days to show")
}
