package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wordling/wordling/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wordling",
	Short: "Vocabulary trainer for the terminal",
	Long:  "Wordling — AI-powered terminal app for learning foreign vocabulary through quizzes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDLING_DB env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(sentencesCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WORDLING_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
