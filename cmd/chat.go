package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordling/wordling/internal/quizgen"
	"github.com/wordling/wordling/internal/vocab"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Practice a language in free conversation",
	Long: "Starts an interactive conversation with the AI in the practice " +
		"language. Pass --topic to frame the conversation, or --group to pick " +
		"up a group's language. Type 'exit' or press Ctrl-D to leave.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		language, _ := cmd.Flags().GetString("language")
		groupName, _ := cmd.Flags().GetString("group")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		if groupName != "" {
			g, err := st.Groups().GetByName(ctx, groupName)
			if err != nil {
				return fmt.Errorf("resolve group %q: %w", groupName, err)
			}
			if language == "" && g.Language != "" {
				language = g.Language
			}
			if topic == "" && g.Description != "" {
				topic = g.Description
			}
		}
		if language == "" {
			language = vocab.DefaultLanguage
		}

		provider, err := buildProvider(ctx, st)
		if err != nil {
			return fmt.Errorf("chat needs an LLM provider: %w", err)
		}
		conv := quizgen.NewConversation(provider, quizgen.DefaultConfig(), language, topic)

		greeting, err := conv.Greet(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n\n", greeting)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				break
			}

			reply, err := conv.Send(ctx, line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Printf("\n%s\n\n", reply)
		}
		fmt.Println("\nBye!")
		return scanner.Err()
	},
}

func init() {
	chatCmd.Flags().StringP("topic", "t", "", "Conversation topic")
	chatCmd.Flags().StringP("language", "l", "", "Practice language (default from --group or \"en\")")
	chatCmd.Flags().StringP("group", "g", "", "Group whose language and theme frame the chat")
}
