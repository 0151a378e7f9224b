package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage word groups",
}

var groupsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		color, _ := cmd.Flags().GetString("color")
		language, _ := cmd.Flags().GetString("language")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		g, err := newVocabService(st).AddGroup(context.Background(), args[0], description, color, language)
		if err != nil {
			return fmt.Errorf("add group: %w", err)
		}
		fmt.Printf("Created group %q\n", g.Name)
		return nil
	},
}

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		groups, err := st.Groups().List(ctx)
		if err != nil {
			return fmt.Errorf("list groups: %w", err)
		}

		if len(groups) == 0 {
			fmt.Println("No groups yet. Create one with `wordling groups add`.")
			return nil
		}

		fmt.Printf("%-20s  %-10s  %-6s  %s\n", "Name", "Language", "Words", "Description")
		fmt.Println(strings.Repeat("─", 72))

		for _, g := range groups {
			words, err := st.Words().ListByGroup(ctx, g.ID)
			if err != nil {
				return fmt.Errorf("count words in %q: %w", g.Name, err)
			}
			fmt.Printf("%-20s  %-10s  %-6d  %s\n",
				truncate(g.Name, 20), g.Language, len(words), truncate(g.Description, 32))
		}
		return nil
	},
}

var groupsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a group; words belonging only to it are deleted too",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		g, err := st.Groups().GetByName(ctx, args[0])
		if err != nil {
			return fmt.Errorf("group %q: %w", args[0], err)
		}

		if err := newVocabService(st).DeleteGroup(ctx, g.ID); err != nil {
			return fmt.Errorf("delete group: %w", err)
		}
		fmt.Printf("Deleted group %q\n", g.Name)
		return nil
	},
}

var groupsAssignCmd = &cobra.Command{
	Use:   "assign <word> <group>",
	Short: "Add a word to a group",
	Args:  cobra.ExactArgs(2),
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
		g, err := st.Groups().GetByName(ctx, args[1])
		if err != nil {
			return fmt.Errorf("group %q: %w", args[1], err)
		}

		if err := newVocabService(st).Assign(ctx, w.ID, g.ID); err != nil {
			return fmt.Errorf("assign: %w", err)
		}
		fmt.Printf("Added %q to %q\n", w.Text, g.Name)
		return nil
	},
}

var groupsUnassignCmd = &cobra.Command{
	Use:   "unassign <word> <group>",
	Short: "Remove a word from a group",
	Args:  cobra.ExactArgs(2),
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
		g, err := st.Groups().GetByName(ctx, args[1])
		if err != nil {
			return fmt.Errorf("group %q: %w", args[1], err)
		}

		if err := newVocabService(st).Unassign(ctx, w.ID, g.ID); err != nil {
			return fmt.Errorf("unassign: %w", err)
		}
		fmt.Printf("Removed %q from %q\n", w.Text, g.Name)
		return nil
	},
}

func init() {
	groupsAddCmd.Flags().String("description", "", "What this group collects")
	groupsAddCmd.Flags().String("color", "", "Display color tag")
	groupsAddCmd.Flags().StringP("language", "l", "", "Language of the words in this group")

	groupsCmd.AddCommand(groupsAddCmd)
	groupsCmd.AddCommand(groupsListCmd)
	groupsCmd.AddCommand(groupsDeleteCmd)
	groupsCmd.AddCommand(groupsAssignCmd)
	groupsCmd.AddCommand(groupsUnassignCmd)
}
