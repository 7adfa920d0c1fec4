package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haxx0rman/qBank/internal/bank"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions in the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, _ := cmd.Flags().GetString("tag")
		dueOnly, _ := cmd.Flags().GetBool("due")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		mgr, err := loadManager(ctx, st)
		if err != nil {
			return err
		}

		due := make(map[string]bool)
		for _, q := range mgr.DueQuestions() {
			due[q.ID] = true
		}

		var questions []*bank.Question
		if tag != "" {
			questions = mgr.Bank().ByTag(tag)
		} else {
			questions = mgr.Bank().All()
		}
		sort.Slice(questions, func(i, j int) bool {
			return questions[i].CreatedAt.Before(questions[j].CreatedAt)
		})

		printed := 0
		for _, q := range questions {
			if dueOnly && !due[q.ID] {
				continue
			}
			if printed == 0 {
				fmt.Printf("%-8s  %-15s  %-6s  %-3s  %-20s  %s\n",
					"ID", "Kind", "Rating", "Due", "Tags", "Question")
				fmt.Println(strings.Repeat("─", 100))
			}
			marker := ""
			if due[q.ID] {
				marker = "✓"
			}
			fmt.Printf("%-8s  %-15s  %-6.0f  %-3s  %-20s  %s\n",
				shortID(q.ID), q.Kind, q.Rating, marker,
				truncate(strings.Join(q.Tags, ","), 20),
				truncate(q.Text, 50))
			printed++
		}

		if printed == 0 {
			fmt.Println("No questions found.")
			return nil
		}
		fmt.Printf("\n%d question(s), %d due for review.\n", printed, len(due))
		return nil
	},
}

func init() {
	listCmd.Flags().String("tag", "", "Only questions carrying this tag")
	listCmd.Flags().Bool("due", false, "Only questions due for review")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
