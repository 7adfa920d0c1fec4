package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search question and answer text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		mgr, err := loadManager(cmd.Context(), st)
		if err != nil {
			return err
		}

		matches := mgr.Bank().Search(query)
		if len(matches) == 0 {
			fmt.Printf("No questions match %q.\n", query)
			return nil
		}

		for _, q := range matches {
			fmt.Printf("%s  [%s]  %s\n", shortID(q.ID), q.Kind, q.Text)
			if correct := q.CorrectAnswer(); correct != nil {
				fmt.Printf("          → %s\n", correct.Text)
			}
			if len(q.Acceptable) > 0 {
				fmt.Printf("          → %s\n", strings.Join(q.Acceptable, " / "))
			}
		}
		fmt.Printf("\n%d match(es).\n", len(matches))
		return nil
	},
}
