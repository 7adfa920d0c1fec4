package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haxx0rman/qBank/internal/bank"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a question to the bank",
	Example: `  qbank add --text "Capital of France?" --correct Paris --wrong Lyon --wrong Nice --wrong Lille --tags geography
  qbank add --kind true_false --text "The sun is a star." --correct true
  qbank add --kind short_answer --text "Who painted the Mona Lisa?" --accept "Leonardo da Vinci" --accept "da Vinci"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetString("text")
		kind, _ := cmd.Flags().GetString("kind")
		correct, _ := cmd.Flags().GetString("correct")
		wrong, _ := cmd.Flags().GetStringArray("wrong")
		accept, _ := cmd.Flags().GetStringArray("accept")
		tags, _ := cmd.Flags().GetStringSlice("tags")
		explanation, _ := cmd.Flags().GetString("explanation")

		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("--text is required")
		}

		opts := bank.Options{Tags: tags}
		if explanation != "" && correct != "" {
			opts.Explanations = map[string]string{correct: explanation}
		}

		var q *bank.Question
		switch bank.Kind(kind) {
		case bank.KindMultipleChoice:
			if correct == "" || len(wrong) == 0 {
				return fmt.Errorf("multiple choice needs --correct and at least one --wrong")
			}
			q = bank.NewMultipleChoice(text, correct, wrong, opts)
		case bank.KindTrueFalse:
			isTrue, err := strconv.ParseBool(correct)
			if err != nil {
				return fmt.Errorf("--correct must be true or false for true_false questions")
			}
			q = bank.NewTrueFalse(text, isTrue, opts)
		case bank.KindShortAnswer:
			if len(accept) == 0 {
				return fmt.Errorf("short answer needs at least one --accept value")
			}
			q = bank.NewShortAnswer(text, accept, opts)
		default:
			return fmt.Errorf("unknown kind %q (multiple_choice, true_false, short_answer)", kind)
		}

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

		mgr.AddQuestion(q)
		if err := saveState(ctx, st, mgr); err != nil {
			return err
		}

		fmt.Printf("Added %s question %s (%d questions total)\n", q.Kind, q.ID, len(mgr.Bank().Questions))
		return nil
	},
}

func init() {
	addCmd.Flags().String("text", "", "Question text")
	addCmd.Flags().String("kind", string(bank.KindMultipleChoice), "Question kind: multiple_choice, true_false, short_answer")
	addCmd.Flags().String("correct", "", "Correct answer (or true/false)")
	addCmd.Flags().StringArray("wrong", nil, "Wrong answer option (repeatable)")
	addCmd.Flags().StringArray("accept", nil, "Acceptable short answer (repeatable)")
	addCmd.Flags().StringSlice("tags", nil, "Comma-separated tags")
	addCmd.Flags().String("explanation", "", "Explanation shown after answering")
}
