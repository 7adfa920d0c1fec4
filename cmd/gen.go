package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haxx0rman/qBank/internal/llm"
	"github.com/haxx0rman/qBank/internal/qgen"
)

var genCmd = &cobra.Command{
	Use:   "gen <topic>",
	Short: "Generate questions for a topic with an LLM",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")
		count, _ := cmd.Flags().GetInt("count")
		rating, _ := cmd.Flags().GetFloat64("rating")
		tags, _ := cmd.Flags().GetStringSlice("tags")

		if count < 1 {
			return fmt.Errorf("--count must be at least 1")
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

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		if rating == 0 {
			rating = mgr.UserRating()
		}

		// Existing texts feed the dedup prompt.
		var prior []string
		for _, q := range mgr.Bank().All() {
			prior = append(prior, q.Text)
		}

		generator := qgen.New(provider, qgen.DefaultConfig())
		input := qgen.GenerateInput{
			Topic:          topic,
			TargetRating:   rating,
			Tags:           tags,
			PriorQuestions: prior,
		}

		fmt.Printf("Generating %d question(s) on %q around rating %.0f...\n", count, topic, rating)
		questions, err := generator.GenerateBatch(ctx, input, count)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		if len(questions) == 0 {
			return fmt.Errorf("the model produced no valid questions")
		}

		added := mgr.BulkAdd(questions)
		if err := saveState(ctx, st, mgr); err != nil {
			return err
		}

		for _, q := range questions {
			fmt.Printf("  + %s\n", q.Text)
		}
		fmt.Printf("Added %d new question(s).\n", added)
		return nil
	},
}

func init() {
	genCmd.Flags().Int("count", 5, "Number of questions to generate")
	genCmd.Flags().Float64("rating", 0, "Target difficulty rating (default: your rating)")
	genCmd.Flags().StringSlice("tags", nil, "Tags to attach (default: the topic)")
}
