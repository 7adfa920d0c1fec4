package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haxx0rman/qBank/internal/analytics"
	"github.com/haxx0rman/qBank/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics and insights",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		stats := mgr.Statistics()
		sessions := mgr.Bank().Sessions

		fmt.Println("Bank")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("  Questions        %d (%d unseen)\n", stats.TotalQuestions, stats.UnseenCount)
		fmt.Printf("  Due for review   %d\n", stats.DueCount)
		fmt.Printf("  Average ease     %.2f\n", stats.AverageEase)
		fmt.Printf("  Est. retention   %.0f%%\n", stats.AverageRetention*100)

		fmt.Println("\nYou")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("  Rating           %.0f (%s)\n", stats.UserRating, stats.UserLevel)
		fmt.Printf("  Attempts         %d\n", stats.TotalAttempts)
		fmt.Printf("  Accuracy         %.0f%%\n", stats.OverallAccuracy*100)
		fmt.Printf("  Sessions         %d\n", stats.SessionCount)

		attempts, err := st.EventRepo().RecentAttempts(ctx, store.QueryOpts{Limit: 100})
		if err == nil {
			if avg := analytics.AverageResponseTime(attempts); avg > 0 {
				fmt.Printf("  Avg response     %.1fs\n", avg)
			}
		}

		trend := analytics.Trend(sessions)
		if trend.Trend != analytics.TrendInsufficientData {
			fmt.Println("\nTrend")
			fmt.Println(strings.Repeat("─", 40))
			fmt.Printf("  Direction        %s (%+.0f%% accuracy)\n", trend.Trend, trend.AccuracyChange*100)
			fmt.Printf("  Recent accuracy  %.0f%%\n", trend.RecentAccuracy*100)
		}

		patterns := analytics.Patterns(mgr.Bank(), sessions)
		if len(sessions) > 0 {
			fmt.Println("\nHabits")
			fmt.Println(strings.Repeat("─", 40))
			fmt.Printf("  Days studied     %d\n", patterns.DaysStudied)
			fmt.Printf("  Avg session      %.0f min\n", patterns.AverageSessionMinutes)
			fmt.Printf("  Preferred hour   %02d:00\n", patterns.PreferredHour)
			if len(patterns.TopTags) > 0 {
				fmt.Printf("  Top topics       %s\n", strings.Join(patterns.TopTags, ", "))
			}
		}

		if hard := mgr.DifficultQuestions(5); len(hard) > 0 {
			fmt.Println("\nTrouble spots")
			fmt.Println(strings.Repeat("─", 40))
			for _, q := range hard {
				fmt.Printf("  %3.0f%%  %-6.0f  %s\n",
					q.Schedule.Accuracy()*100, q.Rating, truncate(q.Text, 50))
			}
		}

		fmt.Println("\nSuggestions")
		fmt.Println(strings.Repeat("─", 40))
		for _, rec := range analytics.Recommend(mgr.Bank(), sessions) {
			fmt.Printf("  • %s\n", rec)
		}

		return nil
	},
}
