package cmd

import (
	"github.com/spf13/cobra"

	"github.com/haxx0rman/qBank/internal/app"
	"github.com/haxx0rman/qBank/internal/manager"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start an interactive study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		max, _ := cmd.Flags().GetInt("max")
		tags, _ := cmd.Flags().GetStringSlice("tags")
		adaptive, _ := cmd.Flags().GetBool("adaptive")
		spread, _ := cmd.Flags().GetFloat64("spread")
		shuffle, _ := cmd.Flags().GetBool("shuffle")

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

		opts := manager.SessionOptions{
			MaxQuestions: max,
			Tags:         tags,
			Adaptive:     adaptive,
			RatingSpread: spread,
			Shuffle:      shuffle,
		}
		if err := app.Run(mgr, opts); err != nil {
			return err
		}

		return saveState(ctx, st, mgr)
	},
}

func init() {
	studyCmd.Flags().Int("max", 20, "Maximum questions in the session (0 = all due)")
	studyCmd.Flags().StringSlice("tags", nil, "Only questions carrying any of these tags")
	studyCmd.Flags().Bool("adaptive", false, "Restrict to questions near your rating")
	studyCmd.Flags().Float64("spread", 0, "Rating band half-width for --adaptive (default 200)")
	studyCmd.Flags().Bool("shuffle", true, "Randomize question order")
}
