package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project review load over the coming days",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		if days < 1 {
			return fmt.Errorf("--days must be at least 1")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		mgr, err := loadManager(cmd.Context(), st)
		if err != nil {
			return err
		}

		entries := mgr.Forecast(days)
		peak := 0
		for _, e := range entries {
			if e.Count > peak {
				peak = e.Count
			}
		}

		for _, e := range entries {
			bar := ""
			if peak > 0 {
				bar = strings.Repeat("█", e.Count*40/peak)
			}
			fmt.Printf("%s  %4d  %s\n", e.Date.Format("Mon Jan 02"), e.Count, bar)
		}
		return nil
	},
}

func init() {
	forecastCmd.Flags().Int("days", 7, "Forecast horizon in days")
}
