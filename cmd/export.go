package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the bank as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		mgr, err := loadManager(cmd.Context(), st)
		if err != nil {
			return err
		}

		out := os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			out = f
		}

		if err := mgr.ExportJSON(out); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if len(args) == 1 {
			fmt.Printf("Exported %d questions to %s\n", len(mgr.Bank().Questions), args[0])
		}
		return nil
	},
}
