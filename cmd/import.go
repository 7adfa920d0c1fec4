package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the bank from an exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()

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

		if err := mgr.ImportJSON(f); err != nil {
			return fmt.Errorf("import: %w", err)
		}
		if err := saveState(ctx, st, mgr); err != nil {
			return err
		}

		fmt.Printf("Imported %d questions from %s\n", len(mgr.Bank().Questions), args[0])
		return nil
	},
}
