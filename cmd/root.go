package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/haxx0rman/qBank/internal/manager"
	"github.com/haxx0rman/qBank/internal/store"
)

// snapshotKeep bounds the snapshot history retained after each save.
const snapshotKeep = 10

var rootCmd = &cobra.Command{
	Use:   "qbank",
	Short: "Spaced-repetition quiz trainer",
	Long:  "qBank — a terminal question bank with SM-2 spaced repetition and ELO difficulty ratings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QBANK_DB env var)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QBANK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store for the resolved database path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// loadManager builds a Manager from the latest snapshot, or a fresh one
// when the database is empty.
func loadManager(ctx context.Context, st *store.Store) (*manager.Manager, error) {
	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	opts := manager.Options{Events: st.EventRepo()}
	if snap != nil {
		opts.Bank = snap.Data.Bank
		opts.UserRating = &snap.Data.UserRating
	}
	return manager.New(opts)
}

// saveState snapshots the manager's bank and prunes old snapshots.
func saveState(ctx context.Context, st *store.Store, mgr *manager.Manager) error {
	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version:    1,
			UserRating: mgr.UserRating(),
			Bank:       mgr.Bank(),
		},
	}
	if err := st.SnapshotRepo().Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := st.SnapshotRepo().Prune(ctx, snapshotKeep); err != nil {
		fmt.Fprintf(os.Stderr, "warning: prune snapshots: %v\n", err)
	}
	return nil
}
