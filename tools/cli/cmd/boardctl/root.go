package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/craftstats/leaderboard-api/internal/roster"
)

var snapshotPath string

var rootCmd = &cobra.Command{
	Use:   "boardctl",
	Short: "Leaderboard snapshot inspector",
	Long:  "Load a roster snapshot and inspect rankings, totals and players without running the server.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "players.json", "path to the roster snapshot")

	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(playerCmd)
}

func loadSnapshot(ctx context.Context) (*roster.Snapshot, error) {
	loader := roster.NewLoader(roster.LoaderConfig{
		Path:   snapshotPath,
		Logger: zap.NewNop(),
	})
	snap, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return snap, nil
}
