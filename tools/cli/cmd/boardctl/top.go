package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/craftstats/leaderboard-api/internal/logic"
	"github.com/craftstats/leaderboard-api/internal/models"
)

var topLimit int

var topCmd = &cobra.Command{
	Use:   "top <metric>",
	Short: "Show the leaderboard for a metric key",
	Long:  "Rank the snapshot roster by one of: playtime, kills, blocksMined, distanceTraveled, deaths.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTop,
}

func init() {
	topCmd.Flags().IntVar(&topLimit, "limit", 25, "number of rows to show")
}

func runTop(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	metric := models.MetricKey(args[0])
	entries, err := logic.Rank(snap.Players, metric)
	if err != nil {
		return fmt.Errorf("rank roster: %w", err)
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("RANK", "PLAYER", "VALUE")
	for _, e := range entries {
		if e.Rank > topLimit {
			break
		}
		table.Append(
			fmt.Sprintf("%d", e.Rank),
			logic.ShortenName(e.Player.DisplayName),
			logic.DisplayMetricValue(metric, e.MetricValue),
		)
	}
	table.Render()
	return nil
}
