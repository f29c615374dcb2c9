package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/craftstats/leaderboard-api/internal/logic"
)

// summaryCmd prints the whole-roster totals block.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show whole-roster totals",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	s := snap.Summary
	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("PLAYERS", "PLAYTIME", "DEATHS", "BLOCKS MINED", "DISTANCE")
	table.Append(
		fmt.Sprintf("%d", s.PlayerCount),
		logic.FormatDuration(s.TotalPlaytimeMinutes),
		fmt.Sprintf("%.0f", s.TotalDeaths),
		fmt.Sprintf("%.0f", s.TotalBlocksMined),
		logic.FormatDistance(s.TotalDistanceBlocks),
	)
	table.Render()
	return nil
}
