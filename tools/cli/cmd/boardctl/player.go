package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/craftstats/leaderboard-api/internal/logic"
)

var playerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Show one player's stats and KDR history",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayer,
}

func runPlayer(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	p, ok := snap.Player(args[0])
	if !ok {
		return fmt.Errorf("unknown player: %s", args[0])
	}

	fmt.Fprintf(os.Stdout, "%s (%s)\n", p.DisplayName, p.ID)
	fmt.Fprintf(os.Stdout, "avatar: %s\n\n", logic.AvatarReference(p.HasDotPrefix, p.DisplayName))

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
	}))
	table.Append("Playtime", logic.FormatDuration(p.PlaytimeMinutes))
	table.Append("Kills", fmt.Sprintf("%.0f", p.Kills))
	table.Append("Deaths", fmt.Sprintf("%.0f", p.Deaths))
	table.Append("KDR", fmt.Sprintf("%.2f", logic.KillDeathRatio(p.Kills, p.Deaths)))
	table.Append("Blocks Mined", fmt.Sprintf("%.0f", p.BlocksMined))
	table.Append("Distance", logic.FormatDistance(p.DistanceTraveledBlocks))
	table.Append("Items Used", fmt.Sprintf("%.0f", p.ItemsUsed))
	table.Append("Jumps", fmt.Sprintf("%.0f", p.Jumps))
	table.Render()

	if len(p.KDRHistorySeries) > 0 {
		fmt.Fprintf(os.Stdout, "\n--- KDR History ---\n\n")
		ht := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
			Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
			Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
		}))
		ht.Header("SAMPLE", "KDR")
		for i, s := range p.KDRHistorySeries {
			label := s.Label
			if label == "" {
				label = fmt.Sprintf("%d", i+1)
			}
			ht.Append(label, fmt.Sprintf("%.2f", s.Value))
		}
		ht.Render()
	}

	return nil
}
