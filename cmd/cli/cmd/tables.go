// Package cmd - tables command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ratecard/core/tables"
	"ratecard/core/types"
)

// tablesCmd dumps the active rate tables
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the active rate tables",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Tier base rates (USD):")
		for _, tier := range []types.Tier{
			types.TierNano, types.TierMicro, types.TierMid, types.TierRising,
			types.TierMacro, types.TierMega, types.TierCelebrity,
		} {
			fmt.Printf("  %-10s $%s\n", tier, tables.BaseRate(tier).StringFixed(0))
		}

		fmt.Println("\nPlatform multipliers:")
		for _, p := range []types.Platform{
			types.PlatformInstagram, types.PlatformTikTok, types.PlatformYouTube,
			types.PlatformYouTubeShorts, types.PlatformTwitter, types.PlatformThreads,
			types.PlatformPinterest, types.PlatformLinkedIn, types.PlatformBluesky,
			types.PlatformLemon8, types.PlatformSnapchat, types.PlatformTwitch,
		} {
			fmt.Printf("  %-15s ×%.2f\n", p, tables.PlatformMultiplier(p))
		}

		fmt.Println("\nUGC base rates (USD):")
		fmt.Printf("  %-10s $%s\n", "video", tables.UGCBaseRate(types.FormatVideo).StringFixed(0))
		fmt.Printf("  %-10s $%s\n", "photo", tables.UGCBaseRate(types.FormatPhoto).StringFixed(0))

		fmt.Println("\nCurrencies:")
		for _, c := range tables.Currencies() {
			fmt.Printf("  %s %s\n", c.Code, c.Symbol)
		}
	},
}
