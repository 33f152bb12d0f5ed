package main

import (
	"github.com/spf13/cobra"

	"github.com/scapelab/gear-api/internal/orchestrators/gear"
)

var refreshSkipPrices bool

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Pull the item feed and persist a new catalogue snapshot",
	Long:  `Fetch the item dump and the latest price feed, then save a new versioned catalogue snapshot and advance the latest pointer.`,
	RunE:  runRefresh,
}

func init() {
	refreshCmd.Flags().BoolVar(&refreshSkipPrices, "skip-prices", false, "keep dump costs instead of overlaying the live price feed")
}

func runRefresh(cmd *cobra.Command, args []string) error {
	service, err := buildService()
	if err != nil {
		return err
	}

	out, err := service.RefreshSnapshot(cmd.Context(), &gear.RefreshSnapshotInput{
		SkipPrices: refreshSkipPrices,
	})
	if err != nil {
		return err
	}

	return printResponse(out)
}
