package main

import (
	"github.com/spf13/cobra"

	"github.com/scapelab/gear-api/internal/orchestrators/gear"
)

var bestLoadoutRequestPath string

var bestLoadoutCmd = &cobra.Command{
	Use:   "best-loadout",
	Short: "Solve the highest scoring loadout under a budget",
	Long:  `Solve one item per slot maximizing total offensive score under the player's budget, honoring level, quest and account-type restrictions.`,
	RunE:  runBestLoadout,
}

func init() {
	bestLoadoutCmd.Flags().StringVar(&bestLoadoutRequestPath, "request", "-", "path to the JSON request, or - for stdin")
}

func runBestLoadout(cmd *cobra.Command, args []string) error {
	var input gear.BestLoadoutInput
	if err := readRequest(bestLoadoutRequestPath, &input); err != nil {
		return err
	}

	service, err := buildService()
	if err != nil {
		return err
	}

	out, err := service.BestLoadout(cmd.Context(), &input)
	if err != nil {
		return err
	}

	return printResponse(out)
}
