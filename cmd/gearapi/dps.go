package main

import (
	"github.com/spf13/cobra"

	"github.com/scapelab/gear-api/internal/orchestrators/gear"
)

var dpsRequestPath string

var dpsCmd = &cobra.Command{
	Use:   "dps",
	Short: "Calculate combat output for a loadout",
	Long:  `Calculate max hit, accuracy, attack speed and expected damage per second for a loadout against an optional target profile.`,
	RunE:  runDPS,
}

func init() {
	dpsCmd.Flags().StringVar(&dpsRequestPath, "request", "-", "path to the JSON request, or - for stdin")
}

func runDPS(cmd *cobra.Command, args []string) error {
	var input gear.CalculateDPSInput
	if err := readRequest(dpsRequestPath, &input); err != nil {
		return err
	}

	service, err := buildService()
	if err != nil {
		return err
	}

	out, err := service.CalculateDPS(cmd.Context(), &input)
	if err != nil {
		return err
	}

	return printResponse(out)
}
