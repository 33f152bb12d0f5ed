package main

import (
	"github.com/spf13/cobra"

	"github.com/scapelab/gear-api/internal/orchestrators/gear"
)

var progressionRequestPath string

var progressionCmd = &cobra.Command{
	Use:   "progression",
	Short: "Merge upgrade suggestions across all combat styles",
	Long:  `Build one prioritized upgrade list across melee, ranged and magic, capped by the account's bank value.`,
	RunE:  runProgression,
}

func init() {
	progressionCmd.Flags().StringVar(&progressionRequestPath, "request", "-", "path to the JSON request, or - for stdin")
}

func runProgression(cmd *cobra.Command, args []string) error {
	var input gear.ProgressionInput
	if err := readRequest(progressionRequestPath, &input); err != nil {
		return err
	}

	service, err := buildService()
	if err != nil {
		return err
	}

	out, err := service.Progression(cmd.Context(), &input)
	if err != nil {
		return err
	}

	return printResponse(out)
}
