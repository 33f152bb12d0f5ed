package main

import (
	"github.com/spf13/cobra"

	"github.com/scapelab/gear-api/internal/orchestrators/gear"
)

var upgradePathRequestPath string

var upgradePathCmd = &cobra.Command{
	Use:   "upgrade-path",
	Short: "Rank per-slot upgrades by GP efficiency",
	Long:  `Compute the best affordable replacement for each slot of the current loadout, ranked by score gained per GP spent.`,
	RunE:  runUpgradePath,
}

func init() {
	upgradePathCmd.Flags().StringVar(&upgradePathRequestPath, "request", "-", "path to the JSON request, or - for stdin")
}

func runUpgradePath(cmd *cobra.Command, args []string) error {
	var input gear.UpgradePathInput
	if err := readRequest(upgradePathRequestPath, &input); err != nil {
		return err
	}

	service, err := buildService()
	if err != nil {
		return err
	}

	out, err := service.UpgradePath(cmd.Context(), &input)
	if err != nil {
		return err
	}

	return printResponse(out)
}
