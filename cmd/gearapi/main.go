// Package main is the entry point for the gear API CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "gearapi",
	Short: "OSRS gear optimization toolkit",
	Long:  `gearapi solves best-in-slot loadouts, ranks upgrades by GP efficiency and calculates combat output against a versioned item catalogue.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "gearapi.yaml", "path to the config file")

	rootCmd.AddCommand(bestLoadoutCmd)
	rootCmd.AddCommand(upgradePathCmd)
	rootCmd.AddCommand(dpsCmd)
	rootCmd.AddCommand(progressionCmd)
	rootCmd.AddCommand(refreshCmd)
}
