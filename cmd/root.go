package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/topup/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "topup",
	Short: "Top-up calculator for attendance portal timesheets",
	Long: `topup reads a week of attendance copied from the portal, works out the
hours logged per day and prints the top-up window each short day needs to
reach the daily quota.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the config file")
	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(pasteCmd)
	rootCmd.AddCommand(sampleCmd)
}

// loadConfig reads the config file, exiting on a broken one.
func loadConfig() config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return cfg
}
