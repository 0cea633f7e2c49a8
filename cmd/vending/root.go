package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vending",
	Short: "Vending is an interactive vending machine simulator",
	Long: `Vending runs a text-driven vending machine session: insert funds, buy items
and collect change in coins. Machine tables can be customised with a YAML or JSON file.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "", "Machine configuration file (defaults to ./vending.yaml when present)")
}
