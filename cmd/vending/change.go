package main

import (
	"fmt"
	"strconv"

	"github.com/aretw0/vending/internal/cli"
	"github.com/spf13/cobra"
)

var changeCmd = &cobra.Command{
	Use:   "change <amount>",
	Short: "Print the coins returned for an amount in minor units (cents)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[0], err)
		}
		configPath, _ := cmd.Flags().GetString("config")
		return cli.PrintChange(cmd.OutOrStdout(), configPath, amount)
	},
}

func init() {
	rootCmd.AddCommand(changeCmd)
}
