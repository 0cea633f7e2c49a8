package main

import (
	"github.com/aretw0/vending/internal/cli"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the items, accepted funds and change denominations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		plain, _ := cmd.Flags().GetBool("plain")
		return cli.PrintCatalog(cmd.OutOrStdout(), configPath, plain)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().Bool("plain", false, "Print raw markdown instead of rendering it")
}
