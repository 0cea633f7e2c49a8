package main

import (
	"github.com/aretw0/vending/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the screen graph visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the screens and the inputs that move between them.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, _ := cmd.Flags().GetString("current")
		return cli.PrintGraph(cmd.OutOrStdout(), current)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("current", "", "Highlight a screen (main_menu, add_funds, purchase_item, return_change)")
}
