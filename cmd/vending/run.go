package main

import (
	"github.com/aretw0/vending/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive vending session",
	Long:  `Starts the vending machine on the current terminal. Enter x at any screen to leave.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		metricsFile, _ := cmd.Flags().GetString("metrics-file")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		return cli.RunSession(cmd.Context(), cli.RunOptions{
			ConfigPath:  configPath,
			Debug:       debug,
			MetricsFile: metricsFile,
			NoBanner:    noBanner,
			Stdin:       cmd.InOrStdin(),
			Stdout:      cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	for _, c := range []*cobra.Command{runCmd, rootCmd} {
		c.Flags().Bool("debug", false, "Log session events to stderr")
		c.Flags().String("metrics-file", "", "Write Prometheus metrics to this file when the session ends")
		c.Flags().Bool("no-banner", false, "Do not print the start-up banner")
	}

	// 'run' is the default when no command is provided.
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = runCmd.RunE
}
