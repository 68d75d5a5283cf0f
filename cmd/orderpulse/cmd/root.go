// Package cmd implements the CLI commands for the orderpulse server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "orderpulse",
	Short: "Order analytics and alerting for multi-merchant commerce platforms",
	Long: "orderpulse ingests order streams from e-commerce merchants, computes\n" +
		"KPIs (average order value, RFM scores, cohort retention), evaluates\n" +
		"threshold alert rules on a fixed cycle, and streams triggered alerts\n" +
		"to merchant dashboards over websockets.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
