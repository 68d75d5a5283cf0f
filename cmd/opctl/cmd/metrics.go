package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func metricsCmd() *cobra.Command {
	metricsRoot := &cobra.Command{
		Use:   "metrics",
		Short: "Query merchant analytics",
	}

	metricsRoot.AddCommand(
		aovCmd(),
		rfmCmd(),
		cohortsCmd(),
	)

	return metricsRoot
}

func aovCmd() *cobra.Command {
	var window string

	cmd := &cobra.Command{
		Use:   "aov",
		Short: "Show rolling average order value",
		Example: `  opctl metrics aov
  opctl metrics aov --window 7d`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			report, err := c.GetAOV(context.Background(), window)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(report)
			}
			return printAOV(report)
		},
	}

	cmd.Flags().StringVar(&window, "window", "", "rolling window (7d, 30d, 90d)")

	return cmd
}

func rfmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rfm",
		Short: "Show per-customer RFM scores",
		Example: `  opctl metrics rfm
  opctl metrics rfm --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			report, err := c.GetRFM(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(report)
			}
			return printRFMTable(report)
		},
	}
}

func cohortsCmd() *cobra.Command {
	var (
		cohortFrom string
		cohortTo   string
	)

	cmd := &cobra.Command{
		Use:   "cohorts",
		Short: "Show monthly retention cohorts",
		Example: `  opctl metrics cohorts
  opctl metrics cohorts --from 2026-01 --to 2026-06`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			report, err := c.GetCohorts(context.Background(), cohortFrom, cohortTo)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(report)
			}
			return printCohortTable(report)
		},
	}

	cmd.Flags().StringVar(&cohortFrom, "from", "", "first cohort month (YYYY-MM)")
	cmd.Flags().StringVar(&cohortTo, "to", "", "last cohort month (YYYY-MM)")

	return cmd
}
