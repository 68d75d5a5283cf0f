package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/orderpulse/orderpulse/internal/api/client"
)

func rulesCmd() *cobra.Command {
	rulesRoot := &cobra.Command{
		Use:   "rules",
		Short: "Manage alert rules",
		Long: "Manage threshold alert rules that watch a metric (orders_per_min,\n" +
			"aov, rfm_score_avg) over a time window and fire when the threshold is\n" +
			"crossed.",
	}

	rulesRoot.AddCommand(
		ruleListCmd(),
		ruleGetCmd(),
		ruleCreateCmd(),
		ruleEnableCmd(),
		ruleDisableCmd(),
		ruleDeleteCmd(),
	)

	return rulesRoot
}

func ruleListCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alert rules",
		Example: `  opctl rules list
  opctl rules list --active --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			list, err := c.ListRules(context.Background(), activeOnly, 0, 0)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(list)
			}
			if len(list.Rules) == 0 {
				fmt.Println("No rules found.")
				return nil
			}
			return printRuleTable(list.Rules)
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "only show active rules")

	return cmd
}

func ruleGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show rule details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			r, err := c.GetRule(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(r)
			}
			return printRuleDetail(r)
		},
	}
}

func ruleCreateCmd() *cobra.Command {
	var (
		ruleMetric    string
		ruleOperator  string
		ruleThreshold string
		ruleWindow    int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new alert rule",
		Long: "Create an alert rule for a metric, comparison operator, decimal\n" +
			"threshold, and evaluation window in seconds. The rule is active\n" +
			"immediately and evaluated on the next engine cycle.",
		Example: `  # Alert when order velocity exceeds 100/min over 5 minutes
  opctl rules create --metric orders_per_min --operator ">" --threshold 100 --window 300

  # Alert when rolling AOV drops below $25 over a day
  opctl rules create --metric aov --operator "<" --threshold 25.00 --window 86400`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			r, err := c.CreateRule(context.Background(), &apiclient.RuleSpec{
				Metric:        ruleMetric,
				Operator:      ruleOperator,
				Threshold:     ruleThreshold,
				WindowSeconds: ruleWindow,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(r)
			}
			fmt.Println("Created rule", r.ID)
			return printRuleDetail(r)
		},
	}

	cmd.Flags().StringVar(&ruleMetric, "metric", "", "metric name (orders_per_min, aov, rfm_score_avg)")
	cmd.Flags().StringVar(&ruleOperator, "operator", ">", "comparison operator (>, <, >=, <=)")
	cmd.Flags().StringVar(&ruleThreshold, "threshold", "", "decimal threshold value")
	cmd.Flags().IntVar(&ruleWindow, "window", 300, "evaluation window in seconds")
	cobra.CheckErr(cmd.MarkFlagRequired("metric"))
	cobra.CheckErr(cmd.MarkFlagRequired("threshold"))

	return cmd
}

func ruleEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <id>",
		Short: "Enable a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.SetRuleActive(context.Background(), args[0], true); err != nil {
				return err
			}
			fmt.Println("Enabled rule", args[0])
			return nil
		},
	}
}

func ruleDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <id>",
		Short: "Disable a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.SetRuleActive(context.Background(), args[0], false); err != nil {
				return err
			}
			fmt.Println("Disabled rule", args[0])
			return nil
		},
	}
}

func ruleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteRule(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted rule", args[0])
			return nil
		},
	}
}
