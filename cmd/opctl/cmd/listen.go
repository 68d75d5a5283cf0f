package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func listenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Tail the live alert stream",
		Long: "Connect to the websocket alert stream and print each triggered\n" +
			"alert as it arrives. Runs until interrupted.",
		Example: `  opctl listen
  opctl listen --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(
				context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c := newClient()
			err := c.Listen(ctx, func(payload []byte) {
				if jsonOutput() {
					fmt.Println(string(payload))
					return
				}
				printAlert(payload)
			})
			if err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}

func printAlert(payload []byte) {
	var alert struct {
		RuleID      string  `json:"rule_id"`
		Metric      string  `json:"metric"`
		Value       float64 `json:"value"`
		Threshold   float64 `json:"threshold"`
		Operator    string  `json:"operator"`
		TriggeredAt string  `json:"triggered_at"`
	}
	if err := json.Unmarshal(payload, &alert); err != nil {
		fmt.Fprintln(os.Stderr, "unparseable alert:", string(payload))
		return
	}
	fmt.Printf("%s  %s %s %g (value %g)  rule %s\n",
		alert.TriggeredAt,
		alert.Metric,
		alert.Operator,
		alert.Threshold,
		alert.Value,
		alert.RuleID,
	)
}
