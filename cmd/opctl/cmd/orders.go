package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/orderpulse/orderpulse/internal/api/client"
)

func ordersCmd() *cobra.Command {
	ordersRoot := &cobra.Command{
		Use:   "orders",
		Short: "Ingest and query orders",
	}

	ordersRoot.AddCommand(
		orderListCmd(),
		orderGetCmd(),
		orderIngestCmd(),
	)

	return ordersRoot
}

func orderListCmd() *cobra.Command {
	var (
		orderStatus string
		orderSince  string
		orderUntil  string
		orderLimit  int
		orderOffset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Example: `  opctl orders list --status paid --limit 20
  opctl orders list --since 2026-08-01T00:00:00Z --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			list, err := c.ListOrders(context.Background(), &apiclient.OrderFilter{
				Status: orderStatus,
				Since:  orderSince,
				Until:  orderUntil,
				Limit:  orderLimit,
				Offset: orderOffset,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(list)
			}
			if len(list.Orders) == 0 {
				fmt.Println("No orders found.")
				return nil
			}
			if err := printOrderTable(list.Orders); err != nil {
				return err
			}
			fmt.Printf("\n%d of %d orders\n", len(list.Orders), list.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&orderStatus, "status", "", "filter by status")
	cmd.Flags().StringVar(&orderSince, "since", "", "orders created at or after (RFC 3339)")
	cmd.Flags().StringVar(&orderUntil, "until", "", "orders created before (RFC 3339)")
	cmd.Flags().IntVar(&orderLimit, "limit", 50, "page size")
	cmd.Flags().IntVar(&orderOffset, "offset", 0, "page offset")

	return cmd
}

func orderGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show order details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			o, err := c.GetOrder(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(o)
			}
			return printOrderDetail(o)
		},
	}
}

func orderIngestCmd() *cobra.Command {
	var ingestFile string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Bulk ingest orders from a JSON file",
		Long: "Read a JSON array of orders from a file (or stdin with -) and\n" +
			"submit it as one atomic batch. Each order carries a status,\n" +
			"currency, decimal total_amount, and the customer's email.",
		Example: `  opctl orders ingest --file orders.json
  cat orders.json | opctl orders ingest --file -`,
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := readInput(ingestFile)
			if err != nil {
				return err
			}

			var orders []apiclient.OrderSpec
			if err := json.Unmarshal(data, &orders); err != nil {
				return fmt.Errorf("parsing orders file: %w", err)
			}

			c := newClient()
			created, err := c.BulkCreateOrders(context.Background(), orders)
			if err != nil {
				return err
			}
			fmt.Printf("Ingested %d orders\n", created)
			return nil
		},
	}

	cmd.Flags().StringVar(&ingestFile, "file", "", "path to JSON orders file, or - for stdin")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))

	return cmd
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
