// Package main implements a synthetic order stream generator for local
// development. It posts randomized bulk order batches to a running
// orderpulse server so KPIs move and alert rules have something to fire on.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiclient "github.com/orderpulse/orderpulse/internal/api/client"
)

var statuses = []struct {
	name   string
	weight int
}{
	{"paid", 50},
	{"shipped", 20},
	{"delivered", 15},
	{"created", 10},
	{"cancelled", 4},
	{"refunded", 1},
}

func main() {
	server := flag.String("server", "http://localhost:8080", "orderpulse API URL")
	token := flag.String("token", "", "merchant API token")
	interval := flag.Duration("interval", 5*time.Second, "delay between batches")
	batch := flag.Int("batch", 10, "orders per batch")
	customers := flag.Int("customers", 40, "size of the synthetic customer pool")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if *token == "" {
		logger.Error("a merchant token is required, see 'orderpulse token'")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rng := rand.New(rand.NewSource(*seed)) //nolint:gosec // synthetic data, not crypto
	client := apiclient.New(*server, apiclient.WithToken(*token))

	logger.Info("starting order generator",
		"server", *server, "interval", *interval, "batch", *batch)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		orders := genBatch(rng, *customers, *batch)
		created, err := client.BulkCreateOrders(ctx, orders)
		if err != nil {
			logger.Error("batch rejected", "error", err)
		} else {
			logger.Info("batch ingested", "created", created)
		}

		select {
		case <-ctx.Done():
			logger.Info("stopping")
			return
		case <-ticker.C:
		}
	}
}

// genBatch builds a batch of random orders drawn from a fixed customer
// pool, so repeat purchases accumulate and RFM scores spread out.
func genBatch(rng *rand.Rand, customerPool, size int) []apiclient.OrderSpec {
	orders := make([]apiclient.OrderSpec, 0, size)
	for i := 0; i < size; i++ {
		n := rng.Intn(customerPool)
		cents := 500 + rng.Intn(25000)
		orders = append(orders, apiclient.OrderSpec{
			Status:      pickStatus(rng),
			Currency:    "USD",
			TotalAmount: fmt.Sprintf("%d.%02d", cents/100, cents%100),
			Customer: apiclient.Customer{
				Email:     fmt.Sprintf("shopper%03d@example.com", n),
				FirstName: fmt.Sprintf("Shopper%03d", n),
			},
		})
	}
	return orders
}

func pickStatus(rng *rand.Rand) string {
	total := 0
	for _, s := range statuses {
		total += s.weight
	}
	pick := rng.Intn(total)
	for _, s := range statuses {
		if pick < s.weight {
			return s.name
		}
		pick -= s.weight
	}
	return statuses[0].name
}
