package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/orderpulse/orderpulse/internal/api/middleware"
	"github.com/orderpulse/orderpulse/internal/config"
	"github.com/orderpulse/orderpulse/internal/store"
	"github.com/orderpulse/orderpulse/pkg/logger"
	domain "github.com/orderpulse/orderpulse/pkg/types"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed a demo merchant with customers and orders",
	Long: "Create a demo merchant with six months of synthetic customers and\n" +
		"orders, then print an API token for it. Intended for local\n" +
		"development against an empty database.",
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	merchant := &domain.Merchant{
		ID:        uuid.NewString(),
		Name:      "Demo Storefront",
		CreatedAt: time.Now().UTC(),
	}
	if err := st.CreateMerchant(ctx, merchant); err != nil {
		return fmt.Errorf("creating merchant: %w", err)
	}
	log.Info("created merchant", "id", merchant.ID, "name", merchant.Name)

	rng := rand.New(rand.NewSource(42)) //nolint:gosec // demo data, not crypto

	now := time.Now().UTC()
	statuses := []domain.OrderStatus{
		domain.OrderPaid, domain.OrderPaid, domain.OrderPaid,
		domain.OrderShipped, domain.OrderDelivered,
		domain.OrderCreated, domain.OrderCancelled,
	}

	var orders []domain.Order
	customerCount := 25
	for i := 0; i < customerCount; i++ {
		firstSeen := now.AddDate(0, -rng.Intn(6), -rng.Intn(28))
		customer, err := st.UpsertCustomerByEmail(ctx, &domain.Customer{
			ID:         uuid.NewString(),
			MerchantID: merchant.ID,
			Email:      fmt.Sprintf("customer%02d@example.com", i),
			FirstName:  fmt.Sprintf("Customer%02d", i),
			CreatedAt:  firstSeen,
		})
		if err != nil {
			return fmt.Errorf("creating customer: %w", err)
		}

		// Each customer places 1-8 orders between first purchase and now.
		span := now.Sub(firstSeen)
		for j := 0; j < 1+rng.Intn(8); j++ {
			placed := firstSeen
			if span > 0 {
				placed = firstSeen.Add(time.Duration(rng.Int63n(int64(span))))
			}
			cents := 500 + rng.Intn(25000)
			orders = append(orders, domain.Order{
				ID:          uuid.NewString(),
				MerchantID:  merchant.ID,
				CustomerID:  customer.ID,
				Status:      statuses[rng.Intn(len(statuses))],
				Currency:    "USD",
				TotalAmount: decimal.New(int64(cents), -2),
				CreatedAt:   placed,
			})
		}
	}

	created, err := st.CreateOrders(ctx, orders)
	if err != nil {
		return fmt.Errorf("creating orders: %w", err)
	}
	log.Info("seeded demo data", "customers", customerCount, "orders", created)

	token, err := middleware.SignToken(cfg.Auth.JWTSecret, merchant.ID, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("signing token: %w", err)
	}

	fmt.Println("merchant_id:", merchant.ID)
	fmt.Println("token:", token)
	return nil
}
