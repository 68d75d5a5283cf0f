package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/orderpulse/orderpulse/internal/analytics"
	"github.com/orderpulse/orderpulse/internal/bus"
	"github.com/orderpulse/orderpulse/internal/config"
	"github.com/orderpulse/orderpulse/internal/engine"
	"github.com/orderpulse/orderpulse/internal/store"
	"github.com/orderpulse/orderpulse/pkg/logger"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run a single rule evaluation cycle",
	Long: "Evaluate all active alert rules once against current metrics and\n" +
		"publish any triggered alerts to the configured bus. Useful for\n" +
		"debugging rules without running the full server.",
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
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

	var alertBus bus.Bus
	if cfg.Redis.URL != "" {
		rb, err := bus.NewRedisBus(cfg.Redis.URL, log)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		alertBus = rb
	} else {
		alertBus = bus.NewMemoryBus()
	}
	defer alertBus.Close() //nolint:errcheck // shutdown path

	svc := analytics.NewService(st, analytics.WithLogger(log))
	eng := engine.NewEngine(st, svc, alertBus, engine.WithLogger(log))

	if err := eng.RunCycle(ctx); err != nil {
		return fmt.Errorf("running evaluation cycle: %w", err)
	}

	log.Info("evaluation cycle complete")
	return nil
}
