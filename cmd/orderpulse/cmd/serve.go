package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/orderpulse/orderpulse/internal/analytics"
	"github.com/orderpulse/orderpulse/internal/api/handlers"
	apimw "github.com/orderpulse/orderpulse/internal/api/middleware"
	"github.com/orderpulse/orderpulse/internal/bus"
	"github.com/orderpulse/orderpulse/internal/config"
	"github.com/orderpulse/orderpulse/internal/engine"
	"github.com/orderpulse/orderpulse/internal/fanout"
	"github.com/orderpulse/orderpulse/internal/store"
	"github.com/orderpulse/orderpulse/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server, evaluation engine, and alert fan-out",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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
		log.Warn("redis.url not set, using in-memory alert bus")
		alertBus = bus.NewMemoryBus()
	}
	defer alertBus.Close() //nolint:errcheck // shutdown path

	svc := analytics.NewService(st, analytics.WithLogger(log))
	eng := engine.NewEngine(st, svc, alertBus, engine.WithLogger(log))

	sched, err := engine.NewScheduler(eng, cfg.Engine.Interval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	hub := fanout.NewHub(
		fanout.WithLogger(log),
		fanout.WithWriteTimeout(cfg.Fanout.WriteTimeout),
		fanout.WithPingInterval(cfg.Fanout.PingInterval),
		fanout.WithSendQueueSize(cfg.Fanout.SendQueueSize),
	)
	go func() {
		if err := hub.Run(ctx, alertBus); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("alert fan-out stopped", "error", err)
		}
	}()

	e := newRouter(cfg, log, st, alertBus, svc, hub)

	sched.Start()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	// Let a running evaluation cycle finish before closing the store.
	<-sched.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newRouter(
	cfg *config.Config,
	log *slog.Logger,
	st store.Store,
	alertBus bus.Bus,
	svc *analytics.Service,
	hub *fanout.Hub,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(apimw.RequestLog(log))
	e.Use(apimw.Recovery(log))
	e.Use(apimw.Metrics())

	health := handlers.NewHealthHandler(st, alertBus)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	alerts := handlers.NewAlertsHandler(hub, log)
	e.GET("/ws/alerts", alerts.Stream, apimw.Auth(cfg.Auth.JWTSecret))

	limiter := apimw.NewRateLimiter(cfg.Ingest.PerSecond, cfg.Ingest.Burst)
	grp := e.Group("", apimw.Auth(cfg.Auth.JWTSecret), ingestThrottle(limiter))

	api := humaecho.NewWithGroup(e, grp, huma.DefaultConfig("OrderPulse API", Version))

	handlers.RegisterRuleRoutes(api, handlers.NewRulesHandler(st))
	handlers.RegisterOrderRoutes(api, handlers.NewOrdersHandler(st, cfg.Ingest.MaxBatch))
	handlers.RegisterAnalyticsRoutes(api, handlers.NewAnalyticsHandler(svc))

	return e
}

// ingestThrottle applies the per-merchant rate limiter to bulk order
// ingestion only. Reads and rule management stay unthrottled.
func ingestThrottle(rl *apimw.RateLimiter) echo.MiddlewareFunc {
	limit := rl.Middleware()
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		limited := limit(next)
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodPost && c.Path() == "/api/v1/orders" {
				return limited(c)
			}
			return next(c)
		}
	}
}
