package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/angelmondragon/arbuz-storefront/api/routes"
	"github.com/angelmondragon/arbuz-storefront/internal/catalog"
	"github.com/angelmondragon/arbuz-storefront/internal/orderform"
	"github.com/angelmondragon/arbuz-storefront/internal/storefront"
	"github.com/angelmondragon/arbuz-storefront/pkg/config"
	"github.com/angelmondragon/arbuz-storefront/pkg/env"
	"github.com/angelmondragon/arbuz-storefront/pkg/logger"
	"github.com/angelmondragon/arbuz-storefront/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	products, err := loadProducts(cfg.Catalog)
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog seed", err)
		os.Exit(1)
	}
	cat, err := catalog.New(products)
	if err != nil {
		logg.Error(context.Background(), "invalid catalog", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	loc := cfg.OrderForm.Location()
	svc, err := storefront.NewSession(storefront.Params{
		Catalog:   cat,
		Logger:    logg,
		Metrics:   metrics.NewStorefrontMetrics(reg),
		Clock:     func() time.Time { return time.Now().In(loc) },
		Submitter: loggingSubmitter(logg),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create storefront session", err)
		os.Exit(1)
	}

	addr := ":" + env.FirstOf(cfg.App.Port, "PORT")
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"products": cat.Len(),
	})
	logg.Info(ctx, "starting storefront api")

	server := &http.Server{
		Addr:         addr,
		Handler:      routes.NewRouter(cfg, logg, svc, reg),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logg.Error(ctx, "storefront api stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-sigCtx.Done():
		logg.Info(ctx, "shutting down storefront api")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}

func loadProducts(cfg config.CatalogConfig) ([]catalog.Product, error) {
	if cfg.SeedFile == "" {
		return catalog.DefaultProducts(), nil
	}
	return catalog.LoadSeedFile(cfg.SeedFile)
}

// loggingSubmitter records confirmed drafts. Orders are not sent anywhere.
func loggingSubmitter(logg *logger.Logger) orderform.Submitter {
	return orderform.SubmitterFunc(func(ctx context.Context, d orderform.Draft) error {
		logg.Info(logg.WithFields(ctx, map[string]any{
			"day":                      d.Day.String(),
			"delivery_period":          d.DeliveryPeriod.String(),
			"subscription_term_months": d.SubscriptionTermMonths,
			"subscription_start":       d.SubscriptionStart.Format("2006-01-02"),
		}), "order.confirmed")
		return nil
	})
}
