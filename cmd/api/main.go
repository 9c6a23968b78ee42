package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"

	"github.com/kilincfaruk/FuatAtolye/api/routes"
	"github.com/kilincfaruk/FuatAtolye/internal/backup"
	"github.com/kilincfaruk/FuatAtolye/internal/customers"
	"github.com/kilincfaruk/FuatAtolye/internal/expenses"
	"github.com/kilincfaruk/FuatAtolye/internal/goldprice"
	"github.com/kilincfaruk/FuatAtolye/internal/jobs"
	"github.com/kilincfaruk/FuatAtolye/internal/linkage"
	"github.com/kilincfaruk/FuatAtolye/internal/payments"
	"github.com/kilincfaruk/FuatAtolye/internal/snapshot"
	"github.com/kilincfaruk/FuatAtolye/internal/worktypes"
	"github.com/kilincfaruk/FuatAtolye/pkg/config"
	"github.com/kilincfaruk/FuatAtolye/pkg/db"
	"github.com/kilincfaruk/FuatAtolye/pkg/logger"
	"github.com/kilincfaruk/FuatAtolye/pkg/metrics"
	"github.com/kilincfaruk/FuatAtolye/pkg/migrate"
	"github.com/kilincfaruk/FuatAtolye/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := multierr.Append(dbClient.Close(), redisClient.Close()); err != nil {
			logg.Error(context.Background(), "error closing clients", err)
		}
	}()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	customerRepo := customers.NewRepository(dbClient.DB())
	jobRepo := jobs.NewRepository(dbClient.DB())
	paymentRepo := payments.NewRepository(dbClient.DB())
	expenseRepo := expenses.NewRepository(dbClient.DB())
	workTypeRepo := worktypes.NewRepository(dbClient.DB())

	customerService, err := customers.NewService(customerRepo)
	if err != nil {
		logg.Error(ctx, "failed to create customer service", err)
		os.Exit(1)
	}
	workTypeService, err := worktypes.NewService(workTypeRepo)
	if err != nil {
		logg.Error(ctx, "failed to create work type service", err)
		os.Exit(1)
	}
	expenseService, err := expenses.NewService(expenseRepo)
	if err != nil {
		logg.Error(ctx, "failed to create expense service", err)
		os.Exit(1)
	}
	paymentService, err := payments.NewService(paymentRepo)
	if err != nil {
		logg.Error(ctx, "failed to create payment service", err)
		os.Exit(1)
	}
	resolver, err := linkage.NewResolver(paymentRepo)
	if err != nil {
		logg.Error(ctx, "failed to create linkage resolver", err)
		os.Exit(1)
	}
	jobService, err := jobs.NewService(jobs.ServiceParams{
		Repo:      jobRepo,
		WorkTypes: workTypeService,
		Linkage:   resolver,
	})
	if err != nil {
		logg.Error(ctx, "failed to create job service", err)
		os.Exit(1)
	}
	backupService, err := backup.NewService(backup.ServiceParams{
		Customers: customerService,
		Jobs:      jobRepo,
		Payments:  paymentRepo,
	})
	if err != nil {
		logg.Error(ctx, "failed to create backup service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	refreshMetrics := metrics.NewRefreshMetrics(registry)

	loader, err := snapshot.NewLoader(snapshot.LoaderParams{
		Customers: customerRepo,
		Jobs:      jobRepo,
		Payments:  paymentRepo,
		Expenses:  expenseRepo,
		WorkTypes: workTypeRepo,
	})
	if err != nil {
		logg.Error(ctx, "failed to create snapshot loader", err)
		os.Exit(1)
	}
	store, err := snapshot.NewStore(snapshot.StoreParams{
		Loader:  loader,
		Config:  cfg.Refresh,
		Logger:  logg,
		Metrics: refreshMetrics,
	})
	if err != nil {
		logg.Error(ctx, "failed to create snapshot store", err)
		os.Exit(1)
	}

	goldPriceService, err := goldprice.NewService(goldprice.ServiceParams{
		Fetcher: goldprice.NewFetcher(cfg.GoldPrice),
		Cache:   redisClient,
		Config:  cfg.GoldPrice,
		Logger:  logg,
		Metrics: refreshMetrics,
	})
	if err != nil {
		logg.Error(ctx, "failed to create gold price service", err)
		os.Exit(1)
	}

	go func() {
		if err := store.Run(ctx); err != nil {
			logg.Error(ctx, "snapshot store stopped", err)
			stop()
		}
	}()
	go func() {
		if err := goldPriceService.Run(ctx); err != nil {
			logg.Error(ctx, "gold price poller stopped", err)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	handler := routes.NewRouter(
		logg,
		dbClient,
		redisClient,
		store,
		customerService,
		jobService,
		paymentService,
		expenseService,
		workTypeService,
		backupService,
		goldPriceService,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	startCtx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(startCtx, "starting api server")

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(startCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(startCtx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(startCtx, "graceful shutdown failed", err)
		}
	}
}
