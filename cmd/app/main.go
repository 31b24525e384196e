package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"coffeeshop/internal/application/service"
	"coffeeshop/internal/cache"
	"coffeeshop/internal/config"
	"coffeeshop/internal/httpapi"
	postgres "coffeeshop/internal/infrastructure/database"
	"coffeeshop/internal/observability"
	"coffeeshop/internal/pkg/retry"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn := cfg.DSN()
	var pool *pgxpool.Pool
	if err := retry.Do(ctx, cfg.Retry, func() error {
		var err error
		pool, err = postgres.Connect(ctx, dsn)
		return err
	}); err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	defer pool.Close()

	if err := postgres.Migrate(dsn, logger); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	store := postgres.NewStore(pool)

	filterCache, err := cache.New(cfg.CacheCap)
	if err != nil {
		logger.Fatal("cache init failed", zap.Error(err))
	}

	metrics := observability.NewInmem(256)

	orders := service.NewOrderService(filterCache, store, logger, metrics)
	coffees := service.NewCoffeeService(store, orders, logger, cfg.CascadeWorkers)
	users := service.NewUserService(store, logger)

	server := httpapi.New(orders, coffees, users, logger, metrics)

	logger.Info("server starting", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
