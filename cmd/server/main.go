package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"eve_market/internal/app/di"
	"eve_market/internal/app/router"
	"eve_market/internal/config"
	"eve_market/internal/feature/marketsnapshot/adapters"
	snapshothandler "eve_market/internal/feature/marketsnapshot/transport/handler"
	"eve_market/internal/feature/marketsnapshot/usecase"
	infradb "eve_market/internal/platform/db"
	"eve_market/internal/platform/http/handler"
	"eve_market/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.Setup(os.Stdout, cfg.Log.Format, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	db, err := infradb.OpenDB(cfg.DB)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("failed to get sql.DB", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	// レートリミッター（Redisが使えなければプロセス内）
	limiter, rdb := di.NewLimiter(ctx, cfg)
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	trackedRepo := adapters.NewTrackedItemRepository(db)
	recordRepo := adapters.NewRecordRepository(db)

	// Usecase
	snapshotUC := di.NewSnapshotUsecase(cfg, limiter)
	trackingUC := usecase.NewTrackingUsecase(trackedRepo, snapshotUC)
	recordUC := usecase.NewRecordUsecase(trackedRepo, recordRepo, snapshotUC)

	// Handler
	checks := map[string]handler.CheckFunc{"db": sqlDB.PingContext}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	healthH := handler.NewHealthHandler(checks, 0)
	snapshotH := snapshothandler.NewSnapshotHandler(snapshotUC, cfg.Market.LocationID)
	itemsH := snapshothandler.NewItemsHandler(trackingUC, recordUC)

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router.NewRouter(log, healthH, snapshotH, itemsH),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	}()

	log.Info("server starting", "addr", cfg.HTTP.Addr, "region", cfg.Market.RegionID)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
