package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"eve_market/internal/app/di"
	"eve_market/internal/config"
	"eve_market/internal/feature/marketsnapshot/adapters"
	"eve_market/internal/feature/marketsnapshot/usecase"
	infradb "eve_market/internal/platform/db"
	"eve_market/internal/platform/logger"
)

// trackFlag は-trackを複数回指定できるようにします。
type trackFlag []string

func (f *trackFlag) String() string { return strings.Join(*f, ",") }

func (f *trackFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	var track trackFlag
	flag.Var(&track, "track", "item name to add to the tracked list before recording (repeatable)")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall timeout for the recording run")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.Setup(os.Stderr, cfg.Log.Format, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	db, err := infradb.OpenDB(cfg.DB)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	limiter, rdb := di.NewLimiter(ctx, cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	trackedRepo := adapters.NewTrackedItemRepository(db)
	snapshotUC := di.NewSnapshotUsecase(cfg, limiter)
	trackingUC := usecase.NewTrackingUsecase(trackedRepo, snapshotUC)
	recordUC := usecase.NewRecordUsecase(trackedRepo, adapters.NewRecordRepository(db), snapshotUC)

	for _, name := range track {
		item, err := trackingUC.Track(ctx, name)
		if err != nil {
			log.Error("failed to track item", "name", name, "error", err)
			os.Exit(1)
		}
		log.Info("tracking item", "name", item.Name, "type_id", item.TypeID)
	}

	n, err := recordUC.RecordAll(ctx)
	if err != nil {
		log.Error("recording failed", "error", err)
		os.Exit(1)
	}
	log.Info("record ok", "saved", n)
}
