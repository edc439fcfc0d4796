package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/dahldoescards/bowman-tracker/internal/app/di"
	"github.com/dahldoescards/bowman-tracker/internal/app/router"
	assetshandler "github.com/dahldoescards/bowman-tracker/internal/feature/assets/transport/handler"
	chartusecase "github.com/dahldoescards/bowman-tracker/internal/feature/chart/usecase"
	prefsadapters "github.com/dahldoescards/bowman-tracker/internal/feature/prefs/adapters"
	prefshandler "github.com/dahldoescards/bowman-tracker/internal/feature/prefs/transport/handler"
	prefsusecase "github.com/dahldoescards/bowman-tracker/internal/feature/prefs/usecase"
	salesusecase "github.com/dahldoescards/bowman-tracker/internal/feature/sales/usecase"
	"github.com/dahldoescards/bowman-tracker/internal/platform/config"
	infradb "github.com/dahldoescards/bowman-tracker/internal/platform/db"
	infraredis "github.com/dahldoescards/bowman-tracker/internal/platform/redis"
	"github.com/dahldoescards/bowman-tracker/internal/platform/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// db (theme preferences)
	db := infradb.OpenDB(cfg.Database.URL, cfg.Database.SQLitePath, cfg.Database.RunMigrations)

	// Redis (asset cache)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password); err != nil {
		log.Println("[WARN] Redis unavailable. Running without asset cache.")
		rdb = nil
	} else {
		rdb = tmp
		if rdb != nil {
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Upstream client stack
	fetcher := di.NewFetcher(cfg.Tracker)
	trackerRepo := di.NewTrackerRepository(cfg.Tracker, fetcher)

	// Rendering pipeline. The server is headless, so no chart capability
	// is available and the manager settles into the tabular fallback.
	manager := chartusecase.NewManager(nil, chartusecase.ChartOptions{}, chartusecase.DefaultFallbackDays)
	manager.Init()
	refreshUC := salesusecase.NewRefreshUsecase(trackerRepo, manager)

	sched := scheduler.New(cfg.Tracker.RefreshInterval, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		if err := refreshUC.Refresh(ctx, false); err != nil {
			slog.Warn("scheduled refresh incomplete", "error", err)
		}
	})
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Preferences
	prefRepo := prefsadapters.NewPreferenceRepository(db)
	prefUC := prefsusecase.NewPreferenceUsecase(prefRepo)
	prefH := prefshandler.NewPreferenceHandler(prefUC)

	// Asset cache proxy
	proxy := di.NewAssetProxy(rdb, cfg.Assets)
	if err := proxy.Activate(context.Background()); err != nil {
		slog.Warn("asset cache version activation failed", "error", err)
	}
	proxyH := assetshandler.NewProxyHandler(proxy, cfg.Tracker.APIBaseURL, nil)

	r := router.NewRouter(proxyH, prefH)

	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatal(err)
	}
}
