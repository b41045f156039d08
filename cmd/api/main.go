package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"honorsinventory/internal/cache"
	"honorsinventory/internal/config"
	"honorsinventory/internal/database"
	"honorsinventory/internal/domain/events"
	"honorsinventory/internal/domain/inventory"
	"honorsinventory/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DatabaseURL, lg)
	if err != nil {
		lg.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		lg.Fatal("migration failed", zap.Error(err))
	}
	if cfg.SeedOnStart {
		seeded, err := database.Seed(ctx, db)
		if err != nil {
			lg.Fatal("seeding failed", zap.Error(err))
		}
		lg.Info("seed check done", zap.Bool("inserted", seeded))
	}

	var locationCache cache.Cache = cache.Noop{}
	if cfg.RedisAddress != "" {
		rc, err := cache.Dial(ctx, cfg.RedisAddress, cfg.RedisPassword)
		if err != nil {
			lg.Warn("redis unavailable, location cache disabled", zap.Error(err))
		} else {
			defer rc.Close()
			locationCache = rc
			lg.Info("location cache enabled", zap.String("addr", cfg.RedisAddress), zap.Duration("ttl", cfg.LocationCacheTTL))
		}
	}

	hub := events.NewHub(lg)
	store := inventory.NewGormStore(db)
	locations := inventory.NewLocationService(store.Locations(), locationCache, cfg.LocationCacheTTL, lg)
	locations.Invalidate(ctx)

	r := newRouter(routerDeps{
		cfg:       cfg,
		log:       lg,
		db:        db,
		inventory: inventory.NewHandler(inventory.NewService(store, hub), locations),
		events:    events.NewHandler(hub, cfg.CORSAllowedOrigins),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		lg.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("graceful shutdown failed", zap.Error(err))
	}
}
