package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"honorsinventory/internal/config"
	"honorsinventory/internal/database"
	"honorsinventory/internal/pkg/logger"
)

func main() {
	reset := flag.Bool("reset", false, "delete all equipment and locations before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	lg := logger.Must(cfg.AppEnv, cfg.LogLevel)
	defer lg.Sync()

	ctx := context.Background()

	db, err := database.Connect(cfg.DatabaseURL, lg)
	if err != nil {
		lg.Fatal("DB connection failed", zap.Error(err))
	}

	lg.Info("running migrations")
	if err := database.Migrate(db); err != nil {
		lg.Fatal("migration failed", zap.Error(err))
	}

	if *reset {
		lg.Info("cleaning old data")
		if err := database.Reset(ctx, db); err != nil {
			lg.Fatal("reset failed", zap.Error(err))
		}
	}

	seeded, err := database.Seed(ctx, db)
	if err != nil {
		lg.Fatal("seeding failed", zap.Error(err))
	}
	if !seeded {
		lg.Info("locations already present, nothing seeded (use -reset to start over)")
		return
	}
	lg.Info("seed completed")
}
