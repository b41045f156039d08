package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap/zapcore"

	"honorsinventory/internal/cli"
	"honorsinventory/internal/client"
	"honorsinventory/internal/config"
	"honorsinventory/internal/pkg/logger"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := zapcore.WarnLevel
	if os.Getenv("INVENTORYCTL_DEBUG") != "" {
		level = zapcore.DebugLevel
	}
	lg := logger.NewConsole(os.Stderr, level)
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	api := client.New(cfg.APIBaseURL, cfg.Timeout)
	app := cli.New(api, client.NewStore(api, lg), os.Stdout, os.Stderr)

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
