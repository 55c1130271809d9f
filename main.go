package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/locvowork/decant_storefront/internal/bootstrap"
	"github.com/locvowork/decant_storefront/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		logger.ErrorLog(ctx, "Failed to initialize app: %v", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.ErrorLog(ctx, "Server stopped: %v", err)
		os.Exit(1)
	}
	logger.InfoLog(context.Background(), "Server stopped")
}
