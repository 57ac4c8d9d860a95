package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"finops/internal/logger"
)

func main() {
	app := NewApplication()

	if err := app.Initialize(); err != nil {
		logger.FatalCtx(nil, "application initialization failed: %v", err)
	}

	if err := app.Start(); err != nil {
		logger.FatalCtx(app.ctx, "application startup failed: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.InfoCtx(app.ctx, "received exit signal: %v", sig)

	if err := app.Shutdown(30 * time.Second); err != nil {
		logger.ErrorCtx(app.ctx, "application shutdown failed: %v", err)
		os.Exit(1)
	}

	logger.InfoCtx(app.ctx, "application exited")
}
