package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"backoffice/internal/app/server"
	"backoffice/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := server.New(config.Load())
	if err != nil {
		log.Fatalf("server setup failed: %v", err)
	}
	if err := app.Run(ctx); err != nil {
		app.Logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
