package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"launchdash/internal"
	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/debugserver"
	"launchdash/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.DefaultLogger
	logger.SetLevel(internal.ParseLogLevel(appConfig.LogLevel))
	gin.SetMode(appConfig.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The dashboard never starts without a complete dataset
	ds, err := dataset.Load(ctx, appConfig)
	if err != nil {
		log.Fatalf("Failed to load launch records: %v", err)
	}

	server, err := ui.NewServer(ds, ui.Options{
		NotesFile: appConfig.Server.NotesFile,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(gCtx, ":"+appConfig.Server.Port)
	})
	if appConfig.Profiling.Enabled {
		g.Go(func() error {
			return debugserver.New(logger).Run(gCtx, ":"+appConfig.Profiling.Port)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
