package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"llm-newsletter-bot/internal/logger"
	"llm-newsletter-bot/internal/trace"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := initializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer trace.Shutdown(context.Background())

	cfg, err := loadConfig(ctx)
	if err != nil {
		os.Exit(1)
	}

	compressOldArchives(ctx, cfg)

	p, err := buildPipeline(ctx, cfg)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to build pipeline", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Newsletter run started")
	if err := p.Run(ctx); err != nil {
		logger.ErrorWithErr(ctx, "Newsletter run failed", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Newsletter run completed")
}
