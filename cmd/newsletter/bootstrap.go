package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"llm-newsletter-bot/internal/archive"
	"llm-newsletter-bot/internal/feeds"
	"llm-newsletter-bot/internal/interfaces"
	"llm-newsletter-bot/internal/llm/gemini"
	"llm-newsletter-bot/internal/llm/llmobs"
	"llm-newsletter-bot/internal/llm/noop"
	"llm-newsletter-bot/internal/llm/openai"
	"llm-newsletter-bot/internal/logger"
	"llm-newsletter-bot/internal/mailer"
	"llm-newsletter-bot/internal/pipeline"
	"llm-newsletter-bot/internal/portfolio"
	"llm-newsletter-bot/internal/prompt"
	"llm-newsletter-bot/internal/render"
	"llm-newsletter-bot/internal/store"
	"llm-newsletter-bot/internal/trace"
)

// initializeSystem loads .env and sets up the logger and tracer
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// compressOldArchives gzips old newsletter archives if retention is configured
func compressOldArchives(ctx context.Context, cfg *store.Config) {
	if v := os.Getenv("NEWSLETTER_ARCHIVE_RETENTION_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			logger.Warn(ctx, "Invalid NEWSLETTER_ARCHIVE_RETENTION_DAYS, skipping retention", "value", v)
			return
		}
		if err := archive.New(cfg.Archive.Dir).CompressOlder(n); err != nil {
			logger.Warn(ctx, "Failed to compress old archives", "error", err)
		}
	}
}

// initializeGenerator returns the configured LLM provider with observability
func initializeGenerator(ctx context.Context, cfg *store.Config) interfaces.Generator {
	var generator interfaces.Generator

	switch cfg.LLM.Provider {
	case "GEMINI":
		generator = gemini.NewGenerator(cfg, os.Getenv("GEMINI_API_KEY"))
	case "OPENAI":
		generator = openai.NewGenerator(cfg)
	default:
		generator = noop.NewGenerator()
		logger.Warn(ctx, "No LLM provider configured - using noop generator (canned draft)")
	}

	return llmobs.Wrap(generator)
}

// buildPipeline wires every stage together. Template loading happens here,
// before any network call, so a missing template aborts the run up front.
func buildPipeline(ctx context.Context, cfg *store.Config) (*pipeline.Pipeline, error) {
	composer, err := prompt.NewComposer(cfg.Templates.Prompt)
	if err != nil {
		return nil, err
	}
	renderer, err := render.NewRenderer(cfg.Templates.Email)
	if err != nil {
		return nil, err
	}

	return pipeline.New(
		feeds.New(cfg),
		portfolio.New(cfg),
		composer,
		initializeGenerator(ctx, cfg),
		renderer,
		archive.New(cfg.Archive.Dir),
		mailer.New(mailerParams(cfg)),
	), nil
}

func mailerParams(cfg *store.Config) mailer.Params {
	return mailer.Params{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Address:   os.Getenv("EMAIL_ADDRESS"),
		Password:  os.Getenv("EMAIL_APP_PASSWORD"),
		Recipient: os.Getenv("EMAIL_RECIPIENT"),
	}
}
