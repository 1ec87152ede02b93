package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"producer-platform/fixtures"
	"producer-platform/services"
	"producer-platform/workers"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("⚠️  No .env file found, reading environment variables directly")
	}

	if lvl, err := zerolog.ParseLevel(envOr("LOG_LEVEL", "info")); err == nil {
		logger = logger.Level(lvl)
	}

	seed, err := fixtures.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load seed fixtures")
	}

	store := services.NewAppStore(seed, logger)

	if raw := os.Getenv("DEFAULT_LANGUAGE"); raw != "" {
		tag, err := language.Parse(raw)
		if err != nil {
			logger.Warn().Str("value", raw).Msg("unparseable DEFAULT_LANGUAGE, keeping default")
		} else {
			store.SetLanguage(tag)
		}
	}

	tickInterval := envDuration(logger, "TICK_INTERVAL", 2*time.Second)
	digestInterval := envDuration(logger, "DIGEST_INTERVAL", time.Minute)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := workers.NewLiveVotesWorker(store, tickInterval, logger)
	go worker.Run(ctx)

	sched, err := store.StartDigestScheduler(digestInterval)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start digest scheduler")
	}

	// Demo harness: run a signed-in session so the feed, notifications
	// and tournaments are observable from the logs.
	demo := store.LogIn()

	logger.Info().Msg("✅ Producer platform core ready")
	logger.Info().Str("user", demo.Username).Msg("✅ Demo session active")
	logger.Info().Dur("interval", tickInterval).Msg("✅ Live vote simulation running")
	logger.Info().Int("posts", len(store.Posts())).Int("users", len(store.Users())).Msg("seed data loaded")

	<-ctx.Done()
	logger.Info().Msg("Shutting down...")
	if err := sched.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("digest scheduler shutdown failed")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(logger zerolog.Logger, key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		logger.Warn().Str("value", raw).Str("key", key).Msg("invalid duration, using default")
		return fallback
	}
	return d
}
