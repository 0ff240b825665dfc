package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"racing-league/config"
	"racing-league/database"
	"racing-league/handlers"
	"racing-league/logging"
	"racing-league/services"
	"racing-league/utils"
	"racing-league/workers"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Setup(cfg.LogLevel, os.Stdout)

	db, err := database.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	metrics, err := services.NewMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics")
	}

	catalog := services.MustDefaultCatalog()
	playerService := services.NewPlayerService(db, catalog)
	registry := services.NewChallengeRegistry(cfg.ChallengeTTL)
	raceService := services.NewRaceService(playerService, registry, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweeper, err := services.StartChallengeSweeper(registry, metrics, cfg.ChallengeSweepInterval, cfg.ChallengeSweepDelay)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start challenge sweeper")
	}

	if cfg.R2.Enabled() {
		store, err := utils.NewR2Store(ctx, cfg.R2)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize R2 client")
		}
		publisher := workers.NewLeaderboardPublisher(playerService, store, cfg.LeaderboardSize)
		go workers.PollLeaderboard(ctx, publisher, cfg.LeaderboardPublishInterval)
	} else {
		log.Info().Msg("⚠️  R2 not configured, leaderboard snapshots disabled")
	}

	app := handlers.NewApp(handlers.AppConfig{
		ServiceToken:    cfg.ServiceToken,
		AllowedOrigins:  cfg.AllowedOrigins,
		LeaderboardSize: cfg.LeaderboardSize,
	}, playerService, raceService)

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Error().Err(err).Msg("Server error")
		}
	}()

	log.Info().Msgf("✅ Server running on %s", cfg.ListenAddr)
	log.Info().Msgf("✅ Challenge sweep every %s (TTL %s)", cfg.ChallengeSweepInterval, cfg.ChallengeTTL)
	log.Info().Strs("origins", cfg.AllowedOrigins).Msg("✅ CORS configured")

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	if err := sweeper.Shutdown(); err != nil {
		log.Error().Err(err).Msg("challenge sweeper shutdown")
	}
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
}
