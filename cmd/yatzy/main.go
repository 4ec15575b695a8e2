package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/yatzy/internal/common/clock"
	"github.com/KirkDiggler/yatzy/internal/common/uuid"
	"github.com/KirkDiggler/yatzy/internal/config"
	"github.com/KirkDiggler/yatzy/internal/dice"
	"github.com/KirkDiggler/yatzy/internal/handlers/discord"
	"github.com/KirkDiggler/yatzy/internal/repositories/game"
	"github.com/KirkDiggler/yatzy/internal/repositories/score"
	gameService "github.com/KirkDiggler/yatzy/internal/services/game"
	"github.com/KirkDiggler/yatzy/internal/services/messaging"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	zerolog.SetGlobalLevel(cfg.Level())
	logger := log.Logger

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect to Redis")
	}

	// Initialize repositories
	gameRepo, err := game.NewRedis(&game.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game repository")
	}

	scoreRepo, closeScores := newScoreRepository(cfg, redisClient)
	defer closeScores()

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{
		Seed: cfg.DiceSeed,
	})

	systemClock, err := clock.New(&clock.Config{
		Timezone: cfg.Timezone,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create clock")
	}

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		DateLayout:    cfg.DateLayout,
		Logger:        &logger,
		GameRepo:      gameRepo,
		ScoreRepo:     scoreRepo,
		DiceRoller:    diceRoller,
		Clock:         systemClock,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game service")
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create messaging service")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		Logger:           &logger,
		GameService:      gameSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping bot")
	}

	log.Info().Msg("bot has been shut down")
}

// newScoreRepository opens the configured score store
func newScoreRepository(cfg *config.Config, redisClient *redis.Client) (score.Repository, func()) {
	switch cfg.ScoreStore {
	case config.ScoreStoreSQLite:
		db, err := score.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.SQLitePath).Msg("failed to open score database")
		}

		repo, err := score.NewSQLite(&score.SQLiteConfig{
			DB: db,
		})
		if err != nil {
			db.Close()
			log.Fatal().Err(err).Msg("failed to create score repository")
		}

		log.Info().Str("path", cfg.SQLitePath).Msg("recording scores in SQLite")
		return repo, closer(db)
	default:
		repo, err := score.NewRedis(&score.RedisConfig{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create score repository")
		}

		log.Info().Msg("recording scores in Redis")
		return repo, func() {}
	}
}

func closer(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close score database")
		}
	}
}
