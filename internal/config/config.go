// Package config loads the bot's settings from the environment, with an
// optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Score store backends
const (
	ScoreStoreRedis  = "redis"
	ScoreStoreSQLite = "sqlite"
)

// Config holds every setting the bot reads at startup
type Config struct {
	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN,required,notEmpty"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// Redis holds games, and scores when ScoreStore is redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// ScoreStore selects where completed games are recorded
	ScoreStore string `env:"SCORE_STORE" envDefault:"redis"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"./data/scores.db"`

	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	DateLayout string `env:"DATE_LAYOUT" envDefault:"2006-01-02"`

	// Timezone of score dates, host zone when empty
	Timezone string `env:"SCORE_TIMEZONE"`

	// DiceSeed makes rolls reproducible; zero seeds from the clock
	DiceSeed int64 `env:"DICE_SEED" envDefault:"0"`
}

// Load reads .env when present, then parses the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	return Parse()
}

// Parse reads the environment without touching .env
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values the tags cannot express
func (c *Config) Validate() error {
	switch c.ScoreStore {
	case ScoreStoreRedis:
	case ScoreStoreSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when SCORE_STORE is sqlite")
		}
	default:
		return fmt.Errorf("unknown SCORE_STORE %q", c.ScoreStore)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return nil
}

// Level returns the configured log level, info when unset
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
