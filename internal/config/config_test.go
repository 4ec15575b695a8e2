package config

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.DiscordToken)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, ScoreStoreRedis, cfg.ScoreStore)
	assert.Equal(t, "./data/scores.db", cfg.SQLitePath)
	assert.Equal(t, "2006-01-02", cfg.DateLayout)
	assert.Zero(t, cfg.DiceSeed)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("SCORE_STORE", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/scores.db")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DICE_SEED", "99")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SCORE_TIMEZONE", "UTC")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ScoreStoreSQLite, cfg.ScoreStore)
	assert.Equal(t, "/tmp/scores.db", cfg.SQLitePath)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, int64(99), cfg.DiceSeed)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestParseMissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Parse()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "parse env:"))
}

func TestParseUnknownScoreStore(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("SCORE_STORE", "postgres")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestParseInvalidLogLevel(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Parse()
	assert.Error(t, err)
}
