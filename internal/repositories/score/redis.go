package score

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/yatzy/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	scoreKeyPrefix = "score:"

	// scoreboardKey orders record IDs by completion time
	scoreboardKey = "scoreboard"
)

// RedisConfig holds configuration for the Redis score repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed score repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AppendScore stores the record and indexes it by completion time
func (r *redisRepository) AppendScore(ctx context.Context, input *AppendScoreInput) error {
	if err := validateRecord(input); err != nil {
		return err
	}

	record := input.Record

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal score record: %w", err)
	}

	pipe := r.client.TxPipeline()

	scoreKey := fmt.Sprintf("%s%s", scoreKeyPrefix, record.ID)
	pipe.Set(ctx, scoreKey, recordJSON, 0)

	// NX keeps the first position when a save is retried
	pipe.ZAddNX(ctx, scoreboardKey, redis.Z{
		Score:  float64(record.CompletedAt.UnixNano()),
		Member: record.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append score: %w", err)
	}

	return nil
}

// ListScores returns all records sorted by points descending
func (r *redisRepository) ListScores(ctx context.Context, input *ListScoresInput) (*ListScoresOutput, error) {
	if input == nil {
		input = &ListScoresInput{}
	}

	ids, err := r.client.ZRange(ctx, scoreboardKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	if len(ids) == 0 {
		return &ListScoresOutput{
			Records: []*models.ScoreRecord{},
		}, nil
	}

	// Fetch all records in one round trip
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, pipe.Get(ctx, fmt.Sprintf("%s%s", scoreKeyPrefix, id)))
	}

	// redis.Nil for individual keys is handled below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get score records: %w", err)
	}

	records := make([]*models.ScoreRecord, 0, len(ids))
	for i, cmd := range cmds {
		recordJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Index entry without a record, skip it
				continue
			}
			return nil, fmt.Errorf("failed to get score record %s: %w", ids[i], err)
		}

		var record models.ScoreRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score record %s: %w", ids[i], err)
		}

		records = append(records, &record)
	}

	return &ListScoresOutput{
		Records: rank(records, input.Limit),
	}, nil
}
