package game

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/yatzy/internal/models"
	scoreRepo "github.com/KirkDiggler/yatzy/internal/repositories/score"
)

// SaveScore retries persisting a completed game's record
func (s *service) SaveScore(ctx context.Context, input *SaveScoreInput) (*SaveScoreOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.loadGame(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if !game.NeedsScoreSave() {
		return nil, ErrNoPendingScore
	}

	if err := s.persistRecord(ctx, game); err != nil {
		return nil, err
	}

	return &SaveScoreOutput{
		Record: game.Record,
	}, nil
}

// GetScoreboard lists completed games by points descending
func (s *service) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error) {
	if input == nil {
		input = &GetScoreboardInput{}
	}

	output, err := s.scoreRepo.ListScores(ctx, &scoreRepo.ListScoresInput{
		Limit: input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	return &GetScoreboardOutput{
		Records: output.Records,
	}, nil
}

// persistRecord appends the game's record to the score store and marks the
// game as saved. The returned error wraps ErrPersistenceFailure.
func (s *service) persistRecord(ctx context.Context, game *models.Game) error {
	err := s.scoreRepo.AppendScore(ctx, &scoreRepo.AppendScoreInput{
		Record: game.Record,
	})
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("player_id", game.PlayerID).
			Str("record_id", game.Record.ID).
			Msg("failed to save score")
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	game.RecordSaved = true

	// The record is stored; losing the flag only means a later retry re-appends it
	if err := s.saveGame(ctx, game); err != nil {
		s.logger.Warn().
			Err(err).
			Str("player_id", game.PlayerID).
			Msg("failed to mark score as saved")
	}

	return nil
}

// flushPendingScore makes a last attempt to store an unsaved record before
// the game holding it is replaced
func (s *service) flushPendingScore(ctx context.Context, game *models.Game) {
	if !game.NeedsScoreSave() {
		return
	}

	if err := s.persistRecord(ctx, game); err != nil {
		s.logger.Error().
			Err(err).
			Str("player_id", game.PlayerID).
			Int("points", game.Record.Points).
			Msg("discarding unsaved score")
	}
}
