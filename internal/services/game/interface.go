package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/yatzy/internal/services/game Service

import "context"

// Service defines the interface for game operations.
// Engine rejections (engine.ErrInvalidCommandState, engine.ErrDuplicateCategory,
// engine.ErrIndexOutOfRange, engine.ErrInvalidCategory) are returned unchanged
// and leave the stored game untouched.
type Service interface {
	// StartGame begins a new game for a player, or resumes one in progress
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// GetGame returns the player's current game
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// RollDice rolls every unheld die
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// ToggleHold holds or releases a die
	ToggleHold(ctx context.Context, input *ToggleHoldInput) (*ToggleHoldOutput, error)

	// ChooseCategory scores the held dice and ends the turn
	ChooseCategory(ctx context.Context, input *ChooseCategoryInput) (*ChooseCategoryOutput, error)

	// ResetGame discards all progress of the player's game. A player with no
	// stored game gets a fresh one when PlayerName is set.
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// SaveScore retries persisting a completed game's record
	SaveScore(ctx context.Context, input *SaveScoreInput) (*SaveScoreOutput, error)

	// GetScoreboard lists completed games by points descending
	GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error)
}
