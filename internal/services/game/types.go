package game

import (
	"github.com/KirkDiggler/yatzy/internal/common/clock"
	"github.com/KirkDiggler/yatzy/internal/common/uuid"
	"github.com/KirkDiggler/yatzy/internal/dice"
	"github.com/KirkDiggler/yatzy/internal/engine"
	"github.com/KirkDiggler/yatzy/internal/models"
	gameRepo "github.com/KirkDiggler/yatzy/internal/repositories/game"
	scoreRepo "github.com/KirkDiggler/yatzy/internal/repositories/score"
	"github.com/rs/zerolog"
)

// DefaultDateLayout formats the date shown on the scoreboard
const DefaultDateLayout = "2006-01-02"

// Config holds configuration for the game service
type Config struct {
	// DateLayout is the time layout of ScoreRecord.Date
	DateLayout string

	// Logger defaults to the global zerolog logger
	Logger *zerolog.Logger

	// Repository dependencies
	GameRepo  gameRepo.Repository
	ScoreRepo scoreRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// PlayerID identifies the player, one game per player
	PlayerID string

	// PlayerName is written to the score record
	PlayerName string
}

// StartGameOutput contains the started game
type StartGameOutput struct {
	Game *models.Game

	// Resumed is true when an unfinished game was returned instead of a new one
	Resumed bool
}

// GetGameInput contains parameters for getting a game
type GetGameInput struct {
	PlayerID string
}

// GetGameOutput contains the player's game
type GetGameOutput struct {
	Game *models.Game
}

// RollDiceInput contains parameters for rolling dice
type RollDiceInput struct {
	PlayerID string
}

// RollDiceOutput contains the result of rolling dice
type RollDiceOutput struct {
	Game    *models.Game
	Outcome engine.Outcome
}

// ToggleHoldInput contains parameters for toggling a hold
type ToggleHoldInput struct {
	PlayerID string

	// DieIndex is the position of the die, 0 to engine.NumDice-1
	DieIndex int
}

// ToggleHoldOutput contains the result of toggling a hold
type ToggleHoldOutput struct {
	Game    *models.Game
	Outcome engine.Outcome
}

// ChooseCategoryInput contains parameters for choosing a category
type ChooseCategoryInput struct {
	PlayerID string

	// Category is the face to score, 1 to engine.NumCategories
	Category int
}

// ChooseCategoryOutput contains the result of choosing a category
type ChooseCategoryOutput struct {
	Game    *models.Game
	Outcome engine.Outcome

	// Record is set when this selection completed the game
	Record *models.ScoreRecord

	// PersistenceWarning wraps ErrPersistenceFailure when the record could
	// not be stored. The selection itself has been applied; retry with SaveScore.
	PersistenceWarning error
}

// ResetGameInput contains parameters for resetting a game
type ResetGameInput struct {
	PlayerID string

	// PlayerName names the fresh game when the player has none stored, and
	// renames an existing one when set
	PlayerName string
}

// ResetGameOutput contains the fresh game
type ResetGameOutput struct {
	Game    *models.Game
	Outcome engine.Outcome
}

// SaveScoreInput contains parameters for retrying a score save
type SaveScoreInput struct {
	PlayerID string
}

// SaveScoreOutput contains the saved record
type SaveScoreOutput struct {
	Record *models.ScoreRecord
}

// GetScoreboardInput contains parameters for the scoreboard
type GetScoreboardInput struct {
	// Limit caps the number of records, 0 returns all
	Limit int
}

// GetScoreboardOutput contains the scoreboard
type GetScoreboardOutput struct {
	Records []*models.ScoreRecord
}
