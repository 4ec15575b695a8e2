package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound       GameError = "game not found"
	ErrEmptyPlayerID      GameError = "player ID cannot be empty"
	ErrEmptyPlayerName    GameError = "player name cannot be empty"
	ErrPersistenceFailure GameError = "failed to persist score"
	ErrNoPendingScore     GameError = "no unsaved score for this game"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilGameRepo        GameError = "game repository cannot be nil"
	ErrNilScoreRepo       GameError = "score repository cannot be nil"
	ErrNilDiceRoller      GameError = "dice roller cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
)
