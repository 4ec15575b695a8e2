package messaging

import (
	"github.com/KirkDiggler/yatzy/internal/engine"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorType names the kind of failure an error message describes
type ErrorType string

const (
	ErrorTypeNoGame             ErrorType = "no_game"
	ErrorTypeInvalidState       ErrorType = "invalid_state"
	ErrorTypeNoRollsLeft        ErrorType = "no_rolls_left"
	ErrorTypeDuplicateCategory  ErrorType = "duplicate_category"
	ErrorTypeIndexOutOfRange    ErrorType = "index_out_of_range"
	ErrorTypeInvalidCategory    ErrorType = "invalid_category"
	ErrorTypePersistenceFailure ErrorType = "persistence_failure"
	ErrorTypeUnknown            ErrorType = "unknown"
)

// GetGameStartedMessageInput contains the input for GetGameStartedMessage
type GetGameStartedMessageInput struct {
	PlayerName string

	// Resumed is true when an unfinished game was picked back up
	Resumed bool
}

// GetGameStartedMessageOutput contains the output for GetGameStartedMessage
type GetGameStartedMessageOutput struct {
	Message string
}

// GetRollResultMessageInput contains the input for GetRollResultMessage
type GetRollResultMessageInput struct {
	PlayerName string

	// Dice are the dice after the roll
	Dice engine.DiceSet

	// RollsRemaining is how many rolls are left this turn
	RollsRemaining int
}

// GetRollResultMessageOutput contains the output for GetRollResultMessage
type GetRollResultMessageOutput struct {
	Title   string
	Message string
}

// GetCategoryMessageInput contains the input for GetCategoryMessage
type GetCategoryMessageInput struct {
	PlayerName string

	// Outcome is the result of the selection
	Outcome engine.Outcome

	// BonusRemaining is what is still needed for the bonus after the selection
	BonusRemaining int
}

// GetCategoryMessageOutput contains the output for GetCategoryMessage
type GetCategoryMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetGameCompletedMessageInput contains the input for GetGameCompletedMessage
type GetGameCompletedMessageInput struct {
	PlayerName   string
	FinalPoints  int
	BonusAwarded bool
}

// GetGameCompletedMessageOutput contains the output for GetGameCompletedMessage
type GetGameCompletedMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType ErrorType

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes the message selection; zero seeds from the current time
	Seed int64
}
