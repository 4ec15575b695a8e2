package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/yatzy/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetGameStartedMessage returns a message for a new or resumed game
	GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*GetGameStartedMessageOutput, error)

	// GetRollResultMessage returns a message describing a roll
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)

	// GetCategoryMessage returns a message for a scored category
	GetCategoryMessage(ctx context.Context, input *GetCategoryMessageInput) (*GetCategoryMessageOutput, error)

	// GetGameCompletedMessage returns a message for a finished game
	GetGameCompletedMessage(ctx context.Context, input *GetGameCompletedMessageInput) (*GetGameCompletedMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
