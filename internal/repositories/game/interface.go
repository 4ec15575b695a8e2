package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/yatzy/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/yatzy/internal/models"
)

// Repository defines the interface for in-progress game persistence
type Repository interface {
	// SaveGame persists a game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves the game of a player
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)
}
