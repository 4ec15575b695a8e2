package game

import "github.com/KirkDiggler/yatzy/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	PlayerID string
}
