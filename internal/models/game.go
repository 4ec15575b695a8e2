package models

import (
	"time"

	"github.com/KirkDiggler/yatzy/internal/engine"
)

// Game is a player's stored game
type Game struct {
	// PlayerID identifies the player that owns the game
	PlayerID string `json:"playerId"`

	// PlayerName is the display name written to the score record
	PlayerName string `json:"playerName"`

	// State is the engine state of the game
	State engine.GameState `json:"state"`

	// Record is set once the game completes
	Record *ScoreRecord `json:"record,omitempty"`

	// RecordSaved reports whether Record reached the score store
	RecordSaved bool `json:"recordSaved"`

	// CreatedAt is when the game was started
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the last command was applied
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsComplete reports whether every category has been filled
func (g *Game) IsComplete() bool {
	return g.State.Complete
}

// NeedsScoreSave reports whether a completed game's record is still unsaved
func (g *Game) NeedsScoreSave() bool {
	return g.Record != nil && !g.RecordSaved
}
