package models

import (
	"time"
)

// ScoreRecord is the finalized result of one completed game.
// PlayerName, Points and Date are the durable leaderboard fields.
type ScoreRecord struct {
	// ID is the unique identifier for the record
	ID string `json:"id,omitempty"`

	// PlayerName is the name the player entered before the game
	PlayerName string `json:"playerName"`

	// Points is the final score, bonus included
	Points int `json:"points"`

	// Date is the completion date as shown on the scoreboard
	Date string `json:"date"`

	// CompletedAt is the exact completion time
	CompletedAt time.Time `json:"completedAt"`
}
