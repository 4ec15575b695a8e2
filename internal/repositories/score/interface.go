package score

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/yatzy/internal/repositories/score Repository

import (
	"context"
)

// Repository defines the interface for the scoreboard
type Repository interface {
	// AppendScore stores a completed game's record. Appending a record whose
	// ID is already stored is a no-op.
	AppendScore(ctx context.Context, input *AppendScoreInput) error

	// ListScores returns records sorted by points descending, ties in completion order
	ListScores(ctx context.Context, input *ListScoresInput) (*ListScoresOutput, error)
}
