package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/yatzy/internal/common/uuid UUID

// UUID generates identifiers for score records
type UUID interface {
	NewUUID() string
}

// TimeOrderedUUID generates version 7 UUIDs, which sort by creation time
type TimeOrderedUUID struct{}

func New() *TimeOrderedUUID {
	return &TimeOrderedUUID{}
}

// NewUUID returns a new UUID string, falling back to a random UUID if the
// time-ordered one cannot be generated
func (d *TimeOrderedUUID) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
