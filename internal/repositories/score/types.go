package score

import (
	"errors"
	"sort"

	"github.com/KirkDiggler/yatzy/internal/models"
)

// AppendScoreInput contains parameters for appending a score record
type AppendScoreInput struct {
	Record *models.ScoreRecord
}

// ListScoresInput contains parameters for listing score records
type ListScoresInput struct {
	// Limit caps the number of records returned, 0 returns all
	Limit int
}

// ListScoresOutput contains the sorted score records
type ListScoresOutput struct {
	Records []*models.ScoreRecord
}

func validateRecord(input *AppendScoreInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}
	if input.Record.ID == "" {
		return errors.New("record ID cannot be empty")
	}
	if input.Record.Points < 0 {
		return errors.New("record points cannot be negative")
	}
	return nil
}

// rank orders records by points descending. Records must already be in
// completion order; the sort is stable so ties keep it.
func rank(records []*models.ScoreRecord, limit int) []*models.ScoreRecord {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Points > records[j].Points
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}
