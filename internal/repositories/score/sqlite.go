package score

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/KirkDiggler/yatzy/internal/models"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	seq          INTEGER PRIMARY KEY AUTOINCREMENT,
	id           TEXT    NOT NULL UNIQUE,
	player_name  TEXT    NOT NULL,
	points       INTEGER NOT NULL CHECK (points >= 0),
	date         TEXT    NOT NULL,
	completed_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scores_points ON scores (points DESC, completed_at ASC, seq ASC);
`

// SQLiteConfig holds configuration for the SQLite score repository
type SQLiteConfig struct {
	// DB is an open SQLite handle, see OpenSQLite
	DB *sql.DB
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) a SQLite database file with a
// busy timeout and WAL journaling
func OpenSQLite(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	return db, nil
}

// NewSQLite creates a SQLite-backed score repository, creating the schema if needed
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	if _, err := cfg.DB.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// AppendScore inserts the record, ignoring records already stored
func (r *sqliteRepository) AppendScore(ctx context.Context, input *AppendScoreInput) error {
	if err := validateRecord(input); err != nil {
		return err
	}

	record := input.Record
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO scores (id, player_name, points, date, completed_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO NOTHING`,
		record.ID, record.PlayerName, record.Points, record.Date,
		record.CompletedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to append score: %w", err)
	}

	return nil
}

// ListScores returns records sorted by points descending, ties in completion order
func (r *sqliteRepository) ListScores(ctx context.Context, input *ListScoresInput) (*ListScoresOutput, error) {
	if input == nil {
		input = &ListScoresInput{}
	}

	query := `SELECT id, player_name, points, date, completed_at
		FROM scores
		ORDER BY points DESC, completed_at ASC, seq ASC`
	args := []any{}
	if input.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, input.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	defer rows.Close()

	records := []*models.ScoreRecord{}
	for rows.Next() {
		var (
			record      models.ScoreRecord
			completedAt int64
		)
		if err := rows.Scan(&record.ID, &record.PlayerName, &record.Points, &record.Date, &completedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}

		record.CompletedAt = time.Unix(0, completedAt).UTC()

		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	return &ListScoresOutput{
		Records: records,
	}, nil
}
