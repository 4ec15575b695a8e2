package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/yatzy/internal/common/clock"
	"github.com/KirkDiggler/yatzy/internal/common/uuid"
	"github.com/KirkDiggler/yatzy/internal/dice"
	"github.com/KirkDiggler/yatzy/internal/engine"
	"github.com/KirkDiggler/yatzy/internal/models"
	gameRepo "github.com/KirkDiggler/yatzy/internal/repositories/game"
	scoreRepo "github.com/KirkDiggler/yatzy/internal/repositories/score"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// service implements the Service interface
type service struct {
	// mu serialises commands so each one sees the state the previous one saved
	mu sync.Mutex

	dateLayout    string
	logger        zerolog.Logger
	gameRepo      gameRepo.Repository
	scoreRepo     scoreRepo.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.ScoreRepo == nil {
		return nil, ErrNilScoreRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	dateLayout := cfg.DateLayout
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}

	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &service{
		dateLayout:    dateLayout,
		logger:        logger.With().Str("service", "game").Logger(),
		gameRepo:      cfg.GameRepo,
		scoreRepo:     cfg.ScoreRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// StartGame begins a new game for a player, or resumes one in progress
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	if input.PlayerName == "" {
		return nil, ErrEmptyPlayerName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.loadGame(ctx, input.PlayerID)
	if err != nil && !errors.Is(err, ErrGameNotFound) {
		return nil, err
	}

	if existing != nil {
		if !existing.IsComplete() {
			return &StartGameOutput{
				Game:    existing,
				Resumed: true,
			}, nil
		}

		s.flushPendingScore(ctx, existing)
	}

	now := s.clock.Now()
	game := &models.Game{
		PlayerID:   input.PlayerID,
		PlayerName: input.PlayerName,
		State:      engine.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("player_id", game.PlayerID).
		Str("player_name", game.PlayerName).
		Msg("game started")

	return &StartGameOutput{
		Game: game,
	}, nil
}

// GetGame returns the player's current game
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	game, err := s.loadGame(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game: game,
	}, nil
}

// RollDice rolls every unheld die
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	game, outcome, err := s.apply(ctx, input.PlayerID, "roll", func(state engine.GameState) (engine.GameState, engine.Outcome, error) {
		return engine.Roll(state, s.diceRoller)
	})
	if err != nil {
		return nil, err
	}

	return &RollDiceOutput{
		Game:    game,
		Outcome: outcome,
	}, nil
}

// ToggleHold holds or releases a die
func (s *service) ToggleHold(ctx context.Context, input *ToggleHoldInput) (*ToggleHoldOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	game, outcome, err := s.apply(ctx, input.PlayerID, "toggle_hold", func(state engine.GameState) (engine.GameState, engine.Outcome, error) {
		return engine.ToggleHold(state, input.DieIndex)
	})
	if err != nil {
		return nil, err
	}

	return &ToggleHoldOutput{
		Game:    game,
		Outcome: outcome,
	}, nil
}

// ChooseCategory scores the held dice and ends the turn. When the selection
// fills the last category the score record is built and appended to the
// score store; a store failure is reported as a warning on the output and
// does not undo the selection.
func (s *service) ChooseCategory(ctx context.Context, input *ChooseCategoryInput) (*ChooseCategoryOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.loadGame(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	next, outcome, err := engine.ChooseCategory(game.State, input.Category)
	if err != nil {
		s.logRejection(input.PlayerID, "choose_category", err)
		return nil, err
	}

	now := s.clock.Now()
	game.State = next
	game.UpdatedAt = now

	if outcome.Completed {
		game.Record = s.newRecord(game, now)
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logOutcome(input.PlayerID, outcome)

	output := &ChooseCategoryOutput{
		Game:    game,
		Outcome: outcome,
		Record:  game.Record,
	}

	if outcome.Completed {
		s.logger.Info().
			Str("player_id", game.PlayerID).
			Int("points", game.Record.Points).
			Bool("bonus", game.State.BonusAwarded).
			Msg("game completed")

		output.PersistenceWarning = s.persistRecord(ctx, game)
	}

	return output, nil
}

// ResetGame discards all progress of the player's game
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.loadGame(ctx, input.PlayerID)
	switch {
	case errors.Is(err, ErrGameNotFound) && input.PlayerName != "":
		game = &models.Game{
			PlayerID: input.PlayerID,
		}
	case err != nil:
		return nil, err
	default:
		s.flushPendingScore(ctx, game)
	}

	if input.PlayerName != "" {
		game.PlayerName = input.PlayerName
	}

	state, outcome := engine.Reset()
	now := s.clock.Now()
	game.State = state
	game.Record = nil
	game.RecordSaved = false
	game.CreatedAt = now
	game.UpdatedAt = now

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logOutcome(input.PlayerID, outcome)

	return &ResetGameOutput{
		Game:    game,
		Outcome: outcome,
	}, nil
}

// apply runs an engine command against the stored game and saves the result.
// A rejected command is returned as is and nothing is saved.
func (s *service) apply(ctx context.Context, playerID, name string, command func(engine.GameState) (engine.GameState, engine.Outcome, error)) (*models.Game, engine.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.loadGame(ctx, playerID)
	if err != nil {
		return nil, engine.Outcome{}, err
	}

	next, outcome, err := command(game.State)
	if err != nil {
		s.logRejection(playerID, name, err)
		return nil, engine.Outcome{}, err
	}

	game.State = next
	game.UpdatedAt = s.clock.Now()

	if err := s.saveGame(ctx, game); err != nil {
		return nil, engine.Outcome{}, err
	}

	s.logOutcome(playerID, outcome)

	return game, outcome, nil
}

// newRecord builds the immutable record of a completed game
func (s *service) newRecord(game *models.Game, completedAt time.Time) *models.ScoreRecord {
	return &models.ScoreRecord{
		ID:          s.uuidGenerator.NewUUID(),
		PlayerName:  game.PlayerName,
		Points:      game.State.FinalPoints(),
		Date:        completedAt.Format(s.dateLayout),
		CompletedAt: completedAt,
	}
}

func (s *service) loadGame(ctx context.Context, playerID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (s *service) saveGame(ctx context.Context, game *models.Game) error {
	err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (s *service) logOutcome(playerID string, outcome engine.Outcome) {
	s.logger.Debug().
		Str("player_id", playerID).
		Str("outcome", string(outcome.Kind)).
		Int("category", outcome.Category).
		Int("points", outcome.Points).
		Bool("bonus_awarded", outcome.BonusAwarded).
		Bool("completed", outcome.Completed).
		Msg("command applied")
}

func (s *service) logRejection(playerID, command string, err error) {
	s.logger.Debug().
		Err(err).
		Str("player_id", playerID).
		Str("command", command).
		Msg("command rejected")
}
