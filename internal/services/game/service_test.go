package game

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/yatzy/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/yatzy/internal/common/uuid/mocks"
	diceMocks "github.com/KirkDiggler/yatzy/internal/dice/mocks"
	"github.com/KirkDiggler/yatzy/internal/engine"
	"github.com/KirkDiggler/yatzy/internal/models"
	gameRepo "github.com/KirkDiggler/yatzy/internal/repositories/game"
	gameMocks "github.com/KirkDiggler/yatzy/internal/repositories/game/mocks"
	scoreRepo "github.com/KirkDiggler/yatzy/internal/repositories/score"
	scoreMocks "github.com/KirkDiggler/yatzy/internal/repositories/score/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockGameRepo   *gameMocks.MockRepository
	mockScoreRepo  *scoreMocks.MockRepository
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *mocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	gameService    Service
	ctx            context.Context

	// Test data
	testTime       time.Time
	testPlayerID   string
	testPlayerName string
	testRecordID   string
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockScoreRepo = scoreMocks.NewMockRepository(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testPlayerID = "test-player-id"
	s.testPlayerName = "Test Player"
	s.testRecordID = "test-record-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	logger := zerolog.Nop()
	svc, err := New(&Config{
		Logger:        &logger,
		GameRepo:      s.mockGameRepo,
		ScoreRepo:     s.mockScoreRepo,
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// storedGame returns a fresh copy of a stored game with the given state
func (s *GameServiceTestSuite) storedGame(state engine.GameState) *models.Game {
	return &models.Game{
		PlayerID:   s.testPlayerID,
		PlayerName: s.testPlayerName,
		State:      state,
		CreatedAt:  s.testTime.Add(-time.Hour),
		UpdatedAt:  s.testTime.Add(-time.Hour),
	}
}

// oneLeft returns a state with categories 1-5 filled, sixes held ready for category 6
func (s *GameServiceTestSuite) oneLeft(pointsSoFar int) engine.GameState {
	state := engine.New()
	for c := 1; c <= 5; c++ {
		state.Selections = append(state.Selections, engine.CategorySelection{Category: c})
	}
	state.Selections[4].Points = pointsSoFar
	state.TotalPoints = pointsSoFar
	state.BonusAwarded = pointsSoFar >= engine.BonusThreshold
	for i := 0; i < 3; i++ {
		state.Dice[i] = engine.Die{Value: 6, Held: true}
	}
	state.DiceRolled = true
	state.RollsRemaining = 2
	return state
}

func (s *GameServiceTestSuite) expectGetGame(game *models.Game) {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{
			PlayerID: s.testPlayerID,
		}).
		Return(game, nil)
}

func (s *GameServiceTestSuite) expectGameNotFound() {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{
			PlayerID: s.testPlayerID,
		}).
		Return(nil, gameRepo.ErrGameNotFound)
}

// StartGame Tests

func (s *GameServiceTestSuite) TestStartGame_HappyPath() {
	s.expectGameNotFound()

	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), &gameRepo.SaveGameInput{
			Game: &models.Game{
				PlayerID:   s.testPlayerID,
				PlayerName: s.testPlayerName,
				State:      engine.New(),
				CreatedAt:  s.testTime,
				UpdatedAt:  s.testTime,
			},
		}).
		Return(nil)

	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		PlayerID:   s.testPlayerID,
		PlayerName: s.testPlayerName,
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.False(output.Resumed)
	s.Equal(engine.PhaseAwaitingRoll, output.Game.State.Phase())
}

func (s *GameServiceTestSuite) TestStartGame_ResumesGameInProgress() {
	inProgress := s.storedGame(s.oneLeft(10))
	s.expectGetGame(inProgress)

	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		PlayerID:   s.testPlayerID,
		PlayerName: s.testPlayerName,
	})

	s.Require().NoError(err)
	s.True(output.Resumed)
	s.Equal(inProgress, output.Game)
}

func (s *GameServiceTestSuite) TestStartGame_ReplacesCompletedGame() {
	completed := s.storedGame(s.oneLeft(10))
	completed.State.Complete = true
	completed.Record = &models.ScoreRecord{ID: s.testRecordID, PlayerName: s.testPlayerName, Points: 10}
	completed.RecordSaved = true
	s.expectGetGame(completed)

	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			s.Equal(engine.New(), input.Game.State)
			s.Nil(input.Game.Record)
			return nil
		})

	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		PlayerID:   s.testPlayerID,
		PlayerName: "New Name",
	})

	s.Require().NoError(err)
	s.False(output.Resumed)
	s.Equal("New Name", output.Game.PlayerName)
}

func (s *GameServiceTestSuite) TestStartGame_FlushesUnsavedScore() {
	completed := s.storedGame(s.oneLeft(10))
	completed.State.Complete = true
	record := &models.ScoreRecord{ID: s.testRecordID, PlayerName: s.testPlayerName, Points: 10}
	completed.Record = record
	s.expectGetGame(completed)

	gomock.InOrder(
		s.mockScoreRepo.EXPECT().
			AppendScore(gomock.Any(), &scoreRepo.AppendScoreInput{Record: record}).
			Return(nil),
		// marks the old game saved, then stores the new one
		s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil),
		s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil),
	)

	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		PlayerID:   s.testPlayerID,
		PlayerName: s.testPlayerName,
	})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestStartGame_InvalidInput() {
	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{PlayerName: s.testPlayerName})
	s.Equal(ErrEmptyPlayerID, err)

	_, err = s.gameService.StartGame(s.ctx, &StartGameInput{PlayerID: s.testPlayerID})
	s.Equal(ErrEmptyPlayerName, err)

	_, err = s.gameService.StartGame(s.ctx, nil)
	s.Equal(ErrEmptyPlayerID, err)
}

func (s *GameServiceTestSuite) TestStartGame_RepositoryError() {
	expectedError := errors.New("redis down")
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), gomock.Any()).
		Return(nil, expectedError)

	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		PlayerID:   s.testPlayerID,
		PlayerName: s.testPlayerName,
	})

	s.Require().Error(err)
	s.True(errors.Is(err, expectedError))
	s.Nil(output)
}

// GetGame Tests

func (s *GameServiceTestSuite) TestGetGame_NotFound() {
	s.expectGameNotFound()

	output, err := s.gameService.GetGame(s.ctx, &GetGameInput{PlayerID: s.testPlayerID})

	s.Equal(ErrGameNotFound, err)
	s.Nil(output)
}

// RollDice Tests

func (s *GameServiceTestSuite) TestRollDice_HappyPath() {
	state := engine.New()
	state.Dice[1] = engine.Die{Value: 1, Held: true}
	s.expectGetGame(s.storedGame(state))

	// four unheld dice, four draws
	gomock.InOrder(
		s.mockDiceRoller.EXPECT().NextFace().Return(6),
		s.mockDiceRoller.EXPECT().NextFace().Return(5),
		s.mockDiceRoller.EXPECT().NextFace().Return(4),
		s.mockDiceRoller.EXPECT().NextFace().Return(3),
	)

	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			s.Equal(s.testTime, input.Game.UpdatedAt)
			s.Equal(engine.MaxRolls-1, input.Game.State.RollsRemaining)
			return nil
		})

	output, err := s.gameService.RollDice(s.ctx, &RollDiceInput{PlayerID: s.testPlayerID})

	s.Require().NoError(err)
	s.Equal(engine.OutcomeRolled, output.Outcome.Kind)
	s.Equal(engine.DiceSet{
		{Value: 6},
		{Value: 1, Held: true},
		{Value: 5},
		{Value: 4},
		{Value: 3},
	}, output.Game.State.Dice)
}

func (s *GameServiceTestSuite) TestRollDice_NoRollsRemaining() {
	state := engine.New()
	state.RollsRemaining = 0
	state.DiceRolled = true
	s.expectGetGame(s.storedGame(state))

	// no SaveGame and no NextFace expected
	output, err := s.gameService.RollDice(s.ctx, &RollDiceInput{PlayerID: s.testPlayerID})

	s.Require().Error(err)
	s.True(errors.Is(err, engine.ErrInvalidCommandState))
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestRollDice_GameNotFound() {
	s.expectGameNotFound()

	output, err := s.gameService.RollDice(s.ctx, &RollDiceInput{PlayerID: s.testPlayerID})

	s.Equal(ErrGameNotFound, err)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestRollDice_SaveGameError() {
	expectedError := errors.New("failed to save game")
	s.expectGetGame(s.storedGame(engine.New()))
	s.mockDiceRoller.EXPECT().NextFace().Return(2).Times(engine.NumDice)
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(expectedError)

	output, err := s.gameService.RollDice(s.ctx, &RollDiceInput{PlayerID: s.testPlayerID})

	s.Require().Error(err)
	s.True(errors.Is(err, expectedError))
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestRejectionsLogCommandName() {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	svc, err := New(&Config{
		Logger:        &logger,
		GameRepo:      s.mockGameRepo,
		ScoreRepo:     s.mockScoreRepo,
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	exhausted := engine.New()
	exhausted.RollsRemaining = 0
	s.expectGetGame(s.storedGame(exhausted))
	_, err = svc.RollDice(s.ctx, &RollDiceInput{PlayerID: s.testPlayerID})
	s.Require().Error(err)
	s.Contains(buf.String(), `"command":"roll"`)

	buf.Reset()
	s.expectGetGame(s.storedGame(engine.New()))
	_, err = svc.ToggleHold(s.ctx, &ToggleHoldInput{PlayerID: s.testPlayerID, DieIndex: engine.NumDice})
	s.Require().Error(err)
	s.Contains(buf.String(), `"command":"toggle_hold"`)
}

// ToggleHold Tests

func (s *GameServiceTestSuite) TestToggleHold_HappyPath() {
	s.expectGetGame(s.storedGame(engine.New()))
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.ToggleHold(s.ctx, &ToggleHoldInput{
		PlayerID: s.testPlayerID,
		DieIndex: 3,
	})

	s.Require().NoError(err)
	s.Equal(engine.OutcomeHoldToggled, output.Outcome.Kind)
	s.True(output.Game.State.Dice[3].Held)
}

func (s *GameServiceTestSuite) TestToggleHold_IndexOutOfRange() {
	s.expectGetGame(s.storedGame(engine.New()))

	output, err := s.gameService.ToggleHold(s.ctx, &ToggleHoldInput{
		PlayerID: s.testPlayerID,
		DieIndex: engine.NumDice,
	})

	s.True(errors.Is(err, engine.ErrIndexOutOfRange))
	s.Nil(output)
}

// ChooseCategory Tests

func (s *GameServiceTestSuite) TestChooseCategory_HappyPath() {
	state := engine.New()
	state.Dice[0] = engine.Die{Value: 4, Held: true}
	state.Dice[1] = engine.Die{Value: 4, Held: true}
	state.Dice[2] = engine.Die{Value: 4, Held: true}
	state.DiceRolled = true
	state.RollsRemaining = 1
	s.expectGetGame(s.storedGame(state))
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.ChooseCategory(s.ctx, &ChooseCategoryInput{
		PlayerID: s.testPlayerID,
		Category: 4,
	})

	s.Require().NoError(err)
	s.Equal(engine.OutcomeCategoryScored, output.Outcome.Kind)
	s.Equal(12, output.Outcome.Points)
	s.Equal(12, output.Game.State.TotalPoints)
	s.Nil(output.Record)
	s.NoError(output.PersistenceWarning)
}

func (s *GameServiceTestSuite) TestChooseCategory_ZeroScore() {
	s.expectGetGame(s.storedGame(engine.New()))
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.ChooseCategory(s.ctx, &ChooseCategoryInput{
		PlayerID: s.testPlayerID,
		Category: 3,
	})

	s.Require().NoError(err)
	s.Equal(engine.OutcomeZeroScoreSelectionConfirmed, output.Outcome.Kind)
	s.Equal([]engine.CategorySelection{{Category: 3, Points: 0}}, output.Game.State.Selections)
}

func (s *GameServiceTestSuite) TestChooseCategory_Duplicate() {
	state := engine.New()
	state.Selections = []engine.CategorySelection{{Category: 2, Points: 4}}
	state.TotalPoints = 4
	s.expectGetGame(s.storedGame(state))

	output, err := s.gameService.ChooseCategory(s.ctx, &ChooseCategoryInput{
		PlayerID: s.testPlayerID,
		Category: 2,
	})

	s.True(errors.Is(err, engine.ErrDuplicateCategory))
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestChooseCategory_CompletesGameWithBonus() {
	// 45 so far + three sixes = 63, bonus brings the record to 113
	s.expectGetGame(s.storedGame(s.oneLeft(45)))
	s.mockUUID.EXPECT().NewUUID().Return(s.testRecordID)

	expectedRecord := &models.ScoreRecord{
		ID:          s.testRecordID,
		PlayerName:  s.testPlayerName,
		Points:      113,
		Date:        "2025-04-19",
		CompletedAt: s.testTime,
	}

	gomock.InOrder(
		s.mockGameRepo.EXPECT().
			SaveGame(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
				s.True(input.Game.State.Complete)
				s.False(input.Game.RecordSaved)
				return nil
			}),
		s.mockScoreRepo.EXPECT().
			AppendScore(gomock.Any(), &scoreRepo.AppendScoreInput{Record: expectedRecord}).
			Return(nil),
		s.mockGameRepo.EXPECT().
			SaveGame(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
				s.True(input.Game.RecordSaved)
				return nil
			}),
	)

	output, err := s.gameService.ChooseCategory(s.ctx, &ChooseCategoryInput{
		PlayerID: s.testPlayerID,
		Category: 6,
	})

	s.Require().NoError(err)
	s.True(output.Outcome.Completed)
	s.True(output.Outcome.BonusAwarded)
	s.True(output.Game.State.Complete)
	s.Equal(63, output.Game.State.TotalPoints)
	s.Equal(expectedRecord, output.Record)
	s.NoError(output.PersistenceWarning)
}

func (s *GameServiceTestSuite) TestChooseCategory_CompletesGameWithoutBonus() {
	s.expectGetGame(s.storedGame(s.oneLeft(20)))
	s.mockUUID.EXPECT().NewUUID().Return(s.testRecordID)
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.mockScoreRepo.EXPECT().AppendScore(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.ChooseCategory(s.ctx, &ChooseCategoryInput{
		PlayerID: s.testPlayerID,
		Category: 6,
	})

	s.Require().NoError(err)
	s.False(output.Game.State.BonusAwarded)
	s.Equal(38, output.Record.Points)
}

func (s *GameServiceTestSuite) TestChooseCategory_PersistenceFailureIsAWarning() {
	s.expectGetGame(s.storedGame(s.oneLeft(45)))
	s.mockUUID.EXPECT().NewUUID().Return(s.testRecordID)
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil)
	s.mockScoreRepo.EXPECT().
		AppendScore(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	output, err := s.gameService.ChooseCategory(s.ctx, &ChooseCategoryInput{
		PlayerID: s.testPlayerID,
		Category: 6,
	})

	// The transition stands; only the warning reports the failure
	s.Require().NoError(err)
	s.True(output.Game.State.Complete)
	s.Equal(113, output.Record.Points)
	s.False(output.Game.RecordSaved)
	s.Require().Error(output.PersistenceWarning)
	s.True(errors.Is(output.PersistenceWarning, ErrPersistenceFailure))
}

func (s *GameServiceTestSuite) TestChooseCategory_AfterComplete() {
	completed := s.storedGame(s.oneLeft(45))
	completed.State.Selections = append(completed.State.Selections, engine.CategorySelection{Category: 6, Points: 18})
	completed.State.Complete = true
	s.expectGetGame(completed)

	output, err := s.gameService.ChooseCategory(s.ctx, &ChooseCategoryInput{
		PlayerID: s.testPlayerID,
		Category: 6,
	})

	s.True(errors.Is(err, engine.ErrInvalidCommandState))
	s.Nil(output)
}

// SaveScore Tests

func (s *GameServiceTestSuite) TestSaveScore_Retry() {
	completed := s.storedGame(s.oneLeft(45))
	completed.State.Complete = true
	record := &models.ScoreRecord{ID: s.testRecordID, PlayerName: s.testPlayerName, Points: 113}
	completed.Record = record
	s.expectGetGame(completed)

	s.mockScoreRepo.EXPECT().
		AppendScore(gomock.Any(), &scoreRepo.AppendScoreInput{Record: record}).
		Return(nil)
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.SaveScore(s.ctx, &SaveScoreInput{PlayerID: s.testPlayerID})

	s.Require().NoError(err)
	s.Equal(record, output.Record)
}

func (s *GameServiceTestSuite) TestSaveScore_StillFailing() {
	completed := s.storedGame(s.oneLeft(45))
	completed.State.Complete = true
	completed.Record = &models.ScoreRecord{ID: s.testRecordID, Points: 113}
	s.expectGetGame(completed)

	s.mockScoreRepo.EXPECT().
		AppendScore(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	output, err := s.gameService.SaveScore(s.ctx, &SaveScoreInput{PlayerID: s.testPlayerID})

	s.True(errors.Is(err, ErrPersistenceFailure))
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestSaveScore_NothingPending() {
	s.expectGetGame(s.storedGame(engine.New()))

	output, err := s.gameService.SaveScore(s.ctx, &SaveScoreInput{PlayerID: s.testPlayerID})

	s.Equal(ErrNoPendingScore, err)
	s.Nil(output)
}

// ResetGame Tests

func (s *GameServiceTestSuite) TestResetGame_HappyPath() {
	s.expectGetGame(s.storedGame(s.oneLeft(30)))
	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), &gameRepo.SaveGameInput{
			Game: &models.Game{
				PlayerID:   s.testPlayerID,
				PlayerName: s.testPlayerName,
				State:      engine.New(),
				CreatedAt:  s.testTime,
				UpdatedAt:  s.testTime,
			},
		}).
		Return(nil)

	output, err := s.gameService.ResetGame(s.ctx, &ResetGameInput{PlayerID: s.testPlayerID})

	s.Require().NoError(err)
	s.Equal(engine.OutcomeGameReset, output.Outcome.Kind)
	s.Equal(engine.New(), output.Game.State)
}

func (s *GameServiceTestSuite) TestResetGame_CompletedGame() {
	completed := s.storedGame(s.oneLeft(45))
	completed.State.Complete = true
	completed.Record = &models.ScoreRecord{ID: s.testRecordID, Points: 113}
	completed.RecordSaved = true
	s.expectGetGame(completed)
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.ResetGame(s.ctx, &ResetGameInput{PlayerID: s.testPlayerID})

	s.Require().NoError(err)
	s.False(output.Game.IsComplete())
	s.Nil(output.Game.Record)
}

func (s *GameServiceTestSuite) TestResetGame_NoStoredGameStartsFresh() {
	s.expectGameNotFound()
	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), &gameRepo.SaveGameInput{
			Game: &models.Game{
				PlayerID:   s.testPlayerID,
				PlayerName: s.testPlayerName,
				State:      engine.New(),
				CreatedAt:  s.testTime,
				UpdatedAt:  s.testTime,
			},
		}).
		Return(nil)

	output, err := s.gameService.ResetGame(s.ctx, &ResetGameInput{
		PlayerID:   s.testPlayerID,
		PlayerName: s.testPlayerName,
	})

	s.Require().NoError(err)
	s.Equal(engine.OutcomeGameReset, output.Outcome.Kind)
	s.Equal(s.testPlayerName, output.Game.PlayerName)
}

func (s *GameServiceTestSuite) TestResetGame_NoStoredGameWithoutName() {
	s.expectGameNotFound()

	output, err := s.gameService.ResetGame(s.ctx, &ResetGameInput{PlayerID: s.testPlayerID})

	s.Equal(ErrGameNotFound, err)
	s.Nil(output)
}

// GetScoreboard Tests

func (s *GameServiceTestSuite) TestGetScoreboard() {
	records := []*models.ScoreRecord{
		{ID: "a", PlayerName: "Alice", Points: 113},
		{ID: "b", PlayerName: "Bob", Points: 40},
	}
	s.mockScoreRepo.EXPECT().
		ListScores(gomock.Any(), &scoreRepo.ListScoresInput{Limit: 10}).
		Return(&scoreRepo.ListScoresOutput{Records: records}, nil)

	output, err := s.gameService.GetScoreboard(s.ctx, &GetScoreboardInput{Limit: 10})

	s.Require().NoError(err)
	s.Equal(records, output.Records)
}

func (s *GameServiceTestSuite) TestGetScoreboard_Error() {
	expectedError := errors.New("redis down")
	s.mockScoreRepo.EXPECT().
		ListScores(gomock.Any(), gomock.Any()).
		Return(nil, expectedError)

	output, err := s.gameService.GetScoreboard(s.ctx, nil)

	s.True(errors.Is(err, expectedError))
	s.Nil(output)
}

func TestNew_ValidatesConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	full := func() *Config {
		return &Config{
			GameRepo:      gameMocks.NewMockRepository(ctrl),
			ScoreRepo:     scoreMocks.NewMockRepository(ctrl),
			DiceRoller:    diceMocks.NewMockRoller(ctrl),
			Clock:         mocks.NewMockClock(ctrl),
			UUIDGenerator: uuidMocks.NewMockUUID(ctrl),
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config) *Config
		want   error
	}{
		{"nil config", func(*Config) *Config { return nil }, ErrNilConfig},
		{"nil game repo", func(c *Config) *Config { c.GameRepo = nil; return c }, ErrNilGameRepo},
		{"nil score repo", func(c *Config) *Config { c.ScoreRepo = nil; return c }, ErrNilScoreRepo},
		{"nil dice roller", func(c *Config) *Config { c.DiceRoller = nil; return c }, ErrNilDiceRoller},
		{"nil clock", func(c *Config) *Config { c.Clock = nil; return c }, ErrNilClock},
		{"nil uuid", func(c *Config) *Config { c.UUIDGenerator = nil; return c }, ErrNilUUIDGenerator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mutate(full()))
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}

	svc, err := New(full())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.dateLayout != DefaultDateLayout {
		t.Fatalf("date layout %q, want default", svc.dateLayout)
	}
}
