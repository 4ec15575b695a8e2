package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/yatzy/internal/dice"
	"github.com/KirkDiggler/yatzy/internal/engine"
	"github.com/KirkDiggler/yatzy/internal/services/game"
)

// service implements the Service interface
type service struct {
	// rand is not safe for concurrent use
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// pick selects a random entry
func (s *service) pick(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rand.Intn(len(options))]
}

// GetGameStartedMessage returns a message for a new or resumed game
func (s *service) GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*GetGameStartedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	if input.Resumed {
		messages = []string{
			fmt.Sprintf("Welcome back, %s! Your dice are right where you left them.", input.PlayerName),
			fmt.Sprintf("%s returns! Let's finish what you started.", input.PlayerName),
			"Picking up where you left off. The scorecard remembers everything.",
		}
	} else {
		messages = []string{
			fmt.Sprintf("Fresh scorecard for %s! Six categories, sixty-three for the bonus.", input.PlayerName),
			"Game started! Roll the dice and start hunting for matches.",
			"Five dice, three rolls a turn. Make them count!",
			fmt.Sprintf("The dice are warm and ready, %s. Roll when you are.", input.PlayerName),
		}
	}

	return &GetGameStartedMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetRollResultMessage returns a message describing a roll
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	face, count := bestGroup(input.Dice)

	var titles, messages []string
	switch {
	case count == engine.NumDice:
		titles = []string{"YATZY!", "Five of a kind!", "All the same!"}
		messages = []string{
			fmt.Sprintf("Five %ds! Hold them all and cash in.", face),
			fmt.Sprintf("%s rolled five %ds. The dice gods are smiling.", input.PlayerName, face),
		}
	case count == 4:
		titles = []string{"Four of a kind!", "So close!", "Big roll!"}
		messages = []string{
			fmt.Sprintf("Four %ds on the table. One more would be perfect.", face),
			fmt.Sprintf("%s lands four %ds. Hold them and chase the fifth?", input.PlayerName, face),
		}
	case count == 3:
		titles = []string{"Three of a kind", "Nice set", "Getting somewhere"}
		messages = []string{
			fmt.Sprintf("Three %ds. That's a solid start.", face),
			fmt.Sprintf("A trio of %ds for %s.", face, input.PlayerName),
		}
	default:
		titles = []string{"Meh.", "Scattered dice", "Keep rolling"}
		messages = []string{
			"Nothing lines up yet. Hold what you like and roll again.",
			"The dice are all over the place.",
			fmt.Sprintf("%s rolled a mixed bag.", input.PlayerName),
		}
	}

	message := s.pick(messages)
	switch input.RollsRemaining {
	case 0:
		message += " No rolls left, time to pick a category."
	case 1:
		message += " One roll left."
	}

	return &GetRollResultMessageOutput{
		Title:   s.pick(titles),
		Message: message,
	}, nil
}

// GetCategoryMessage returns a message for a scored category
func (s *service) GetCategoryMessage(ctx context.Context, input *GetCategoryMessageInput) (*GetCategoryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	outcome := input.Outcome
	var messages []string
	var tone MessageTone

	switch {
	case outcome.BonusAwarded:
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("Bonus unlocked! %d points in the upper section earns you %d more.", engine.BonusThreshold, engine.BonusPoints),
			fmt.Sprintf("%s hits the bonus! +%d!", input.PlayerName, engine.BonusPoints),
		}
	case outcome.Kind == engine.OutcomeZeroScoreSelectionConfirmed:
		tone = ToneFunny
		messages = []string{
			fmt.Sprintf("Scratched the %ds for zero. Sometimes you take the hit.", outcome.Category),
			fmt.Sprintf("Zero in %ds. Strategic sacrifice, surely.", outcome.Category),
			fmt.Sprintf("%s writes a big fat zero next to the %ds.", input.PlayerName, outcome.Category),
		}
	default:
		tone = ToneEncouraging
		messages = []string{
			fmt.Sprintf("%d points in the %ds.", outcome.Points, outcome.Category),
			fmt.Sprintf("%s banks %d in the %ds.", input.PlayerName, outcome.Points, outcome.Category),
			fmt.Sprintf("The %ds are filled with %d points.", outcome.Category, outcome.Points),
		}
	}

	message := s.pick(messages)
	if !outcome.Completed && input.BonusRemaining > 0 {
		message += fmt.Sprintf(" %d more for the bonus.", input.BonusRemaining)
	}

	return &GetCategoryMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// GetGameCompletedMessage returns a message for a finished game
func (s *service) GetGameCompletedMessage(ctx context.Context, input *GetGameCompletedMessageInput) (*GetGameCompletedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var titles, messages []string
	if input.BonusAwarded {
		titles = []string{"Game over, bonus secured!", "What a finish!"}
		messages = []string{
			fmt.Sprintf("%s finishes with %d points, bonus included.", input.PlayerName, input.FinalPoints),
			fmt.Sprintf("%d points! The bonus made all the difference.", input.FinalPoints),
		}
	} else {
		titles = []string{"Game over", "That's a wrap", "Scorecard full"}
		messages = []string{
			fmt.Sprintf("%s finishes with %d points.", input.PlayerName, input.FinalPoints),
			fmt.Sprintf("%d points. The bonus got away this time.", input.FinalPoints),
			fmt.Sprintf("Final tally for %s: %d.", input.PlayerName, input.FinalPoints),
		}
	}

	return &GetGameCompletedMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch input.ErrorType {
	case ErrorTypeNoGame:
		messages = []string{
			"You don't have a game yet. Start one first!",
			"No scorecard found. Use start to begin a game.",
		}
	case ErrorTypeNoRollsLeft:
		messages = []string{
			"Out of rolls! Pick a category to end the turn.",
			"Three rolls is all you get. Time to score.",
		}
	case ErrorTypeInvalidState:
		messages = []string{
			"That move isn't allowed right now.",
			"The game is over. Reset to play again.",
		}
	case ErrorTypeDuplicateCategory:
		messages = []string{
			"You've already filled that category. Pick another one.",
			"That box is taken! Choose a different category.",
		}
	case ErrorTypeIndexOutOfRange:
		messages = []string{
			fmt.Sprintf("There are only %d dice. Pick one from 1 to %d.", engine.NumDice, engine.NumDice),
			"That die doesn't exist. Count again?",
		}
	case ErrorTypeInvalidCategory:
		messages = []string{
			fmt.Sprintf("Categories run from 1 to %d.", engine.NumCategories),
			"That's not a category on this scorecard.",
		}
	case ErrorTypePersistenceFailure:
		messages = []string{
			"Your game counts, but the score didn't reach the scoreboard. Try saving it again.",
			"The scoreboard is having trouble. Your result is kept, retry the save later.",
		}
	default:
		messages = []string{
			"Something went wrong! Try again later.",
			"Oops! The dice got confused. Try again.",
			"Technical difficulties! The dice are being recalibrated.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// ClassifyError maps a game service error to the ErrorType shown to players
func ClassifyError(err error) ErrorType {
	switch {
	case err == nil:
		return ErrorTypeUnknown
	case errors.Is(err, game.ErrGameNotFound):
		return ErrorTypeNoGame
	case errors.Is(err, game.ErrPersistenceFailure):
		return ErrorTypePersistenceFailure
	case errors.Is(err, engine.ErrDuplicateCategory):
		return ErrorTypeDuplicateCategory
	case errors.Is(err, engine.ErrIndexOutOfRange):
		return ErrorTypeIndexOutOfRange
	case errors.Is(err, engine.ErrInvalidCategory):
		return ErrorTypeInvalidCategory
	case errors.Is(err, engine.ErrNoRollsRemaining):
		return ErrorTypeNoRollsLeft
	case errors.Is(err, engine.ErrInvalidCommandState):
		return ErrorTypeInvalidState
	default:
		return ErrorTypeUnknown
	}
}

// bestGroup returns the face shown most often, preferring the higher face on ties
func bestGroup(set engine.DiceSet) (face, count int) {
	var counts [dice.Faces + 1]int
	for _, d := range set {
		if d.Value >= 1 && d.Value <= dice.Faces {
			counts[d.Value]++
		}
	}
	for f := dice.Faces; f >= 1; f-- {
		if counts[f] > count {
			face, count = f, counts[f]
		}
	}
	return face, count
}
