// Package engine implements the turn cycle and scoring of an upper-section
// dice game. Every command is a pure function from one GameState to the next;
// a rejected command returns the state it was given unchanged.
package engine

import (
	"fmt"

	"github.com/KirkDiggler/yatzy/internal/dice"
)

// New returns a game at the start of its first turn
func New() GameState {
	return GameState{
		Dice:           freshDice(),
		RollsRemaining: MaxRolls,
		Selections:     []CategorySelection{},
	}
}

// Reset discards all progress and returns a fresh game
func Reset() (GameState, Outcome) {
	return New(), Outcome{Kind: OutcomeGameReset}
}

// Roll throws every unheld die
func Roll(state GameState, roller dice.Roller) (GameState, Outcome, error) {
	if roller == nil {
		return state, Outcome{}, ErrNilRoller
	}
	if state.Complete {
		return state, Outcome{}, fmt.Errorf("%w: game is complete", ErrInvalidCommandState)
	}
	if state.RollsRemaining <= 0 {
		return state, Outcome{}, fmt.Errorf("%w: %w", ErrInvalidCommandState, ErrNoRollsRemaining)
	}

	next := state.clone()
	for i := range next.Dice {
		if next.Dice[i].Held {
			continue
		}
		face := roller.NextFace()
		if face < 1 || face > dice.Faces {
			return state, Outcome{}, fmt.Errorf("%w: %d", ErrInvalidFace, face)
		}
		next.Dice[i].Value = face
	}
	next.RollsRemaining--
	next.DiceRolled = true

	return next, Outcome{Kind: OutcomeRolled}, nil
}

// ToggleHold flips the held flag of the die at index
func ToggleHold(state GameState, index int) (GameState, Outcome, error) {
	if index < 0 || index >= NumDice {
		return state, Outcome{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, NumDice)
	}
	if state.Complete {
		return state, Outcome{}, fmt.Errorf("%w: game is complete", ErrInvalidCommandState)
	}

	next := state.clone()
	next.Dice[index].Held = !next.Dice[index].Held

	return next, Outcome{Kind: OutcomeHoldToggled, DieIndex: index}, nil
}

// ChooseCategory scores the held dice against category and ends the turn.
// Choosing a category no held die matches is legal and scores zero.
func ChooseCategory(state GameState, category int) (GameState, Outcome, error) {
	if category < 1 || category > NumCategories {
		return state, Outcome{}, fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidCategory, category, NumCategories)
	}
	if state.Complete {
		return state, Outcome{}, fmt.Errorf("%w: game is complete", ErrInvalidCommandState)
	}
	if state.HasCategory(category) {
		return state, Outcome{}, fmt.Errorf("%w: %d", ErrDuplicateCategory, category)
	}

	points := state.PotentialPoints(category)

	next := state.clone()
	next.Selections = append(next.Selections, CategorySelection{
		Category: category,
		Points:   points,
	})
	next.TotalPoints += points

	outcome := Outcome{
		Kind:     OutcomeCategoryScored,
		Category: category,
		Points:   points,
	}
	if points == 0 {
		outcome.Kind = OutcomeZeroScoreSelectionConfirmed
	}

	if next.TotalPoints >= BonusThreshold && !next.BonusAwarded {
		next.BonusAwarded = true
		outcome.BonusAwarded = true
	}

	if len(next.Selections) == NumCategories {
		next.Complete = true
		outcome.Completed = true
		return next, outcome, nil
	}

	next.Dice = freshDice()
	next.RollsRemaining = MaxRolls
	next.DiceRolled = false

	return next, outcome, nil
}

// Phase reports where the game is in its turn cycle
func (s GameState) Phase() Phase {
	switch {
	case s.Complete:
		return PhaseComplete
	case s.DiceRolled:
		return PhaseRolled
	default:
		return PhaseAwaitingRoll
	}
}

// FinalPoints is the total including the bonus when it was awarded
func (s GameState) FinalPoints() int {
	if s.BonusAwarded {
		return s.TotalPoints + BonusPoints
	}
	return s.TotalPoints
}

// BonusRemaining is how many points are still needed for the bonus
func (s GameState) BonusRemaining() int {
	if s.TotalPoints >= BonusThreshold {
		return 0
	}
	return BonusThreshold - s.TotalPoints
}

// HasCategory reports whether category has already been chosen
func (s GameState) HasCategory(category int) bool {
	_, ok := s.Selection(category)
	return ok
}

// Selection returns the selection made for category, if any
func (s GameState) Selection(category int) (CategorySelection, bool) {
	for _, sel := range s.Selections {
		if sel.Category == category {
			return sel, true
		}
	}
	return CategorySelection{}, false
}

// AvailableCategories lists the categories not yet chosen, ascending
func (s GameState) AvailableCategories() []int {
	available := make([]int, 0, NumCategories)
	for c := 1; c <= NumCategories; c++ {
		if !s.HasCategory(c) {
			available = append(available, c)
		}
	}
	return available
}

// PotentialPoints is what choosing category would award with the current holds
func (s GameState) PotentialPoints(category int) int {
	matching := 0
	for _, d := range s.Dice {
		if d.Held && d.Value == category {
			matching++
		}
	}
	return matching * category
}

func (s GameState) clone() GameState {
	next := s
	next.Selections = make([]CategorySelection, len(s.Selections))
	copy(next.Selections, s.Selections)
	return next
}

func freshDice() DiceSet {
	var set DiceSet
	for i := range set {
		set[i] = Die{Value: DefaultFace}
	}
	return set
}
