package engine

const (
	// NumDice is the size of the dice set
	NumDice = 5

	// MaxRolls is the number of rolls a player gets each turn
	MaxRolls = 3

	// NumCategories is the number of scoring categories, one per face
	NumCategories = 6

	// BonusThreshold is the pre-bonus total that earns the bonus
	BonusThreshold = 63

	// BonusPoints is added to the final score once the threshold is reached
	BonusPoints = 50

	// DefaultFace is the face every die shows before the first roll of a turn
	DefaultFace = 1
)

// Phase is the position of a game in its turn cycle
type Phase string

const (
	// PhaseAwaitingRoll is the start of a turn, no dice thrown yet
	PhaseAwaitingRoll Phase = "awaiting_roll"

	// PhaseRolled means at least one roll happened this turn
	PhaseRolled Phase = "rolled"

	// PhaseComplete means all categories are filled
	PhaseComplete Phase = "complete"
)

// Die is a single die in the set
type Die struct {
	Value int  `json:"value"`
	Held  bool `json:"held"`
}

// DiceSet is the fixed, ordered set of dice
type DiceSet [NumDice]Die

// CategorySelection records the points awarded for a category
type CategorySelection struct {
	Category int `json:"category"`
	Points   int `json:"points"`
}

// GameState is one player's game. It is treated as a value: commands
// return a new GameState and leave the one they were given untouched.
type GameState struct {
	Dice           DiceSet             `json:"dice"`
	RollsRemaining int                 `json:"rollsRemaining"`
	Selections     []CategorySelection `json:"categorySelections"`

	// TotalPoints is the pre-bonus sum of all selections
	TotalPoints  int  `json:"totalPoints"`
	BonusAwarded bool `json:"bonusAwarded"`
	DiceRolled   bool `json:"diceHaveBeenRolled"`
	Complete     bool `json:"isComplete"`
}

// OutcomeKind describes what a command did
type OutcomeKind string

const (
	OutcomeRolled                      OutcomeKind = "rolled"
	OutcomeHoldToggled                 OutcomeKind = "hold_toggled"
	OutcomeCategoryScored              OutcomeKind = "category_scored"
	OutcomeZeroScoreSelectionConfirmed OutcomeKind = "zero_score_selection_confirmed"
	OutcomeGameReset                   OutcomeKind = "game_reset"
)

// Outcome carries the facts derived while applying a command
type Outcome struct {
	Kind OutcomeKind

	// Category and Points are set for category selections
	Category int
	Points   int

	// DieIndex is set when a hold was toggled
	DieIndex int

	// BonusAwarded is true only on the command that crossed the threshold
	BonusAwarded bool

	// Completed is true only on the command that filled the last category
	Completed bool
}
