package engine

// Error is a rejection returned by a command
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidCommandState Error = "invalid command state"
	ErrDuplicateCategory   Error = "category already selected"
	ErrIndexOutOfRange     Error = "die index out of range"
	ErrInvalidCategory     Error = "category out of range"
	ErrNilRoller           Error = "dice roller cannot be nil"
	ErrInvalidFace         Error = "dice roller returned an invalid face"

	// ErrNoRollsRemaining is always wrapped together with ErrInvalidCommandState
	ErrNoRollsRemaining Error = "no rolls remaining"
)
