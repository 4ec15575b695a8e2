package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/yatzy/internal/dice Roller

import (
	"math/rand"
	"sync"
	"time"
)

// Faces is the number of sides on every die in the game
const Faces = 6

// Roller draws die faces
type Roller interface {
	// NextFace returns a face in [1, Faces]
	NextFace() int
}

// RandomRoller is a Roller backed by a seeded math/rand source
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// NextFace returns a uniformly distributed face in [1, Faces]
func (r *RandomRoller) NextFace() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(Faces) + 1
}

// Sequence replays a fixed list of faces, wrapping around when exhausted.
// Useful for deterministic games in tests.
type Sequence struct {
	faces []int
	next  int
}

// NewSequence creates a Sequence roller over faces
func NewSequence(faces ...int) *Sequence {
	return &Sequence{faces: faces}
}

// NextFace returns the next face of the sequence
func (s *Sequence) NextFace() int {
	if len(s.faces) == 0 {
		return 1
	}
	face := s.faces[s.next%len(s.faces)]
	s.next++
	return face
}
