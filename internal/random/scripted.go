package random

import (
	"sync"

	"github.com/osse101/CoinBot_Go/internal/domain"
)

// Scripted replays fixed outcomes, for tests. Each stream advances
// independently; once exhausted it keeps returning its last value.
// UniformInt clamps scripted values into the requested range.
type Scripted struct {
	mu    sync.Mutex
	ints  []int64
	flips []domain.CoinFace
	rolls []int
}

var _ Resolver = (*Scripted)(nil)

// NewScripted creates an empty script; unscripted calls return the lowest outcome
func NewScripted() *Scripted {
	return &Scripted{}
}

// WithInts queues UniformInt results
func (s *Scripted) WithInts(v ...int64) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints = append(s.ints, v...)
	return s
}

// WithFlips queues CoinFlip results
func (s *Scripted) WithFlips(v ...domain.CoinFace) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flips = append(s.flips, v...)
	return s
}

// WithRolls queues DiceRoll results
func (s *Scripted) WithRolls(v ...int) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolls = append(s.rolls, v...)
	return s
}

func (s *Scripted) UniformInt(low, high int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := next(&s.ints)
	if !ok {
		return low
	}
	return min(max(v, low), high)
}

func (s *Scripted) CoinFlip() domain.CoinFace {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := next(&s.flips)
	if !ok {
		return domain.Heads
	}
	return v
}

func (s *Scripted) DiceRoll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := next(&s.rolls)
	if !ok {
		return 1
	}
	return v
}

func next[T any](queue *[]T) (T, bool) {
	var zero T
	switch len(*queue) {
	case 0:
		return zero, false
	case 1:
		return (*queue)[0], true
	default:
		v := (*queue)[0]
		*queue = (*queue)[1:]
		return v, true
	}
}
