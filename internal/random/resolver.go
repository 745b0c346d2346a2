// Package random resolves the chance outcomes of bets and claims.
package random

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/osse101/CoinBot_Go/internal/domain"
)

// Resolver produces uniform outcomes. Implementations must be safe for concurrent use.
type Resolver interface {
	// UniformInt returns an integer in [low, high], both ends inclusive
	UniformInt(low, high int64) int64
	CoinFlip() domain.CoinFace
	// DiceRoll returns a face in [1, 6]
	DiceRoll() int
}

// Source is the production Resolver backed by a PCG generator
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ Resolver = (*Source)(nil)

// New creates a Source. A zero seed picks one from the clock so runs differ;
// any other seed replays the same sequence.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^pcgStream))}
}

func (s *Source) UniformInt(low, high int64) int64 {
	if low > high {
		return low
	}
	span := uint64(high-low) + 1

	s.mu.Lock()
	defer s.mu.Unlock()
	if span == 0 {
		// [MinInt64, MaxInt64]
		return int64(s.rng.Uint64()) //nolint:gosec // Game logic randomness, not security critical
	}
	return low + int64(s.rng.Uint64N(span)) //nolint:gosec // Game logic randomness, not security critical
}

func (s *Source) CoinFlip() domain.CoinFace {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rng.IntN(2) == 0 {
		return domain.Heads
	}
	return domain.Tails
}

func (s *Source) DiceRoll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(domain.DiceFaces) + 1
}
