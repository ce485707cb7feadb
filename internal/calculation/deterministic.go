package calculation

import (
	"math/rand/v2"
	"sync"
	"time"
)

// seedFunc returns a pseudo-random seed (override for deterministic streak tests).
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides the seed provider (use only in tests).
func SetSeedFunc(f func() int64) { seedFunc = f }

// StreakSource supplies the "day streak" dashboard counter. The engine never
// invents one itself; without a source the streak is zero.
type StreakSource interface {
	Streak() int
}

// StreakFunc adapts a plain function to StreakSource.
type StreakFunc func() int

func (f StreakFunc) Streak() int { return f() }

// FixedStreak always reports the same value.
type FixedStreak int

func (s FixedStreak) Streak() int { return int(s) }

// RandomStreak reproduces the demo behaviour of a streak drawn uniformly from 1..30.
type RandomStreak struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomStreak seeds from the package seed provider.
func NewRandomStreak() *RandomStreak {
	seed := uint64(seedFunc())
	return &RandomStreak{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *RandomStreak) Streak() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(30) + 1
}
