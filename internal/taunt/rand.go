package taunt

import (
	"math/rand"
	"time"
)

// Rand is the randomness the engine needs: a uniform integer in [0, n).
// *rand.Rand satisfies it; tests inject a scripted fake.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a time-seeded source for production use.
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
