package search

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/roadtrip/core"
)

// Source is the random source used for neighbour picks and shuffles.
// *math/rand.Rand satisfies it; tests may inject a scripted one.
//
// A Source is used by one run at a time; math/rand.Rand is not goroutine-safe.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// newTimeSeeded returns a source that differs from run to run.
func newTimeSeeded() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// shuffleCities permutes cs in place using src.
func shuffleCities(cs []*core.City, src Source) {
	if len(cs) <= 1 {
		return
	}
	src.Shuffle(len(cs), func(i, j int) { cs[i], cs[j] = cs[j], cs[i] })
}
