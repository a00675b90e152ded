package knapsack

// Annealing draws its moves from a *rand.Rand handed in by the caller, or from
// one seeded with Options.Seed below; the global math/rand source is never
// used. A *rand.Rand carries mutable state, so parallel annealing runs each
// need their own, seeded through DeriveSeed.

import "math/rand"

// defaultRNGSeed stands in for a zero Options.Seed, so that an unset seed
// still gives a repeatable annealing run.
const defaultRNGSeed int64 = 1

// rngFromSeed builds the annealing source when the caller supplies none.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed with
// a SplitMix64 finalizer, so that neighbouring stream ids yield unrelated
// seeds. The batch runner uses it to give every instance its own stream,
// which keeps results independent of worker scheduling.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
