// Package knapsack — simulated annealing.
//
// State: the current selection (ordered list of indices + membership bitset),
// the best selection seen, and a temperature that only decreases.
//
// Start: pick uniformly random not-yet-considered items and add each one
// that still fits; stop at the first one that does not. The start is feasible
// but neither maximal nor predictable.
//
// Moves from a selection S:
//   - every insertion S ∪ {i}, i ∉ S, that keeps the weight ≤ capacity (ascending i);
//   - every removal S \ {s}, s ∈ S (in selection order).
//
// Insertions and removals change |S| in opposite directions and distinct
// removals drop distinct items, so the move list never holds duplicate sets.
//
// Round: Steps times, draw one move uniformly; accept it if it strictly
// raises the current cost, else accept with probability exp(Δ/T) (Metropolis,
// Δ ≤ 0). Then cool: T ← T·α.
//
// Stop after a round whose starting cost was already ≥ the best cost (the
// round found nothing better than where it began), or once T ≤ 0.
package knapsack

import (
	"math"
	"math/rand"

	"github.com/bits-and-blooms/bitset"
)

// saMove is one neighbour: insert or remove item idx (removal by position in sol).
type saMove struct {
	insert bool
	idx    int // item index for insertions, position in sol for removals
}

// saState is the per-call annealing state.
type saState struct {
	capacity int64
	items    []Item
	rng      *rand.Rand

	sol    []int          // current selection, in insertion order
	member *bitset.BitSet // membership of sol
	cost   int64
	weight int64

	best     []int
	bestCost int64

	moves []saMove // scratch, rebuilt per step
}

// initSolution builds the random feasible start.
func (s *saState) initSolution() {
	var (
		pool = make([]int, len(s.items))
		i, k int
		it   Item
	)
	for i = range pool {
		pool[i] = i
	}
	for len(pool) > 0 {
		k = s.rng.Intn(len(pool))
		i = pool[k]
		pool = append(pool[:k], pool[k+1:]...)
		it = s.items[i]
		if s.weight+it.Weight > s.capacity {
			break
		}
		s.add(i)
	}
}

// add appends item i to the current selection.
func (s *saState) add(i int) {
	s.sol = append(s.sol, i)
	s.member.Set(uint(i))
	s.cost += s.items[i].Cost
	s.weight += s.items[i].Weight
}

// removeAt drops the item at position p of the current selection.
func (s *saState) removeAt(p int) {
	i := s.sol[p]
	s.sol = append(s.sol[:p], s.sol[p+1:]...)
	s.member.Clear(uint(i))
	s.cost -= s.items[i].Cost
	s.weight -= s.items[i].Weight
}

// neighbours fills s.moves with every feasible insertion then every removal.
func (s *saState) neighbours() {
	s.moves = s.moves[:0]

	var i int
	for i = range s.items {
		if !s.member.Test(uint(i)) && s.weight+s.items[i].Weight <= s.capacity {
			s.moves = append(s.moves, saMove{insert: true, idx: i})
		}
	}
	for i = range s.sol {
		s.moves = append(s.moves, saMove{insert: false, idx: i})
	}
}

// delta is the cost change of applying m.
func (s *saState) delta(m saMove) int64 {
	if m.insert {
		return s.items[m.idx].Cost
	}

	return -s.items[s.sol[m.idx]].Cost
}

// apply performs m on the current selection.
func (s *saState) apply(m saMove) {
	if m.insert {
		s.add(m.idx)
	} else {
		s.removeAt(m.idx)
	}
}

// snapshotBest records the current selection as the best one.
func (s *saState) snapshotBest() {
	s.best = append(s.best[:0], s.sol...)
	s.bestCost = s.cost
}

// accept is the Metropolis rule for a non-improving move.
func accept(delta int64, temp float64, rng *rand.Rand) bool {
	if temp <= 0 {
		return false
	}

	return math.Exp(float64(delta)/temp) > rng.Float64()
}

// simulate runs rounds until the stopping rule fires.
func (s *saState) simulate(initTemp float64, steps int, cooling float64) {
	var (
		temp      = initTemp
		roundCost int64
		step      int
		m         saMove
		d         int64
	)
	s.snapshotBest()
	for {
		roundCost = s.cost
		for step = 0; step < steps; step++ {
			s.neighbours()
			if len(s.moves) == 0 {
				break // no items at all
			}
			m = s.moves[s.rng.Intn(len(s.moves))]
			d = s.delta(m)
			if d > 0 {
				s.apply(m)
				if s.cost > s.bestCost {
					s.snapshotBest()
				}
				continue
			}
			if accept(d, temp, s.rng) {
				s.apply(m)
			}
		}

		temp *= cooling
		if roundCost >= s.bestCost || temp <= 0 {
			return
		}
	}
}

// Annealing approximates the optimum with simulated annealing using the
// default cooling factor DefaultCoolingRate. rng is owned by the caller for
// the duration of the call (nil selects the fixed default seed); the same seed
// yields the same result.
//
// Errors: ErrInvalidInput family; ErrTemperature; ErrSteps.
//
// Complexity: O(rounds·steps·n).
func Annealing(number int, capacity int64, items []Item, initTemp float64, steps int, rng *rand.Rand) (Result, error) {
	return annealing(number, capacity, items, initTemp, steps, DefaultCoolingRate, rng)
}

// annealing validates and runs one annealing call with an explicit cooling rate.
func annealing(number int, capacity int64, items []Item, initTemp float64, steps int, cooling float64, rng *rand.Rand) (Result, error) {
	if err := validateInstance(number, capacity, items); err != nil {
		return Result{}, err
	}
	if err := validateAnnealing(initTemp, steps, cooling); err != nil {
		return Result{}, err
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	s := saState{
		capacity: capacity,
		items:    items,
		rng:      rng,
		member:   bitset.New(uint(number)),
		moves:    make([]saMove, 0, number),
	}
	s.initSolution()
	s.simulate(initTemp, steps, cooling)

	return Result{Cost: s.bestCost, Combination: combinationFromIndices(number, s.best)}, nil
}
