// Package knapsack defines the item model, result type, solver selection and
// sentinel errors shared by every 0/1 knapsack solver in this package.
package knapsack

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Error kinds. Every sentinel below wraps exactly one of them, so callers can
// branch either on the kind (errors.Is(err, ErrInvalidInput)) or on the
// precise cause (errors.Is(err, ErrNegativeWeight)).
var (
	// ErrInvalidInput classifies malformed instances: negative weights, costs
	// or capacity, and item counts that disagree with the item list.
	ErrInvalidInput = errors.New("knapsack: invalid input")

	// ErrInvalidParameter classifies bad solver parameters: scaling factor ≤ 1,
	// non-positive temperature or steps, unknown method or frontier policy.
	ErrInvalidParameter = errors.New("knapsack: invalid parameter")
)

// Sentinel errors returned by the solvers and the dispatcher.
var (
	// ErrNegativeWeight indicates an item with weight < 0.
	ErrNegativeWeight = fmt.Errorf("%w: negative item weight", ErrInvalidInput)

	// ErrNegativeCost indicates an item with cost < 0.
	ErrNegativeCost = fmt.Errorf("%w: negative item cost", ErrInvalidInput)

	// ErrNegativeCapacity indicates a knapsack capacity < 0.
	ErrNegativeCapacity = fmt.Errorf("%w: negative capacity", ErrInvalidInput)

	// ErrItemCountMismatch indicates number != len(items) or number < 0.
	ErrItemCountMismatch = fmt.Errorf("%w: item count mismatch", ErrInvalidInput)

	// ErrValueTooLarge indicates item totals the solvers cannot add up exactly:
	// total cost above MaxTotalCost, or total weight beyond math.MaxInt64.
	ErrValueTooLarge = fmt.Errorf("%w: item totals out of range", ErrInvalidInput)

	// ErrScalingFactor indicates an FPTAS scaling factor ≤ 1 (or NaN/Inf).
	ErrScalingFactor = fmt.Errorf("%w: scaling factor must be greater than 1", ErrInvalidParameter)

	// ErrTemperature indicates a non-positive (or non-finite) initial temperature.
	ErrTemperature = fmt.Errorf("%w: initial temperature must be positive", ErrInvalidParameter)

	// ErrSteps indicates a non-positive number of annealing steps per round.
	ErrSteps = fmt.Errorf("%w: steps must be positive", ErrInvalidParameter)

	// ErrCoolingRate indicates a cooling rate outside the open interval (0, 1).
	ErrCoolingRate = fmt.Errorf("%w: cooling rate must lie in (0, 1)", ErrInvalidParameter)

	// ErrUnsupportedMethod indicates an unknown Method value or name.
	ErrUnsupportedMethod = fmt.Errorf("%w: unsupported method", ErrInvalidParameter)

	// ErrUnsupportedFrontier indicates an unknown FrontierPolicy value or name.
	ErrUnsupportedFrontier = fmt.Errorf("%w: unsupported frontier policy", ErrInvalidParameter)

	// ErrInstanceTooLarge is returned by BruteForce when n exceeds MaxBruteForceItems.
	ErrInstanceTooLarge = errors.New("knapsack: instance too large for exhaustive enumeration")

	// ErrTableTooLarge is returned by the DP solvers when (n+1)·(capacity+1)
	// exceeds MaxTableCells.
	ErrTableTooLarge = errors.New("knapsack: dynamic-programming table too large")

	// ErrInfeasibleCombination indicates a combination whose true weight exceeds
	// the capacity, or whose shape does not match the instance.
	ErrInfeasibleCombination = errors.New("knapsack: infeasible combination")
)

// Limits guarding the exponential and pseudo-polynomial solvers.
const (
	// MaxBruteForceItems caps exhaustive enumeration (2^32 subsets).
	MaxBruteForceItems = 32

	// MaxTableCells caps the DP table at 2^27 int64 cells (1 GiB).
	MaxTableCells = 1 << 27

	// MaxTotalCost caps the summed cost of all items of an instance at 2^53,
	// the largest range in which every integer is also an exact float64.
	MaxTotalCost int64 = 1 << 53
)

// Item is a single knapsack item. Both fields must be non-negative.
type Item struct {
	Weight int64
	Cost   int64
}

// Instance is one knapsack problem: Number items, a capacity, and the items
// themselves. ID is carried through from the instance file and is ignored by
// the solvers.
type Instance struct {
	ID       int
	Number   int
	Capacity int64
	Items    []Item
}

// Result is the outcome of a solver run.
type Result struct {
	// Cost is the total cost of the selected items (always computed from the
	// original, unscaled item costs).
	Cost int64

	// Combination has exactly Number entries, each 0 or 1.
	Combination Combination
}

// Method selects one of the six solving strategies.
type Method int

const (
	// MethodBruteForce enumerates every subset. Exact, O(2ⁿ·n).
	MethodBruteForce Method = iota

	// MethodRatioGreedy adds items by descending cost/weight. Heuristic, O(n log n).
	MethodRatioGreedy

	// MethodDynamic runs the exact (item, capacity) recurrence. O(n·C).
	MethodDynamic

	// MethodBranchAndBound runs the LP-relaxation bounded tree search. Exact.
	MethodBranchAndBound

	// MethodFPTAS rescales weights and delegates to MethodDynamic. Approximate.
	MethodFPTAS

	// MethodAnnealing runs simulated annealing. Approximate, randomized.
	MethodAnnealing
)

// methodNames keeps the short names used by instance tooling and the CLI.
var methodNames = [...]string{
	MethodBruteForce:     "brute",
	MethodRatioGreedy:    "ratio",
	MethodDynamic:        "dynamic",
	MethodBranchAndBound: "bandb",
	MethodFPTAS:          "fptas",
	MethodAnnealing:      "sa",
}

// String returns the short method name ("brute", "ratio", ...).
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod maps a short method name to its Method.
func ParseMethod(name string) (Method, error) {
	for i, s := range methodNames {
		if s == name {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, name)
}

// Methods lists every supported method in declaration order.
func Methods() []Method {
	out := make([]Method, len(methodNames))
	for i := range methodNames {
		out[i] = Method(i)
	}

	return out
}

// FrontierPolicy controls the order in which branch-and-bound expands nodes.
// All policies return the same optimal cost; on ties they may return a
// different (equally good) combination, and they prune with different
// efficiency.
type FrontierPolicy int

const (
	// BestFirst pops the node with the highest bound (max-heap). Ties are
	// broken by creation order, which keeps runs deterministic.
	BestFirst FrontierPolicy = iota

	// BreadthFirst pops nodes in push order (FIFO).
	BreadthFirst

	// DepthFirst pops the most recently pushed node (LIFO).
	DepthFirst
)

var frontierNames = [...]string{
	BestFirst:    "best",
	BreadthFirst: "breadth",
	DepthFirst:   "depth",
}

// String returns the short frontier policy name.
func (p FrontierPolicy) String() string {
	if p < 0 || int(p) >= len(frontierNames) {
		return fmt.Sprintf("FrontierPolicy(%d)", int(p))
	}

	return frontierNames[p]
}

// ParseFrontierPolicy maps "best", "breadth" or "depth" to its policy.
func ParseFrontierPolicy(name string) (FrontierPolicy, error) {
	for i, s := range frontierNames {
		if s == name {
			return FrontierPolicy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFrontier, name)
}

// Default parameter values.
const (
	DefaultScalingFactor = 4.0
	DefaultInitTemp      = 100.0
	DefaultSteps         = 100
	DefaultCoolingRate   = 0.85
)

// Options configures Solve.
//
//   - Method        — which solver to run.
//   - ScalingFactor — FPTAS weight divisor; must be > 1.
//   - InitTemp      — annealing start temperature; must be > 0.
//   - Steps         — annealing moves per temperature; must be > 0.
//   - CoolingRate   — annealing geometric cooling factor in (0, 1).
//   - Seed          — annealing seed when Rand is nil; 0 selects a fixed default.
//   - Rand          — optional caller-owned random source; never shared across goroutines.
//   - Frontier      — branch-and-bound node ordering.
type Options struct {
	Method        Method
	ScalingFactor float64
	InitTemp      float64
	Steps         int
	CoolingRate   float64
	Seed          int64
	Rand          *rand.Rand
	Frontier      FrontierPolicy
}

// DefaultOptions returns Options with the package defaults:
// brute force, scaling factor 4, temperature 100, 100 steps, cooling 0.85,
// best-first frontier, deterministic seed.
func DefaultOptions() Options {
	return Options{
		Method:        MethodBruteForce,
		ScalingFactor: DefaultScalingFactor,
		InitTemp:      DefaultInitTemp,
		Steps:         DefaultSteps,
		CoolingRate:   DefaultCoolingRate,
		Frontier:      BestFirst,
	}
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
