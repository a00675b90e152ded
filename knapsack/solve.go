// Package knapsack — unified dispatcher for the knapsack solvers.
//
// Solve is the single entry point used by the batch runner and the CLI: it
// validates Options and the instance at the boundary, then routes to the
// selected solver. Each call owns its working state (DP table, search
// frontier, annealing state), so independent calls may run concurrently as
// long as they do not share Options.Rand.
package knapsack

import "fmt"

// Solve validates opts and inst, then runs opts.Method.
//
// Randomness: MethodAnnealing draws from opts.Rand when non-nil, otherwise
// from a fresh source seeded with opts.Seed (0 ⇒ fixed default seed).
//
// Errors: ErrInvalidParameter family for bad options, ErrInvalidInput family
// for bad instances, plus the solver-specific sentinels in types.go.
//
// Complexity: per method (see each solver).
func Solve(inst Instance, opts Options) (Result, error) {
	// Stage 1 — options at the boundary.
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	// Stage 2 — instance shape and values.
	if err := validateInstance(inst.Number, inst.Capacity, inst.Items); err != nil {
		return Result{}, fmt.Errorf("instance %d: %w", inst.ID, err)
	}

	// Stage 3 — route.
	switch opts.Method {
	case MethodBruteForce:
		return BruteForce(inst.Number, inst.Capacity, inst.Items)

	case MethodRatioGreedy:
		return RatioGreedy(inst.Number, inst.Capacity, inst.Items)

	case MethodDynamic:
		return DynamicProgramming(inst.Number, inst.Capacity, inst.Items)

	case MethodBranchAndBound:
		return branchAndBound(inst.Number, inst.Capacity, inst.Items, opts.Frontier)

	case MethodFPTAS:
		return FPTAS(inst.Number, inst.Capacity, inst.Items, opts.ScalingFactor)

	case MethodAnnealing:
		rng := opts.Rand
		if rng == nil {
			rng = rngFromSeed(opts.Seed)
		}

		return annealing(inst.Number, inst.Capacity, inst.Items, opts.InitTemp, opts.Steps, opts.CoolingRate, rng)

	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedMethod, opts.Method)
	}
}
