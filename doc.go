// Package knapsack is the root of the knapsack module: 0/1 knapsack solvers
// and the tooling to run them over instance files.
//
// Layout:
//
//	knapsack/     — item model, the six solvers, Solve dispatcher, sentinel errors
//	instance/     — instance file reader, solution writer, gzip/zstd/lz4 streams
//	runner/       — parallel batch solving with repetitions, result cache, metrics
//	config/       — YAML run configuration
//	logging/      — zap logger construction
//	cmd/knapsack/ — command-line front end
//	examples/     — runnable scenarios
//
// Solvers:
//
//   - BruteForce: exhaustive enumeration (exact, n ≤ 32).
//   - RatioGreedy: one pass by descending cost/weight (heuristic).
//   - DynamicProgramming: (item, capacity) table (exact, O(n·C)).
//   - FPTAS: rescaled weights, then DynamicProgramming (approximate).
//   - BranchAndBound: LP-relaxation bounded tree search (exact).
//   - Annealing: simulated annealing with an injectable random source (approximate).
//
// Quick example:
//
//	inst := knapsack.Instance{ID: 1, Number: 2, Capacity: 10,
//		Items: []knapsack.Item{{Weight: 1, Cost: 2}, {Weight: 10, Cost: 15}}}
//	opts := knapsack.DefaultOptions()
//	opts.Method = knapsack.MethodDynamic
//	res, err := knapsack.Solve(inst, opts) // res.Cost == 15, res.Combination == [0 1]
package knapsack
