// Package knapsack provides 0/1 knapsack solvers.
//
// Given n items with non-negative integer weights and costs and a capacity C,
// every solver selects a subset maximising total cost subject to total
// weight ≤ C, and returns the cost together with a 0/1 combination vector of
// length n.
//
// Solvers (all free functions over an explicit item list):
//
//   - BruteForce: exhaustive enumeration. Exact, O(2ⁿ·n), n ≤ MaxBruteForceItems.
//   - RatioGreedy: one pass in descending cost/weight order. Heuristic, O(n log n).
//   - DynamicProgramming: bottom-up (item, capacity) table. Exact, O(n·C).
//   - FPTAS: weights scaled by s > 1, then DynamicProgramming. Approximate, O(n·C/s).
//   - BranchAndBound: tree search pruned by the LP-relaxation bound. Exact.
//   - Annealing: simulated annealing with a caller-owned *rand.Rand. Approximate.
//
// Solve dispatches by Method and validates Options at the boundary. No solver
// logs, panics on user input, or keeps state between calls.
//
// Errors are sentinels from types.go. Each wraps one of two kinds,
// ErrInvalidInput or ErrInvalidParameter, so both levels work with errors.Is.
package knapsack
