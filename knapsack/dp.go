// Package knapsack — exact dynamic programming over (item count, capacity).
//
// best(i, j) is the highest cost reachable with the first i items under a
// weight budget j:
//
//	best(0, j) = 0
//	best(i, j) = best(i−1, j)                                  if w[i−1] > j
//	best(i, j) = max(best(i−1, j), best(i−1, j−w[i−1]) + c[i−1]) otherwise
//
// The table is filled bottom-up, row by row, into a flat buffer owned by a
// single call. Each cell is written exactly once and never revisited, so the
// table is never shared between calls or reused for other inputs.
//
// Reconstruction walks i = n … 1 and marks item i−1 whenever
// best(i, j) ≠ best(i−1, j), then spends its weight from j.
//
// Complexity: O(n·C) time and space, C = capacity.
package knapsack

import "fmt"

// dpTable is the per-call memo: cells[i*stride+j] = best(i, j).
type dpTable struct {
	stride int
	cells  []int64
}

// at returns best(i, j).
func (t *dpTable) at(i, j int) int64 { return t.cells[i*t.stride+j] }

// newDPTable allocates an (n+1)×(capacity+1) table, refusing sizes above
// MaxTableCells.
func newDPTable(n int, capacity int64) (*dpTable, error) {
	rows := int64(n) + 1
	if capacity >= MaxTableCells/rows {
		return nil, fmt.Errorf("%w: %d rows, capacity %d, limit %d cells", ErrTableTooLarge, rows, capacity, MaxTableCells)
	}
	stride := int(capacity) + 1

	return &dpTable{stride: stride, cells: make([]int64, int(rows)*stride)}, nil
}

// fill computes every row. Row 0 is already zero.
func (t *dpTable) fill(items []Item) {
	var (
		i, j  int
		w     int
		c     int64
		skip  int64
		take  int64
		prev  []int64
		row   []int64
		limit = t.stride
	)
	for i = 1; i <= len(items); i++ {
		prev = t.cells[(i-1)*t.stride : i*t.stride]
		row = t.cells[i*t.stride : (i+1)*t.stride]
		c = items[i-1].Cost
		// Weights above the capacity can never be taken; clamp before the int conversion.
		if items[i-1].Weight >= int64(limit) {
			copy(row, prev)
			continue
		}
		w = int(items[i-1].Weight)
		copy(row[:w], prev[:w])
		for j = w; j < limit; j++ {
			skip = prev[j]
			take = prev[j-w] + c
			if take > skip {
				row[j] = take
			} else {
				row[j] = skip
			}
		}
	}
}

// reconstruct backtracks the selection for budget capacity.
func (t *dpTable) reconstruct(items []Item, capacity int64) Combination {
	var (
		n    = len(items)
		comb = NewCombination(n)
		j    = int(capacity)
		i    int
	)
	for i = n; i >= 1; i-- {
		if t.at(i, j) != t.at(i-1, j) {
			comb[i-1] = 1
			j -= int(items[i-1].Weight)
		}
	}

	return comb
}

// DynamicProgramming solves the instance exactly with the (item, capacity)
// recurrence described in the file header.
//
// Errors: ErrInvalidInput family; ErrTableTooLarge when (n+1)·(capacity+1)
// exceeds MaxTableCells.
//
// Complexity: O(n·C) time and space.
func DynamicProgramming(number int, capacity int64, items []Item) (Result, error) {
	if err := validateInstance(number, capacity, items); err != nil {
		return Result{}, err
	}

	return solveDP(capacity, items)
}

// solveDP runs the recurrence on already-validated input.
func solveDP(capacity int64, items []Item) (Result, error) {
	t, err := newDPTable(len(items), capacity)
	if err != nil {
		return Result{}, err
	}
	t.fill(items)

	return Result{
		Cost:        t.at(len(items), int(capacity)),
		Combination: t.reconstruct(items, capacity),
	}, nil
}
