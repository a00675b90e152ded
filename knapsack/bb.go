// Package knapsack — Branch-and-Bound (exact search with an LP-relaxation bound).
//
// BranchAndBound explores a binary decision tree over the items taken in
// descending cost/weight order: a node at level L has decided items
// ranks[0..L-1] and branches on ranks[L] (include / exclude).
//
// Bound (fractional relaxation): from a node's (cost, weight), greedily add
// the remaining ranked items while they fit entirely; the first item that
// overflows contributes ⌊(capacity − weight)·cost/weight⌋ and the scan stops.
// Because the items are in ratio order the unfloored sum is the optimum of the
// LP relaxation. Every integral completion has an integer cost, so its floor
// is still an upper bound. The bound is computed in integers (128-bit product
// for the fractional item), never in float64. A node that is already
// overweight has bound 0.
//
// Search:
//  1. The root (level 0, empty selection) carries the bound of the full relaxation.
//  2. A popped node is expanded only if its bound exceeds the incumbent cost;
//     otherwise it is pruned. Leaves (level n) are never expanded.
//  3. The include child inherits the parent's bound (the relaxation already
//     counted that item in full or it overflows and the child is infeasible).
//     If feasible it may replace the incumbent and is pushed while its bound
//     still beats the incumbent.
//  4. The exclude child recomputes its bound from its own state (the skipped
//     item is gone from its relaxation) and is pushed under the same rule.
//
// Frontier order is a policy (see FrontierPolicy). Every policy is exact; the
// policy only changes pruning efficiency and which optimum is reported on ties.
//
// Nodes are immutable after creation: the include child clones the parent's
// selection bitset, the exclude child shares it.
//
// Complexity:
//   - Worst case exponential in n. Practical speed comes from pruning.
//   - Per node: O(n) bound + O(n/64) selection clone.
//
// Sums cannot overflow: instances are validated to a total cost of at most
// MaxTotalCost and a total weight within int64.
package knapsack

import (
	"container/heap"
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// bbNode is one search-tree node.
type bbNode struct {
	level    int            // index into the ratio ranking of the next item to decide
	selected *bitset.BitSet // original indices taken so far; never mutated after creation
	cost     int64
	weight   int64
	bound    int64
	seq      uint64 // creation order; tie-break for BestFirst
}

// frontier is the container of nodes awaiting expansion.
type frontier interface {
	push(nd *bbNode)
	pop() *bbNode
	len() int
}

// fifoFrontier pops in push order.
type fifoFrontier struct {
	buf  []*bbNode
	head int
}

func (f *fifoFrontier) push(nd *bbNode) { f.buf = append(f.buf, nd) }
func (f *fifoFrontier) len() int        { return len(f.buf) - f.head }
func (f *fifoFrontier) pop() *bbNode {
	nd := f.buf[f.head]
	f.buf[f.head] = nil
	f.head++
	// Compact once the consumed prefix dominates the buffer.
	if f.head > 1024 && f.head*2 > len(f.buf) {
		f.buf = append(f.buf[:0], f.buf[f.head:]...)
		f.head = 0
	}

	return nd
}

// lifoFrontier pops the most recently pushed node.
type lifoFrontier struct{ buf []*bbNode }

func (f *lifoFrontier) push(nd *bbNode) { f.buf = append(f.buf, nd) }
func (f *lifoFrontier) len() int        { return len(f.buf) }
func (f *lifoFrontier) pop() *bbNode {
	last := len(f.buf) - 1
	nd := f.buf[last]
	f.buf[last] = nil
	f.buf = f.buf[:last]

	return nd
}

// nodeHeap is a max-heap on bound; equal bounds pop oldest first.
type nodeHeap []*bbNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].bound == h[j].bound {
		return h[i].seq < h[j].seq
	}

	return h[i].bound > h[j].bound
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(*bbNode)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	nd := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return nd
}

// bestFirstFrontier adapts nodeHeap to frontier.
type bestFirstFrontier struct{ h nodeHeap }

func (f *bestFirstFrontier) push(nd *bbNode) { heap.Push(&f.h, nd) }
func (f *bestFirstFrontier) pop() *bbNode    { return heap.Pop(&f.h).(*bbNode) }
func (f *bestFirstFrontier) len() int        { return f.h.Len() }

// newFrontier builds the container for policy p.
func newFrontier(p FrontierPolicy) frontier {
	switch p {
	case BreadthFirst:
		return &fifoFrontier{}
	case DepthFirst:
		return &lifoFrontier{}
	default:
		return &bestFirstFrontier{}
	}
}

// bbEngine holds the per-call search state.
type bbEngine struct {
	n        int
	capacity int64
	items    []Item
	ranks    []Ranked

	front frontier
	seq   uint64

	best *bbNode // incumbent

	// Counters, reported to tests through bbStats.
	expanded int
	pruned   int
}

// bbStats summarises one search.
type bbStats struct {
	Expanded int
	Pruned   int
}

// newNode stamps a node with the next sequence number.
func (e *bbEngine) newNode(level int, sel *bitset.BitSet, cost, weight, bound int64) *bbNode {
	e.seq++

	return &bbNode{level: level, selected: sel, cost: cost, weight: weight, bound: bound, seq: e.seq}
}

// bound computes the floored fractional-relaxation upper bound for a node state.
func (e *bbEngine) bound(level int, cost, weight int64) int64 {
	if weight > e.capacity {
		return 0
	}

	var (
		ub    = cost
		total = weight
		it    Item
	)
	for ; level < e.n; level++ {
		it = e.items[e.ranks[level].Index]
		if it.Weight > e.capacity-total {
			ub += fractionalCost(e.capacity-total, it)
			break
		}
		ub += it.Cost
		total += it.Weight
	}

	return ub
}

// fractionalCost returns ⌊room·cost/weight⌋ for an item that does not fit,
// i.e. 0 ≤ room < weight. The quotient is below cost, so it fits in int64.
func fractionalCost(room int64, it Item) int64 {
	hi, lo := bits.Mul64(uint64(room), uint64(it.Cost))
	q, _ := bits.Div64(hi, lo, uint64(it.Weight))

	return int64(q)
}

// expand branches on ranks[nd.level].
func (e *bbEngine) expand(nd *bbNode) {
	e.expanded++

	var (
		idx  = e.ranks[nd.level].Index
		it   = e.items[idx]
		next = nd.level + 1
		inc  *bbNode
		exc  *bbNode
	)

	// Include child: inherits the parent's bound.
	inc = e.newNode(next, nd.selected.Clone().Set(uint(idx)), nd.cost+it.Cost, nd.weight+it.Weight, nd.bound)
	if inc.weight <= e.capacity {
		if inc.cost > e.best.cost {
			e.best = inc
		}
		if inc.bound > e.best.cost {
			e.front.push(inc)
		}
	}

	// Exclude child: same selection, bound recomputed without this item.
	exc = e.newNode(next, nd.selected, nd.cost, nd.weight, 0)
	exc.bound = e.bound(exc.level, exc.cost, exc.weight)
	if exc.bound > e.best.cost {
		e.front.push(exc)
	}
}

// run drains the frontier.
func (e *bbEngine) run() {
	var nd *bbNode
	for e.front.len() > 0 {
		nd = e.front.pop()
		if nd.bound <= e.best.cost || nd.level >= e.n {
			e.pruned++
			continue
		}
		e.expand(nd)
	}
}

// search prepares the engine for (capacity, items) under policy p, runs it,
// and returns the result plus search counters.
func search(capacity int64, items []Item, p FrontierPolicy) (Result, bbStats) {
	n := len(items)
	e := bbEngine{
		n:        n,
		capacity: capacity,
		items:    items,
		ranks:    RankByRatio(items),
		front:    newFrontier(p),
	}

	empty := bitset.New(uint(n))
	e.best = e.newNode(0, empty, 0, 0, 0)
	root := e.newNode(0, empty, 0, 0, e.bound(0, 0, 0))
	e.front.push(root)
	e.run()

	return Result{
			Cost:        e.best.cost,
			Combination: combinationFromBitset(n, e.best.selected),
		}, bbStats{
			Expanded: e.expanded,
			Pruned:   e.pruned,
		}
}

// BranchAndBound solves the instance exactly with best-first
// branch-and-bound. Use Solve with Options.Frontier to pick another node
// ordering.
//
// Errors: ErrInvalidInput family.
//
// Complexity: exponential worst case; see the file header.
func BranchAndBound(number int, capacity int64, items []Item) (Result, error) {
	return branchAndBound(number, capacity, items, BestFirst)
}

// branchAndBound validates and runs the search under policy p.
func branchAndBound(number int, capacity int64, items []Item, p FrontierPolicy) (Result, error) {
	if err := validateInstance(number, capacity, items); err != nil {
		return Result{}, err
	}
	res, _ := search(capacity, items, p)

	return res, nil
}
