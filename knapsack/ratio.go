package knapsack

import (
	"math"
	"sort"
)

// Ranked is one entry of a ratio ranking: the original item index and its
// cost/weight ratio.
type Ranked struct {
	Index int
	Ratio float64
}

// itemRatio returns cost/weight, or +Inf for zero-weight items: they always
// fit and never cost capacity, so they rank ahead of everything else.
func itemRatio(it Item) float64 {
	if it.Weight == 0 {
		return math.Inf(1)
	}

	return float64(it.Cost) / float64(it.Weight)
}

// byRatioDesc implements sort.Interface ordering by ratio descending.
// Used with sort.Stable, so equal ratios keep their original relative order.
type byRatioDesc []Ranked

func (r byRatioDesc) Len() int           { return len(r) }
func (r byRatioDesc) Less(i, j int) bool { return r[i].Ratio > r[j].Ratio }
func (r byRatioDesc) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }

// RankByRatio returns the items ordered by cost/weight ratio, highest first.
// The sort is stable: ties keep ascending original index.
//
// Complexity: O(n log n) time, O(n) space.
func RankByRatio(items []Item) []Ranked {
	out := make([]Ranked, len(items))
	var (
		i  int
		it Item
	)
	for i, it = range items {
		out[i] = Ranked{Index: i, Ratio: itemRatio(it)}
	}
	sort.Stable(byRatioDesc(out))

	return out
}
