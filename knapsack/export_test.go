package knapsack

// White-box bridge for knapsack_test: exposes search counters without
// widening the production API.

// SearchStats runs branch-and-bound under policy p on already-valid input and
// returns the result with the number of expanded and pruned nodes.
func SearchStats(capacity int64, items []Item, p FrontierPolicy) (Result, int, int) {
	res, st := search(capacity, items, p)

	return res, st.Expanded, st.Pruned
}
