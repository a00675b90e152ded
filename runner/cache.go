package runner

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/knapsack/knapsack"
)

// cacheEntry keeps the solved input next to its result so that a fingerprint
// collision is detected instead of served.
type cacheEntry struct {
	capacity int64
	items    []knapsack.Item
	result   knapsack.Result
}

// resultCache memoizes results of identical (options, instance) pairs within
// one pass over a batch. lru.Cache is safe for concurrent use.
type resultCache struct {
	entries *lru.Cache[uint64, cacheEntry]
}

func newResultCache(size int) (*resultCache, error) {
	entries, err := lru.New[uint64, cacheEntry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}

	return &resultCache{entries: entries}, nil
}

// fingerprint hashes everything that determines a result: the method, the
// parameters it reads, and the instance. The annealing seed only enters the
// key for MethodAnnealing; the other methods are deterministic.
func fingerprint(opts knapsack.Options, inst knapsack.Instance) uint64 {
	var (
		h   = xxhash.New()
		buf [8]byte
	)
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}

	put(uint64(opts.Method))
	switch opts.Method {
	case knapsack.MethodFPTAS:
		put(math.Float64bits(opts.ScalingFactor))
	case knapsack.MethodAnnealing:
		put(math.Float64bits(opts.InitTemp))
		put(uint64(opts.Steps))
		put(math.Float64bits(opts.CoolingRate))
		put(uint64(opts.Seed))
	case knapsack.MethodBranchAndBound:
		put(uint64(opts.Frontier))
	}

	put(uint64(inst.Capacity))
	put(uint64(len(inst.Items)))
	for _, it := range inst.Items {
		put(uint64(it.Weight))
		put(uint64(it.Cost))
	}

	return h.Sum64()
}

// get returns a private copy of the cached result for inst.
func (c *resultCache) get(key uint64, inst knapsack.Instance) (knapsack.Result, bool) {
	e, ok := c.entries.Get(key)
	if !ok || e.capacity != inst.Capacity || !slices.Equal(e.items, inst.Items) {
		return knapsack.Result{}, false
	}

	return knapsack.Result{Cost: e.result.Cost, Combination: slices.Clone(e.result.Combination)}, true
}

func (c *resultCache) add(key uint64, inst knapsack.Instance, res knapsack.Result) {
	c.entries.Add(key, cacheEntry{
		capacity: inst.Capacity,
		items:    slices.Clone(inst.Items),
		result:   knapsack.Result{Cost: res.Cost, Combination: slices.Clone(res.Combination)},
	})
}

// purge drops every entry. Run calls it before each repetition.
func (c *resultCache) purge() { c.entries.Purge() }
