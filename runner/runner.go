// Package runner solves batches of knapsack instances.
//
// A Runner applies one set of knapsack.Options to every instance of a batch,
// solving up to Workers instances at a time, and repeats the whole batch
// Repeat times to measure the average solving time. Results keep the input
// order regardless of scheduling.
//
// The optional result cache only spans one repetition: duplicates inside a
// batch are solved once per pass, and every pass is timed on its own solves.
//
// Annealing is reproducible per instance: the instance at index i is solved
// with seed knapsack.DeriveSeed(opts.Seed, i), so the outcome does not depend
// on the number of workers or on which worker picked the instance.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knapsack/knapsack"
)

// Sentinel errors.
var (
	// ErrInvalidOption indicates a non-positive worker or repeat count, or a
	// negative cache size.
	ErrInvalidOption = errors.New("runner: invalid option")

	// ErrSharedRand indicates Options.Rand was set. A *rand.Rand cannot be
	// shared across workers; set Options.Seed instead.
	ErrSharedRand = errors.New("runner: Options.Rand cannot be shared across instances")
)

// Report is the outcome of Run.
type Report struct {
	// Solutions holds one result per input instance, in input order, from
	// the last repetition.
	Solutions []knapsack.Result

	// Repetitions is the number of completed passes over the batch.
	Repetitions int

	// Total is the summed wall time of all repetitions, Average is Total
	// divided by Repetitions.
	Total   time.Duration
	Average time.Duration
}

// Runner drives knapsack.Solve over batches of instances.
type Runner struct {
	opts    knapsack.Options
	workers int
	repeat  int

	cacheSize int
	cache     *resultCache

	logger  *zap.Logger
	metrics MetricsCollector
}

// New builds a Runner for opts. Defaults: one worker, one repetition, no
// cache, zap.NewNop logger, NoopMetrics.
func New(opts knapsack.Options, options ...Option) (*Runner, error) {
	if opts.Rand != nil {
		return nil, ErrSharedRand
	}

	r := &Runner{
		opts:    opts,
		workers: 1,
		repeat:  1,
		logger:  zap.NewNop(),
		metrics: NoopMetrics{},
	}
	for _, o := range options {
		o(r)
	}

	if r.workers < 1 {
		return nil, fmt.Errorf("%w: workers=%d", ErrInvalidOption, r.workers)
	}
	if r.repeat < 1 {
		return nil, fmt.Errorf("%w: repeat=%d", ErrInvalidOption, r.repeat)
	}
	if r.cacheSize < 0 {
		return nil, fmt.Errorf("%w: cache size=%d", ErrInvalidOption, r.cacheSize)
	}
	if r.cacheSize > 0 {
		c, err := newResultCache(r.cacheSize)
		if err != nil {
			return nil, err
		}
		r.cache = c
	}

	return r, nil
}

// Run solves every instance Repeat times. The first failing instance aborts
// the run; its error names the instance ID. Cancelling ctx stops scheduling
// new instances and returns ctx.Err().
func (r *Runner) Run(ctx context.Context, instances []knapsack.Instance) (Report, error) {
	var (
		report = Report{Solutions: make([]knapsack.Result, len(instances))}
		rep    int
	)
	r.logger.Info("run started",
		zap.Stringer("method", r.opts.Method),
		zap.Int("instances", len(instances)),
		zap.Int("workers", r.workers),
		zap.Int("repeat", r.repeat),
	)

	for rep = 0; rep < r.repeat; rep++ {
		if r.cache != nil {
			r.cache.purge()
		}
		start := time.Now()
		if err := r.pass(ctx, instances, report.Solutions); err != nil {
			r.logger.Error("run aborted", zap.Int("repetition", rep), zap.Error(err))
			return Report{}, err
		}
		elapsed := time.Since(start)

		report.Total += elapsed
		report.Repetitions++
		r.metrics.RecordRepetition(len(instances), elapsed)
		r.logger.Debug("repetition finished", zap.Int("repetition", rep), zap.Duration("elapsed", elapsed))
	}
	report.Average = report.Total / time.Duration(report.Repetitions)

	r.logger.Info("run finished",
		zap.Int("repetitions", report.Repetitions),
		zap.Duration("average", report.Average),
	)

	return report, nil
}

// pass solves the batch once into out.
func (r *Runner) pass(ctx context.Context, instances []knapsack.Instance, out []knapsack.Result) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range instances {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.solveOne(i, instances[i])
			if err != nil {
				return err
			}
			out[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

// solveOne solves the instance at index i, consulting the cache first.
func (r *Runner) solveOne(i int, inst knapsack.Instance) (knapsack.Result, error) {
	opts := r.opts
	opts.Seed = knapsack.DeriveSeed(r.opts.Seed, uint64(i))

	var key uint64
	if r.cache != nil {
		key = fingerprint(opts, inst)
		if res, ok := r.cache.get(key, inst); ok {
			r.metrics.RecordCache(true)
			r.logger.Debug("instance served from cache", zap.Int("id", inst.ID), zap.Int("index", i))
			return res, nil
		}
		r.metrics.RecordCache(false)
	}

	start := time.Now()
	res, err := knapsack.Solve(inst, opts)
	elapsed := time.Since(start)
	r.metrics.RecordSolve(opts.Method, elapsed, err)
	if err != nil {
		return knapsack.Result{}, fmt.Errorf("runner: instance %d (index %d): %w", inst.ID, i, err)
	}

	if r.cache != nil {
		r.cache.add(key, inst, res)
	}
	r.logger.Debug("instance solved",
		zap.Int("id", inst.ID),
		zap.Int("index", i),
		zap.Int64("cost", res.Cost),
		zap.Duration("elapsed", elapsed),
	)

	return res, nil
}
