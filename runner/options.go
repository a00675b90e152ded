package runner

import "go.uber.org/zap"

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets how many instances are solved concurrently.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithRepeat sets how many times the whole batch is solved.
func WithRepeat(n int) Option {
	return func(r *Runner) { r.repeat = n }
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics sets the metrics collector. A nil collector keeps NoopMetrics.
func WithMetrics(m MetricsCollector) Option {
	return func(r *Runner) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithCacheSize enables an LRU cache of up to n results; 0 disables it.
// Identical instances within one pass over the batch are then solved once;
// the cache is emptied before every repetition.
func WithCacheSize(n int) Option {
	return func(r *Runner) { r.cacheSize = n }
}
