package scheduler

import (
	"errors"
	"runtime"

	"github.com/nyxforge/exec/metrics"
)

// Config controls a ThreadRunLoop's shape, built through functional Options.
type Config struct {
	Workers          int
	QueueCapacity    int
	SlotPoolCapacity uint
	DynamicSlotPool  bool
	Metrics          metrics.Provider
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithWorkers sets the number of consumer goroutines. The default is
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithQueueCapacity sets the task channel's buffer size. The default is 0
// (unbuffered: when no worker is ready to take a task, Execute hands the
// send to a detached goroutine instead of waiting).
func WithQueueCapacity(n int) Option {
	return func(c *Config) { c.QueueCapacity = n }
}

// WithMetrics attaches a metrics.Provider the pool reports queue depth,
// dispatch counts, and task latency to. The default is metrics.NoopProvider.
func WithMetrics(p metrics.Provider) Option {
	return func(c *Config) { c.Metrics = p }
}

// WithSlotPoolCapacity bounds how many recycled dispatch-bookkeeping objects
// a bounded (non-dynamic) slot pool keeps alive at once. The default is four
// per worker.
func WithSlotPoolCapacity(n uint) Option {
	return func(c *Config) { c.SlotPoolCapacity = n }
}

// WithDynamicSlotPool switches the per-dispatch bookkeeping pool from a
// fixed-capacity pool (pool.NewFixed, the default) to an unbounded one
// backed by sync.Pool (pool.NewDynamic). Prefer this for bursty workloads
// where a hard slot cap would make Execute block; prefer the fixed pool
// when bounding memory matters more than burst latency.
func WithDynamicSlotPool() Option {
	return func(c *Config) { c.DynamicSlotPool = true }
}

func defaultConfig() Config {
	workers := runtime.GOMAXPROCS(0)
	return Config{
		Workers:          workers,
		QueueCapacity:    0,
		SlotPoolCapacity: uint(workers * 4),
		Metrics:          metrics.NewNoopProvider(),
	}
}

// ErrInvalidWorkerCount is returned by NewThreadRunLoop when Workers <= 0.
var ErrInvalidWorkerCount = errors.New("scheduler: worker count must be positive")

// ErrInvalidQueueCapacity is returned by NewThreadRunLoop when
// QueueCapacity < 0.
var ErrInvalidQueueCapacity = errors.New("scheduler: queue capacity must be non-negative")

func validateConfig(c *Config) error {
	if c.Workers <= 0 {
		return ErrInvalidWorkerCount
	}
	if c.QueueCapacity < 0 {
		return ErrInvalidQueueCapacity
	}
	if c.Metrics == nil {
		c.Metrics = metrics.NewNoopProvider()
	}
	if c.SlotPoolCapacity == 0 {
		c.SlotPoolCapacity = uint(c.Workers * 4)
	}
	return nil
}
