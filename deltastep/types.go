package deltastep

import (
	"log/slog"
	"math"
	"runtime"
)

// Weight is an edge or path weight. Negative weights are rejected by
// graph.Builder, so Δ-stepping never needs to reason about them.
type Weight = int64

// INF represents an unreached vertex. It is half of math.MaxInt64 so
// that du+w for any finite du and w never overflows when compared
// against it.
const INF Weight = math.MaxInt64 / 2

// Band identifies a Δ-wide slice of the distance range: a vertex with
// tentative distance d belongs to band d/Δ.
type Band = int

// MaxBand is the sentinel "no band left" value, analogous to INF for
// bands. It is half of math.MaxInt for the same overflow-safety reason.
const MaxBand Band = math.MaxInt / 2

// Options configures a DeltaStep run. Build one with the With*
// functions; the zero Options is never used directly.
type Options struct {
	workers      int
	logger       *slog.Logger
	binThreshold int
	chunkSize    int
}

// Option mutates an Options during construction.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		workers:      runtime.GOMAXPROCS(0),
		logger:       nil,
		binThreshold: 1000,
		chunkSize:    64,
	}
}

// WithWorkers fixes the size of the worker team. It panics if n is
// less than 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("deltastep: WithWorkers requires n >= 1")
	}
	return func(o *Options) { o.workers = n }
}

// WithLogging attaches a structured logger. The driver logs one
// record per band transition at slog.LevelDebug and a summary record
// at slog.LevelInfo when the run completes. A nil logger (the
// default) disables all logging.
func WithLogging(logger *slog.Logger) Option {
	return func(o *Options) { o.logger = logger }
}

// WithBinThreshold sets the bucket-fusion threshold: a thread-local
// bin for the current band is drained in-phase, without a barrier
// round-trip, as long as it stays strictly below this size. It panics
// if n is less than 1.
func WithBinThreshold(n int) Option {
	if n < 1 {
		panic("deltastep: WithBinThreshold requires n >= 1")
	}
	return func(o *Options) { o.binThreshold = n }
}

// WithChunkSize sets the dynamic work-stealing chunk size used when
// workers drain the current shared frontier. It panics if n is less
// than 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic("deltastep: WithChunkSize requires n >= 1")
	}
	return func(o *Options) { o.chunkSize = n }
}

func resolveOptions(opts []Option) Options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
