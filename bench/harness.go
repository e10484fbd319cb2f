package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/gostep/deltastep/deltastep"
	"github.com/gostep/deltastep/graph"
)

// Trial is the recorded outcome of one DeltaStep run.
type Trial struct {
	Source       int
	Duration     time.Duration
	Distances    []int64
	Iterations   int
	ReachedCount int
}

// Harness repeats DeltaStep runs over a fixed graph and Δ, optionally
// publishing each Trial to a Metrics sink.
type Harness struct {
	g       *graph.View
	delta   int64
	opts    []deltastep.Option
	metrics *Metrics
}

// NewHarness builds a Harness. It returns ErrEmptyGraph if g has no
// vertices: there is nothing to benchmark.
func NewHarness(g *graph.View, delta int64, opts ...deltastep.Option) (*Harness, error) {
	if g.NumVertices() == 0 {
		return nil, ErrEmptyGraph
	}

	return &Harness{g: g, delta: delta, opts: opts}, nil
}

// WithMetrics attaches a Metrics sink that every subsequent Run
// observes into.
func (h *Harness) WithMetrics(m *Metrics) *Harness {
	h.metrics = m

	return h
}

// Run executes one trial from source and records its wall-clock
// duration, iteration count, and reached-vertex count.
func (h *Harness) Run(ctx context.Context, source int) (Trial, error) {
	start := time.Now()
	result, err := deltastep.DeltaStep(ctx, h.g, source, h.delta, h.opts...)
	if err != nil {
		return Trial{}, fmt.Errorf("bench: trial from source %d: %w", source, err)
	}
	elapsed := time.Since(start)

	reached := 0
	for _, d := range result.Distances {
		if d < deltastep.INF {
			reached++
		}
	}

	trial := Trial{
		Source:       source,
		Duration:     elapsed,
		Distances:    result.Distances,
		Iterations:   result.Iterations,
		ReachedCount: reached,
	}
	if h.metrics != nil {
		h.metrics.Observe(trial)
	}

	return trial, nil
}

// RunMany executes one trial per source in order, stopping at the
// first error.
func (h *Harness) RunMany(ctx context.Context, sources []int) ([]Trial, error) {
	trials := make([]Trial, 0, len(sources))
	for _, source := range sources {
		t, err := h.Run(ctx, source)
		if err != nil {
			return trials, err
		}
		trials = append(trials, t)
	}

	return trials, nil
}
