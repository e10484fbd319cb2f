package deltastep

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gostep/deltastep/graph"
)

// Result is the outcome of one DeltaStep run: one distance per
// vertex (unreached vertices hold INF) and the number of iterations
// the driver loop took to converge.
type Result struct {
	Distances  []int64
	Iterations int
}

// DeltaStep computes single-source shortest-path distances from
// source over g using a fixed team of workers processing Δ-wide
// bands of the distance range. It returns one distance per vertex
// (unreached vertices use INF), the iteration count, and any error
// encountered. The distances are independent of the worker count;
// the iteration count is not.
//
// Each iteration runs four ordered phases:
//
//  1. Drain: workers dynamically claim chunks of the current shared
//     frontier and relax out-edges of vertices whose distance still
//     belongs to the current band (the priority-safety check).
//  2. Fuse: each worker repeatedly drains its own current-band bin
//     in place, without a barrier round-trip, as long as that bin
//     stays smaller than the configured bin threshold — this is the
//     bucket-fusion optimization.
//  3. Reduce: each worker proposes the lowest non-empty band at or
//     above the current one it still holds locally (the current band
//     itself is still non-empty when fusion stopped at the bin
//     threshold); proposals are reduced
//     to a single next band under a mutex-guarded critical section.
//  4. Promote: after a barrier publishes the reduced next band, each
//     worker copies its own bin for that band into the next shared
//     frontier.
//
// Two barriers separate these phases: one after Reduce, so that no
// worker starts Promote against a next-band value still being
// written by a peer; and one after Promote, so that no worker starts
// the following iteration's Drain against a frontier a peer is still
// copying into. Dropping either barrier would let a worker observe a
// torn write across the parity-indexed shared state.
func DeltaStep(ctx context.Context, g *graph.View, source int, delta int64, opts ...Option) (Result, error) {
	if source < 0 || source >= g.NumVertices() {
		return Result{}, ErrInvalidSource
	}
	if delta <= 0 {
		return Result{}, ErrInvalidDelta
	}

	cfg := resolveOptions(opts)
	n := g.NumVertices()
	dist := newDistanceTable(n, source)

	capacity := g.NumEdges()
	if capacity < 1 {
		capacity = 1
	}
	fr := newFrontier(capacity)
	fr.buf[0][0] = int32(source)
	fr.tail[0].Store(1)

	var sharedMu sync.Mutex
	sharedBand := [2]Band{0, MaxBand}
	var cursor [2]atomic.Int64

	barrier := newCyclicBarrier(cfg.workers)
	var cancelled atomic.Bool
	var totalIters atomic.Int64
	start := time.Now()

	var frontierErr atomic.Pointer[error]
	recordErr := func(err error) {
		frontierErr.CompareAndSwap(nil, &err)
	}

	var wg sync.WaitGroup
	for id := 0; id < cfg.workers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runWorker(id, workerEnv{
				ctx:        ctx,
				g:          g,
				dist:       dist,
				fr:         fr,
				sharedMu:   &sharedMu,
				sharedBand: &sharedBand,
				cursor:     &cursor,
				barrier:    barrier,
				delta:      delta,
				cfg:        cfg,
				cancelled:  &cancelled,
				totalIters: &totalIters,
				start:      start,
				recordErr:  recordErr,
			})
		}(id)
	}
	wg.Wait()

	iterations := int(totalIters.Load())

	if p := frontierErr.Load(); p != nil {
		return Result{Distances: dist.snapshot(), Iterations: iterations}, *p
	}
	if cancelled.Load() {
		return Result{Distances: dist.snapshot(), Iterations: iterations}, ctx.Err()
	}

	if cfg.logger != nil {
		cfg.logger.Info("deltastep: run complete",
			slog.Int("iterations", iterations),
			slog.Duration("elapsed", time.Since(start)),
			slog.Int("vertices", n),
			slog.Int("edges", g.NumEdges()),
		)
	}

	return Result{Distances: dist.snapshot(), Iterations: iterations}, nil
}

type workerEnv struct {
	ctx        context.Context
	g          *graph.View
	dist       *distanceTable
	fr         *frontier
	sharedMu   *sync.Mutex
	sharedBand *[2]Band
	cursor     *[2]atomic.Int64
	barrier    *cyclicBarrier
	delta      int64
	cfg        Options
	cancelled  *atomic.Bool
	totalIters *atomic.Int64
	start      time.Time
	recordErr  func(error)
}

func runWorker(id int, env workerEnv) {
	bins := newBinSet()
	iter := 0

	for {
		currParity := iter & 1
		nextParity := (iter + 1) & 1

		env.sharedMu.Lock()
		currBand := env.sharedBand[currParity]
		env.sharedMu.Unlock()

		if currBand == MaxBand {
			break
		}

		// Phase 1: drain, dynamic chunking over the current frontier.
		currSlice := env.fr.slice(currParity)
		total := int64(len(currSlice))
		chunk := int64(env.cfg.chunkSize)
		for {
			end := env.cursor[currParity].Add(chunk)
			begin := end - chunk
			if begin >= total {
				break
			}
			if end > total {
				end = total
			}
			for i := begin; i < end; i++ {
				u := currSlice[i]
				if env.dist.get(int(u)) >= env.delta*int64(currBand) {
					relax(env.g, env.dist, bins, env.delta, u)
				}
			}
		}

		// Phase 2: bucket fusion, in-phase drain of the current band.
		for bins.len(currBand) > 0 && bins.len(currBand) < env.cfg.binThreshold {
			batch := bins.drain(currBand)
			for _, u := range batch {
				relax(env.g, env.dist, bins, env.delta, u)
			}
		}

		// Phase 3: reduce this worker's proposal into the next band.
		if proposal := bins.firstNonEmptyFrom(currBand); proposal < MaxBand {
			env.sharedMu.Lock()
			if proposal < env.sharedBand[nextParity] {
				env.sharedBand[nextParity] = proposal
			}
			env.sharedMu.Unlock()
		}

		env.barrier.Wait()

		if id == 0 {
			if env.cfg.logger != nil {
				env.cfg.logger.Debug("deltastep: band processed",
					slog.Int("band", currBand),
					slog.Int("frontier_size", len(currSlice)),
					slog.Duration("elapsed", time.Since(env.start)),
				)
			}

			env.sharedMu.Lock()
			if env.ctx.Err() != nil {
				env.cancelled.Store(true)
				env.sharedBand[0] = MaxBand
				env.sharedBand[1] = MaxBand
			} else {
				env.sharedBand[currParity] = MaxBand
			}
			env.sharedMu.Unlock()

			env.fr.reset(currParity)
			env.cursor[currParity].Store(0)
		}

		// Phase 4: promote this worker's bin for the reduced next band.
		env.sharedMu.Lock()
		nextBand := env.sharedBand[nextParity]
		env.sharedMu.Unlock()

		if nextBand < MaxBand {
			if vs := bins.drain(nextBand); len(vs) > 0 {
				if err := env.fr.copyIn(nextParity, vs); err != nil {
					env.recordErr(fmt.Errorf("deltastep: worker %d: %w", id, err))
				}
			}
		}

		iter++
		env.barrier.Wait()
	}

	if id == 0 {
		env.totalIters.Store(int64(iter))
	}
}
