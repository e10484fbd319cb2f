// Command deltastep runs the parallel Δ-stepping SSSP engine over a
// graph read from disk or generated randomly, reporting per-trial
// timing and optionally verifying results against a sequential
// oracle or fitting an empirical complexity exponent across a size
// sweep.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"

	"github.com/alecthomas/kong"

	_ "github.com/gostep/deltastep/internal/automaxprocs"

	"github.com/gostep/deltastep/bench"
	"github.com/gostep/deltastep/deltastep"
	"github.com/gostep/deltastep/graph"
	"github.com/gostep/deltastep/verify"

	"log/slog"
)

type cli struct {
	Graph  string `help:"Path to an edge-list graph file." xor:"input"`
	Random int    `help:"Generate a random sparse graph with this many vertices instead of reading -graph." xor:"input"`

	AvgDegree float64 `help:"Average out-degree for -random." default:"4"`
	MaxWeight int64   `help:"Maximum edge weight for -random." default:"20"`
	Seed      int64   `help:"Random seed for -random and -random-source." default:"1"`

	Delta int64 `help:"Band width for Δ-stepping." default:"10"`

	Trials       int  `help:"Number of benchmark trials to run." default:"1"`
	Source       int  `help:"Fixed source vertex; ignored when -random-source is set." default:"0"`
	RandomSource bool `help:"Pick a random non-isolated source per trial instead of -source."`

	Verify  bool `help:"Check DeltaStep's output against a sequential Dijkstra oracle."`
	Analyze bool `help:"Sweep generated graph sizes and fit an empirical complexity exponent, instead of running trials over one graph."`

	Logging     bool   `help:"Enable structured per-band logging to stderr."`
	Workers     int    `help:"Worker count; 0 uses GOMAXPROCS." default:"0"`
	MetricsAddr string `help:"If set, serve Prometheus metrics on this address (e.g. :9090) until the run completes."`
}

func main() {
	var args cli
	kong.Parse(&args)

	if err := run(args); err != nil {
		fmt.Fprintln(os.Stderr, "deltastep:", err)
		os.Exit(1)
	}
}

func run(args cli) error {
	if args.Analyze {
		return runAnalyze(args)
	}

	g, err := loadGraph(args)
	if err != nil {
		return err
	}

	opts := deltaStepOptions(args)

	var metrics *bench.Metrics
	var server *http.Server
	if args.MetricsAddr != "" {
		metrics = bench.NewMetrics()
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		server = &http.Server{Addr: args.MetricsAddr, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				fmt.Fprintln(os.Stderr, "deltastep: metrics server:", err)
			}
		}()
		defer server.Close()
	}

	h, err := bench.NewHarness(g, args.Delta, opts...)
	if err != nil {
		return err
	}
	if metrics != nil {
		h = h.WithMetrics(metrics)
	}

	rng := rand.New(rand.NewSource(args.Seed))
	sources := make([]int, args.Trials)
	for i := range sources {
		var sourceRNG *rand.Rand
		if args.RandomSource {
			sourceRNG = rng
		}
		source, err := bench.PickSource(g, args.Source, sourceRNG)
		if err != nil {
			return err
		}
		sources[i] = source
	}

	ctx := context.Background()
	trials, err := h.RunMany(ctx, sources)
	if err != nil {
		return err
	}

	if args.Verify {
		for _, t := range trials {
			want, err := verify.Dijkstra(g, t.Source)
			if err != nil {
				return err
			}
			if ok, mismatches := verify.Compare(t.Distances, want); !ok {
				return fmt.Errorf("deltastep: source %d disagrees with the oracle at %d vertices (e.g. vertex %d: got %d want %d)",
					t.Source, len(mismatches), mismatches[0].Vertex, mismatches[0].Got, mismatches[0].Want)
			}
		}
	}

	fmt.Println(bench.Summarize(trials))

	return nil
}

func loadGraph(args cli) (*graph.View, error) {
	if args.Random > 0 {
		b, err := graph.RandomSparse(args.Random, args.AvgDegree, args.MaxWeight, rand.New(rand.NewSource(args.Seed)))
		if err != nil {
			return nil, err
		}

		return b.Finalize()
	}

	if args.Graph == "" {
		return nil, fmt.Errorf("deltastep: one of -graph or -random is required")
	}

	c, err := graph.NewCache(1)
	if err != nil {
		return nil, err
	}

	return c.LoadFile(args.Graph)
}

func deltaStepOptions(args cli) []deltastep.Option {
	var opts []deltastep.Option
	if args.Workers > 0 {
		opts = append(opts, deltastep.WithWorkers(args.Workers))
	}
	if args.Logging {
		opts = append(opts, deltastep.WithLogging(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	return opts
}

func runAnalyze(args cli) error {
	sizes := []int{1000, 2000, 4000, 8000, 16000}
	points := make([]bench.SizePoint, 0, len(sizes))

	for _, size := range sizes {
		b, err := graph.RandomSparse(size, args.AvgDegree, args.MaxWeight, rand.New(rand.NewSource(args.Seed)))
		if err != nil {
			return err
		}
		g, err := b.Finalize()
		if err != nil {
			return err
		}

		h, err := bench.NewHarness(g, args.Delta, deltaStepOptions(args)...)
		if err != nil {
			return err
		}

		source, err := bench.PickSource(g, 0, rand.New(rand.NewSource(args.Seed)))
		if err != nil {
			return err
		}

		trial, err := h.Run(context.Background(), source)
		if err != nil {
			return err
		}

		points = append(points, bench.SizePoint{Size: size, Duration: trial.Duration})
		fmt.Printf("size=%d duration=%v reached=%d\n", size, trial.Duration, trial.ReachedCount)
	}

	fit, err := bench.Analyze(points)
	if err != nil {
		return err
	}
	fmt.Println(fit)

	return nil
}
