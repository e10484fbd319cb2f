package bench_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/gostep/deltastep/bench"
	"github.com/gostep/deltastep/graph"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T) *graph.View {
	t.Helper()
	b, err := graph.RandomSparse(100, 4, 10, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	g, err := b.Finalize()
	require.NoError(t, err)

	return g
}

func TestHarness_RunReportsReachedCount(t *testing.T) {
	t.Parallel()

	g := buildGraph(t)
	h, err := bench.NewHarness(g, 2)
	require.NoError(t, err)

	source, err := bench.PickSource(g, 0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	trial, err := h.Run(context.Background(), source)
	require.NoError(t, err)
	require.Equal(t, source, trial.Source)
	require.GreaterOrEqual(t, trial.ReachedCount, 1)
	require.Greater(t, trial.Iterations, 0)
	require.Len(t, trial.Distances, g.NumVertices())
}

func TestHarness_RejectsEmptyGraph(t *testing.T) {
	t.Parallel()

	b, err := graph.NewBuilder(0)
	require.NoError(t, err)
	g, err := b.Finalize()
	require.NoError(t, err)

	_, err = bench.NewHarness(g, 2)
	require.ErrorIs(t, err, bench.ErrEmptyGraph)
}

func TestPickSource_FixedValidatesRange(t *testing.T) {
	t.Parallel()

	g := buildGraph(t)
	_, err := bench.PickSource(g, 9999, nil)
	require.ErrorIs(t, err, bench.ErrInvalidSource)

	source, err := bench.PickSource(g, 5, nil)
	require.NoError(t, err)
	require.Equal(t, 5, source)
}

func TestPickSource_RandomAvoidsIsolatedVertices(t *testing.T) {
	t.Parallel()

	b, err := graph.NewBuilder(3)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(1, 2, 1))
	g, err := b.Finalize()
	require.NoError(t, err)

	source, err := bench.PickSource(g, 0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, 1, source)
}

func TestSummarize_ComputesMeanMinMax(t *testing.T) {
	t.Parallel()

	trials := []bench.Trial{
		{Duration: 10 * time.Millisecond, ReachedCount: 4},
		{Duration: 30 * time.Millisecond, ReachedCount: 6},
		{Duration: 20 * time.Millisecond, ReachedCount: 5},
	}

	s := bench.Summarize(trials)
	require.Equal(t, 3, s.Trials)
	require.Equal(t, 20*time.Millisecond, s.MeanDuration)
	require.Equal(t, 10*time.Millisecond, s.MinDuration)
	require.Equal(t, 30*time.Millisecond, s.MaxDuration)
	require.InDelta(t, 5.0, s.MeanReached, 1e-9)
}

func TestSummarize_EmptyTrialsIsZeroValue(t *testing.T) {
	t.Parallel()

	require.Equal(t, bench.Stats{}, bench.Summarize(nil))
}

func TestAnalyze_FitsExactLinearPowerLaw(t *testing.T) {
	t.Parallel()

	points := []bench.SizePoint{
		{Size: 100, Duration: 10 * time.Millisecond},
		{Size: 200, Duration: 20 * time.Millisecond},
		{Size: 400, Duration: 40 * time.Millisecond},
	}

	fit, err := bench.Analyze(points)
	require.NoError(t, err)
	require.InDelta(t, 1.0, fit.Exponent, 1e-6)
	require.InDelta(t, 1.0, fit.RSquared, 1e-6)
}

func TestAnalyze_RejectsInsufficientSamples(t *testing.T) {
	t.Parallel()

	_, err := bench.Analyze([]bench.SizePoint{{Size: 1, Duration: time.Second}})
	require.ErrorIs(t, err, bench.ErrInsufficientSamples)
}

func TestMetrics_ObserveExposesHandler(t *testing.T) {
	t.Parallel()

	m := bench.NewMetrics()
	m.Observe(bench.Trial{Duration: 5 * time.Millisecond, ReachedCount: 3})

	require.NotNil(t, m.Handler())
}
