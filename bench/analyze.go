package bench

import (
	"fmt"
	"math"
	"time"

	"github.com/gostep/deltastep/internal/linalg"
)

// SizePoint pairs a graph size with the trial duration measured at
// that size, the raw input to Analyze.
type SizePoint struct {
	Size     int
	Duration time.Duration
}

// Fit is an ordinary-least-squares fit of log(duration) against
// log(size): duration ≈ exp(Intercept) * size^Exponent. Exponent is
// the empirical complexity estimate the -analyze CLI flag reports.
type Fit struct {
	Exponent  float64
	Intercept float64
	RSquared  float64
}

func (f Fit) String() string {
	return fmt.Sprintf("duration ~ size^%.3f (R^2=%.3f)", f.Exponent, f.RSquared)
}

// Analyze fits a power-law trend across points by ordinary least
// squares on log-log coordinates, solving the 2x2 normal-equations
// system via LU decomposition. It returns ErrInsufficientSamples
// with fewer than two points.
func Analyze(points []SizePoint) (Fit, error) {
	if len(points) < 2 {
		return Fit{}, ErrInsufficientSamples
	}

	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		x := math.Log(float64(p.Size))
		y := math.Log(p.Duration.Seconds())
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	// Normal equations for y = intercept + slope*x, unknowns ordered
	// [intercept, slope]:
	//   [n     sumX ] [intercept]   [sumY ]
	//   [sumX  sumXX] [slope    ] = [sumXY]
	normal, err := linalg.NewDense(2)
	if err != nil {
		return Fit{}, err
	}
	_ = normal.Set(0, 0, n)
	_ = normal.Set(0, 1, sumX)
	_ = normal.Set(1, 0, sumX)
	_ = normal.Set(1, 1, sumXX)

	solution, err := linalg.Solve(normal, []float64{sumY, sumXY})
	if err != nil {
		return Fit{}, fmt.Errorf("bench: fitting trend: %w", err)
	}
	intercept, slope := solution[0], solution[1]

	meanY := sumY / n
	var ssTot, ssRes float64
	for _, p := range points {
		x := math.Log(float64(p.Size))
		y := math.Log(p.Duration.Seconds())
		pred := intercept + slope*x
		ssRes += (y - pred) * (y - pred)
		ssTot += (y - meanY) * (y - meanY)
	}

	r2 := 1.0
	if ssTot != 0 {
		r2 = 1 - ssRes/ssTot
	}

	return Fit{Exponent: slope, Intercept: intercept, RSquared: r2}, nil
}
