package bench

import (
	"fmt"
	"time"
)

// Stats aggregates a batch of Trials.
type Stats struct {
	Trials       int
	MeanDuration time.Duration
	MinDuration  time.Duration
	MaxDuration  time.Duration
	MeanReached  float64
}

// Summarize reduces trials to a Stats. It returns the zero Stats if
// trials is empty.
func Summarize(trials []Trial) Stats {
	if len(trials) == 0 {
		return Stats{}
	}

	s := Stats{
		Trials:      len(trials),
		MinDuration: trials[0].Duration,
		MaxDuration: trials[0].Duration,
	}

	var totalDuration time.Duration
	var totalReached int
	for _, t := range trials {
		totalDuration += t.Duration
		totalReached += t.ReachedCount
		if t.Duration < s.MinDuration {
			s.MinDuration = t.Duration
		}
		if t.Duration > s.MaxDuration {
			s.MaxDuration = t.Duration
		}
	}
	s.MeanDuration = totalDuration / time.Duration(len(trials))
	s.MeanReached = float64(totalReached) / float64(len(trials))

	return s
}

// String renders a human-readable summary line.
func (s Stats) String() string {
	return fmt.Sprintf(
		"SSSP: %d trial(s), mean %v (min %v, max %v), tree reaches %.1f nodes on average",
		s.Trials, s.MeanDuration, s.MinDuration, s.MaxDuration, s.MeanReached,
	)
}
