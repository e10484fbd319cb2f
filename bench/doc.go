// Package bench drives repeated DeltaStep trials over one or more
// graphs, reports aggregate timing and reachability statistics,
// exposes them as Prometheus metrics, and can fit an empirical
// complexity exponent across a sweep of generated graph sizes.
package bench
