// Package verify provides an oracle for checking DeltaStep's output:
// a straightforward sequential Dijkstra over graph.View, plus a
// comparison helper that reports exactly where two distance vectors
// disagree.
package verify
