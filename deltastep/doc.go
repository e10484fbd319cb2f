// Package deltastep implements the parallel Δ-stepping single-source
// shortest-paths algorithm with the bucket-fusion optimization of
// Zhang et al. (CGO 2020), after Meyer & Sanders' original δ-stepping
// (J. Algorithms, 2003).
//
// DeltaStep partitions tentative distances into bands of width Δ and
// processes one band at a time across a fixed team of workers. Each
// iteration has four ordered sub-phases: drain the current shared
// frontier with a dynamic work-stealing schedule, fuse small
// same-band thread-local work back into the current phase, reduce
// worker proposals to choose the next band under a critical section,
// and promote the chosen band into the next shared frontier. Two
// worker barriers per iteration separate these phases; see the
// package's driver.go for exactly why two, not one or zero.
//
// The distance table is updated lock-free via monotone-decreasing
// compare-and-swap: many workers may race to improve the same
// vertex's distance, and the loop converges because every iteration
// either installs a strictly smaller value or observes one a peer
// already installed.
//
// DeltaStep does not persist state, stream partial results, support
// negative weights, or update distances as edges change. Final
// distances are independent of the worker count; the number of
// iterations taken to reach them is not.
package deltastep
