// Package deltastep is the module root for a parallel Δ-stepping
// single-source shortest-paths engine with the bucket-fusion
// optimization.
//
// 🚀 What's in here?
//
//	A concurrent, CAS-based library that brings together:
//		• graph      — immutable CSR adjacency, a validating builder,
//		               random sparse generation, edge-list I/O and an
//		               LRU-cached loader
//		• deltastep  — the solver: lock-free distance table, double-
//		               buffered frontier, thread-local bins, a hand
//		               rolled barrier, and the four-phase parallel
//		               driver loop
//		• verify     — a sequential Dijkstra oracle plus a distance
//		               comparison helper, for checking the parallel
//		               result
//		• bench      — a multi-trial harness, Prometheus metrics, and
//		               an OLS-fitted empirical complexity estimator
//		• cmd/deltastep — a CLI gluing all of the above together
//
// ✨ Why Δ-stepping?
//
//   - Bridges Dijkstra (Δ→0, strictly ordered, no parallelism) and
//     Bellman-Ford (Δ→∞, fully parallel, far more relaxations)
//   - Lock-free distance updates let many workers race to improve the
//     same vertex without a global lock
//   - Bucket fusion drains a small current-band bin in place, so it
//     never pays a barrier round-trip for the last few stragglers
//
// Every subpackage's own doc comment goes into the operational
// detail; this file is only the map.
package deltastep
