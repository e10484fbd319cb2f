package deltastep

import "github.com/gostep/deltastep/graph"

// relax walks u's out-edges and, for each that strictly improves its
// head's tentative distance, installs the new distance and appends
// the head to the local bin for its new band. u's own distance is
// read once: callers only relax a vertex whose distance is already
// settled for the current band (see the priority-safety check in
// driver.go).
func relax(g *graph.View, dist *distanceTable, bins *binSet, delta int64, u int32) {
	du := dist.get(int(u))
	for _, e := range g.Neighbors(int(u)) {
		newDist := du + e.Weight
		if dist.tryRelax(int(e.To), newDist) {
			bins.append(Band(newDist/delta), e.To)
		}
	}
}
