package verify

// Mismatch records one vertex where two distance vectors disagree.
type Mismatch struct {
	Vertex int
	Got    int64
	Want   int64
}

// Compare reports whether got and want agree vertex-for-vertex,
// returning every disagreement found. It panics if the vectors have
// different lengths: that is a caller bug, not a data mismatch worth
// reporting per-vertex.
func Compare(got, want []int64) (ok bool, mismatches []Mismatch) {
	if len(got) != len(want) {
		panic("verify: Compare called with distance vectors of different lengths")
	}

	for v := range got {
		if got[v] != want[v] {
			mismatches = append(mismatches, Mismatch{Vertex: v, Got: got[v], Want: want[v]})
		}
	}

	return len(mismatches) == 0, mismatches
}
