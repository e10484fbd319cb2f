package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadEdgeList parses a plain-text edge-list: a header line "n m"
// (vertex count, edge count) followed by m lines of "u v w"
// (directed edge u->v with non-negative integer weight w). This is
// the text-graph contract the GAP benchmark suite's builder expects,
// referenced from original_source/src/sssp.cc's comments; lines are
// whitespace-delimited, blank lines and "#"-prefixed comment lines
// between records are skipped.
func ReadEdgeList(r io.Reader) (*Builder, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	header, ok := nextRecord(sc)
	if !ok {
		return nil, fmt.Errorf("graph: empty edge-list input: %w", ErrMalformedEdgeList)
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return nil, fmt.Errorf("graph: header %q: %w", header, ErrMalformedEdgeList)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("graph: header vertex count %q: %w", fields[0], ErrMalformedEdgeList)
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("graph: header edge count %q: %w", fields[1], ErrMalformedEdgeList)
	}

	b, err := NewBuilder(n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < m; i++ {
		line, ok := nextRecord(sc)
		if !ok {
			return nil, fmt.Errorf("graph: expected %d edges, found %d: %w", m, i, ErrMalformedEdgeList)
		}
		fields = strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("graph: edge line %q: %w", line, ErrMalformedEdgeList)
		}
		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		w, errW := strconv.ParseInt(fields[2], 10, 64)
		if errU != nil || errV != nil || errW != nil {
			return nil, fmt.Errorf("graph: edge line %q: %w", line, ErrMalformedEdgeList)
		}
		if err := b.AddEdge(u, v, w); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graph: reading edge-list: %w", err)
	}
	return b, nil
}

// nextRecord returns the next non-blank, non-comment line.
func nextRecord(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, true
	}
	return "", false
}

// WriteEdgeList serializes a View in the format ReadEdgeList accepts.
func WriteEdgeList(w io.Writer, g *View) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.NumVertices(), g.NumEdges()); err != nil {
		return err
	}
	for u := 0; u < g.NumVertices(); u++ {
		for _, e := range g.Neighbors(u) {
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", u, e.To, e.Weight); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
