// SPDX-License-Identifier: MIT
// Package undirected_test contains shared fixtures for undirected.Graph tests.

package undirected_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ugraph/matrix"
	"github.com/katalvlaran/ugraph/undirected"
)

// sampleRows is the 3×3 fixture used throughout: edges (1,2), (2,1) and the loop (3,3).
func sampleRows() [][]bool {
	return [][]bool{
		{false, true, false},
		{true, false, false},
		{false, false, true},
	}
}

// sampleRendering is String() of sampleGraph.
const sampleRendering = "V\t1\t2\t3\r\n1\t0\t1\t0\r\n2\t1\t0\t0\r\n3\t0\t0\t1"

// mustMatrix builds a BoolDense from a literal or fails the test.
func mustMatrix(t testing.TB, rows [][]bool) *matrix.BoolDense {
	t.Helper()
	m, err := matrix.NewBoolDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// sampleGraph returns Graph{1,2,3} over sampleRows.
func sampleGraph(t testing.TB) *undirected.Graph[int] {
	t.Helper()

	return undirected.NewWithMatrix(mustMatrix(t, sampleRows()), 1, 2, 3)
}

// edgeRows dumps the graph's edges as a [][]bool literal through the public API.
func edgeRows[T comparable](t testing.TB, g *undirected.Graph[T]) [][]bool {
	t.Helper()
	n := g.Count()
	out := make([][]bool, n)
	for i := 0; i < n; i++ {
		out[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			v, err := g.Edge(i, j)
			require.NoError(t, err, "Edge(%d,%d)", i, j)
			out[i][j] = v
		}
	}

	return out
}

// collectPairs drains Pairs() into a slice.
func collectPairs[T comparable](g *undirected.Graph[T]) [][2]T {
	var out [][2]T
	for a, b := range g.Pairs() {
		out = append(out, [2]T{a, b})
	}

	return out
}
