// SPDX-License-Identifier: MIT

package undirected_test

import (
	"testing"

	"github.com/katalvlaran/ugraph/undirected"
)

const benchVertices = 128

// BenchmarkAdd measures repeated appends, each an O(N²) matrix rebuild.
func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := undirected.New[int]()
		for v := 0; v < benchVertices; v++ {
			g.Add(v)
		}
	}
}

// BenchmarkPairs measures a full pass over a graph with a ring of edges.
func BenchmarkPairs(b *testing.B) {
	vs := make([]int, benchVertices)
	for i := range vs {
		vs[i] = i
	}
	g := undirected.New(vs...)
	for i := range vs {
		if err := g.SetEdge(i, (i+1)%benchVertices, true); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range g.Pairs() {
			n++
		}
		if n != benchVertices {
			b.Fatalf("got %d pairs", n)
		}
	}
}
