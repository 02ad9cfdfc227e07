// SPDX-License-Identifier: MIT

package undirected

import "iter"

// Pairs yields every ordered pair (subj, obj) from the vertex list's cross
// product whose edge is set, in row-major order. Nothing is buffered: each
// pair is resolved through EdgeBetween when reached, so duplicate vertex
// values always resolve to their first index. Each call starts a fresh pass.
//
// Pairs whose lookup fails (no matrix, or a NewWithMatrix matrix smaller than
// Count()) are treated as unconnected. Mutating the graph while ranging over
// the sequence is not supported.
//
// Complexity: O(N³) for a full pass (N² pairs, O(N) lookup each), O(1) extra space.
func (g *Graph[T]) Pairs() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for _, subj := range g.vertices {
			for _, obj := range g.vertices {
				if ok, err := g.EdgeBetween(subj, obj); err != nil || !ok {
					continue
				}
				if !yield(subj, obj) {
					return
				}
			}
		}
	}
}
