// SPDX-License-Identifier: MIT
//
// File: compare.go
// Role: Structural equality and count-based ordering.

package undirected

import (
	"cmp"
	"slices"
)

// Equal reports whether g and other hold equal vertex sequences (same order)
// and cell-wise equal matrices. Two nil graphs are equal.
// Complexity: O(N²).
func (g *Graph[T]) Equal(other *Graph[T]) bool {
	if g == nil || other == nil {
		return g == other
	}

	return slices.Equal(g.vertices, other.vertices) && g.incidence.Equal(other.incidence)
}

// Greater reports whether g has more vertices than other. Edges are ignored.
func (g *Graph[T]) Greater(other *Graph[T]) bool { return g.Count() > other.Count() }

// Less reports whether g has fewer vertices than other. Edges are ignored.
func (g *Graph[T]) Less(other *Graph[T]) bool { return g.Count() < other.Count() }

// GreaterOrEqual is !Less: it only looks at vertex counts, never at content.
func (g *Graph[T]) GreaterOrEqual(other *Graph[T]) bool { return !g.Less(other) }

// LessOrEqual is !Greater: it only looks at vertex counts, never at content.
func (g *Graph[T]) LessOrEqual(other *Graph[T]) bool { return !g.Greater(other) }

// Compare orders graphs by vertex count, for use with slices.SortFunc.
// It returns 0 for graphs of equal size even when they are not Equal.
func Compare[T comparable](a, b *Graph[T]) int { return cmp.Compare(a.Count(), b.Count()) }
