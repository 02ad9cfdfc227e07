// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, constructors and read-only getters.

package undirected

import (
	"fmt"

	"github.com/katalvlaran/ugraph/matrix"
)

// Graph is an ordered vertex list paired with a square boolean incidence matrix.
//
// vertices defines the index mapping into incidence; incidence is nil exactly
// when the graph has been emptied or was built without vertices.
type Graph[T comparable] struct {
	vertices  []T
	incidence *matrix.BoolDense
}

// New creates a graph over the given vertices with an all-false N×N matrix.
// With no vertices the graph is empty and has no matrix.
// The variadic slice is copied; the caller may reuse it.
// Complexity: O(N²).
func New[T comparable](vertices ...T) *Graph[T] {
	g := &Graph[T]{vertices: append([]T(nil), vertices...)}
	if n := len(g.vertices); n > 0 {
		// n > 0 always yields a valid shape.
		g.incidence, _ = matrix.NewBoolDense(n, n)
	}

	return g
}

// NewWithMatrix creates a graph from an explicit matrix and vertex list.
//
// Behavior highlights:
//   - No size cross-check is made: the caller asserts m is N×N for N = len(vertices).
//     Use Validate to check the contract after the fact.
//   - m is cloned; the graph never aliases caller-owned storage.
//   - A nil m leaves the graph without a matrix, so edge accessors report
//     ErrEmptyGraph until the next Add or Remove rebuilds it.
//
// Complexity: O(N + r*c).
func NewWithMatrix[T comparable](m *matrix.BoolDense, vertices ...T) *Graph[T] {
	return &Graph[T]{
		vertices:  append([]T(nil), vertices...),
		incidence: m.Clone(),
	}
}

// squareMatrix returns the matrix as n×n, rebuilding it with Resized when a
// caller-supplied matrix has another shape (or is missing).
func (g *Graph[T]) squareMatrix(n int) (*matrix.BoolDense, error) {
	if g.incidence != nil && g.incidence.Rows() == n && g.incidence.Cols() == n {
		return g.incidence, nil
	}

	return g.incidence.Resized(n, n)
}

// Count returns the number of vertices.
func (g *Graph[T]) Count() int { return len(g.vertices) }

// IsEmpty reports whether the graph has no vertices.
func (g *Graph[T]) IsEmpty() bool { return len(g.vertices) == 0 }

// IsReadOnly reports whether mutation is disallowed. Graphs are always mutable.
func (g *Graph[T]) IsReadOnly() bool { return false }

// Matrix returns a copy of the incidence matrix, or nil when there is none.
// Mutating the result does not affect the graph.
func (g *Graph[T]) Matrix() *matrix.BoolDense { return g.incidence.Clone() }

// Validate reports ErrDimensionMismatch when the matrix is not Count()×Count()
// or is present/absent inconsistently with the vertex list.
// Only graphs built with NewWithMatrix can fail this check.
func (g *Graph[T]) Validate() error {
	n := len(g.vertices)
	if n == 0 {
		if g.incidence != nil {
			return fmt.Errorf("Graph.Validate: matrix present on empty graph: %w", ErrDimensionMismatch)
		}
		return nil
	}
	if g.incidence == nil {
		return fmt.Errorf("Graph.Validate: no matrix for %d vertices: %w", n, ErrDimensionMismatch)
	}
	if r, c := g.incidence.Shape(); r != n || c != n {
		return fmt.Errorf("Graph.Validate: matrix is %dx%d, want %dx%d: %w", r, c, n, n, ErrDimensionMismatch)
	}

	return nil
}
