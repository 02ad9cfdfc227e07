// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge queries & mutation, by position and by vertex value.
//
// Policy:
//   - Check order: empty graph -> index/value resolution -> matrix access.
//   - No symmetry enforcement: SetEdge(i,j) never writes (j,i).

package undirected

import "fmt"

// checkEdge validates that a matrix is present and both indices fall in [0, Count()).
func (g *Graph[T]) checkEdge(method string, i, j int) error {
	n := len(g.vertices)
	if n == 0 || g.incidence == nil {
		return fmt.Errorf("Graph.%s(%d,%d): %w", method, i, j, ErrEmptyGraph)
	}
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("Graph.%s(%d,%d): %w", method, i, j, ErrIndexOutOfRange)
	}

	return nil
}

// Edge reports whether cell (i,j) of the incidence matrix is set.
//
// Errors:
//   - ErrEmptyGraph when the graph has no vertices (or no matrix).
//   - ErrIndexOutOfRange when i or j is outside [0, Count()).
//   - matrix.ErrOutOfRange (wrapped) when a matrix supplied through
//     NewWithMatrix is smaller than Count().
//
// Complexity: O(1).
func (g *Graph[T]) Edge(i, j int) (bool, error) {
	if err := g.checkEdge("Edge", i, j); err != nil {
		return false, err
	}

	return g.incidence.At(i, j)
}

// SetEdge stores v at cell (i,j). The mirrored cell (j,i) is left alone.
// Errors: same as Edge.
// Complexity: O(1).
func (g *Graph[T]) SetEdge(i, j int, v bool) error {
	if err := g.checkEdge("SetEdge", i, j); err != nil {
		return err
	}

	return g.incidence.Set(i, j, v)
}

// resolve maps two vertex values to their first indices.
func (g *Graph[T]) resolve(method string, a, b T) (int, int, error) {
	if len(g.vertices) == 0 || g.incidence == nil {
		return 0, 0, fmt.Errorf("Graph.%s: %w", method, ErrEmptyGraph)
	}
	i := g.IndexOf(a)
	if i < 0 {
		return 0, 0, fmt.Errorf("Graph.%s: %w: %v", method, ErrVertexNotFound, a)
	}
	j := g.IndexOf(b)
	if j < 0 {
		return 0, 0, fmt.Errorf("Graph.%s: %w: %v", method, ErrVertexNotFound, b)
	}

	return i, j, nil
}

// EdgeBetween reports whether the edge between the first vertex equal to a
// and the first vertex equal to b is set.
//
// Errors:
//   - ErrEmptyGraph when the graph has no vertices.
//   - ErrVertexNotFound naming a (checked first) or b when absent.
//
// Complexity: O(N).
func (g *Graph[T]) EdgeBetween(a, b T) (bool, error) {
	i, j, err := g.resolve("EdgeBetween", a, b)
	if err != nil {
		return false, err
	}

	return g.Edge(i, j)
}

// SetEdgeBetween stores v for the edge between the first vertices equal to a and b.
// Errors: same as EdgeBetween.
// Complexity: O(N).
func (g *Graph[T]) SetEdgeBetween(a, b T, v bool) error {
	i, j, err := g.resolve("SetEdgeBetween", a, b)
	if err != nil {
		return err
	}

	return g.SetEdge(i, j, v)
}
