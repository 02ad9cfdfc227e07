// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.

package undirected

import "slices"

// Clone returns a deep copy: the vertex list is copied element-wise and the
// matrix cell-wise, so mutating either graph never affects the other.
// Vertex values themselves are copied by assignment (pointers stay shared).
// Complexity: O(N²).
func (g *Graph[T]) Clone() *Graph[T] {
	return &Graph[T]{
		vertices:  slices.Clone(g.vertices),
		incidence: g.incidence.Clone(),
	}
}

// Clear empties the vertex list and drops the matrix.
// Complexity: O(1).
func (g *Graph[T]) Clear() {
	g.vertices = nil
	g.incidence = nil
}
