// SPDX-License-Identifier: MIT

package undirected

import "errors"

// Sentinel errors for undirected graph operations.
// Returned errors may wrap these with call-site context; match with errors.Is.
var (
	// ErrIndexOutOfRange indicates a vertex or edge index outside [0, Count()).
	ErrIndexOutOfRange = errors.New("undirected: index out of range")

	// ErrNilVertex indicates an attempt to store a nil vertex value.
	ErrNilVertex = errors.New("undirected: vertex value is nil")

	// ErrEmptyGraph indicates an edge access on a graph with no incidence matrix.
	ErrEmptyGraph = errors.New("undirected: graph is empty")

	// ErrVertexNotFound indicates a by-value edge access named a vertex not in the graph.
	ErrVertexNotFound = errors.New("undirected: vertex not found")

	// ErrDimensionMismatch indicates the incidence matrix shape differs from Count()×Count().
	ErrDimensionMismatch = errors.New("undirected: matrix does not match vertex count")
)
