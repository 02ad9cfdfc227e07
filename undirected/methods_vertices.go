// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices keep insertion order; lookups by value resolve to the first match.
//
// Mutation policy:
//   - Validate first, then mutate: a returned error means nothing changed.
//   - Add/Remove build the replacement matrix before touching the vertex list.

package undirected

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/katalvlaran/ugraph/matrix"
)

// Nilable lets pointer-backed vertex types report nil without reflection.
type Nilable interface {
	IsNil() bool
}

// isNil reports whether v holds a nil pointer, interface, chan, map, slice or func.
func isNil[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	if n, ok := a.(Nilable); ok {
		return n.IsNil()
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Map,
		reflect.Slice, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// checkVertexIndex validates 0 <= i < Count().
func (g *Graph[T]) checkVertexIndex(method string, i int) error {
	if i < 0 || i >= len(g.vertices) {
		return fmt.Errorf("Graph.%s(%d): %w", method, i, ErrIndexOutOfRange)
	}

	return nil
}

// Vertex returns the vertex stored at index i.
// Errors: ErrIndexOutOfRange when i is outside [0, Count()).
// Complexity: O(1).
func (g *Graph[T]) Vertex(i int) (T, error) {
	if err := g.checkVertexIndex("Vertex", i); err != nil {
		var zero T
		return zero, err
	}

	return g.vertices[i], nil
}

// SetVertex replaces the vertex at index i in place. The matrix is not touched.
//
// Errors:
//   - ErrIndexOutOfRange when i is outside [0, Count()).
//   - ErrNilVertex when v is a nil pointer, interface or channel.
//
// Complexity: O(1).
func (g *Graph[T]) SetVertex(i int, v T) error {
	if err := g.checkVertexIndex("SetVertex", i); err != nil {
		return err
	}
	if isNil(v) {
		return fmt.Errorf("Graph.SetVertex(%d): %w", i, ErrNilVertex)
	}
	g.vertices[i] = v

	return nil
}

// Add appends v and rebuilds the matrix as N×N, keeping every existing cell
// at its position. The new row and column are false.
// Complexity: O(N²).
func (g *Graph[T]) Add(v T) {
	n := len(g.vertices) + 1
	// n >= 1, so Resized cannot fail.
	next, _ := g.incidence.Resized(n, n)
	g.vertices = append(g.vertices, v)
	g.incidence = next
}

// Remove deletes the first vertex equal to v and reports whether one was found.
//
// Implementation:
//   - Stage 1: locate the first index k; absent → false, no mutation.
//   - Stage 2: build the (N-1)×(N-1) matrix without row k and column k,
//     shifting higher rows/columns down by one.
//   - Stage 3: drop the vertex; an emptied graph loses its matrix.
//
// Complexity: O(N²).
func (g *Graph[T]) Remove(v T) bool {
	k := g.IndexOf(v)
	if k < 0 {
		return false
	}
	n := len(g.vertices)

	var next *matrix.BoolDense
	if n > 1 {
		square, err := g.squareMatrix(n)
		if err != nil {
			return false
		}
		if next, err = square.Without(k); err != nil {
			return false
		}
	}

	g.vertices = slices.Delete(g.vertices, k, k+1)
	g.incidence = next

	return true
}

// Contains reports whether any vertex equals v.
// Complexity: O(N).
func (g *Graph[T]) Contains(v T) bool { return slices.Contains(g.vertices, v) }

// IndexOf returns the index of the first vertex equal to v, or -1.
// Complexity: O(N).
func (g *Graph[T]) IndexOf(v T) int { return slices.Index(g.vertices, v) }

// CopyTo copies the vertex list (not the matrix) into dst starting at offset.
// Errors: ErrIndexOutOfRange when offset < 0 or dst lacks room; dst is then untouched.
// Complexity: O(N).
func (g *Graph[T]) CopyTo(dst []T, offset int) error {
	if offset < 0 || offset > len(dst) || len(dst)-offset < len(g.vertices) {
		return fmt.Errorf("Graph.CopyTo: %d vertices into len %d at %d: %w",
			len(g.vertices), len(dst), offset, ErrIndexOutOfRange)
	}
	copy(dst[offset:], g.vertices)

	return nil
}

// Vertices returns a snapshot of the vertex list in order.
func (g *Graph[T]) Vertices() []T { return slices.Clone(g.vertices) }

// All yields the vertices in list order. Each call starts a fresh pass.
// Matrix data is not exposed.
func (g *Graph[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.vertices {
			if !yield(v) {
				return
			}
		}
	}
}
