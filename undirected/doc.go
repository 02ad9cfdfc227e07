// Package undirected provides Graph[T], a generic undirected graph container
// over an ordered vertex list backed by a dense boolean incidence matrix.
//
// The vertex list defines the index mapping into the matrix: the vertex at
// position i owns row i and column i. Cell (i,j) == true means an edge between
// the vertex at i and the vertex at j. Symmetry is a caller convention: the
// container never mirrors (i,j) into (j,i), so set both cells when you want
// a true undirected edge. Self-loops (i,i) are permitted.
//
// Invariant after every mutating call: the matrix is Count()×Count(), and it
// is absent exactly when the vertex list is empty.
//
// Core Methods:
//
//	// Vertices
//	Vertex(i) (T, error)           // O(1)
//	SetVertex(i, v) error          // O(1), rejects nil values
//	Add(v)                         // O(N²) matrix rebuild
//	Remove(v) bool                 // O(N²) matrix rebuild
//	Contains(v) bool, IndexOf(v)   // O(N)
//	All() iter.Seq[T]              // list order, restartable
//
//	// Edges
//	Edge(i, j) / SetEdge(i, j, v)               // by position
//	EdgeBetween(a, b) / SetEdgeBetween(a, b, v) // by value, first match wins
//	Pairs() iter.Seq2[T, T]                     // lazy, O(N²) value lookups
//
//	// Whole-graph
//	Clone, Clear, Equal, String, Greater/Less/GreaterOrEqual/LessOrEqual, Compare
//
// Ordering compares vertex counts only. GreaterOrEqual and LessOrEqual are the
// negations of Less and Greater, so two graphs with equal counts but different
// content are both >= and <= each other while not being Equal.
//
// Graph performs no locking. Guard a shared instance with your own mutex, or
// hand out Clone snapshots.
package undirected
