// Package ugraph is a small in-memory graph container: an ordered list of
// vertices of any comparable type paired with a dense boolean incidence matrix.
//
// Under the hood, everything is organized under two subpackages:
//
//	undirected/ - Graph[T]: vertex and edge accessors, Add/Remove, Pairs, Clone, ordering
//	matrix/     - BoolDense: row-major boolean storage with safe At/Set and shape rebuilds
//
// plus a demo command:
//
//	cmd/ugraph  - build a graph from flags, print its table or its connected pairs
//
// Quick example:
//
//	g := undirected.New("A", "B", "C")
//	_ = g.SetEdgeBetween("A", "B", true)
//	_ = g.SetEdgeBetween("B", "A", true)
//	fmt.Println(g)
//
// prints
//
//	V  A  B  C
//	A  0  1  0
//	B  1  0  0
//	C  0  0  0
//
// with tab-separated cells and CRLF line breaks.
//
// No traversal or path algorithms are provided; the package is a container.
//
//	go get github.com/katalvlaran/ugraph
package ugraph
