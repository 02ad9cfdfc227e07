package undirected_test

import (
	"fmt"

	"github.com/katalvlaran/ugraph/undirected"
)

// ExampleGraph links 1 and 2, loops 3, then shows how Remove shifts indices.
func ExampleGraph() {
	g := undirected.New(1, 2, 3)
	_ = g.SetEdge(0, 1, true)
	_ = g.SetEdge(1, 0, true)
	_ = g.SetEdgeBetween(3, 3, true)

	e, _ := g.Edge(0, 1)
	fmt.Println("1-2:", e)

	g.Remove(1)
	fmt.Println(g.Vertices())
	loop, _ := g.Edge(1, 1)
	fmt.Println("3-3 after remove:", loop)

	// Output:
	// 1-2: true
	// [2 3]
	// 3-3 after remove: true
}

// ExampleGraph_String renders the incidence table.
func ExampleGraph_String() {
	g := undirected.New("a", "b")
	_ = g.SetEdgeBetween("a", "b", true)
	_ = g.SetEdgeBetween("b", "a", true)

	fmt.Printf("%q\n", g.String())

	// Output:
	// "V\ta\tb\r\na\t0\t1\r\nb\t1\t0"
}

// ExampleGraph_Pairs lists connected ordered pairs.
func ExampleGraph_Pairs() {
	g := undirected.New("x", "y", "z")
	_ = g.SetEdgeBetween("x", "z", true)
	_ = g.SetEdgeBetween("z", "x", true)

	for a, b := range g.Pairs() {
		fmt.Println(a, b)
	}

	// Output:
	// x z
	// z x
}
