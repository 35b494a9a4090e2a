package search_test

import (
	"fmt"

	"github.com/matzehuels/pathpane/pkg/graph"
	"github.com/matzehuels/pathpane/pkg/grid"
	"github.com/matzehuels/pathpane/pkg/search"
)

func ExamplePathTo() {
	g := graph.New[string]()
	for _, name := range []string{"a", "b", "c", "d"} {
		g.AddNode(name)
	}
	_ = g.Link(0, 1, 1)
	_ = g.Link(1, 2, 1)
	_ = g.Link(2, 3, 1)

	pred, _ := search.Dijkstra(g, 0, 3)
	path, _ := search.PathTo(pred, 3, 0)
	fmt.Println(path)
	fmt.Println(search.Reverse(path))
	// Output:
	// [3 2 1 0]
	// [0 1 2 3]
}

func ExampleAStar() {
	gr, _ := grid.New(3, 3, ".")

	pred, err := search.AStar(gr.Graph(), 0, 8, gr.Manhattan(8, grid.DefaultWeight))
	if err != nil {
		fmt.Println(err)
		return
	}
	path, _ := search.PathTo(pred, 8, 0)
	cost, _ := search.Cost(gr.Graph(), search.Reverse(path))
	fmt.Println("hops:", len(path)-1, "cost:", cost)
	// Output:
	// hops: 4 cost: 40
}

func ExampleDistance() {
	gr, _ := grid.New(3, 3, ".")
	_ = gr.Seal(4)

	d, _ := search.Distance(gr.Graph(), 0, 8)
	fmt.Println(d)
	// Output:
	// 40
}
