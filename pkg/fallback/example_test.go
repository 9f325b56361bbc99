package fallback_test

import (
	"fmt"

	"github.com/matzehuels/fontroute/pkg/fallback"
)

const (
	latin  fallback.TagID = 0
	arabic fallback.TagID = 1
)

func ExampleGraph_basic() {
	var g fallback.Graph
	_ = g.AddNode(0, latin)  // text face
	_ = g.AddNode(1, arabic) // naskh
	_ = g.AddNode(2, arabic) // kufi

	fmt.Println(g.AddRoute(0, 1, arabic))
	fmt.Println(g.AddRoute(0, 2, arabic))
	fmt.Println(g.AddRoute(0, 1, arabic))

	buf := make([]fallback.NodeID, 8)
	n := g.Fallbacks(0, arabic, buf)
	fmt.Println(buf[:n])
	// Output:
	// ok
	// ok
	// exists
	// [1 2]
}

func ExampleGraph_AddRoute_cycle() {
	g := fallback.New()
	_ = g.AddNode(0, arabic)
	_ = g.AddNode(1, arabic)
	_ = g.AddNode(2, arabic)
	_ = g.AddRoute(0, 1, arabic)
	_ = g.AddRoute(1, 2, arabic)

	// 2 → 0 would let 0 fall back to itself through 1 and 2.
	fmt.Println(g.AddRoute(2, 0, arabic))
	// The same edge under another tag is fine.
	fmt.Println(g.AddRoute(2, 0, latin))
	// Output:
	// not-allowed
	// ok
}

func ExampleGraph_Chain() {
	g := fallback.New()
	for id := fallback.NodeID(0); id < 4; id++ {
		_ = g.AddNode(id, arabic)
	}
	_ = g.AddRoute(0, 1, arabic)
	_ = g.AddRoute(0, 2, arabic)
	_ = g.AddRoute(1, 3, arabic)

	fmt.Println(g.Chain(0, arabic))
	// Output:
	// [1 2 3]
}
