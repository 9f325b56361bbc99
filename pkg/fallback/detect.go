package fallback

type color uint8

const (
	white color = iota // not visited
	gray               // on the current search path
	black              // fully explored, no cycle through it
)

// frame is one level of the explicit depth-first search stack.
type frame struct {
	node  NodeID
	edges []NodeID
	next  int
}

// looped reports whether adding node → fallback under tag would close a
// cycle among the routes of tag.
//
// It runs a three-color depth-first search from node in which node's
// out-edges are its stored fallbacks for tag plus the candidate fallback.
// Reaching a gray node is a back-edge and ends the search. An edge to an
// unregistered node means the graph is inconsistent and yields ErrCorrupted.
// The graph is only read.
func (g *Graph) looped(node, fallback NodeID, tag TagID) (bool, error) {
	if node == fallback {
		return true, nil
	}

	info := &g.nodes[node]
	if !info.attached(tag) {
		// Without the tag node has no edges of that subgraph, in or out.
		return false, nil
	}

	stored := info.routes[tag].fallbacks
	edges := make([]NodeID, len(stored), len(stored)+1)
	copy(edges, stored)
	edges = append(edges, fallback)

	colors := make([]color, int(g.maxID)+1)
	colors[node] = gray
	stack := []frame{{node: node, edges: edges}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.edges) {
			colors[top.node] = black
			stack = stack[:len(stack)-1]
			continue
		}
		next := top.edges[top.next]
		top.next++

		if int(next) >= len(colors) {
			return false, ErrCorrupted
		}
		switch colors[next] {
		case gray:
			return true, nil
		case black:
			continue
		}

		nextInfo, ok := g.lookup(next)
		if !ok {
			return false, ErrCorrupted
		}
		if !nextInfo.attached(tag) {
			colors[next] = black
			continue
		}
		colors[next] = gray
		stack = append(stack, frame{node: next, edges: nextInfo.routes[tag].fallbacks})
	}
	return false, nil
}
