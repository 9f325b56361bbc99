package fallback

// The accessors in this file are read-only views meant for tests, tooling
// and serialization. They are not tuned for hot paths and their exact
// allocation behavior is not part of the stable contract.

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int { return g.count }

// MaxNodeID returns the highest registered node id. The boolean is false for
// an empty graph.
func (g *Graph) MaxNodeID() (NodeID, bool) { return g.maxID, g.count > 0 }

// HasNode reports whether node is registered.
func (g *Graph) HasNode(node NodeID) bool {
	_, ok := g.lookup(node)
	return ok
}

// HasTag reports whether tag is attached to node.
func (g *Graph) HasTag(node NodeID, tag TagID) bool {
	info, ok := g.lookup(node)
	return ok && info.attached(tag)
}

// HasRoute reports whether the route node → fallback is stored for tag.
func (g *Graph) HasRoute(node, fallback NodeID, tag TagID) bool {
	info, ok := g.lookup(node)
	return ok && info.hasRoute(fallback, tag)
}

// FallbackCount returns the number of fallbacks stored for node and tag.
func (g *Graph) FallbackCount(node NodeID, tag TagID) int {
	info, ok := g.lookup(node)
	if !ok || !info.attached(tag) {
		return 0
	}
	return len(info.routes[tag].fallbacks)
}

// Nodes returns the registered node ids in ascending order.
func (g *Graph) Nodes() []NodeID {
	ids := make([]NodeID, 0, g.count)
	for i := range g.nodes {
		if g.nodes[i].exists() {
			ids = append(ids, NodeID(i))
		}
	}
	return ids
}

// Tags returns the tags attached to node in ascending order, or nil if node
// is not registered.
func (g *Graph) Tags(node NodeID) []TagID {
	info, ok := g.lookup(node)
	if !ok {
		return nil
	}
	tags := make([]TagID, 0, info.ntags)
	for i := range info.routes {
		if info.routes[i].attached {
			tags = append(tags, TagID(i))
		}
	}
	return tags
}

// Routes returns every stored route ordered by source node, then tag, then
// insertion order.
func (g *Graph) Routes() []Route {
	var routes []Route
	for i := range g.nodes {
		info := &g.nodes[i]
		if !info.exists() {
			continue
		}
		for t := range info.routes {
			for _, to := range info.routes[t].fallbacks {
				routes = append(routes, Route{From: NodeID(i), To: to, Tag: TagID(t)})
			}
		}
	}
	return routes
}
