package fallback

const (
	// DefaultNodeChunk is the number of node slots added when the arena grows.
	DefaultNodeChunk = 16
	// DefaultTagChunk is the number of tag slots added when a node's tag table grows.
	DefaultTagChunk = 16
	// DefaultFallbackChunk is the number of slots added when a fallback list grows.
	DefaultFallbackChunk = 16

	// idSpace is the number of distinct NodeID and TagID values.
	idSpace = 1 << 16
)

// NodeID identifies a node, usually a font.
type NodeID uint16

// TagID identifies a tag, usually a script or a language.
type TagID uint16

// Route is a directed edge From → To that applies to a single Tag.
type Route struct {
	From NodeID
	To   NodeID
	Tag  TagID
}

// tagRoutes holds the fallback list of one (node, tag) pair.
// A tag is attached to a node iff attached is set.
type tagRoutes struct {
	fallbacks []NodeID
	attached  bool
}

// nodeInfo holds every tag table of a node, indexed by TagID.
// The node exists iff at least one tag is attached.
type nodeInfo struct {
	routes []tagRoutes
	ntags  int
}

func (n *nodeInfo) exists() bool { return n.ntags > 0 }

func (n *nodeInfo) attached(tag TagID) bool {
	return int(tag) < len(n.routes) && n.routes[tag].attached
}

func (n *nodeInfo) hasRoute(fallback NodeID, tag TagID) bool {
	if !n.attached(tag) {
		return false
	}
	for _, id := range n.routes[tag].fallbacks {
		if id == fallback {
			return true
		}
	}
	return false
}

// Graph is a tag-scoped fallback graph. For every tag, the subgraph of that
// tag's routes is acyclic.
//
// The zero value is an empty graph ready to use with default chunk sizes.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes []nodeInfo // indexed by NodeID
	count int
	maxID NodeID

	nodeChunk     int
	tagChunk      int
	fallbackChunk int
}

// Option configures a Graph created with [New].
type Option func(*Graph)

// WithNodeChunk sets how many node slots are added when the node arena grows.
// Values below 1 are ignored.
func WithNodeChunk(n int) Option {
	return func(g *Graph) {
		if n > 0 {
			g.nodeChunk = n
		}
	}
}

// WithTagChunk sets how many tag slots are added when a node's tag table
// grows. Values below 1 are ignored.
func WithTagChunk(n int) Option {
	return func(g *Graph) {
		if n > 0 {
			g.tagChunk = n
		}
	}
}

// WithFallbackChunk sets how many slots are added when a fallback list grows.
// Values below 1 are ignored.
func WithFallbackChunk(n int) Option {
	return func(g *Graph) {
		if n > 0 {
			g.fallbackChunk = n
		}
	}
}

// New creates an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Empty reports whether no node is registered.
func (g *Graph) Empty() bool { return g.count == 0 }

// AddNode registers node with tag as its first attached tag.
//
// It returns [ResultExists] without changing anything if node is already
// registered, whatever tag is passed. Further tags are attached by
// [Graph.AddRoute].
func (g *Graph) AddNode(node NodeID, tag TagID) Result {
	if g.HasNode(node) {
		return ResultExists
	}

	g.growNodes(node)
	g.attach(&g.nodes[node], tag)

	if g.count == 0 || node > g.maxID {
		g.maxID = node
	}
	g.count++
	return ResultOK
}

// AddRoute adds a route node → fallback for tag.
//
// The checks run in this order and all of them happen before the graph is
// touched:
//
//  1. [ResultNotExists] if node or fallback is not registered.
//  2. [ResultExists] if the route is already stored.
//  3. [ResultNotAllowed] if the route would close a cycle among the routes
//     of tag. A route from a node to itself is always rejected.
//  4. [ResultCorrupted] if the cycle search met a route to an unregistered node.
//
// On success, tag is attached to both endpoints if it was not, and fallback
// is appended to node's list for tag, keeping insertion order.
func (g *Graph) AddRoute(node, fallback NodeID, tag TagID) Result {
	info, ok := g.lookup(node)
	if !ok {
		return ResultNotExists
	}
	target, ok := g.lookup(fallback)
	if !ok {
		return ResultNotExists
	}

	if info.hasRoute(fallback, tag) {
		return ResultExists
	}

	looped, err := g.looped(node, fallback, tag)
	if err != nil {
		return ResultCorrupted
	}
	if looped {
		return ResultNotAllowed
	}

	g.attach(target, tag)
	g.attach(info, tag)
	g.connect(info, fallback, tag)
	return ResultOK
}

// Fallbacks copies the fallbacks of node for tag into buf, in insertion
// order, and returns how many were copied.
//
// The result is min(stored, len(buf)): a full buffer does not tell whether
// the list was truncated (use [Graph.FallbackCount] for the stored length).
// It returns 0 if node is unknown or tag is not attached to it. An empty buf
// yields 0 and is never written.
func (g *Graph) Fallbacks(node NodeID, tag TagID, buf []NodeID) int {
	if len(buf) == 0 {
		return 0
	}
	info, ok := g.lookup(node)
	if !ok || !info.attached(tag) {
		return 0
	}
	return copy(buf, info.routes[tag].fallbacks)
}

// Chain returns every node reachable from node through routes of tag, in
// breadth-first order. Each node appears once and the start node is
// excluded. It returns nil if node is unknown or tag is not attached.
func (g *Graph) Chain(node NodeID, tag TagID) []NodeID {
	info, ok := g.lookup(node)
	if !ok || !info.attached(tag) {
		return nil
	}

	seen := make([]bool, int(g.maxID)+1)
	seen[node] = true

	var chain []NodeID
	queue := []NodeID{node}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		curInfo, ok := g.lookup(cur)
		if !ok || !curInfo.attached(tag) {
			continue
		}
		for _, next := range curInfo.routes[tag].fallbacks {
			if int(next) >= len(seen) || seen[next] {
				continue
			}
			seen[next] = true
			chain = append(chain, next)
			queue = append(queue, next)
		}
	}
	return chain
}

// Reset removes every node, tag and route. Chunk settings are kept.
func (g *Graph) Reset() {
	g.nodes = nil
	g.count = 0
	g.maxID = 0
}

func (g *Graph) lookup(node NodeID) (*nodeInfo, bool) {
	if int(node) >= len(g.nodes) {
		return nil, false
	}
	info := &g.nodes[node]
	return info, info.exists()
}

// growNodes makes sure the arena has a slot for node, growing it by a chunk.
func (g *Graph) growNodes(node NodeID) {
	if int(node) < len(g.nodes) {
		return
	}
	size := min(int(node)+chunkOr(g.nodeChunk, DefaultNodeChunk), idSpace)
	grown := make([]nodeInfo, size)
	copy(grown, g.nodes)
	g.nodes = grown
}

// attach attaches tag to info unless it already is.
func (g *Graph) attach(info *nodeInfo, tag TagID) {
	if info.attached(tag) {
		return
	}
	if int(tag) >= len(info.routes) {
		size := min(int(tag)+chunkOr(g.tagChunk, DefaultTagChunk), idSpace)
		grown := make([]tagRoutes, size)
		copy(grown, info.routes)
		info.routes = grown
	}
	info.routes[tag] = tagRoutes{
		fallbacks: make([]NodeID, 0, chunkOr(g.fallbackChunk, DefaultFallbackChunk)),
		attached:  true,
	}
	info.ntags++
}

// connect appends fallback to the attached tag list of info.
func (g *Graph) connect(info *nodeInfo, fallback NodeID, tag TagID) {
	tr := &info.routes[tag]
	if len(tr.fallbacks) == cap(tr.fallbacks) {
		grown := make([]NodeID, len(tr.fallbacks), len(tr.fallbacks)+chunkOr(g.fallbackChunk, DefaultFallbackChunk))
		copy(grown, tr.fallbacks)
		tr.fallbacks = grown
	}
	tr.fallbacks = append(tr.fallbacks, fallback)
}

func chunkOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
