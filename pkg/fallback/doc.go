// Package fallback provides the fallback-routing graph used to build font
// fallback chains.
//
// # Overview
//
// A renderer that cannot draw a run of text with the requested font needs to
// know which font to try next. The answer depends on what is missing: a Latin
// text face falls back to one font for Arabic and to a different one for
// Devanagari. This package stores those substitutions as a directed graph
// whose edges are scoped to a tag:
//
//   - A node is an opaque [NodeID], typically a font.
//   - A tag is an opaque [TagID], typically a script or a language.
//   - A route is an edge node → fallback that applies to exactly one tag.
//
// For every tag the subgraph made of that tag's routes is kept acyclic, so a
// renderer walking a fallback chain can never loop forever.
//
// # Basic Usage
//
// Register nodes with [Graph.AddNode], connect them with [Graph.AddRoute] and
// query them with [Graph.Fallbacks]:
//
//	var g fallback.Graph
//	g.AddNode(0, latin)
//	g.AddNode(1, arabic)
//	g.AddRoute(0, 1, arabic)
//
//	buf := make([]fallback.NodeID, 8)
//	n := g.Fallbacks(0, arabic, buf) // buf[:n] == [1]
//
// Every mutating method reports its outcome as a [Result]. Expected outcomes
// (the node already exists, a route would close a cycle, an endpoint is
// unknown) are never reported through panics.
//
// # Cycle Detection
//
// Before a route is stored, [Graph.AddRoute] runs a three-color depth-first
// search restricted to the route's tag, starting from the route's source and
// treating the candidate edge as already present. An edge into a node that is
// still on the search stack proves a cycle, and the route is rejected with
// [ResultNotAllowed]. The search is iterative, so dense or very deep graphs do
// not grow the goroutine stack, and it never mutates the graph: a rejected
// route leaves the graph exactly as it was.
//
// If the search meets a stored route whose target is no longer registered,
// the graph itself is inconsistent. This is reported as [ResultCorrupted] so
// the caller can decide whether to abort.
//
// # Storage
//
// Nodes live in a dense arena indexed by NodeID, so id sets should be kept
// dense. Per-node tag slots and per-tag fallback lists grow in fixed-size
// chunks (16 slots by default, see [WithTagChunk] and [WithFallbackChunk]) to
// amortize reallocation. Nodes, tags and routes are never removed one by one;
// [Graph.Reset] drops everything at once.
//
// # Concurrency
//
// Graph performs no locking. All methods are synchronous and never block.
// Callers that share a graph between goroutines must serialize access; a
// sync.RWMutex with writers calling AddNode and AddRoute is sufficient.
package fallback
